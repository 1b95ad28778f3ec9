// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/store"
	"github.com/MKhiriev/go-ask-me/internal/validators"
	"github.com/MKhiriev/go-ask-me/models"
)

const (
	MaxContentLength  = 2000
	MaxNicknameLength = 50
	DefaultNickname   = "anon"

	// DeleteAllConfirmationPhrase must be typed verbatim (case-sensitive)
	// to purge every question.
	DeleteAllConfirmationPhrase = "DELETE ALL QUESTIONS"

	forbiddenNicknameChars = "<>'\";"
)

// questionService is the concrete implementation of QuestionService.
type questionService struct {
	questionRepository store.QuestionRepository
	settingRepository  store.SettingRepository
	validator          validators.Validator

	// clock stamps CreatedAt and AnsweredAt. Replaced in tests.
	clock func() time.Time

	logger *logger.Logger
}

// NewQuestionService constructs a QuestionService. The moderation flag is
// read from settingRepository on every submission and public listing.
func NewQuestionService(questionRepository store.QuestionRepository, settingRepository store.SettingRepository, validator validators.Validator, logger *logger.Logger) QuestionService {
	return &questionService{
		questionRepository: questionRepository,
		settingRepository:  settingRepository,
		validator:          validator,
		clock:              time.Now,
		logger:             logger,
	}
}

// Submit stores a visitor question.
//
// Content is trimmed; a blank question returns ErrEmptyContent and a question
// longer than MaxContentLength characters returns ErrContentTooLong. In both
// cases nothing is written. The approval flag is fixed here from the
// moderation setting and is never recomputed afterwards.
func (s *questionService) Submit(ctx context.Context, submission models.QuestionSubmission) (models.Question, error) {
	log := logger.FromContext(ctx)

	content := strings.TrimSpace(submission.Content)
	if content == "" {
		return models.Question{}, ErrEmptyContent
	}
	if length := utf8.RuneCountInString(content); length > MaxContentLength {
		log.Warn().Int("length", length).Msg("question rejected: content is too long")
		return models.Question{}, fmt.Errorf("%w: %d characters, at most %d allowed", ErrContentTooLong, length, MaxContentLength)
	}

	settings, err := s.settingRepository.Load(ctx)
	if err != nil {
		log.Err(err).Msg("error loading settings before question submission")
		return models.Question{}, fmt.Errorf("error loading settings: %w", err)
	}

	question, err := s.questionRepository.Create(ctx, models.Question{
		Content:    content,
		Nickname:   SanitizeNickname(submission.Nickname),
		CreatedAt:  s.clock().UTC(),
		IsApproved: !settings.ModerationEnabled,
	})
	if err != nil {
		log.Err(err).Msg("question creation ended with error")
		return models.Question{}, fmt.Errorf("question creation ended with error: %w", err)
	}

	log.Info().Int64("id", question.ID).Bool("approved", question.IsApproved).Msg("question submitted")
	return question, nil
}

// Answer sets the answer text and its timestamp. Empty answers are accepted.
func (s *questionService) Answer(ctx context.Context, id int64, answer string) error {
	if err := s.questionRepository.SetAnswer(ctx, id, answer, s.clock().UTC()); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("error answering question")
		return fmt.Errorf("error answering question %d: %w", id, err)
	}
	return nil
}

// Edit overwrites content and nickname. Answer and approval are untouched.
func (s *questionService) Edit(ctx context.Context, edit models.QuestionEdit) error {
	log := logger.FromContext(ctx)

	edit.Content = strings.TrimSpace(edit.Content)
	edit.Nickname = SanitizeNickname(edit.Nickname)

	if err := s.validator.Validate(ctx, edit); err != nil {
		log.Warn().Err(err).Int64("id", edit.ID).Msg("question edit rejected")
		if errors.Is(err, validators.ErrContentTooLong) {
			return fmt.Errorf("%w: %w", ErrContentTooLong, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.questionRepository.UpdateContent(ctx, edit.ID, edit.Content, edit.Nickname); err != nil {
		log.Err(err).Int64("id", edit.ID).Msg("error editing question")
		return fmt.Errorf("error editing question %d: %w", edit.ID, err)
	}
	return nil
}

// Approve marks the question visible under moderation. Approving an already
// approved question succeeds.
func (s *questionService) Approve(ctx context.Context, id int64) error {
	if err := s.questionRepository.Approve(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("error approving question")
		return fmt.Errorf("error approving question %d: %w", id, err)
	}
	return nil
}

// Reject drops a pending question. It deletes the row exactly like Delete.
func (s *questionService) Reject(ctx context.Context, id int64) error {
	if err := s.questionRepository.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("error rejecting question")
		return fmt.Errorf("error rejecting question %d: %w", id, err)
	}
	return nil
}

func (s *questionService) Delete(ctx context.Context, id int64) error {
	if err := s.questionRepository.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("error deleting question")
		return fmt.Errorf("error deleting question %d: %w", id, err)
	}
	return nil
}

// DeleteAll removes every question when confirmationPhrase equals
// DeleteAllConfirmationPhrase exactly. Otherwise no row is touched.
func (s *questionService) DeleteAll(ctx context.Context, confirmationPhrase string) (int64, error) {
	log := logger.FromContext(ctx)

	if confirmationPhrase != DeleteAllConfirmationPhrase {
		log.Warn().Msg("delete all questions refused: wrong confirmation phrase")
		return 0, ErrWrongConfirmationPhrase
	}

	deleted, err := s.questionRepository.DeleteAll(ctx)
	if err != nil {
		log.Err(err).Msg("error deleting all questions")
		return 0, fmt.Errorf("error deleting all questions: %w", err)
	}
	return deleted, nil
}

func (s *questionService) Get(ctx context.Context, id int64) (models.Question, error) {
	question, err := s.questionRepository.GetByID(ctx, id)
	if err != nil {
		return models.Question{}, fmt.Errorf("error getting question %d: %w", id, err)
	}
	return question, nil
}

// List computes one page of questions for the requested audience.
//
// A page below 1 and a page past the end are answered with a redirect
// (QuestionPage.RedirectPage) instead of an error. Public listings only show
// approved questions while moderation is enabled; admin listings are narrowed
// by the request filter only.
func (s *questionService) List(ctx context.Context, request models.ListRequest) (models.QuestionPage, error) {
	log := logger.FromContext(ctx)

	if request.Page < 1 {
		return models.QuestionPage{RedirectPage: 1}, nil
	}

	query := models.QuestionQuery{Filter: models.FilterAll}
	if request.Audience == models.AudienceAdmin {
		query.Filter = models.ParseQuestionFilter(string(request.Filter))
	} else {
		settings, err := s.settingRepository.Load(ctx)
		if err != nil {
			log.Err(err).Msg("error loading settings before listing")
			return models.QuestionPage{}, fmt.Errorf("error loading settings: %w", err)
		}
		query.OnlyApproved = settings.ModerationEnabled
	}

	total, err := s.questionRepository.Count(ctx, query)
	if err != nil {
		log.Err(err).Any("query", query).Msg("error counting questions")
		return models.QuestionPage{}, fmt.Errorf("error counting questions: %w", err)
	}

	pageSize := request.Audience.PageSize()
	pagination := paginate(total, request.Page, pageSize)

	// past the end: redirect before computing an offset that could overflow
	if request.Page > 1 && request.Page > pagination.TotalPages {
		return models.QuestionPage{RedirectPage: pagination.TotalPages}, nil
	}

	query.Limit = uint64(pageSize)
	query.Offset = uint64((request.Page - 1) * pageSize)

	questions, err := s.questionRepository.List(ctx, query)
	if err != nil {
		log.Err(err).Any("query", query).Msg("error listing questions")
		return models.QuestionPage{}, fmt.Errorf("error listing questions: %w", err)
	}

	if request.Page > 1 && len(questions) == 0 {
		// a concurrent delete can leave count and slice disagreeing; never
		// redirect a page to itself
		if target := max(1, pagination.TotalPages); target != request.Page {
			return models.QuestionPage{RedirectPage: target}, nil
		}
	}

	return models.QuestionPage{
		Questions:  questions,
		Pagination: pagination,
	}, nil
}

// Stats counts questions for the dashboard header.
func (s *questionService) Stats(ctx context.Context) (models.QuestionStats, error) {
	var (
		stats models.QuestionStats
		err   error
	)

	if stats.Total, err = s.questionRepository.Count(ctx, models.QuestionQuery{Filter: models.FilterAll}); err != nil {
		return models.QuestionStats{}, fmt.Errorf("error counting questions: %w", err)
	}
	if stats.Unanswered, err = s.questionRepository.Count(ctx, models.QuestionQuery{Filter: models.FilterUnanswered}); err != nil {
		return models.QuestionStats{}, fmt.Errorf("error counting unanswered questions: %w", err)
	}
	if stats.Pending, err = s.questionRepository.Count(ctx, models.QuestionQuery{Filter: models.FilterPending}); err != nil {
		return models.QuestionStats{}, fmt.Errorf("error counting pending questions: %w", err)
	}

	return stats, nil
}

// paginate builds navigation metadata. There is always at least one page.
func paginate(total, page, pageSize int) models.Pagination {
	totalPages := max(1, (total+pageSize-1)/pageSize)
	return models.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// SanitizeNickname strips forbidden characters, truncates to
// MaxNicknameLength characters and falls back to DefaultNickname.
func SanitizeNickname(nickname string) string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbiddenNicknameChars, r) {
			return -1
		}
		return r
	}, nickname)
	cleaned = strings.TrimSpace(cleaned)

	if utf8.RuneCountInString(cleaned) > MaxNicknameLength {
		cleaned = strings.TrimSpace(string([]rune(cleaned)[:MaxNicknameLength]))
	}

	if cleaned == "" {
		return DefaultNickname
	}
	return cleaned
}
