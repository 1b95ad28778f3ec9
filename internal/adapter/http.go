// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/utils"
	"github.com/MKhiriev/go-ask-me/models"
)

type httpQuestionsClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPQuestionsClient constructs the HTTP implementation of
// [QuestionsClient]. address may omit the scheme, in which case http is
// assumed. A zero timeout leaves resty's default in place.
func NewHTTPQuestionsClient(address string, timeout time.Duration, logger *logger.Logger) (QuestionsClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &httpQuestionsClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpQuestionsClient) Ask(ctx context.Context, submission models.QuestionSubmission) (models.Question, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(submission).
		Post("/api/questions")
	if err != nil {
		return models.Question{}, fmt.Errorf("ask request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Question{}, err
	}
	if resp.StatusCode() == http.StatusNoContent {
		return models.Question{}, ErrEmptyQuestion
	}

	var question models.Question
	if err = json.Unmarshal(resp.Body(), &question); err != nil {
		return models.Question{}, fmt.Errorf("decode ask response: %w", err)
	}

	h.logger.Debug().Int64("id", question.ID).Msg("question submitted")
	return question, nil
}

func (h *httpQuestionsClient) List(ctx context.Context, page int) (models.QuestionPage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		Get("/api/questions")
	if err != nil {
		return models.QuestionPage{}, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.QuestionPage{}, err
	}

	var listing models.QuestionPage
	if err = json.Unmarshal(resp.Body(), &listing); err != nil {
		return models.QuestionPage{}, fmt.Errorf("decode list response: %w", err)
	}
	return listing, nil
}

func (h *httpQuestionsClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Body())), nil
}
