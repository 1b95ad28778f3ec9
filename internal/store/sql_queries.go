// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/go-ask-me/models"
	"github.com/Masterminds/squirrel"
)

const (
	questionsTable = "questions"
	adminsTable    = "admins"
	settingsTable  = "settings"
)

var (
	questionColumns = []string{"id", "content", "nickname", "created_at", "answer", "answered_at", "is_approved"}
	adminColumns    = []string{"id", "username", "password_hash", "display_name", "introduction"}
)

// questionOrder is newest first; equal timestamps fall back to the later
// insertion (higher id) first.
var questionOrder = []string{"created_at DESC", "id DESC"}

// applyQuestionQuery adds the visibility and filter predicates of q to a
// SELECT. Paging is applied separately so the same predicates serve counts.
func applyQuestionQuery(b squirrel.SelectBuilder, q models.QuestionQuery) squirrel.SelectBuilder {
	if q.OnlyApproved {
		b = b.Where(squirrel.Eq{"is_approved": true})
	}

	switch q.Filter {
	case models.FilterUnanswered:
		b = b.Where(squirrel.Eq{"answer": nil})
	case models.FilterAnswered:
		b = b.Where(squirrel.NotEq{"answer": nil})
	case models.FilterPending:
		b = b.Where(squirrel.Eq{"is_approved": false})
	}

	return b
}

func buildListQuestionsQuery(sb squirrel.StatementBuilderType, q models.QuestionQuery) squirrel.SelectBuilder {
	b := applyQuestionQuery(sb.Select(questionColumns...).From(questionsTable), q).
		OrderBy(questionOrder...)

	if q.Limit > 0 {
		b = b.Limit(q.Limit).Offset(q.Offset)
	}

	return b
}

func buildCountQuestionsQuery(sb squirrel.StatementBuilderType, q models.QuestionQuery) squirrel.SelectBuilder {
	return applyQuestionQuery(sb.Select("COUNT(*)").From(questionsTable), q)
}

func buildGetQuestionQuery(sb squirrel.StatementBuilderType, id int64) squirrel.SelectBuilder {
	return sb.Select(questionColumns...).From(questionsTable).Where(squirrel.Eq{"id": id})
}

func buildCreateQuestionQuery(sb squirrel.StatementBuilderType, question models.Question) squirrel.InsertBuilder {
	return sb.Insert(questionsTable).
		Columns("content", "nickname", "created_at", "is_approved").
		Values(question.Content, question.Nickname, question.CreatedAt, question.IsApproved).
		Suffix("RETURNING id")
}

func buildSetAnswerQuery(sb squirrel.StatementBuilderType, id int64, answer string, answeredAt time.Time) squirrel.UpdateBuilder {
	return sb.Update(questionsTable).
		Set("answer", answer).
		Set("answered_at", answeredAt).
		Where(squirrel.Eq{"id": id})
}

func buildUpdateContentQuery(sb squirrel.StatementBuilderType, id int64, content, nickname string) squirrel.UpdateBuilder {
	return sb.Update(questionsTable).
		Set("content", content).
		Set("nickname", nickname).
		Where(squirrel.Eq{"id": id})
}

func buildApproveQuery(sb squirrel.StatementBuilderType, id int64) squirrel.UpdateBuilder {
	return sb.Update(questionsTable).
		Set("is_approved", true).
		Where(squirrel.Eq{"id": id})
}

func buildDeleteQuestionQuery(sb squirrel.StatementBuilderType, id int64) squirrel.DeleteBuilder {
	return sb.Delete(questionsTable).Where(squirrel.Eq{"id": id})
}

func buildDeleteAllQuestionsQuery(sb squirrel.StatementBuilderType) squirrel.DeleteBuilder {
	return sb.Delete(questionsTable)
}

func buildSelectAdminQuery(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select(adminColumns...).From(adminsTable)
}

func buildCreateAdminQuery(sb squirrel.StatementBuilderType, admin models.Admin) squirrel.InsertBuilder {
	return sb.Insert(adminsTable).
		Columns("username", "password_hash", "display_name", "introduction").
		Values(admin.Username, admin.PasswordHash, admin.DisplayName, admin.Introduction).
		Suffix("RETURNING id")
}

func buildUpdateProfileQuery(sb squirrel.StatementBuilderType, id int64, displayName, introduction string) squirrel.UpdateBuilder {
	return sb.Update(adminsTable).
		Set("display_name", displayName).
		Set("introduction", introduction).
		Where(squirrel.Eq{"id": id})
}

func buildUpdateCredentialsQuery(sb squirrel.StatementBuilderType, id int64, username, passwordHash string) squirrel.UpdateBuilder {
	return sb.Update(adminsTable).
		Set("username", username).
		Set("password_hash", passwordHash).
		Where(squirrel.Eq{"id": id})
}

func buildGetSettingQuery(sb squirrel.StatementBuilderType, key string) squirrel.SelectBuilder {
	return sb.Select("value").From(settingsTable).Where(squirrel.Eq{"key": key})
}

func buildUpsertSettingQuery(sb squirrel.StatementBuilderType, key, value string) squirrel.InsertBuilder {
	return sb.Insert(settingsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value")
}
