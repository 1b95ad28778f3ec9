// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-ask-me/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by Validate for field-level scoping. They match the
// struct field names of the validated models.
const (
	FieldID              = "ID"
	FieldContent         = "Content"
	FieldNickname        = "Nickname"
	FieldAdminID         = "AdminID"
	FieldDisplayName     = "DisplayName"
	FieldIntroduction    = "Introduction"
	FieldUsername        = "Username"
	FieldPassword        = "Password"
	FieldCurrentPassword = "CurrentPassword"
	FieldNewPassword     = "NewPassword"
)

var (
	questionEditFields      = []string{FieldID, FieldContent, FieldNickname}
	profileUpdateFields     = []string{FieldAdminID, FieldDisplayName, FieldIntroduction}
	credentialsUpdateFields = []string{FieldAdminID, FieldCurrentPassword, FieldUsername, FieldNewPassword}
	loginRequestFields      = []string{FieldUsername, FieldPassword}
)

// FormValidator checks admin form input against the `validate` struct tags
// of the models and translates failures into this package's errors.
type FormValidator struct {
	validate *validator.Validate
}

func NewFormValidator() Validator {
	return &FormValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.QuestionEdit:
		return v.validateStruct(ctx, value, questionEditFields, fields)
	case *models.QuestionEdit:
		return v.validateStruct(ctx, *value, questionEditFields, fields)

	case models.ProfileUpdate:
		return v.validateStruct(ctx, value, profileUpdateFields, fields)
	case *models.ProfileUpdate:
		return v.validateStruct(ctx, *value, profileUpdateFields, fields)

	case models.CredentialsUpdate:
		return v.validateStruct(ctx, value, credentialsUpdateFields, fields)
	case *models.CredentialsUpdate:
		return v.validateStruct(ctx, *value, credentialsUpdateFields, fields)

	case models.LoginRequest:
		return v.validateStruct(ctx, value, loginRequestFields, fields)
	case *models.LoginRequest:
		return v.validateStruct(ctx, *value, loginRequestFields, fields)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateStruct(ctx context.Context, value any, known, fields []string) error {
	if len(fields) == 0 {
		fields = known
	}
	for _, f := range fields {
		if !slices.Contains(known, f) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	err := v.validate.StructPartialCtx(ctx, value, fields...)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	// first failing field wins, in struct declaration order
	fe := validationErrors[0]
	return fmt.Errorf("%w: failed on '%s'", fieldError(fe.StructField(), fe.Tag()), fe.Tag())
}

func fieldError(field, tag string) error {
	switch field {
	case FieldID:
		return ErrInvalidQuestionID
	case FieldContent:
		if tag == "required" {
			return ErrEmptyContent
		}
		return ErrContentTooLong
	case FieldNickname:
		return ErrInvalidNickname
	case FieldAdminID:
		return ErrInvalidAdminID
	case FieldDisplayName:
		return ErrInvalidDisplayName
	case FieldIntroduction:
		return ErrInvalidIntroduction
	case FieldUsername:
		return ErrInvalidUsername
	case FieldCurrentPassword:
		return ErrMissingCurrentPassword
	case FieldPassword, FieldNewPassword:
		return ErrInvalidPassword
	default:
		return ErrUnknownField
	}
}
