// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/mock"
	"github.com/MKhiriev/go-ask-me/internal/store"
	"github.com/MKhiriev/go-ask-me/internal/utils"
	"github.com/MKhiriev/go-ask-me/internal/validators"
	"github.com/MKhiriev/go-ask-me/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAdminSvc(t *testing.T, ctrl *gomock.Controller) (AdminService, *mock.MockAdminRepository, *mock.MockPasswordHasher) {
	t.Helper()
	repo := mock.NewMockAdminRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	return NewAdminService(repo, hasher, validators.NewFormValidator(), logger.Nop()), repo, hasher
}

var storedAdmin = models.Admin{
	ID:           1,
	Username:     "admin",
	PasswordHash: "$2a$10$stored",
	DisplayName:  "John",
}

// ── Bootstrap ─────────────────────────────────────────────────────────────────

func TestAdminService_Bootstrap_Existing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx).Return(storedAdmin, nil)

	got, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, storedAdmin, got)
}

func TestAdminService_Bootstrap_CreatesDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, hasher := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Get(ctx).Return(models.Admin{}, store.ErrAdminNotFound),
		hasher.EXPECT().Hash(DefaultAdminPassword).Return("hashed", nil),
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, a models.Admin) (models.Admin, error) {
				assert.Equal(t, DefaultAdminUsername, a.Username)
				assert.Equal(t, "hashed", a.PasswordHash)
				assert.Equal(t, DefaultAdminDisplayName, a.DisplayName)
				assert.Equal(t, DefaultAdminIntroduction, a.Introduction)
				a.ID = 1
				return a, nil
			},
		),
	)

	got, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestAdminService_Bootstrap_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx).Return(models.Admin{}, store.ErrExecutingQuery)

	_, err := svc.Bootstrap(ctx)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── Authenticate ──────────────────────────────────────────────────────────────

func TestAdminService_Authenticate(t *testing.T) {
	tests := []struct {
		name      string
		request   models.LoginRequest
		setup     func(repo *mock.MockAdminRepository, hasher *mock.MockPasswordHasher)
		wantErr   error
		wantAdmin bool
	}{
		{
			name:    "success",
			request: models.LoginRequest{Username: " admin ", Password: "admin"},
			setup: func(repo *mock.MockAdminRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(storedAdmin, nil)
				hasher.EXPECT().Compare(storedAdmin.PasswordHash, "admin").Return(nil)
			},
			wantAdmin: true,
		},
		{
			name:    "unknown username",
			request: models.LoginRequest{Username: "root", Password: "admin"},
			setup: func(repo *mock.MockAdminRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindByUsername(gomock.Any(), "root").Return(models.Admin{}, store.ErrAdminNotFound)
				// still pays for one comparison
				hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil)
				hasher.EXPECT().Compare("dummy-hash", "admin").Return(utils.ErrPasswordMismatch)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:    "wrong password",
			request: models.LoginRequest{Username: "admin", Password: "nope"},
			setup: func(repo *mock.MockAdminRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(storedAdmin, nil)
				hasher.EXPECT().Compare(storedAdmin.PasswordHash, "nope").Return(utils.ErrPasswordMismatch)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:    "empty form",
			request: models.LoginRequest{},
			setup:   func(*mock.MockAdminRepository, *mock.MockPasswordHasher) {},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:    "storage failure",
			request: models.LoginRequest{Username: "admin", Password: "admin"},
			setup: func(repo *mock.MockAdminRepository, _ *mock.MockPasswordHasher) {
				repo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(models.Admin{}, store.ErrScanningRow)
			},
			wantErr: store.ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, hasher := newTestAdminSvc(t, ctrl)
			tt.setup(repo, hasher)

			got, err := svc.Authenticate(context.Background(), tt.request)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, storedAdmin.ID, got.ID)
		})
	}
}

func TestAdminService_Authenticate_UnknownUsernameHashesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, hasher := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindByUsername(ctx, "ghost").Return(models.Admin{}, store.ErrAdminNotFound).Times(2)
	hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Times(1)
	hasher.EXPECT().Compare("dummy-hash", gomock.Any()).Return(utils.ErrPasswordMismatch).Times(2)

	for _, password := range []string{"first", "second"} {
		_, err := svc.Authenticate(ctx, models.LoginRequest{Username: "ghost", Password: password})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestAdminService_Authenticate_BcryptCostOnUnknownUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockAdminRepository(ctrl)
	svc := NewAdminService(repo, utils.NewBcryptHasher(bcrypt.MinCost), validators.NewFormValidator(), logger.Nop()).(*adminService)
	ctx := context.Background()

	repo.EXPECT().FindByUsername(ctx, "ghost").Return(models.Admin{}, store.ErrAdminNotFound)

	_, err := svc.Authenticate(ctx, models.LoginRequest{Username: "ghost", Password: "guess"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	hash, err := svc.dummyHash()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"), "dummy hash must be a real bcrypt hash")
}

// ── UpdateProfile ─────────────────────────────────────────────────────────────

func TestAdminService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().UpdateProfile(ctx, int64(1), "Jane", "Hello there").Return(nil)
	require.NoError(t, svc.UpdateProfile(ctx, models.ProfileUpdate{AdminID: 1, DisplayName: " Jane ", Introduction: "Hello there\n"}))

	err := svc.UpdateProfile(ctx, models.ProfileUpdate{AdminID: 1, DisplayName: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, validators.ErrInvalidDisplayName)
}

// ── UpdateCredentials ─────────────────────────────────────────────────────────

func TestAdminService_UpdateCredentials_RenameAndNewPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, hasher := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetByID(ctx, int64(1)).Return(storedAdmin, nil),
		hasher.EXPECT().Compare(storedAdmin.PasswordHash, "admin").Return(nil),
		repo.EXPECT().FindByUsername(ctx, "owner").Return(models.Admin{}, store.ErrAdminNotFound),
		hasher.EXPECT().Hash("new password!").Return("new-hash", nil),
		repo.EXPECT().UpdateCredentials(ctx, int64(1), "owner", "new-hash").Return(nil),
	)

	err := svc.UpdateCredentials(ctx, models.CredentialsUpdate{
		AdminID:         1,
		CurrentPassword: "admin",
		Username:        "owner",
		NewPassword:     "new password!",
	})
	require.NoError(t, err)
}

func TestAdminService_UpdateCredentials_KeepsPasswordWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, hasher := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, int64(1)).Return(storedAdmin, nil)
	hasher.EXPECT().Compare(storedAdmin.PasswordHash, "admin").Return(nil)
	repo.EXPECT().UpdateCredentials(ctx, int64(1), "admin", storedAdmin.PasswordHash).Return(nil)

	err := svc.UpdateCredentials(ctx, models.CredentialsUpdate{AdminID: 1, CurrentPassword: "admin", Username: "admin"})
	require.NoError(t, err)
}

func TestAdminService_UpdateCredentials_WrongCurrentPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, hasher := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, int64(1)).Return(storedAdmin, nil)
	hasher.EXPECT().Compare(storedAdmin.PasswordHash, "guess").Return(utils.ErrPasswordMismatch)

	err := svc.UpdateCredentials(ctx, models.CredentialsUpdate{AdminID: 1, CurrentPassword: "guess", Username: "owner"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminService_UpdateCredentials_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, hasher := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, int64(1)).Return(storedAdmin, nil)
	hasher.EXPECT().Compare(storedAdmin.PasswordHash, "admin").Return(nil)
	repo.EXPECT().FindByUsername(ctx, "taken").Return(models.Admin{ID: 2, Username: "taken"}, nil)

	err := svc.UpdateCredentials(ctx, models.CredentialsUpdate{AdminID: 1, CurrentPassword: "admin", Username: "taken"})
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

func TestAdminService_UpdateCredentials_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAdminSvc(t, ctrl)

	err := svc.UpdateCredentials(context.Background(), models.CredentialsUpdate{AdminID: 1, CurrentPassword: "admin", Username: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, validators.ErrInvalidUsername)
}

// ── ResetCredentials ──────────────────────────────────────────────────────────

func TestAdminService_ResetCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, hasher := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Get(ctx).Return(storedAdmin, nil),
		hasher.EXPECT().Hash("recovered-pass").Return("h", nil),
		repo.EXPECT().UpdateCredentials(ctx, int64(1), "admin", "h").Return(nil),
	)

	require.NoError(t, svc.ResetCredentials(ctx, "admin", "recovered-pass"))
}

func TestAdminService_ResetCredentials_RequiresPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestAdminSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx).Return(storedAdmin, nil)

	err := svc.ResetCredentials(ctx, "admin", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdminService_HasherFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, hasher := newTestAdminSvc(t, ctrl)
	ctx := context.Background()
	boom := errors.New("malformed hash")

	repo.EXPECT().FindByUsername(ctx, "admin").Return(storedAdmin, nil)
	hasher.EXPECT().Compare(storedAdmin.PasswordHash, "admin").Return(boom)

	_, err := svc.Authenticate(ctx, models.LoginRequest{Username: "admin", Password: "admin"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
