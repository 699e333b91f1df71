package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-achieve-portal/internal/adapter"
	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/internal/mock"
	"github.com/MKhiriev/go-achieve-portal/internal/session"
	"github.com/MKhiriev/go-achieve-portal/internal/store"
	"github.com/MKhiriev/go-achieve-portal/internal/validators"
	"github.com/MKhiriev/go-achieve-portal/models"
)

func newAuthFixture(t *testing.T, ctrl *gomock.Controller) (AuthService, *session.Context, *mock.MockAuthAPI, *mock.MockSessionRepository) {
	t.Helper()
	mockAPI := mock.NewMockAuthAPI(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)
	sessionCtx := session.NewContext()
	svc := NewAuthService(mockAPI, sessionCtx, mockSessions, validators.NewSubmissionValidator(), logger.Nop())
	return svc, sessionCtx, mockAPI, mockSessions
}

func testToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "u1",
		"name":   "Ahmed Saleh",
		"role":   models.RoleUser,
		"exp":    time.Now().Add(expiresIn).Unix(),
	})
	s, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessionCtx, mockAPI, mockSessions := newAuthFixture(t, ctrl)
	ctx := context.Background()
	token := testToken(t, time.Hour)

	creds := models.Credentials{Username: "ahmed", Password: "secret"}
	mockAPI.EXPECT().Login(ctx, creds).Return(models.LoginResponse{
		Token: token,
		User:  &models.User{ID: "u1", Fullname: "Ahmed Saleh", Role: models.RoleUser},
	}, nil)
	mockSessions.EXPECT().SaveSession(ctx, token, "u1").Return(nil)

	user, err := svc.Login(ctx, creds)

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, sessionCtx.IsActive())
	assert.False(t, sessionCtx.IsAdmin())
}

func TestAuthService_Login_EmptyCredentialsMakeNoCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessionCtx, _, _ := newAuthFixture(t, ctrl)

	_, err := svc.Login(context.Background(), models.Credentials{})

	assert.ErrorIs(t, err, validators.ErrEmptyCredentials)
	assert.False(t, sessionCtx.IsActive())
}

func TestAuthService_Login_ErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		transport error
		want      error
	}{
		{name: "bad credentials", transport: fmt.Errorf("%w: invalid credentials", adapter.ErrUnauthorized), want: ErrInvalidCredentials},
		{name: "inactive account", transport: fmt.Errorf("%w: account disabled", adapter.ErrForbidden), want: ErrAccountInactive},
		{name: "backend down", transport: fmt.Errorf("%w: boom", adapter.ErrInternalServerError), want: ErrBackendFailure},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, sessionCtx, mockAPI, _ := newAuthFixture(t, ctrl)
			ctx := context.Background()

			mockAPI.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{}, test.transport)

			_, err := svc.Login(ctx, models.Credentials{Username: "x", Password: "y"})

			assert.ErrorIs(t, err, test.want)
			assert.False(t, sessionCtx.IsActive())
		})
	}
}

func TestAuthService_Restore_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessionCtx, _, mockSessions := newAuthFixture(t, ctrl)
	ctx := context.Background()
	token := testToken(t, time.Hour)

	mockSessions.EXPECT().LoadSession(ctx).Return(token, "u1", nil)

	user, err := svc.Restore(ctx)

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, sessionCtx.IsActive())
}

func TestAuthService_Restore_NothingSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockSessions := newAuthFixture(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().LoadSession(ctx).Return("", "", store.ErrSessionNotFound)

	_, err := svc.Restore(ctx)
	assert.ErrorIs(t, err, ErrNoSavedSession)
}

func TestAuthService_Restore_ExpiredTokenIsCleared(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessionCtx, _, mockSessions := newAuthFixture(t, ctrl)
	ctx := context.Background()
	expired := testToken(t, -time.Hour)

	mockSessions.EXPECT().LoadSession(ctx).Return(expired, "u1", nil)
	mockSessions.EXPECT().ClearSession(ctx).Return(nil)

	_, err := svc.Restore(ctx)

	assert.ErrorIs(t, err, ErrNoSavedSession)
	assert.False(t, sessionCtx.IsActive())
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, sessionCtx, mockAPI, mockSessions := newAuthFixture(t, ctrl)
	ctx := context.Background()
	token := testToken(t, time.Hour)

	mockAPI.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{Token: token}, nil)
	mockSessions.EXPECT().SaveSession(ctx, token, "u1").Return(nil)
	_, err := svc.Login(ctx, models.Credentials{Username: "x", Password: "y"})
	require.NoError(t, err)

	mockSessions.EXPECT().ClearSession(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
	assert.False(t, sessionCtx.IsActive())
}
