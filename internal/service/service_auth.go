package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-achieve-portal/internal/adapter"
	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/internal/session"
	"github.com/MKhiriev/go-achieve-portal/internal/store"
	"github.com/MKhiriev/go-achieve-portal/internal/validators"
	"github.com/MKhiriev/go-achieve-portal/models"
)

type authService struct {
	adapter   adapter.AuthAPI
	session   *session.Context
	sessions  store.SessionRepository
	validator validators.Validator
	logger    *logger.Logger
}

func NewAuthService(authAPI adapter.AuthAPI, sessionCtx *session.Context, sessions store.SessionRepository, validator validators.Validator, log *logger.Logger) AuthService {
	return &authService{
		adapter:   authAPI,
		session:   sessionCtx,
		sessions:  sessions,
		validator: validator,
		logger:    log,
	}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, err
	}

	resp, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.User{}, mapLoginError(err)
	}

	if err = a.session.Begin(resp.Token); err != nil {
		return models.User{}, fmt.Errorf("begin session: %w", err)
	}

	user, _ := a.session.User()
	if resp.User != nil {
		user = *resp.User
	}

	// A failed save only costs the next run a fresh login.
	if err = a.sessions.SaveSession(ctx, resp.Token, user.ID); err != nil {
		a.logger.Warn().Err(err).Str("func", "authService.Login").Msg("could not persist session token")
	}

	a.logger.Info().Str("func", "authService.Login").Str("user_id", user.ID).Str("role", user.Role).Msg("signed in")
	return user, nil
}

func (a *authService) Restore(ctx context.Context) (models.User, error) {
	token, _, err := a.sessions.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.User{}, ErrNoSavedSession
		}
		return models.User{}, fmt.Errorf("load saved session: %w", err)
	}

	// A mangled or already-expired token is dropped so the next run skips
	// this path entirely.
	if err = a.session.Begin(token); err != nil || !a.session.IsActive() {
		a.session.End()
		if clearErr := a.sessions.ClearSession(ctx); clearErr != nil {
			a.logger.Warn().Err(clearErr).Str("func", "authService.Restore").Msg("could not clear stale session")
		}
		return models.User{}, ErrNoSavedSession
	}

	a.logger.Info().Str("func", "authService.Restore").Str("user_id", a.session.UserID()).Msg("session restored")
	return a.session.User()
}

func (a *authService) Logout(ctx context.Context) error {
	a.session.End()

	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear saved session: %w", err)
	}

	a.logger.Info().Str("func", "authService.Logout").Msg("signed out")
	return nil
}
