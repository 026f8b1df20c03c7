package service

import (
	"context"
	"fmt"
	"time"

	"restopos/terminal-svc/internal/apiclient"
	"restopos/terminal-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.Session, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Resolve(ctx context.Context, sessionID string) (*domain.Session, error)
}

type AuthService struct {
	api      AuthAPI
	sessions SessionStore
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewAuthService(api AuthAPI, sessions SessionStore, log logrus.FieldLogger) *AuthService {
	return &AuthService{api: api, sessions: sessions, log: log, now: time.Now}
}

func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.Session, error) {
	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.open(ctx, resp)
}

// Register creates the account and, when the backend hands back a token,
// signs the new user in straight away.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.Session, error) {
	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, nil
	}
	return s.open(ctx, resp)
}

func (s *AuthService) open(ctx context.Context, resp *domain.AuthResponse) (*domain.Session, error) {
	if resp.Token == "" {
		return nil, fmt.Errorf("login response carries no token: %w", apiclient.ErrUnauthorized)
	}
	user := resp.User
	user.Role = user.Role.Normalize()

	session := domain.Session{
		ID:        uuid.NewString(),
		Token:     resp.Token,
		User:      user,
		CreatedAt: s.now().UTC(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("Operator signed in")
	return &session, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Resolve loads a session. An expired JWT counts as unauthorized and the
// session is dropped without asking the backend.
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if tokenExpired(session.Token, s.now()) {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			s.log.WithError(err).Warn("Failed to drop expired session")
		}
		return nil, apiclient.ErrUnauthorized
	}
	return session, nil
}

// tokenExpired reports whether token is a JWT whose exp lies in the past.
// Opaque tokens never expire on this side.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && !claims.ExpiresAt.After(now)
}

var _ AuthServiceInterface = (*AuthService)(nil)
