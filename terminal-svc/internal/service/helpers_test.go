package service_test

import (
	"restopos/terminal-svc/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func sessionFor(role domain.Role) *domain.Session {
	return &domain.Session{
		ID:    "session-" + string(role),
		Token: "token-" + string(role),
		User:  domain.User{ID: 7, Name: "Sari", Email: "sari@resto.id", Role: role},
	}
}

func nullLogger() *logrus.Logger {
	logger, _ := test.NewNullLogger()
	return logger
}
