package service

import (
	"errors"
	"testing"
	"time"
	"walkalong_backend/internal/config"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/repository"
	"walkalong_backend/internal/util"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key-for-unit-tests-only"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(setupTestDB(t)), cfg)
}

func registerUser(t *testing.T, s *AuthService, email, password string) *model.User {
	t.Helper()
	user := &model.User{Name: "tester", Email: email, Password: password}
	if err := s.Register(user); err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return user
}

func TestRegisterHashesPassword(t *testing.T) {
	s := newAuthService(t)

	user := registerUser(t, s, "a@walkalong.dev", "plaintext123")
	if user.Password == "plaintext123" {
		t.Error("password stored in plaintext")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newAuthService(t)

	registerUser(t, s, "dup@walkalong.dev", "password1")
	err := s.Register(&model.User{Name: "second", Email: "dup@walkalong.dev", Password: "password2"})
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Errorf("err = %v, want ErrEmailRegistered", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	s := newAuthService(t)
	registerUser(t, s, "login@walkalong.dev", "correct-horse")

	token, err := s.Login("login@walkalong.dev", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := util.ParseJWT(token, s.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Email != "login@walkalong.dev" {
		t.Errorf("claims email = %q, want login@walkalong.dev", claims.Email)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	s := newAuthService(t)
	registerUser(t, s, "wrong@walkalong.dev", "right-password")

	if _, err := s.Login("wrong@walkalong.dev", "bad-password"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := s.Login("nobody@walkalong.dev", "whatever"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v, want ErrInvalidCredentials", err)
	}
}
