package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/yourname/sleeplog/internal"
	"github.com/yourname/sleeplog/internal/storage"
)

type CredentialsForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func ValidateCredentialsForm(form *CredentialsForm) error {
	form.Email = strings.TrimSpace(form.Email)
	return validate.Struct(form)
}

// Register creates a user with a bcrypt hash of the password. The raw
// password is never persisted.
func Register(ctx context.Context, users storage.UserRepository, email, password string) (*internal.User, error) {
	if _, err := users.GetUserByEmail(ctx, email); err == nil {
		return nil, internal.ErrDuplicateEmail
	} else if !errors.Is(err, internal.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &internal.User{Email: email, PasswordHash: string(hash)}
	if err := users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials. Every mismatch, wrong email or wrong
// password, collapses into ErrInvalidCredentials.
func Login(ctx context.Context, users storage.UserRepository, email, password string) (*internal.User, error) {
	user, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, internal.ErrNotFound) {
			return nil, internal.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, internal.ErrInvalidCredentials
	}
	return user, nil
}
