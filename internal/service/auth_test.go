package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourname/sleeplog/internal"
)

type fakeUserRepo struct {
	users  map[string]*internal.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*internal.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *internal.User) error {
	if _, ok := f.users[user.Email]; ok {
		return internal.ErrDuplicateEmail
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*internal.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, internal.ErrNotFound
	}
	stored := *u
	return &stored, nil
}

func TestRegisterNeverStoresRawPassword(t *testing.T) {
	repo := newFakeUserRepo()

	user, err := Register(context.Background(), repo, "a@example.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "hunter2", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()

	_, err := Register(context.Background(), repo, "a@example.com", "first")
	require.NoError(t, err)

	_, err = Register(context.Background(), repo, "a@example.com", "second")
	assert.ErrorIs(t, err, internal.ErrDuplicateEmail)
	assert.Len(t, repo.users, 1)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	registered, err := Register(context.Background(), repo, "a@example.com", "hunter2")
	require.NoError(t, err)

	user, err := Login(context.Background(), repo, "a@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = Login(context.Background(), repo, "a@example.com", "wrong")
	assert.ErrorIs(t, err, internal.ErrInvalidCredentials)

	_, err = Login(context.Background(), repo, "nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, internal.ErrInvalidCredentials)
}
