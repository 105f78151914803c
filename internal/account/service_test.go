package account_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cfed-mr/backoffice/internal/account"
)

type fakeRepo struct {
	account.Repository

	usersByEmail map[string]*account.User
	created      []*account.User
	deleteRole   error
}

func (f *fakeRepo) CreateUser(_ context.Context, u *account.User) error {
	u.ID = uuid.New()
	f.created = append(f.created, u)

	return nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*account.User, error) {
	u, ok := f.usersByEmail[email]
	if !ok {
		return nil, account.ErrUserNotFound
	}

	return u, nil
}

func (f *fakeRepo) DeleteRole(_ context.Context, _ uuid.UUID) error {
	return f.deleteRole
}

func TestService_CreateUser_HashesPassword(t *testing.T) {
	repo := &fakeRepo{}
	svc := account.NewService(repo)

	u, err := svc.CreateUser(context.Background(), account.CreateUserParams{
		Name:     "Aminata Ba",
		Email:    "aminata@cfed.mr",
		Password: "s3cret",
		RoleID:   uuid.New(),
	})
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
}

func TestService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &account.User{
		ID:           uuid.New(),
		Email:        "aminata@cfed.mr",
		PasswordHash: string(hash),
	}

	repo := &fakeRepo{usersByEmail: map[string]*account.User{user.Email: user}}
	svc := account.NewService(repo)

	t.Run("Success", func(t *testing.T) {
		got, err := svc.Authenticate(context.Background(), "aminata@cfed.mr", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "aminata@cfed.mr", "wrong")
		require.ErrorIs(t, err, account.ErrInvalidCredentials)
	})

	// Unknown emails report the same error as wrong passwords.
	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "nobody@cfed.mr", "s3cret")
		require.ErrorIs(t, err, account.ErrInvalidCredentials)
	})
}

func TestService_DeleteRole_InUse(t *testing.T) {
	repo := &fakeRepo{deleteRole: account.ErrRoleInUse}
	svc := account.NewService(repo)

	err := svc.DeleteRole(context.Background(), uuid.New())
	require.ErrorIs(t, err, account.ErrRoleInUse)
}
