package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vehrenweb/rentals/internal/domain"
)

// fakeUserRepo keeps users in a map so register/login round-trips exercise
// the real bcrypt hashing.
type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return &domain.ConflictError{Message: "Email already exists"}
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	stored := *user
	f.byEmail[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "user"}
	}
	copied := *u
	return &copied, nil
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo, "test-secret", time.Hour)
	ctx := context.Background()

	userID, err := service.Register(ctx, "Asha Rao", "asha@example.com", "s3cret!pw")
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)

	result, err := service.Login(ctx, "asha@example.com", "s3cret!pw")
	require.NoError(t, err)
	assert.Equal(t, userID, result.User.ID)
	assert.NotEmpty(t, result.Token)

	token, err := jwt.Parse(result.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(userID), claims["user_id"])
	assert.Equal(t, "asha@example.com", claims["email"])
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo, "test-secret", time.Hour)
	ctx := context.Background()

	_, err := service.Register(ctx, "Asha Rao", "asha@example.com", "s3cret!pw")
	require.NoError(t, err)

	_, err = service.Register(ctx, "Someone Else", "asha@example.com", "otherpw")
	var cErr *domain.ConflictError
	assert.ErrorAs(t, err, &cErr)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	service := NewAuthService(newFakeUserRepo(), "test-secret", time.Hour)

	_, err := service.Register(context.Background(), "", "asha@example.com", "")

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"fullname", "password"}, vErr.Fields)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo, "test-secret", time.Hour)
	ctx := context.Background()

	_, err := service.Register(ctx, "Asha Rao", "asha@example.com", "s3cret!pw")
	require.NoError(t, err)

	_, err = service.Login(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	service := NewAuthService(newFakeUserRepo(), "test-secret", time.Hour)

	_, err := service.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
