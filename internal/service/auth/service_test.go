package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kmosk/space-reservation-service/internal/domain"
	userRepo "github.com/kmosk/space-reservation-service/internal/infra/storage/user"
	"github.com/kmosk/space-reservation-service/internal/service/auth/models"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[int64]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[int64]*domain.User),
		nextID:  1,
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, userRepo.ErrEmailTaken
	}
	out := *user
	out.ID = f.nextID
	out.CreatedAt = time.Now()
	f.nextID++
	f.byEmail[out.Email] = &out
	f.byID[out.ID] = &out
	return &out, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeUserRepo) *Service {
	return NewService(repo, "test-secret", time.Hour, nopLogger{})
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, role domain.RoleID) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u, err := repo.Create(context.Background(), &domain.User{
		Name:         "Иван",
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       role,
	})
	require.NoError(t, err)
	return u
}

func TestRegister(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	user, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Иван",
		Email:    "ivan@example.com",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "ivan@example.com", user.Email)
	// новые пользователи всегда получают роль client
	assert.Equal(t, domain.RoleClient, user.RoleID)
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ivan@example.com", "password123", domain.RoleClient)
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Иван",
		Email:    "ivan@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	tests := []struct {
		name string
		req  *models.RegisterRequest
	}{
		{"empty name", &models.RegisterRequest{Email: "a@b.com", Password: "password123"}},
		{"bad email", &models.RegisterRequest{Name: "Иван", Email: "not-an-email", Password: "password123"}},
		{"short password", &models.RegisterRequest{Name: "Иван", Email: "a@b.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLoginAndParseToken(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "admin@example.com", "password123", domain.RoleAdmin)
	svc := newTestService(repo)

	token, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.True(t, token.ExpiresAt.After(time.Now()))

	// выпущенный токен проходит проверку и несёт ID и роль
	claims, err := svc.ParseToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.RoleID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ivan@example.com", "password123", domain.RoleClient)
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ivan@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseToken_Invalid(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ivan@example.com", "password123", domain.RoleClient)
	svc := newTestService(repo)

	_, err := svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// токен, подписанный другим секретом, отклоняется
	other := NewService(repo, "other-secret", time.Hour, nopLogger{})
	token, err := other.Login(context.Background(), &models.LoginRequest{
		Email:    "ivan@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.ParseToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCurrentUser(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "ivan@example.com", "password123", domain.RoleClient)
	svc := newTestService(repo)

	got, err := svc.CurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.CurrentUser(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
