package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gstdesk/internal/config"
	"gstdesk/internal/domain"
	"gstdesk/internal/service"
	"gstdesk/mocks"
)

var testJWTConfig = config.JWTConfig{
	Secret:             "test-secret-key-for-unit-tests",
	AccessTokenExpiry:  15 * time.Minute,
	RefreshTokenExpiry: 24 * time.Hour,
	Issuer:             "gstdesk",
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func activeTenantAndUser(t *testing.T, password string) (*domain.Tenant, *domain.User) {
	tenant := &domain.Tenant{
		ID:       uuid.New(),
		Name:     "Acme Fasteners",
		Slug:     "acme",
		State:    "Karnataka",
		IsActive: true,
	}
	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		Email:        "ops@acme.example",
		PasswordHash: hashPassword(t, password),
		FullName:     "Ops User",
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	return tenant, user
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	tenant, user := activeTenantAndUser(t, "correct-horse-battery")
	userRepo := new(mocks.MockUserRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig)

	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenant.ID, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "acme",
		Email:      user.Email,
		Password:   "correct-horse-battery",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, claims.TenantID)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	tenant, user := activeTenantAndUser(t, "correct-horse-battery")
	userRepo := new(mocks.MockUserRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig)

	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenant.ID, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "acme",
		Email:      user.Email,
		Password:   "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthServiceLoginUnknownTenantMapsToInvalidCredentials(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig)

	tenantRepo.On("GetBySlug", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "ghost",
		Email:      "x@y.example",
		Password:   "irrelevant-pass",
	})
	// Tenant existence must not be observable through the error.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthServiceLoginInactive(t *testing.T) {
	t.Run("tenant", func(t *testing.T) {
		tenant, _ := activeTenantAndUser(t, "pw-pw-pw-pw")
		tenant.IsActive = false
		userRepo := new(mocks.MockUserRepo)
		tenantRepo := new(mocks.MockTenantRepo)
		svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig)

		tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)

		_, err := svc.Login(context.Background(), service.LoginInput{
			TenantSlug: "acme", Email: "ops@acme.example", Password: "pw-pw-pw-pw",
		})
		assert.ErrorIs(t, err, domain.ErrTenantInactive)
	})

	t.Run("user", func(t *testing.T) {
		tenant, user := activeTenantAndUser(t, "pw-pw-pw-pw")
		user.IsActive = false
		userRepo := new(mocks.MockUserRepo)
		tenantRepo := new(mocks.MockTenantRepo)
		svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig)

		tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)
		userRepo.On("GetByEmail", mock.Anything, tenant.ID, user.Email).Return(user, nil)

		_, err := svc.Login(context.Background(), service.LoginInput{
			TenantSlug: "acme", Email: user.Email, Password: "pw-pw-pw-pw",
		})
		assert.ErrorIs(t, err, domain.ErrUserInactive)
	})
}

func TestAuthServiceRefreshRoundTrip(t *testing.T) {
	tenant, user := activeTenantAndUser(t, "correct-horse-battery")
	userRepo := new(mocks.MockUserRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig)

	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenant.ID, user.Email).Return(user, nil)
	userRepo.On("GetByID", mock.Anything, tenant.ID, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "acme", Email: user.Email, Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	fresh, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, fresh.AccessToken)

	claims, err := svc.ValidateToken(fresh.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestAuthServiceRejectsWrongAudience(t *testing.T) {
	tenant, user := activeTenantAndUser(t, "correct-horse-battery")
	userRepo := new(mocks.MockUserRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, testJWTConfig)

	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenant.ID, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "acme", Email: user.Email, Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	// A refresh token must not pass access validation, and vice versa.
	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)

	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthServiceRejectsGarbageToken(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), new(mocks.MockTenantRepo), testJWTConfig)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
