package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/inkwell/inkwell-api/internal/domain"
	"github.com/inkwell/inkwell-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing. The default
// behavior issues "token-for-<uuid>" strings and verifies them by lookup
// in Known.
type MockTokenService struct {
	SignFn   func(ctx context.Context, user *domain.User) (string, error)
	VerifyFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Known maps token strings to claims for the default Verify.
	Known map[string]*auth.Claims
}

// NewMockTokenService creates a mock token service with initialized defaults.
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{Known: make(map[string]*auth.Claims)}
}

// TokenFor registers and returns a valid token for user.
func (m *MockTokenService) TokenFor(user *domain.User) string {
	token := "token-for-" + user.ID.String()
	now := time.Now().UTC()
	m.Known[token] = &auth.Claims{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		IssuedAt:    now,
		ExpiresAt:   now.Add(time.Hour),
	}
	return token
}

// Sign implements the TokenService interface.
func (m *MockTokenService) Sign(ctx context.Context, user *domain.User) (string, error) {
	if m.SignFn != nil {
		return m.SignFn(ctx, user)
	}
	return m.TokenFor(user), nil
}

// Verify implements the TokenService interface.
func (m *MockTokenService) Verify(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, tokenString)
	}

	if claims, ok := m.Known[tokenString]; ok {
		return claims, nil
	}
	return nil, auth.ErrInvalidToken
}

// MockPasswordHasher implements auth.PasswordHasher for testing. The
// default behavior stores "hashed:<password>" so tests can assert the
// plaintext never leaks into persistence.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error
}

// Hash implements the PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// Compare implements the PasswordHasher interface.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}
