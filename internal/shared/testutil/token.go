package testutil

import (
	"github.com/taalentio/talent-api/internal/shared/token"
)

// MockTokenManager is a mock implementation of token.Manager for testing
type MockTokenManager struct {
	GenerateAccessTokenFunc  func(talentID, uniqueCode, email string) (string, error)
	GenerateRefreshTokenFunc func(talentID, uniqueCode, email string) (string, error)
	ValidateTokenFunc        func(tokenString string) (*token.Claims, error)
}

func (m *MockTokenManager) GenerateAccessToken(talentID, uniqueCode, email string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(talentID, uniqueCode, email)
	}
	return "mock-access-token", nil
}

func (m *MockTokenManager) GenerateRefreshToken(talentID, uniqueCode, email string) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(talentID, uniqueCode, email)
	}
	return "mock-refresh-token", nil
}

func (m *MockTokenManager) ValidateToken(tokenString string) (*token.Claims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(tokenString)
	}
	return nil, token.ErrInvalidToken
}

// Ensure MockTokenManager implements token.Manager
var _ token.Manager = (*MockTokenManager)(nil)

// NewMockTokenManager creates a new mock token manager with default behavior
func NewMockTokenManager() *MockTokenManager {
	return &MockTokenManager{}
}

// AuthenticatedAs makes ValidateToken accept any token as an access token of talentID.
func (m *MockTokenManager) AuthenticatedAs(talentID, uniqueCode, email string) *MockTokenManager {
	m.ValidateTokenFunc = func(string) (*token.Claims, error) {
		return &token.Claims{
			TalentID:   talentID,
			UniqueCode: uniqueCode,
			Email:      email,
			TokenType:  token.ACCESS,
		}, nil
	}
	return m
}
