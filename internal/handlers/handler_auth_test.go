package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	handlerSuite
	user *domain.User
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.handlerSuite.SetupTest()
	s.user = &domain.User{
		ID:       s.testUserID,
		Username: "cashier",
		FullName: "Front Desk",
		Role:     domain.RoleUser,
		IsActive: true,
	}
}

func (s *AuthHandlerTestSuite) TestLogin_IssuesAndStoresTokens() {
	accessExpiry := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	refreshExpiry := accessExpiry.Add(24 * time.Hour)

	s.userSvc.On("AuthenticateUser", mock.Anything, "cashier", "secret1").Return(s.user, nil).Once()
	s.tokenSvc.On("GenerateAccessToken", mock.Anything, s.user).Return("access-token", accessExpiry, nil).Once()
	s.tokenSvc.On("GenerateRefreshToken", mock.Anything, s.user).Return("refresh-token", refreshExpiry, nil).Once()
	s.userSvc.On("UpdateRefreshToken", mock.Anything, s.testUserID, utils.HashRefreshToken("refresh-token"), refreshExpiry).
		Return(nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "cashier", Password: "secret1"})

	s.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("access-token", resp.Token)
	s.Equal("refresh-token", resp.RefreshToken)
	s.True(resp.ExpiresAt.Equal(accessExpiry))
	s.Equal("cashier", resp.User.Username)
	s.NotContains(w.Body.String(), "passwordHash")
}

func (s *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	s.userSvc.On("AuthenticateUser", mock.Anything, "cashier", "wrong").
		Return(nil, apperrors.ErrInvalidCredentials).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "cashier", Password: "wrong"})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Contains(w.Body.String(), "Invalid username or password")
}

func (s *AuthHandlerTestSuite) TestLogin_MissingFields() {
	w := s.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "cashier"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AuthHandlerTestSuite) TestRefresh_RotatesToken() {
	expiry := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	s.tokenSvc.On("ValidateAndParseRefreshToken", mock.Anything, s.testUserID, "old-refresh").Return(s.user, nil).Once()
	s.tokenSvc.On("GenerateAccessToken", mock.Anything, s.user).Return("new-access", expiry, nil).Once()
	s.tokenSvc.On("GenerateRefreshToken", mock.Anything, s.user).Return("new-refresh", expiry, nil).Once()
	s.userSvc.On("UpdateRefreshToken", mock.Anything, s.testUserID, utils.HashRefreshToken("new-refresh"), expiry).
		Return(nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/refresh", dto.RefreshTokenRequest{UserID: s.testUserID, RefreshToken: "old-refresh"})

	s.Equal(http.StatusOK, w.Code)
	var resp dto.RefreshTokenResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("new-access", resp.Token)
	s.Equal("new-refresh", resp.RefreshToken)
}

func (s *AuthHandlerTestSuite) TestRefresh_Expired() {
	s.tokenSvc.On("ValidateAndParseRefreshToken", mock.Anything, s.testUserID, "stale").
		Return(nil, fmt.Errorf("refresh token: %w", apperrors.ErrRefreshTokenExpired)).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/refresh", dto.RefreshTokenRequest{UserID: s.testUserID, RefreshToken: "stale"})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthHandlerTestSuite) TestLogout_ClearsRefreshToken() {
	s.userSvc.On("ClearRefreshToken", mock.Anything, s.testUserID).Return(nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/logout", nil)
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *AuthHandlerTestSuite) TestChangePassword_WrongOldPassword() {
	req := dto.ChangePasswordRequest{OldPassword: "nope", NewPassword: "brand-new"}
	s.userSvc.On("ChangePassword", mock.Anything, s.testUserID, req).Return(apperrors.ErrInvalidCredentials).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/change-password", req)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthHandlerTestSuite) TestUserAdminRoutes() {
	s.Run("non-admin is forbidden", func() {
		s.userSvc.On("GetUserByID", mock.Anything, s.testUserID).Return(s.user, nil).Once()

		w := s.do(http.MethodGet, "/api/v1/users", nil)
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("admin lists users", func() {
		admin := *s.user
		admin.Role = domain.RoleAdmin
		s.userSvc.On("GetUserByID", mock.Anything, s.testUserID).Return(&admin, nil).Once()
		s.userSvc.On("ListUsers", mock.Anything).Return([]domain.User{admin}, nil).Once()

		w := s.do(http.MethodGet, "/api/v1/users", nil)
		s.Equal(http.StatusOK, w.Code)
		var resp dto.ListUsersResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Len(resp.Users, 1)
	})

	s.Run("me needs no admin role", func() {
		s.userSvc.On("GetUserByID", mock.Anything, s.testUserID).Return(s.user, nil).Once()

		w := s.do(http.MethodGet, "/api/v1/users/me", nil)
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"username":"cashier"`)
	})
}
