//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"field-booking/internal/domain/user"
	"field-booking/internal/handler/dto/request"
	resdto "field-booking/internal/handler/dto/response"
	"field-booking/tests/common/authtest"
	"field-booking/tests/common/dbtest"
	"field-booking/tests/common/httptest"
	"field-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com", string(user.RoleUser))
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		body           request.RegisterRequest
		expectedStatus int
	}{
		{
			name:           "new account gets the user role",
			body:           request.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "Secret1x"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "email already registered, different case",
			body:           request.RegisterRequest{Name: "Copy", Email: "TEST@example.com", Password: "Secret1x"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "password without digit",
			body:           request.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "Secretxx"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "password too short",
			body:           request.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "S1x"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, tt.body, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusCreated {
				var res resdto.UserResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.Equal(t, "user", res.Role)
				require.Equal(t, "jane@example.com", res.Email)

				authtest.LoginUser(t, s.Router, "jane@example.com", "Secret1x")
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{"valid credentials", "test@example.com", dbtest.TestPassword, http.StatusOK},
		{"email is case insensitive", "Test@Example.com", dbtest.TestPassword, http.StatusOK},
		{"unknown user", "nonexistent@example.com", dbtest.TestPassword, http.StatusUnauthorized},
		{"wrong password", "test@example.com", "Wrong1pass", http.StatusUnauthorized},
		{"empty email", "", dbtest.TestPassword, http.StatusBadRequest},
		{"empty password", "test@example.com", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.Token)
				require.Equal(t, "test@example.com", loginRes.User.Email)

				// the bearer token and the cookie are interchangeable
				me := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, loginRes.Token)
				require.Equal(t, http.StatusOK, me.Code)
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("clears the cookie", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "test@example.com", dbtest.TestPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		c := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, c)
		require.Empty(t, c.Value)
	})

	s.Run("requires a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupToken     func() string
		expectedStatus int
		expectedRole   string
	}{
		{
			name: "admin",
			setupToken: func() string {
				return authtest.LoginUser(s.T(), s.Router, "admin@example.com", dbtest.TestPassword)
			},
			expectedStatus: http.StatusOK,
			expectedRole:   "admin",
		},
		{
			name: "manager",
			setupToken: func() string {
				_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "manager@example.com", string(user.RoleManager))
				return token
			},
			expectedStatus: http.StatusOK,
			expectedRole:   "manager",
		},
		{
			name:           "invalid token",
			setupToken:     func() string { return "invalid-token" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no token",
			setupToken:     func() string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, tt.setupToken())
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var res resdto.UserResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.Equal(t, tt.expectedRole, res.Role)
				require.NotContains(t, w.Body.String(), "password")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleUser))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("token for a deleted user", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "gone@example.com", string(user.RoleUser))
		token := s.jwtHelper.GenerateToken(t, userID, user.RoleUser)
		_, err := s.DB.Exec(t.Context(), "DELETE FROM users WHERE id = $1", userID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *authSuite) TestRoleGuards() {
	s.Run("user routes are admin only", func() {
		t := s.T()

		userToken := authtest.LoginUser(t, s.Router, "test@example.com", dbtest.TestPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/users", nil, userToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", dbtest.TestPassword)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/users", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		var users []resdto.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &users))
		require.Len(t, users, 2)
	})

	s.Run("field writes are admin only", func() {
		t := s.T()

		_, managerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleManager))
		body := map[string]any{"name": "Side Pitch", "location": "14 Stadium Road", "sportType": "football", "pricePerHour": 40}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/fields", body, managerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
