package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newslens/domain"
)

func newEchoContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/content/analyze", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec)
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestResolveProviderPreference(t *testing.T) {
	tests := []struct {
		name         string
		bodyProvider string
		authHeader   func(t *testing.T) string
		expected     domain.ProviderPreference
	}{
		{
			name:         "body field wins over token claim",
			bodyProvider: "groq",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signedToken(t, jwt.MapClaims{"aiProvider": "gemini"})
			},
			expected: domain.ProviderGroq,
		},
		{
			name: "token claim used without body field",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signedToken(t, jwt.MapClaims{"aiProvider": "gemini"})
			},
			expected: domain.ProviderGemini,
		},
		{
			name:     "no body field and no token defaults to hybrid",
			expected: domain.ProviderHybrid,
		},
		{
			name: "token without the claim defaults to hybrid",
			authHeader: func(t *testing.T) string {
				return "Bearer " + signedToken(t, jwt.MapClaims{"userId": "user-1"})
			},
			expected: domain.ProviderHybrid,
		},
		{
			name: "malformed token defaults to hybrid",
			authHeader: func(t *testing.T) string {
				return "Bearer not-a-jwt"
			},
			expected: domain.ProviderHybrid,
		},
		{
			name: "non-bearer scheme is ignored",
			authHeader: func(t *testing.T) string {
				return "Basic dXNlcjpwYXNz"
			},
			expected: domain.ProviderHybrid,
		},
		{
			name:         "unknown body value defaults to hybrid",
			bodyProvider: "claude",
			expected:     domain.ProviderHybrid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := ""
			if tt.authHeader != nil {
				header = tt.authHeader(t)
			}
			c := newEchoContext(t, header)

			got := resolveProviderPreference(c, tt.bodyProvider)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBearerClaim_NonStringClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"aiProvider": 42})
	c := newEchoContext(t, "Bearer "+token)

	assert.Empty(t, bearerClaim(c, "aiProvider"))
}
