package rest

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"newslens/domain"
)

// resolveProviderPreference picks the provider for an analysis request: an
// explicit body field wins, then the aiProvider claim of a bearer token, then
// hybrid. The token is only decoded, not verified, because the route works
// without authentication and the preference is not a privileged input.
func resolveProviderPreference(c echo.Context, bodyProvider string) domain.ProviderPreference {
	if bodyProvider != "" {
		return domain.ParseProviderPreference(bodyProvider)
	}

	if claim := bearerClaim(c, "aiProvider"); claim != "" {
		return domain.ParseProviderPreference(claim)
	}

	return domain.ProviderHybrid
}

func bearerClaim(c echo.Context, name string) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(parts[1], claims); err != nil {
		return ""
	}

	value, _ := claims[name].(string)
	return value
}
