package http

import (
	"net/http"
	"strings"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	apiPrefix       = "/api/"
	tokenContextKey = "user"
	actorContextKey = "actor"
)

// Claims is the token payload issued by the identity service. The subject is
// the user id; Role is "customer" or "shop_owner".
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

func isAPIRequest(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, apiPrefix)
}

// Authenticate verifies HS256 bearer tokens on /api routes and stores the
// resulting kernel.Actor on the context.
func Authenticate(secret []byte) []echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		Skipper:       func(c echo.Context) bool { return !isAPIRequest(c) },
		SigningKey:    secret,
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		ContextKey:    tokenContextKey,
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid bearer token").SetInternal(err)
		},
	})

	return []echo.MiddlewareFunc{verify, resolveActor}
}

func resolveActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !isAPIRequest(c) {
			return next(c)
		}

		token, ok := c.Get(tokenContextKey).(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed jwt")
		}
		claims, ok := token.Claims.(*Claims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
		}

		actor, err := actorFromClaims(claims)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject").SetInternal(err)
		}

		c.Set(actorContextKey, actor)
		return next(c)
	}
}

func actorFromClaims(claims *Claims) (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, err
	}
	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(id, role)
}

// requireRole returns the authenticated actor when it has the given role.
func requireRole(c echo.Context, role kernel.Role) (kernel.Actor, error) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	if actor.Role != role {
		return kernel.Actor{}, echo.NewHTTPError(http.StatusForbidden, role.String()+" role required")
	}
	return actor, nil
}
