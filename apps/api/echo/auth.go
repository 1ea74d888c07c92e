package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/mipango/core"
	"github.com/trezcool/mipango/core/user"
)

// RoleAdmin is the configured administrator, not a stored account.
const RoleAdmin = "admin"

type Claims struct {
	jwt.StandardClaims
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"is_admin"`
}

// GenerateToken signs a JWT for an authenticated user.
func GenerateToken(conf *core.Config, usr user.User) (string, error) {
	now := time.Now()
	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   usr.ID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
		},
		Name:  usr.Name,
		Email: usr.Email,
		Role:  usr.Role,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(conf.SecretKey))
	return token, errors.Wrap(err, "signing token")
}

// GenerateAdminToken signs a JWT for the configured administrator.
func GenerateAdminToken(conf *core.Config) (string, error) {
	now := time.Now()
	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   RoleAdmin,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
		},
		Name:    "Administrator",
		Email:   conf.Admin.Email,
		Role:    RoleAdmin,
		IsAdmin: true,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(conf.SecretKey))
	return token, errors.Wrap(err, "signing admin token")
}

func jwtMiddleware(conf *core.Config) echo.MiddlewareFunc {
	return middleware.JWTWithConfig(middleware.JWTConfig{
		Claims:     &Claims{},
		SigningKey: []byte(conf.SecretKey),
	})
}

func getContextClaims(c echo.Context) *Claims {
	if token, ok := c.Get("user").(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return claims
		}
	}
	return &Claims{}
}

func adminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !getContextClaims(c).IsAdmin {
				return echo.ErrForbidden
			}
			return next(c)
		}
	}
}

func deanMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := getContextClaims(c)
			if claims.Role != user.RoleDean && !claims.IsAdmin {
				return echo.ErrForbidden
			}
			return next(c)
		}
	}
}
