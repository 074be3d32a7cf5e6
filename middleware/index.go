package middleware

import (
	"errors"
	"strings"

	"laundry_os/config"
	"laundry_os/constants"
	"laundry_os/helper"
	"laundry_os/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			// check header Authorization: Bearer xxx
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, 401, "Missing token", errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(config.Config("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// RequireRole is the single place role gating happens. Handlers never compare
// role strings themselves; they read the resolved claim from Locals instead.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *fiber.Ctx) error {
		claim, account := helper.GetAccountFromToken(c)
		if account == nil {
			return utils.ErrorResponse(c, 401, constants.ACCOUNT_NOT_ACTIVE, errors.New("account missing or deactivated"))
		}
		if !allowed[claim.Role] {
			return utils.ErrorResponse(c, 403, constants.NOT_STAFF, errors.New("role not permitted"))
		}

		c.Locals("claim", claim)
		c.Locals("account", account)
		return c.Next()
	}
}
