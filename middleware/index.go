package middleware

import (
	"errors"
	"strings"

	"ticket_server/constants"
	"ticket_server/helper"
	"ticket_server/utils"

	"github.com/gofiber/fiber/v2"
)

// Protected authenticates the request and loads the user record into
// c.Locals("user").
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
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
		}

		user, err := helper.UserFromToken(jwtToken)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, err)
		}
		if user.Status != constants.USER_ACTIVE {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.STATUS_USER_NOT_ACTIVE, nil)
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// RequireRoles rejects authenticated users outside the allowed role set.
// Admins pass everywhere.
func RequireRoles(roles ...int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := utils.CurrentUser(c)
		if user == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", nil)
		}
		if user.Role == constants.ROLE_ADMIN {
			return c.Next()
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCESS_FORBIDDEN, nil)
	}
}
