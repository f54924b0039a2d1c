package helper

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetUserIDFromToken reads the user id the auth middleware stored in Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uint, error) {
	v := c.Locals("user_id")
	idStr, ok := v.(string)
	if !ok || idStr == "" {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user ID")
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user ID")
	}
	return uint(id), nil
}
