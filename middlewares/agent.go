package middlewares

import (
	"poinadmin/database"
	"poinadmin/models"

	"github.com/gofiber/fiber/v2"
)

// AgentAuth authenticates wallet routes by agent code and secret key
// headers and stashes the agent in Locals for the handlers.
func AgentAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		agentCode := c.Get("X-Agent-Code")
		secretKey := c.Get("X-Secret-Key")

		if agentCode == "" || secretKey == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": 0,
				"msg":    "MISSING_AGENT_CREDENTIALS",
			})
		}

		var agent models.Agent
		if err := database.DB.
			Where("agent_code = ? AND secret_key = ? AND is_active = true", agentCode, secretKey).
			First(&agent).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": 0,
				"msg":    "INVALID_AGENT_CREDENTIALS",
			})
		}

		c.Locals("agent", agent)
		return c.Next()
	}
}
