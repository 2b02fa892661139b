package agent

import (
	"poinadmin/database"
	"poinadmin/helpers"
	"poinadmin/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RegisterAgentRequest struct {
	Username string `json:"username"`
	Currency string `json:"currency"`
	ParentID *uint  `json:"parent_id"`
}

func RegisterAgent(c *fiber.Ctx) error {
	var req RegisterAgentRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Username == "" {
		return helpers.JSONError(c, "USERNAME_REQUIRED")
	}

	if req.ParentID != nil {
		var parent models.Agent
		if err := database.DB.Where("is_active = true").First(&parent, *req.ParentID).Error; err != nil {
			return helpers.JSONError(c, "PARENT_AGENT_NOT_FOUND")
		}
	}

	agentCode := helpers.GenerateAgentCode()
	secretKey := uuid.New().String()

	var existing models.Agent
	if err := database.DB.Where("agent_code = ?", agentCode).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "AGENT_CODE_ALREADY_EXISTS")
	}

	agent := models.Agent{
		Username:  req.Username,
		AgentCode: agentCode,
		SecretKey: secretKey,
		ParentID:  req.ParentID,
		Currency:  req.Currency,
		IsActive:  true,
	}

	if err := database.DB.Create(&agent).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_REGISTER_AGENT")
	}

	return helpers.JSONSuccess(c, "Agent registered successfully", fiber.Map{
		"agent_id":   agent.ID,
		"username":   agent.Username,
		"agent_code": agent.AgentCode,
		"secret_key": agent.SecretKey,
		"parent_id":  agent.ParentID,
		"currency":   agent.Currency,
	})
}
