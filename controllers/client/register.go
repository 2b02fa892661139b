package client

import (
	"strings"

	"poinadmin/database"
	"poinadmin/helpers"
	"poinadmin/models"

	"github.com/gofiber/fiber/v2"
)

type RegisterClientRequest struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Currency string `json:"currency"`
}

var allowedCurrencies = map[string]bool{
	"USD": true,
	"IDR": true,
	"MYR": true,
	"THB": true,
	"VND": true,
	"KHR": true,
}

func RegisterClient(c *fiber.Ctx) error {
	var req RegisterClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if strings.TrimSpace(req.Name) == "" {
		return helpers.JSONError(c, "NAME_REQUIRED")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if !allowedCurrencies[currency] {
		return helpers.JSONError(c, "UNSUPPORTED_CURRENCY")
	}

	clientCode := helpers.GenerateClientCode()

	var existing models.Client
	if err := database.DB.Where("client_code = ?", clientCode).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "CLIENT_CODE_ALREADY_EXISTS")
	}

	client := models.Client{
		ClientCode: clientCode,
		Name:       req.Name,
		Country:    strings.ToUpper(strings.TrimSpace(req.Country)),
		Currency:   currency,
		Status:     models.ClientStatusActive,
	}

	if err := database.DB.Create(&client).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_REGISTER_CLIENT")
	}

	return helpers.JSONSuccess(c, "Client registered successfully", fiber.Map{
		"client_id":   client.ID,
		"client_code": client.ClientCode,
		"name":        client.Name,
		"currency":    client.Currency,
		"status":      client.Status,
	})
}
