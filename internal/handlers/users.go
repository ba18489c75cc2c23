package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/infocravorasolutions-code/devang-lights-admin/internal/models"
)

// UserResponse defines the structure for user data sent to the client
type UserResponse struct {
	ID     int         `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	Status string      `json:"status"`
}

// GetUsers handles fetching the user roster for the admin-only user
// management page. The roster is the fixed demo set; no password material is
// exposed.
func GetUsers(h *AuthHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var response []UserResponse
		for _, cred := range h.roster {
			response = append(response, UserResponse{
				ID:     cred.ID,
				Name:   cred.Name,
				Email:  cred.Email,
				Role:   cred.Role,
				Status: "active",
			})
		}

		return c.JSON(response)
	}
}
