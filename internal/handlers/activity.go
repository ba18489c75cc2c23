package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/infocravorasolutions-code/devang-lights-admin/internal/models"
	"github.com/infocravorasolutions-code/devang-lights-admin/internal/store"
)

// GetActivityLog handles fetching the audit trail, newest first, with an
// optional ?action= filter.
func GetActivityLog(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		action := c.Query("action")

		var response []models.ActivityEntry
		for _, entry := range s.ActivityLog() {
			if action != "" && entry.Action != action {
				continue
			}
			response = append(response, entry)
		}

		if response == nil {
			response = []models.ActivityEntry{}
		}
		return c.JSON(response)
	}
}
