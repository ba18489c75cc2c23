package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/infocravorasolutions-code/devang-lights-admin/internal/authz"
	"github.com/infocravorasolutions-code/devang-lights-admin/internal/middleware"
	"github.com/infocravorasolutions-code/devang-lights-admin/internal/models"
	"github.com/infocravorasolutions-code/devang-lights-admin/internal/store"
)

type AuthHandler struct {
	Store *store.Store
	// Demo credential roster. There is no identity provider; these three
	// accounts are the whole user base.
	roster []models.Credential
}

func NewAuthHandler(s *store.Store) *AuthHandler {
	return &AuthHandler{
		Store:  s,
		roster: demoRoster(),
	}
}

// demoRoster builds the fixed demo accounts, hashing the well-known demo
// passwords at startup so no plaintext sits in memory longer than needed.
func demoRoster() []models.Credential {
	demo := []struct {
		user     models.User
		password string
	}{
		{models.User{ID: 1, Name: "Admin User", Email: "admin@devanglights.com", Role: models.RoleAdmin}, "admin123"},
		{models.User{ID: 2, Name: "Manager One", Email: "manager@devanglights.com", Role: models.RoleManager}, "manager123"},
		{models.User{ID: 3, Name: "Staff Member", Email: "staff@devanglights.com", Role: models.RoleStaff}, "staff123"},
	}

	roster := make([]models.Credential, 0, len(demo))
	for _, d := range demo {
		hash, err := middleware.HashPassword(d.password)
		if err != nil {
			log.Fatal("Failed to hash demo password: ", err)
		}
		roster = append(roster, models.Credential{User: d.user, PasswordHash: hash})
	}
	return roster
}

// Login validates the demo credentials, opens the store session and issues a
// JWT. Email matching is case-insensitive.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please enter both email and password",
		})
	}

	var cred *models.Credential
	for i := range h.roster {
		if strings.EqualFold(h.roster[i].Email, req.Email) {
			cred = &h.roster[i]
			break
		}
	}

	if cred == nil || middleware.CheckPassword(req.Password, cred.PasswordHash) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	token, err := middleware.GenerateJWT(cred.ID, cred.Role)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error generating authentication token",
		})
	}

	h.Store.Login(cred.User)

	return c.JSON(models.LoginResponse{Token: token, User: cred.User})
}

// Logout closes the store session. Logging out twice is harmless.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.Store.Logout()
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// GetProfile returns the current user's profile
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID, _, err := middleware.GetUserFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	for _, cred := range h.roster {
		if cred.ID == userID {
			return c.JSON(cred.User)
		}
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "User not found",
	})
}

// GetPages returns the pages visible to the current role, in menu order. The
// frontend builds its sidebar from this single query.
func (h *AuthHandler) GetPages(c *fiber.Ctx) error {
	_, role, err := middleware.GetUserFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	pages := authz.PagesFor(role)
	if pages == nil {
		pages = []authz.Action{}
	}
	return c.JSON(fiber.Map{"pages": pages})
}
