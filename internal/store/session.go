package store

import (
	"encoding/json"
	"log"
	"os"

	"github.com/infocravorasolutions-code/devang-lights-admin/internal/models"
)

// The session cache is a single JSON file holding the logged-in user, the
// server-side equivalent of the browser keeping one "user" key. It is written
// on login, removed on logout and read once at startup.

func loadSession(path string) (models.User, bool) {
	if path == "" {
		return models.User{}, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Missing file just means nobody was logged in.
		return models.User{}, false
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		log.Printf("Warning: ignoring corrupt session cache %s: %v", path, err)
		return models.User{}, false
	}
	return u, true
}

func saveSession(path string, u models.User) {
	if path == "" {
		return
	}

	data, err := json.Marshal(u)
	if err != nil {
		log.Printf("Error serializing session user: %v", err)
		return
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		log.Printf("Error writing session cache %s: %v", path, err)
	}
}

func clearSession(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Error removing session cache %s: %v", path, err)
	}
}
