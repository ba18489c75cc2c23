package handlers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/infocravorasolutions-code/devang-lights-admin/internal/models"
	"github.com/infocravorasolutions-code/devang-lights-admin/internal/store"
)

// The media library is mocked: uploads register name/type/size metadata in
// the store and the file bytes are discarded.

// GetMediaItems handles fetching the library, with optional ?search= and
// ?type= (image|pdf) filters.
func GetMediaItems(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		search := strings.ToLower(c.Query("search"))
		fileType := c.Query("type", "all")

		var response []models.MediaItem
		for _, item := range s.MediaItems() {
			if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
				continue
			}
			if fileType != "all" && item.Type != fileType {
				continue
			}
			response = append(response, item)
		}

		if response == nil {
			response = []models.MediaItem{}
		}
		return c.JSON(response)
	}
}

// UploadMedia handles a multipart upload of one or more files under the
// "files" field.
func UploadMedia(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form data"})
		}

		files := form.File["files"]
		if len(files) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No files to upload"})
		}

		var created []models.MediaItem
		for _, file := range files {
			fileType := "image"
			if strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
				fileType = "pdf"
			}

			item := s.AddMediaItem(models.MediaItem{
				Name:     file.Filename,
				Type:     fileType,
				Size:     fmt.Sprintf("%.1f MB", float64(file.Size)/(1024*1024)),
				Uploaded: time.Now().Format("2006-01-02"),
			})
			created = append(created, item)
		}

		return c.Status(fiber.StatusCreated).JSON(created)
	}
}
