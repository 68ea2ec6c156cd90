package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/smart-ats/internal/models"
)

const pageTitle = "Smart ATS"

// PageRenderer renders the single page for a submission state.
type PageRenderer struct {
	MaxFileSize int64
}

func (p PageRenderer) Render(c *fiber.Ctx, sub *models.Submission) error {
	return c.Render("index", fiber.Map{
		"Title":         pageTitle,
		"MaxFileSizeMB": p.MaxFileSize / (1 << 20),
		"Submission":    sub,
	})
}

type PageHandler struct {
	page PageRenderer
}

func NewPageHandler(page PageRenderer) *PageHandler {
	return &PageHandler{page: page}
}

// HandleIndex handles GET / and renders the page in its idle state.
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	return h.page.Render(c, &models.Submission{State: models.StateIdle})
}
