package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/smart-ats/internal/services"
)

type StatsHandler struct {
	ledger  services.Ledger
	respond Responder
}

func NewStatsHandler(ledger services.Ledger, respond Responder) *StatsHandler {
	return &StatsHandler{ledger: ledger, respond: respond}
}

// HandleGetStats handles GET /api/v1/stats.
func (h *StatsHandler) HandleGetStats(c *fiber.Ctx) error {
	if !h.ledger.Enabled() {
		return h.respond.Error(c, ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Analysis ledger is not enabled",
		}, services.ErrLedgerDisabled)
	}

	stats, err := h.ledger.Stats()
	if err != nil {
		return h.respond.Error(c, ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: "Failed to load analysis stats",
		}, err)
	}

	return h.respond.Success(c, SuccessResponseFormat{
		Message: "Analysis stats",
		Data:    stats,
	})
}
