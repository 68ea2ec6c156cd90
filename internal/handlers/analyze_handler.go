package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/smart-ats/internal/models"
	"alfredoptarigan/smart-ats/internal/services"
)

type AnalyzeHandler struct {
	submissions services.SubmissionService
	page        PageRenderer
	respond     Responder
}

func NewAnalyzeHandler(submissions services.SubmissionService, page PageRenderer, respond Responder) *AnalyzeHandler {
	return &AnalyzeHandler{
		submissions: submissions,
		page:        page,
		respond:     respond,
	}
}

// HandleSubmitForm handles POST /analyze and renders the page in the
// resulting state.
func (h *AnalyzeHandler) HandleSubmitForm(c *fiber.Ctx) error {
	sub := h.submissions.Submit(c.UserContext(), readInput(c))
	return h.page.Render(c, sub)
}

// HandleAnalyze handles POST /api/v1/analyze.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	sub := h.submissions.Submit(c.UserContext(), readInput(c))
	body := sub.ToResponse()

	if sub.State == models.StateParsed {
		return h.respond.Success(c, SuccessResponseFormat{
			Code:    fiber.StatusOK,
			Message: "Analysis completed",
			Data:    body,
		})
	}

	return h.respond.Error(c, ErrorResponseFormat{
		Code:    statusFor(sub.ErrorKind),
		Message: sub.Notice,
		Details: body,
	}, errorFor(sub.ErrorKind))
}

func readInput(c *fiber.Ctx) services.SubmissionInput {
	in := services.SubmissionInput{
		ClientKey:      c.IP(),
		JobDescription: c.FormValue("job_description"),
	}
	if file, err := c.FormFile("resume"); err == nil && file.Filename != "" {
		in.Resume = file
	}
	return in
}

func statusFor(kind models.ErrorKind) int {
	switch kind {
	case models.ErrorKindMissingResume, models.ErrorKindMissingJD, models.ErrorKindInvalidUpload:
		return fiber.StatusBadRequest
	case models.ErrorKindBusy:
		return fiber.StatusConflict
	case models.ErrorKindMalformedJSON, models.ErrorKindUnexpectedShape:
		return fiber.StatusUnprocessableEntity
	case models.ErrorKindExtraction, models.ErrorKindCompletion:
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

func errorFor(kind models.ErrorKind) error {
	switch kind {
	case models.ErrorKindMissingResume:
		return services.ErrResumeMissing
	case models.ErrorKindMissingJD:
		return services.ErrJobDescriptionMissing
	case models.ErrorKindBusy:
		return services.ErrSubmissionInFlight
	case models.ErrorKindMalformedJSON:
		return services.ErrMalformedJSON
	case models.ErrorKindUnexpectedShape:
		return services.ErrUnexpectedShape
	case models.ErrorKindNone:
		return nil
	}
	return errors.New(string(kind))
}
