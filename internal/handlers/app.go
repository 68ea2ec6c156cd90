package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"

	"alfredoptarigan/smart-ats/internal/config"
	"alfredoptarigan/smart-ats/internal/middleware"
	"alfredoptarigan/smart-ats/internal/models"
	"alfredoptarigan/smart-ats/internal/services"
	"alfredoptarigan/smart-ats/internal/views"
)

// multipart overhead and job description text on top of the file limit
const formSlack = 1 << 20

type AppDeps struct {
	Config      *config.Config
	Submissions services.SubmissionService
	Ledger      services.Ledger
	// RequestLog receives access log lines. Nil means stdout.
	RequestLog io.Writer
}

func NewApp(deps AppDeps) *fiber.App {
	cfg := deps.Config

	engine := html.NewFileSystem(http.FS(views.FS), ".html")

	respond := Responder{Production: cfg.IsProduction()}
	page := PageRenderer{MaxFileSize: cfg.Storage.MaxFileSize}

	app := fiber.New(fiber.Config{
		AppName:               "Smart ATS",
		Views:                 engine,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          cfg.LLM.Timeout + 30*time.Second,
		BodyLimit:             int(cfg.Storage.MaxFileSize) + formSlack,
		DisableStartupMessage: cfg.IsProduction(),
		ErrorHandler:          customErrorHandler(page, respond),
	})

	out := deps.RequestLog
	if out == nil {
		out = os.Stdout
	}

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     out,
	}))
	app.Use(middleware.RequestContext())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	ledger := deps.Ledger
	if ledger == nil {
		ledger = services.NewNoopLedger()
	}

	pageHandler := NewPageHandler(page)
	analyzeHandler := NewAnalyzeHandler(deps.Submissions, page, respond)
	statsHandler := NewStatsHandler(ledger, respond)
	limit := middleware.RateLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window)

	app.Get("/", pageHandler.HandleIndex)
	app.Post("/analyze", limit, analyzeHandler.HandleSubmitForm)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "healthy",
			"provider": cfg.LLM.Provider,
			"ledger":   ledger.Enabled(),
			"time":     time.Now(),
		})
	})
	api.Post("/analyze", limit, analyzeHandler.HandleAnalyze)
	api.Get("/stats", statsHandler.HandleGetStats)

	return app
}

// customErrorHandler answers oversized bodies the way the matching route
// would: the page with a notice, or the JSON envelope under /api/.
func customErrorHandler(page PageRenderer, respond Responder) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if code == fiber.StatusRequestEntityTooLarge {
			sub := &models.Submission{
				State:     models.StateIdle,
				Notice:    services.NoticeFileTooLarge,
				ErrorKind: models.ErrorKindInvalidUpload,
			}
			if strings.HasPrefix(c.Path(), "/api/") {
				return respond.Error(c, ErrorResponseFormat{
					Code:    code,
					Message: services.NoticeFileTooLarge,
					Details: sub.ToResponse(),
				}, err)
			}
			c.Status(code)
			return page.Render(c, sub)
		}

		if code >= fiber.StatusInternalServerError {
			slog.Error("request failed", "path", c.Path(), "request_id", c.Locals("requestid"), "error", err)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
			"code":  code,
		})
	}
}
