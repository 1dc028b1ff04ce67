// Package api exposes the tool registry over HTTP: discovery,
// invocation, resources, and prompts, behind the configured auth and
// rate-limit middleware.
package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/confersolutions/mcp-mortgage-server/internal/config"
	"github.com/confersolutions/mcp-mortgage-server/internal/models"
	"github.com/confersolutions/mcp-mortgage-server/internal/prompts"
	"github.com/confersolutions/mcp-mortgage-server/internal/resources"
	"github.com/confersolutions/mcp-mortgage-server/internal/tools"
)

const version = "2.0.0"

// CallRequest is the body of POST /call.
type CallRequest struct {
	Tool  string         `json:"tool"`
	Input map[string]any `json:"input"`
}

// CallResponse is the JSON envelope for every tool invocation.
type CallResponse struct {
	Success bool               `json:"success"`
	Output  any                `json:"output,omitempty"`
	Error   *models.CodedError `json:"error,omitempty"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	registry *tools.Registry
	logger   *slog.Logger
}

// NewApp assembles the fiber application: panic recovery, request
// IDs, CORS, rate limiting, optional API key auth, and all routes.
// /health stays open so load balancers can probe without credentials.
func NewApp(cfg config.Config, registry *tools.Registry, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	skipHealth := func(c *fiber.Ctx) bool { return c.Path() == "/health" }

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowedOrigins}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitPerMin,
		Expiration: time.Minute,
		Next:       skipHealth,
	}))
	if cfg.APIKey != "" {
		app.Use(keyauth.New(keyauth.Config{
			KeyLookup: "header:X-API-Key",
			Validator: func(c *fiber.Ctx, key string) (bool, error) {
				if key == cfg.APIKey {
					return true, nil
				}
				return false, keyauth.ErrMissingOrMalformedAPIKey
			},
			Next: skipHealth,
		}))
	}

	h := &Handler{registry: registry, logger: logger}
	h.register(app)
	return app
}

func (h *Handler) register(app *fiber.App) {
	app.Get("/health", h.handleHealth)
	app.Get("/tools", h.handleTools)
	app.Post("/call", h.handleCall)
	app.Get("/resources", h.handleResources)
	app.Get("/resources/:name", h.handleReadResource)
	app.Get("/prompts", h.handlePrompts)
	app.Get("/prompts/:name", h.handleGetPrompt)
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": version,
	})
}

func (h *Handler) handleTools(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"tools": h.registry.Definitions()})
}

func (h *Handler) handleCall(c *fiber.Ctx) error {
	var req CallRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, models.NewSchemaError("", "invalid request body: %v", err))
	}
	if req.Tool == "" {
		return writeError(c, models.NewSchemaError("tool", "is required"))
	}

	start := time.Now()
	out, err := h.registry.Call(c.UserContext(), req.Tool, req.Input)
	if err != nil {
		// Log kind and tool only; error messages never carry document
		// content but field values might, so keep it coarse.
		h.logger.Warn("tool call failed",
			"tool", req.Tool,
			"kind", string(errorKind(err)),
			"duration", time.Since(start))
		return writeError(c, err)
	}

	h.logger.Info("tool call succeeded", "tool", req.Tool, "duration", time.Since(start))
	return c.JSON(CallResponse{Success: true, Output: out})
}

func (h *Handler) handleResources(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"resources": resources.List()})
}

func (h *Handler) handleReadResource(c *fiber.Ctx) error {
	content, err := resources.Read(c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(content)
}

func (h *Handler) handlePrompts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"prompts": prompts.List()})
}

func (h *Handler) handleGetPrompt(c *fiber.Ctx) error {
	msgs, err := prompts.Get(c.Params("name"), map[string]string{
		"analysis_type": c.Query("analysis_type"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"messages": msgs})
}

func errorKind(err error) models.Kind {
	var ce *models.CodedError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return "INTERNAL_ERROR"
}

// writeError maps a coded error to its HTTP status and the standard
// failure envelope. Unclassified errors become opaque 500s.
func writeError(c *fiber.Ctx, err error) error {
	var ce *models.CodedError
	if !errors.As(err, &ce) {
		ce = &models.CodedError{Kind: "INTERNAL_ERROR", Message: "internal server error"}
	}
	return c.Status(statusFor(ce.Kind)).JSON(CallResponse{Success: false, Error: ce})
}

func statusFor(kind models.Kind) int {
	switch kind {
	case models.SchemaViolation, models.SecurityViolation, models.FormatViolation:
		return fiber.StatusBadRequest
	case models.UnknownOperation:
		return fiber.StatusNotFound
	case models.TransportFailure:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
