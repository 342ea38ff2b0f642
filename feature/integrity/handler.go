package integrity

import (
	"errors"

	"custom-hats/core/logger"
	"custom-hats/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/bundle", h.HandleBundleCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/anchor", h.HandleAnchorCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Bundle, Schema, Anchor).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	return c.JSON(h.service.RunAll(c.Context()))
}

// HandleStructureCheck checks and optionally fixes the bundle folder.
// @Summary Check Structure
// @Description Checks if the bundle folder exists in the storage bucket. Optionally creates it.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 501 {object} map[string]string "Storage not configured"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		return h.fail(c, l, "Structure check failed", err)
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleBundleCheck resolves the bundle.
// @Summary Check Bundle
// @Description Lists the items the bundle resolves to and the assets without a model/icon pair.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.BundleReport "Bundle Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/bundle [get]
func (h *Handler) HandleBundleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckBundle(c.Context())
	if err != nil {
		return h.fail(c, l, "Bundle check failed", err)
	}
	if len(report.Orphans) > 0 {
		l.Warn("Unpaired assets detected", zap.Strings("orphans", report.Orphans))
	}
	return c.JSON(report)
}

// HandleSchemaCheck checks the host options table.
// @Summary Check Host Schema
// @Description Checks if the host database has the options table with every required column.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 501 {object} map[string]string "Database not connected"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		return h.fail(c, l, "Schema check failed", err)
	}
	return c.JSON(report)
}

// HandleAnchorCheck validates the anchor index.
// @Summary Check Anchor
// @Description Checks that the anchor index is a valid splice position for the current catalog options.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.AnchorReport "Anchor Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/anchor [get]
func (h *Handler) HandleAnchorCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckAnchor(c.Context())
	if err != nil {
		return h.fail(c, l, "Anchor check failed", err)
	}
	if report.Exists && !report.Valid {
		l.Warn("Anchor out of range", zap.Int("anchor", report.Anchor), zap.Int("length", report.Length))
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	if errors.Is(err, ErrStorageDisabled) || errors.Is(err, ErrDatabaseDisabled) {
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
