package hats

import (
	"errors"

	"custom-hats/core/host"
	"custom-hats/core/logger"
	"custom-hats/feature/compat"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the hats feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the hats routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/hats")
	group.Get("/", h.HandleStatus)
	group.Get("/options", h.HandleGetOptions)
	group.Put("/options", h.HandlePutOptions)
	group.Get("/bridge", h.HandleGetBridge)
	group.Put("/bridge", h.HandlePutBridge)
	group.Post("/instances", h.HandleRegisterInstance)
	group.Get("/instances/:id", h.HandleGetInstance)

	app.Post("/events/:name", h.HandleBroadcast)
}

// HandleStatus reports the merge state.
// @Summary Merge Status
// @Description Returns the loaded catalog, whether the catalog options were merged, the bridge state and retry loop counters.
// @Tags hats
// @Produce json
// @Success 200 {object} hats.Status
// @Router /hats [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandleGetOptions lists the host catalog options.
// @Summary List Catalog Options
// @Tags hats
// @Produce json
// @Success 200 {object} hats.OptionsView
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /hats/options [get]
func (h *Handler) HandleGetOptions(c *fiber.Ctx) error {
	view, err := h.service.Options(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to read options", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(view)
}

// HandlePutOptions replaces the host catalog options.
// @Summary Replace Catalog Options
// @Description Initializes the host option collection, as the host does once its catalog is ready.
// @Tags hats
// @Accept json
// @Produce json
// @Param options body []host.Option true "Options"
// @Success 204
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /hats/options [put]
func (h *Handler) HandlePutOptions(c *fiber.Ctx) error {
	var opts []host.Option
	if err := c.BodyParser(&opts); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.SeedOptions(c.Context(), opts); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to write options", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetBridge shows the bridge registry category.
// @Summary Bridge Registry
// @Description Returns the bridge state and the entries of the bridge category, including items written by the merge.
// @Tags hats
// @Produce json
// @Success 200 {object} hats.BridgeView
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 501 {object} map[string]string "Bridge not configured"
// @Router /hats/bridge [get]
func (h *Handler) HandleGetBridge(c *fiber.Ctx) error {
	view, err := h.service.Bridge(c.Context())
	if err != nil {
		if errors.Is(err, ErrBridgeDisabled) {
			return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": err.Error()})
		}
		logger.WithRayID(h.service.logger, c).Error("Failed to read bridge registry", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(view)
}

// HandlePutBridge replaces the bridge registry.
// @Summary Replace Bridge Registry
// @Description Initializes the bridge registry categories, as the bridge extension does when it starts.
// @Tags hats
// @Accept json
// @Produce json
// @Param categories body []compat.Category true "Categories"
// @Success 204
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 501 {object} map[string]string "Bridge not configured"
// @Router /hats/bridge [put]
func (h *Handler) HandlePutBridge(c *fiber.Ctx) error {
	var categories []compat.Category
	if err := c.BodyParser(&categories); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.SeedBridge(c.Context(), categories); err != nil {
		if errors.Is(err, ErrBridgeDisabled) {
			return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": err.Error()})
		}
		logger.WithRayID(h.service.logger, c).Error("Failed to write bridge registry", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleRegisterInstance announces a character instance.
// @Summary Announce Instance
// @Description Registers a character instance and broadcasts OnAddHatsForCharacter to every loaded extension.
// @Tags hats
// @Accept json
// @Produce json
// @Param instance body hats.InstanceRequest true "Instance"
// @Success 200 {object} hats.InstanceView
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /hats/instances [post]
func (h *Handler) HandleRegisterInstance(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req InstanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := h.service.RegisterInstance(req)
	if err != nil {
		if errors.Is(err, ErrInvalidInstance) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Instance announcement failed", zap.String("instance", req.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(view)
}

// HandleGetInstance returns an instance's attachments.
// @Summary Get Instance
// @Tags hats
// @Produce json
// @Param id path string true "Instance ID"
// @Success 200 {object} hats.InstanceView
// @Failure 404 {object} map[string]string "Not Found"
// @Router /hats/instances/{id} [get]
func (h *Handler) HandleGetInstance(c *fiber.Ctx) error {
	view, err := h.service.Instance(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(view)
}

type broadcastRequest struct {
	Instance string `json:"instance"`
}

// HandleBroadcast broadcasts an event.
// @Summary Broadcast Event
// @Description Invokes the matching handler of every loaded extension. With an instance id the instance is passed as the only argument.
// @Tags events
// @Accept json
// @Produce json
// @Param name path string true "Event name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]interface{}
// @Router /events/{name} [post]
func (h *Handler) HandleBroadcast(c *fiber.Ctx) error {
	var req broadcastRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	event := c.Params("name")
	invoked, err := h.service.Broadcast(event, req.Instance)
	if err != nil {
		if errors.Is(err, ErrInstanceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		logger.WithRayID(h.service.logger, c).Error("Broadcast failed", zap.String("event", event), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"event": event, "invoked": invoked, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"event": event, "invoked": invoked})
}
