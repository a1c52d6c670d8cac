package comparison

import (
	"errors"
	"net/url"

	"otc-compare/core/logger"
	"otc-compare/core/reconcile"
	"otc-compare/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for comparisons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the comparison routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/compare")
	group.Get("/", h.HandleCompareAll)
	group.Post("/refresh", h.HandleRefresh)
	group.Get("/:name", h.HandleCompareItem)
}

// HandleCompareItem compares a single item.
// @Summary Compare Item
// @Description Compare the Marketplace gold price of an item with its latest Discord SB quote.
// @Tags compare
// @Accept json
// @Produce json
// @Param name path string true "Exact Marketplace item name"
// @Param sb_price query number false "Manual SB price replacing the Discord quote"
// @Success 200 {object} reconcile.Comparison "Comparison"
// @Failure 400 {object} map[string]string "Invalid sb_price"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /compare/{name} [get]
func (h *Handler) HandleCompareItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item name"})
	}

	var manual *float64
	if raw := c.Query("sb_price"); raw != "" {
		manual = utils.ToFloat(raw)
		if manual == nil || *manual <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "sb_price must be a positive number"})
		}
	}

	rec, err := h.service.CompareItem(c.Context(), name, manual)
	if err != nil {
		if errors.Is(err, reconcile.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Item comparison failed", zap.String("item", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(rec)
}

// HandleCompareAll compares every Marketplace item.
// @Summary Compare Catalog
// @Description Compare every Marketplace item against Discord. This operation may take a long time.
// @Tags compare
// @Accept json
// @Produce json
// @Success 200 {object} BatchResult "Batch Result"
// @Router /compare [get]
func (h *Handler) HandleCompareAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering batch comparison")

	result := h.service.CompareAll(c.Context())
	l.Info("Batch comparison finished",
		zap.String("run_id", result.RunID),
		zap.Int("total", result.Summary.Total),
	)
	return c.JSON(result)
}

// HandleRefresh drops the cached catalog snapshot.
// @Summary Refresh Snapshot
// @Description Force the next comparison to refetch the Marketplace and Discord catalogs.
// @Tags compare
// @Produce json
// @Success 200 {object} map[string]string "Refreshed"
// @Router /compare/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	h.service.Refresh()
	return c.JSON(fiber.Map{"status": "refreshed"})
}
