package history

import (
	"errors"

	"otc-compare/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for run history.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/history")
	group.Get("/", h.HandleListRuns)
	group.Get("/:id", h.HandleGetRun)
}

// HandleListRuns lists recent batch runs.
// @Summary List Runs
// @Description List the most recent batch comparison runs with their summary counts.
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of runs (default 20)"
// @Success 200 {array} models.ComparisonRun "Runs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	runs, err := h.repo.ListRuns(c.Context(), c.QueryInt("limit", DefaultLimit))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Listing runs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}

// HandleGetRun returns one run with all of its rows.
// @Summary Get Run
// @Description Get a persisted batch comparison run and its rows.
// @Tags history
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} models.ComparisonRun "Run"
// @Failure 404 {object} map[string]string "Run not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	run, err := h.repo.GetRun(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrRunNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		logger.WithRayID(h.logger, c).Error("Loading run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(run)
}
