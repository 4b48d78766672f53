package handlers

import (
	"time"

	"github.com/gazostheque/gazostheque/internal/services"
	"github.com/gazostheque/gazostheque/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StatsHandler handles the read-only aggregation routes
type StatsHandler struct {
	DB *gorm.DB

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

func (h *StatsHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// TotalCount handles GET /materials/count/
// @Summary Inventory totals and monthly trend
// @Tags Stats
// @Produce json
// @Success 200 {object} services.CountStats
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /materials/count/ [get]
func (h *StatsHandler) TotalCount(c *fiber.Ctx) error {
	stats, err := services.TotalCountStats(h.DB, h.now())
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "totalCount")
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}

// CountByLab handles GET /materials/count-by-lab
// @Summary Material counts per destination lab
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /materials/count-by-lab [get]
func (h *StatsHandler) CountByLab(c *fiber.Ctx) error {
	counts, err := services.CountByLab(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "countByLab")
	}
	return c.Status(fiber.StatusOK).JSON(counts)
}

// BarChart handles GET /materials/bar-chart
// @Summary Per-year per-lab material counts for charting
// @Tags Stats
// @Produce json
// @Success 200 {object} services.BarChart
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /materials/bar-chart [get]
func (h *StatsHandler) BarChart(c *fiber.Ctx) error {
	chart, err := services.YearLabSeries(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "barChart")
	}
	return c.Status(fiber.StatusOK).JSON(chart)
}
