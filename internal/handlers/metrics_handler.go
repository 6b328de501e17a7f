package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-api/internal/cache"
	domain "github.com/glowdesk/salon-api/internal/domain/booking"
	"github.com/glowdesk/salon-api/internal/httperr"
	"github.com/glowdesk/salon-api/internal/middleware"
	"github.com/glowdesk/salon-api/internal/timezone"
	metrics "github.com/glowdesk/salon-api/internal/usecase/metrics"
)

const metricsCacheTTL = 60 * time.Second

type MetricsHandler struct {
	repo    domain.Repository
	summary *metrics.GetSummary
	cache   *cache.Cache
}

func NewMetricsHandler(
	repo domain.Repository,
	summary *metrics.GetSummary,
	cache *cache.Cache,
) *MetricsHandler {
	return &MetricsHandler{
		repo:    repo,
		summary: summary,
		cache:   cache,
	}
}

// GetSummary serves the dashboard numbers over a trailing window of
// ?period=7|30|90 days, default 30. Results are cached briefly so a
// dashboard polling every few seconds does not rescan appointments.
func (h *MetricsHandler) GetSummary(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	ctx := c.Request.Context()

	period := c.DefaultQuery("period", "30")
	switch period {
	case "7", "30", "90":
	default:
		httperr.BadRequest(c, "invalid_period", "Period must be 7, 30 or 90.")
		return
	}

	key := fmt.Sprintf("metrics:%d:%s", salonID, period)

	var cached metrics.Summary
	if h.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	salon, err := h.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	days := map[string]int{"7": 7, "30": 30, "90": 90}[period]
	to := timezone.NowIn(salon.Timezone)
	from := to.AddDate(0, 0, -days)

	summary, err := h.summary.Execute(ctx, salonID, from, to)
	if err != nil {
		writeError(c, err)
		return
	}

	h.cache.SetJSON(ctx, key, summary, metricsCacheTTL)
	c.JSON(http.StatusOK, summary)
}
