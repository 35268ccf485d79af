package handlers

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"construction-dashboard/internal/errors"
	"construction-dashboard/internal/models"
	"construction-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints.
// These endpoints should only be registered in development environments.
type DevHandler struct {
	seeder       services.DemoSeederInterface
	transactions services.Refresher
	stores       []services.Refresher
}

// NewDevHandler creates a new development handler. transactions must also be one of stores.
func NewDevHandler(seeder services.DemoSeederInterface, transactions services.Refresher, stores ...services.Refresher) *DevHandler {
	return &DevHandler{
		seeder:       seeder,
		transactions: transactions,
		stores:       stores,
	}
}

// SnapshotStatus reports the outcome of one forced refresh
type SnapshotStatus struct {
	Snapshot models.SnapshotMeta `json:"snapshot"`
	Error    string              `json:"error,omitempty"`
}

// GenerateTransactions generates demo ledger entries over the existing projects
//
// Method: POST /api/v1/dev/transactions
// Environment: Development only
//
// Query parameters:
//   - count: Number of transactions to generate (default: 100, max: 1000)
//   - months: Months of history to spread them over (default: 6, max: 36)
//
// Success Response: 200 OK
//   - transactions_created: Number of transactions created
//   - snapshot: The refreshed transactions snapshot
//
// Error Responses:
//   - 400: No projects exist yet
//   - 500: Internal server error
func (h *DevHandler) GenerateTransactions(c echo.Context) error {
	count := clamp(getIntQueryParam(c, "count", 100), 1, 1000)
	months := clamp(getIntQueryParam(c, "months", 6), 1, 36)

	created, err := h.seeder.GenerateTransactions(c.Request().Context(), count, months)
	if stderrors.Is(err, services.ErrNoProjects) {
		return SendError(c, errors.ValidationGeneral, errors.WithMessage("seed projects before generating transactions"))
	}
	if err != nil {
		slog.Error("Failed to generate demo transactions", "count", count, "error", err)
		return SendSystemError(c, err)
	}

	status := h.refresh(c, h.transactions)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "test data generated successfully",
		"transactions_created": created,
		"months":               months,
		"snapshot":             status,
	})
}

// RefreshSnapshots forces a refresh of every source snapshot
//
// Method: POST /api/v1/dev/refresh
// Environment: Development only
//
// Success Response: 200 OK with one status per source. A failed source
// keeps serving its previous snapshot and reports the error.
func (h *DevHandler) RefreshSnapshots(c echo.Context) error {
	statuses := make([]SnapshotStatus, 0, len(h.stores))
	for _, store := range h.stores {
		statuses = append(statuses, h.refresh(c, store))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"sources": statuses,
	})
}

func (h *DevHandler) refresh(c echo.Context, store services.Refresher) SnapshotStatus {
	meta, err := store.RefreshMeta(c.Request().Context())
	status := SnapshotStatus{Snapshot: meta}
	if err != nil {
		status.Error = err.Error()
	}
	return status
}

// Helper function to get integer query parameters
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func clamp(value, lo, hi int) int {
	return max(lo, min(value, hi))
}
