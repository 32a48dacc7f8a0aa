package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

// AuditReader lists the most recent audit entries.
type AuditReader interface {
	Recent(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}

// DatabaseHandler serves the database maintenance screen.
type DatabaseHandler struct {
	admin ports.DatabaseAdmin
	audit AuditReader
}

func NewDatabaseHandler(admin ports.DatabaseAdmin, audit AuditReader) *DatabaseHandler {
	return &DatabaseHandler{admin: admin, audit: audit}
}

type databaseStatusResponse struct {
	Collections map[string]int64 `json:"collections"`
}

type auditListResponse struct {
	Items []*domain.AuditEntry `json:"items"`
}

// Status handles GET /v1/database/status.
//
// @Summary      Collection document counts
// @Tags         database
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  databaseStatusResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/database/status [get]
func (h *DatabaseHandler) Status(c echo.Context) error {
	counts, err := h.admin.CollectionCounts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, databaseStatusResponse{Collections: counts})
}

// Audit handles GET /v1/database/audit.
//
// @Summary      Recent audit trail
// @Tags         database
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max entries (default 50, max 500)"
// @Success      200    {object}  auditListResponse
// @Failure      403    {object}  map[string]string
// @Router       /v1/database/audit [get]
func (h *DatabaseHandler) Audit(c echo.Context) error {
	items, err := h.audit.Recent(c.Request().Context(), queryInt(c, "limit"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, auditListResponse{Items: items})
}

// EnsureIndexes handles POST /v1/database/indexes.
//
// @Summary      Rebuild indexes
// @Tags         database
// @Security     BearerAuth
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /v1/database/indexes [post]
func (h *DatabaseHandler) EnsureIndexes(c echo.Context) error {
	if err := h.admin.EnsureIndexes(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
