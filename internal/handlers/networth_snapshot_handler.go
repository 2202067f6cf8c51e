package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// NetWorthHistoryHandler handles recorded net-worth snapshots.
type NetWorthHistoryHandler struct {
	snapshotService services.NetWorthSnapshotServicer
	auditService    services.AuditServicer
	now             func() time.Time
}

// NewNetWorthHistoryHandler creates a new NetWorthHistoryHandler.
func NewNetWorthHistoryHandler(snapshotService services.NetWorthSnapshotServicer, auditService services.AuditServicer) *NetWorthHistoryHandler {
	return &NetWorthHistoryHandler{snapshotService: snapshotService, auditService: auditService, now: time.Now}
}

// SnapshotListResponse is one page of net-worth history.
type SnapshotListResponse struct {
	Snapshots  []models.NetWorthSnapshot `json:"snapshots"`
	Pagination pagination.Meta           `json:"pagination"`
}

// RecordSnapshot stores today's net-worth figures for the caller.
// @Summary     Record net-worth snapshot
// @Description Saves the current net-worth figures against today's date, replacing any snapshot already taken today
// @Tags        networth
// @Produce     json
// @Security    BearerAuth
// @Success     201 {object} SuccessResponse{data=models.NetWorthSnapshot} "Snapshot recorded"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure     500 {object} middleware.ErrorResponse "Server error"
// @Router      /networth/snapshots [post]
func (h *NetWorthHistoryHandler) RecordSnapshot(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snapshot, err := h.snapshotService.RecordSnapshot(userID, h.now().UTC())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionCreate, "networth_snapshot", snapshot.ID, c.ClientIP(),
		map[string]interface{}{"net_worth": snapshot.NetWorth.String()})

	respond(c, http.StatusCreated, snapshot)
}

// GetSnapshots lists the caller's recorded snapshots.
// @Summary     Net-worth history
// @Tags        networth
// @Produce     json
// @Security    BearerAuth
// @Param       from  query string false "Earliest day, inclusive (YYYY-MM-DD, default one year ago)"
// @Param       to    query string false "Latest day, inclusive (YYYY-MM-DD, default today)"
// @Param       page  query int    false "Page number (default 1)"
// @Param       limit query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} SuccessResponse{data=SnapshotListResponse} "Snapshots"
// @Failure     400 {object} middleware.ErrorResponse "Invalid input"
// @Failure     401 {object} middleware.ErrorResponse "Unauthorized"
// @Router      /networth/snapshots [get]
func (h *NetWorthHistoryHandler) GetSnapshots(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	to := models.DateOnly(h.now().UTC())
	if v := c.Query("to"); v != "" {
		if to, err = parseDate(v, "to"); err != nil {
			respondWithError(c, err)
			return
		}
	}
	from := to.AddDate(-1, 0, 0)
	if v := c.Query("from"); v != "" {
		if from, err = parseDate(v, "from"); err != nil {
			respondWithError(c, err)
			return
		}
	}

	result, err := h.snapshotService.GetSnapshots(userID, from, to, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respond(c, http.StatusOK, SnapshotListResponse{
		Snapshots:  result.Data,
		Pagination: result.Pagination,
	})
}
