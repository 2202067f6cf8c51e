package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

type mockSnapshotService struct {
	recordSnapshotFn func(userID string, day time.Time) (*models.NetWorthSnapshot, error)
	getSnapshotsFn   func(userID string, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.NetWorthSnapshot], error)
}

func (m *mockSnapshotService) RecordSnapshot(userID string, day time.Time) (*models.NetWorthSnapshot, error) {
	if m.recordSnapshotFn != nil {
		return m.recordSnapshotFn(userID, day)
	}
	return &models.NetWorthSnapshot{UserID: userID, RecordedOn: models.DateOnly(day)}, nil
}

func (m *mockSnapshotService) GetSnapshots(userID string, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.NetWorthSnapshot], error) {
	if m.getSnapshotsFn != nil {
		return m.getSnapshotsFn(userID, from, to, page)
	}
	result := pagination.NewPageResponse[models.NetWorthSnapshot](nil, 1, 20, 0)
	return &result, nil
}

var _ services.NetWorthSnapshotServicer = (*mockSnapshotService)(nil)

func setupSnapshotRouter(handler *NetWorthHistoryHandler) *gin.Engine {
	handler.now = func() time.Time { return time.Date(2026, 2, 15, 18, 30, 0, 0, time.UTC) }
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/networth/snapshots", handler.RecordSnapshot)
	auth.GET("/networth/snapshots", handler.GetSnapshots)
	return r
}

func TestNetWorthHistoryHandler_RecordSnapshot(t *testing.T) {
	t.Run("records today", func(t *testing.T) {
		var gotDay time.Time
		audit := &mockAuditService{}
		svc := &mockSnapshotService{
			recordSnapshotFn: func(userID string, day time.Time) (*models.NetWorthSnapshot, error) {
				gotDay = day
				return &models.NetWorthSnapshot{ID: "snap-1", UserID: userID, NetWorth: decimal.NewFromInt(4200)}, nil
			},
		}
		r := setupSnapshotRouter(NewNetWorthHistoryHandler(svc, audit))

		rec := doRequest(r, "POST", "/networth/snapshots", "")

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotDay.Day() != 15 || gotDay.Month() != time.February {
			t.Errorf("unexpected day %s", gotDay)
		}
		if dataObject(t, rec)["net_worth"].(float64) != 4200 {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
		if len(audit.entries) != 1 || audit.entries[0].resourceType != "networth_snapshot" {
			t.Errorf("expected one audit entry, got %+v", audit.entries)
		}
	})

	t.Run("service failure", func(t *testing.T) {
		svc := &mockSnapshotService{
			recordSnapshotFn: func(_ string, _ time.Time) (*models.NetWorthSnapshot, error) {
				return nil, apperrors.ErrServerError
			},
		}
		r := setupSnapshotRouter(NewNetWorthHistoryHandler(svc, &mockAuditService{}))
		rec := doRequest(r, "POST", "/networth/snapshots", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestNetWorthHistoryHandler_GetSnapshots(t *testing.T) {
	t.Run("defaults to the last year", func(t *testing.T) {
		var gotFrom, gotTo time.Time
		svc := &mockSnapshotService{
			getSnapshotsFn: func(_ string, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.NetWorthSnapshot], error) {
				gotFrom, gotTo = from, to
				result := pagination.NewPageResponse([]models.NetWorthSnapshot{{ID: "a"}, {ID: "b"}}, 1, 20, 2)
				return &result, nil
			},
		}
		r := setupSnapshotRouter(NewNetWorthHistoryHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/networth/snapshots", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotTo.Format("2006-01-02") != "2026-02-15" || gotFrom.Format("2006-01-02") != "2025-02-15" {
			t.Errorf("unexpected range %s..%s", gotFrom, gotTo)
		}
		data := dataObject(t, rec)
		if len(data["snapshots"].([]interface{})) != 2 {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
	})

	t.Run("explicit range", func(t *testing.T) {
		var gotFrom time.Time
		svc := &mockSnapshotService{
			getSnapshotsFn: func(_ string, from, _ time.Time, _ pagination.PageRequest) (*pagination.PageResponse[models.NetWorthSnapshot], error) {
				gotFrom = from
				result := pagination.NewPageResponse[models.NetWorthSnapshot](nil, 1, 20, 0)
				return &result, nil
			},
		}
		r := setupSnapshotRouter(NewNetWorthHistoryHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/networth/snapshots?from=2026-01-01&to=2026-01-31", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotFrom.Format("2006-01-02") != "2026-01-01" {
			t.Errorf("unexpected from %s", gotFrom)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		r := setupSnapshotRouter(NewNetWorthHistoryHandler(&mockSnapshotService{}, &mockAuditService{}))
		rec := doRequest(r, "GET", "/networth/snapshots?from=yesterday", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
