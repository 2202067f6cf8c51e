package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

func setupAnalyticsRouter(handler *AnalyticsHandler) *gin.Engine {
	handler.now = func() time.Time { return time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC) }
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/analytics/summary", handler.GetSummary)
	auth.GET("/analytics/category-breakdown", handler.GetCategoryBreakdown)
	auth.GET("/analytics/trend", handler.GetTrend)
	return r
}

func TestAnalyticsHandler_GetSummary(t *testing.T) {
	svc := &mockTransactionService{
		getMonthlySummaryFn: func(_ string, month, year int) (*services.MonthlySummary, error) {
			return &services.MonthlySummary{
				Month: month, Year: year,
				Income: decimal.NewFromInt(5000), Expense: decimal.NewFromInt(1200),
				Investment: decimal.Zero, Balance: decimal.NewFromInt(3800), TransactionCount: 4,
			}, nil
		},
	}
	r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

	t.Run("defaults to the current month", func(t *testing.T) {
		rec := doRequest(r, "GET", "/analytics/summary", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		data := dataObject(t, rec)
		if data["month"].(float64) != 2 || data["year"].(float64) != 2026 || data["balance"].(float64) != 3800 {
			t.Errorf("unexpected summary %v", data)
		}
	})

	t.Run("explicit period", func(t *testing.T) {
		rec := doRequest(r, "GET", "/analytics/summary?month=11&year=2025", "")
		data := dataObject(t, rec)
		if data["month"].(float64) != 11 || data["year"].(float64) != 2025 {
			t.Errorf("unexpected summary %v", data)
		}
	})

	t.Run("rejects bad year", func(t *testing.T) {
		rec := doRequest(r, "GET", "/analytics/summary?year=abc", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAnalyticsHandler_GetCategoryBreakdown(t *testing.T) {
	svc := &mockTransactionService{
		getCategoryBreakdownFn: func(_ string, _, _ int) ([]services.CategoryTotal, error) {
			return []services.CategoryTotal{
				{Name: "Groceries", Total: decimal.NewFromInt(300), Count: 3, Share: 75},
				{Name: "Transport", Total: decimal.NewFromInt(100), Count: 1, Share: 25},
			}, nil
		},
	}
	r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

	rec := doRequest(r, "GET", "/analytics/category-breakdown?month=2&year=2026", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	list := dataList(t, rec)
	if len(list) != 2 || list[0].(map[string]interface{})["share"].(float64) != 75 {
		t.Errorf("unexpected breakdown %s", rec.Body.String())
	}
}

func TestAnalyticsHandler_GetTrend(t *testing.T) {
	t.Run("defaults to six months", func(t *testing.T) {
		var gotMonths int
		svc := &mockTransactionService{
			getMonthlyTrendFn: func(_ string, months int, _ time.Time) ([]services.MonthlySummary, error) {
				gotMonths = months
				return make([]services.MonthlySummary, months), nil
			},
		}
		r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

		rec := doRequest(r, "GET", "/analytics/trend", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotMonths != defaultTrendMonths || len(dataList(t, rec)) != defaultTrendMonths {
			t.Errorf("expected %d months, got %d", defaultTrendMonths, gotMonths)
		}
	})

	t.Run("out of range is a validation error", func(t *testing.T) {
		svc := &mockTransactionService{
			getMonthlyTrendFn: func(_ string, _ int, _ time.Time) ([]services.MonthlySummary, error) {
				return nil, apperrors.WithMessage(apperrors.ErrValidation, "months must be between 1 and 24")
			},
		}
		r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

		rec := doRequest(r, "GET", "/analytics/trend?months=48", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("non numeric months", func(t *testing.T) {
		r := setupAnalyticsRouter(NewAnalyticsHandler(&mockTransactionService{}))
		rec := doRequest(r, "GET", "/analytics/trend?months=six", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
