package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// netWorthSnapshotService records and reads net-worth history.
type netWorthSnapshotService struct {
	db       *gorm.DB
	netWorth NetWorthServicer
}

// NewNetWorthSnapshotService creates a new NetWorthSnapshotServicer.
func NewNetWorthSnapshotService(db *gorm.DB, netWorth NetWorthServicer) NetWorthSnapshotServicer {
	return &netWorthSnapshotService{db: db, netWorth: netWorth}
}

// RecordSnapshot stores the caller's current net-worth figures against day.
// A second recording for the same day replaces the first.
func (s *netWorthSnapshotService) RecordSnapshot(userID string, day time.Time) (*models.NetWorthSnapshot, error) {
	current, err := s.netWorth.GetNetWorth(userID)
	if err != nil {
		return nil, err
	}

	recordedOn := models.DateOnly(day)
	snapshot := &models.NetWorthSnapshot{
		UserID:      userID,
		RecordedOn:  recordedOn,
		Income:      current.Income,
		Expenses:    current.Expenses,
		Investments: current.Investments,
		NetWorth:    current.NetWorth,
		TotalAssets: current.TotalAssets,
		HoldingsNet: current.Holdings.Net,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.NetWorthSnapshot
		err := tx.Where("user_id = ? AND recorded_on = ?", userID, recordedOn).First(&existing).Error
		switch {
		case err == nil:
			snapshot.ID = existing.ID
			snapshot.CreatedAt = existing.CreatedAt
			return tx.Model(&existing).Updates(map[string]interface{}{
				"income":       snapshot.Income,
				"expenses":     snapshot.Expenses,
				"investments":  snapshot.Investments,
				"net_worth":    snapshot.NetWorth,
				"total_assets": snapshot.TotalAssets,
				"holdings_net": snapshot.HoldingsNet,
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(snapshot).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	return snapshot, nil
}

// GetSnapshots returns the caller's snapshots between from and to inclusive,
// newest first.
func (s *netWorthSnapshotService) GetSnapshots(
	userID string,
	from, to time.Time,
	page pagination.PageRequest,
) (*pagination.PageResponse[models.NetWorthSnapshot], error) {
	page.Defaults()

	if to.Before(from) {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "to must not be before from")
	}

	var total int64
	base := s.db.Model(&models.NetWorthSnapshot{}).
		Where("user_id = ? AND recorded_on >= ? AND recorded_on < ?",
			userID, models.DateOnly(from), models.DateOnly(to).AddDate(0, 0, 1))
	if err := base.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	var snapshots []models.NetWorthSnapshot
	if err := base.Order("recorded_on DESC").Scopes(pagination.Paginate(page)).Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	result := pagination.NewPageResponse(snapshots, page.Page, page.Limit, total)
	return &result, nil
}
