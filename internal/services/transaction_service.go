package services

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

const maxTrendMonths = 24

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// normalizeAmount rounds amount to cents and rejects anything that is not
// positive after rounding.
func normalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	rounded := amount.Round(2)
	if !rounded.IsPositive() {
		return decimal.Zero, apperrors.WithMessage(apperrors.ErrValidation, "amount must be at least 0.01")
	}
	return rounded, nil
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return apperrors.WithMessage(apperrors.ErrValidation, "month must be between 1 and 12")
	}
	if year < 1900 || year > 9999 {
		return apperrors.WithMessage(apperrors.ErrValidation, "year is out of range")
	}
	return nil
}

// applyTransactionFilter narrows a transactions query to the user and filter.
func applyTransactionFilter(query *gorm.DB, userID string, filter TransactionFilter) *gorm.DB {
	query = query.Where("user_id = ?", userID)
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != nil {
		query = query.Where("transaction_date >= ?", models.DateOnly(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query = query.Where("transaction_date < ?", models.DateOnly(*filter.EndDate).AddDate(0, 0, 1))
	}
	return query
}

func newestFirst(query *gorm.DB) *gorm.DB {
	return query.Order("transaction_date DESC").Order("created_at DESC").Order("id DESC")
}

// CreateTransaction records a transaction against a category the user can see.
func (s *transactionService) CreateTransaction(userID string, input TransactionInput) (*models.Transaction, error) {
	amount, err := normalizeAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	if !input.Type.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "type must be income, expense or investment")
	}
	if input.TransactionDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "transaction date is required")
	}
	if input.CategoryID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "category_id is required")
	}

	category, err := findVisibleCategory(s.db, userID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	transaction := &models.Transaction{
		UserID:             userID,
		CategoryID:         category.ID,
		Type:               input.Type,
		Amount:             amount,
		Description:        input.Description,
		Subcategory:        input.Subcategory,
		Note:               input.Note,
		TransactionDate:    models.DateOnly(input.TransactionDate),
		PaymentMethod:      input.PaymentMethod,
		IsRecurring:        input.IsRecurring,
		RecurringFrequency: input.RecurringFrequency,
		Tags:               datatypes.JSONSlice[string](tags),
		AttachmentURL:      input.AttachmentURL,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	return s.GetTransactionByID(userID, transaction.ID)
}

// GetUserTransactions retrieves a page of the user's transactions, newest first.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	total, err := s.CountUserTransactions(userID, filter)
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	query := applyTransactionFilter(s.db.Model(&models.Transaction{}), userID, filter)
	if err := newestFirst(query).Preload("Category").Scopes(pagination.Paginate(page)).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.Limit, total)
	return &result, nil
}

// CountUserTransactions counts the user's transactions matching filter.
func (s *transactionService) CountUserTransactions(userID string, filter TransactionFilter) (int64, error) {
	var total int64
	if err := applyTransactionFilter(s.db.Model(&models.Transaction{}), userID, filter).
		Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	return total, nil
}

// ListForExport returns every transaction matching filter, newest first.
func (s *transactionService) ListForExport(userID string, filter TransactionFilter) ([]models.Transaction, error) {
	var transactions []models.Transaction
	query := applyTransactionFilter(s.db.Model(&models.Transaction{}), userID, filter)
	if err := newestFirst(query).Preload("Category").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	return transactions, nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Category").
		Where("id = ? AND user_id = ?", transactionID, userID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update. An empty patch returns the
// transaction unchanged.
func (s *transactionService) UpdateTransaction(userID, transactionID string, patch TransactionPatch) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return transaction, nil
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if patch.CategoryID != nil {
		category, err := findVisibleCategory(s.db, userID, *patch.CategoryID)
		if err != nil {
			return nil, err
		}
		updates["category_id"] = category.ID
	}
	if patch.Type != nil {
		if !patch.Type.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "type must be income, expense or investment")
		}
		updates["type"] = *patch.Type
	}
	if patch.Amount != nil {
		amount, err := normalizeAmount(*patch.Amount)
		if err != nil {
			return nil, err
		}
		updates["amount"] = amount
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Subcategory != nil {
		updates["subcategory"] = *patch.Subcategory
	}
	if patch.Note != nil {
		updates["note"] = *patch.Note
	}
	if patch.TransactionDate != nil {
		updates["transaction_date"] = models.DateOnly(*patch.TransactionDate)
	}
	if patch.PaymentMethod != nil {
		updates["payment_method"] = *patch.PaymentMethod
	}

	if err := s.db.Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", transactionID, userID).
		Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	return s.GetTransactionByID(userID, transactionID)
}

// DeleteTransaction removes a transaction. It reports false when the user
// owns no transaction with that id.
func (s *transactionService) DeleteTransaction(userID, transactionID string) (bool, error) {
	result := s.db.Where("id = ? AND user_id = ?", transactionID, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrServerError, result.Error)
	}
	return result.RowsAffected > 0, nil
}

type typeTotal struct {
	Type  models.TransactionType
	Total decimal.Decimal
	Count int64
}

// sumByType totals the user's transactions by type in [start, end).
func sumByType(db *gorm.DB, userID string, start, end *time.Time) ([]typeTotal, error) {
	query := db.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("transaction_date >= ?", *start)
	}
	if end != nil {
		query = query.Where("transaction_date < ?", *end)
	}

	var totals []typeTotal
	if err := query.Group("type").Scan(&totals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	for i := range totals {
		totals[i].Total = totals[i].Total.Round(2)
	}
	return totals, nil
}

// GetMonthlySummary totals income, expense and investment for one month.
func (s *transactionService) GetMonthlySummary(userID string, month, year int) (*MonthlySummary, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	start, end := models.MonthRange(month, year)
	totals, err := sumByType(s.db, userID, &start, &end)
	if err != nil {
		return nil, err
	}

	summary := &MonthlySummary{
		Month:      month,
		Year:       year,
		Income:     decimal.Zero,
		Expense:    decimal.Zero,
		Investment: decimal.Zero,
	}
	for _, t := range totals {
		switch t.Type {
		case models.TransactionTypeIncome:
			summary.Income = t.Total
		case models.TransactionTypeExpense:
			summary.Expense = t.Total
		case models.TransactionTypeInvestment:
			summary.Investment = t.Total
		}
		summary.TransactionCount += t.Count
	}
	summary.Balance = summary.Income.Sub(summary.Expense)

	return summary, nil
}

// GetCategoryBreakdown totals one month's expenses per category, largest first.
func (s *transactionService) GetCategoryBreakdown(userID string, month, year int) ([]CategoryTotal, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	start, end := models.MonthRange(month, year)

	var rows []struct {
		CategoryID string
		Total      decimal.Decimal
		Count      int64
	}
	if err := s.db.Model(&models.Transaction{}).
		Select("category_id, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("user_id = ? AND type = ?", userID, models.TransactionTypeExpense).
		Where("transaction_date >= ? AND transaction_date < ?", start, end).
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}

	breakdown := make([]CategoryTotal, 0, len(rows))
	if len(rows) == 0 {
		return breakdown, nil
	}

	ids := make([]string, len(rows))
	grand := decimal.Zero
	for i, row := range rows {
		ids[i] = row.CategoryID
		grand = grand.Add(row.Total)
	}

	var categories []models.Category
	if err := s.db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrServerError, err)
	}
	byID := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	for _, row := range rows {
		category := byID[row.CategoryID]
		total := row.Total.Round(2)
		share := 0.0
		if grand.IsPositive() {
			share = total.Mul(decimal.NewFromInt(100)).Div(grand).Round(1).InexactFloat64()
		}
		breakdown = append(breakdown, CategoryTotal{
			CategoryID: row.CategoryID,
			Name:       category.Name,
			Icon:       category.Icon,
			Color:      category.Color,
			Total:      total,
			Count:      row.Count,
			Share:      share,
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Total.GreaterThan(breakdown[j].Total)
	})

	return breakdown, nil
}

// GetMonthlyTrend returns a summary for each of the last months calendar
// months up to and including the month of now, oldest first.
func (s *transactionService) GetMonthlyTrend(userID string, months int, now time.Time) ([]MonthlySummary, error) {
	if months < 1 || months > maxTrendMonths {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "months must be between 1 and 24")
	}

	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	trend := make([]MonthlySummary, 0, months)
	for i := months - 1; i >= 0; i-- {
		period := current.AddDate(0, -i, 0)
		summary, err := s.GetMonthlySummary(userID, int(period.Month()), period.Year())
		if err != nil {
			return nil, err
		}
		trend = append(trend, *summary)
	}
	return trend, nil
}
