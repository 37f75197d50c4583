package repository

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"estate-crm/models"
)

// ReportEngine строит месячную финансовую сводку по объектам недвижимости.
// Сводка пересчитывается на каждый запрос и нигде не сохраняется.
type ReportEngine struct {
	db *gorm.DB
}

func NewReportEngine(db *gorm.DB) *ReportEngine {
	return &ReportEngine{db: db}
}

// ReportTransaction - проводка, вошедшая в отчет.
type ReportTransaction struct {
	ID          uint      `json:"id"`
	PropertyID  uint      `json:"propertyId"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReportRow - сводка по одному объекту за отчетный месяц.
type ReportRow struct {
	PropertyID       uint                `json:"propertyId"`
	PropertyName     string              `json:"propertyName"`
	Income           float64             `json:"income"`
	Expenses         float64             `json:"expenses"`
	AgencyCommission float64             `json:"agencyCommission"`
	FinalAmount      float64             `json:"finalAmount"`
	Transactions     []ReportTransaction `json:"data"`
}

func (row *ReportRow) CreditCount() int {
	count := 0
	for _, t := range row.Transactions {
		if t.Type == models.TransactionCredit {
			count++
		}
	}
	return count
}

func (row *ReportRow) DebitCount() int {
	count := 0
	for _, t := range row.Transactions {
		if t.Type == models.TransactionDebit {
			count++
		}
	}
	return count
}

// MonthRange возвращает полуинтервал календарного месяца, в который попадает
// now: [первое число месяца, первое число следующего месяца). Декабрь
// переходит в январь следующего года обычной календарной арифметикой.
func MonthRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

// MonthlyReport агрегирует проводки текущего месяца в одну строку на объект.
// Комиссия (rent * pct / 100) начисляется на каждую проводку независимо от
// типа, а итог пересчитывается после каждой свертки:
// finalAmount = income - expenses - agencyCommission. Формула сохранена
// в исходном виде, включая двойной учет комиссии по CREDIT-проводкам
// (см. DESIGN.md); тесты фиксируют это как текущее поведение.
func (e *ReportEngine) MonthlyReport(now time.Time) ([]*ReportRow, error) {
	start, end := MonthRange(now)

	var transactions []models.Transaction
	err := e.db.
		Preload("Property", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "rent_per_month", "commission_percentage")
		}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("id").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	rows := map[uint]*ReportRow{}
	for _, transaction := range transactions {
		if transaction.Property == nil {
			return nil, fmt.Errorf("проводка %d ссылается на отсутствующий объект %d",
				transaction.ID, transaction.PropertyID)
		}

		row, ok := rows[transaction.PropertyID]
		if !ok {
			row = &ReportRow{
				PropertyID:   transaction.Property.ID,
				PropertyName: transaction.Property.Name,
			}
			rows[transaction.PropertyID] = row
		}

		commission := transaction.Property.RentPerMonth * transaction.Property.CommissionPercentage / 100

		switch transaction.Type {
		case models.TransactionDebit:
			row.Income += transaction.Amount
		case models.TransactionCredit:
			row.Expenses += transaction.Amount
		}

		row.AgencyCommission += commission
		row.FinalAmount = row.Income - row.Expenses - row.AgencyCommission

		row.Transactions = append(row.Transactions, ReportTransaction{
			ID:          transaction.ID,
			PropertyID:  transaction.PropertyID,
			Type:        transaction.Type,
			Description: transaction.Description,
			Amount:      transaction.Amount,
			CreatedAt:   transaction.CreatedAt,
		})
	}

	ordered := make([]*ReportRow, 0, len(rows))
	for _, row := range rows {
		ordered = append(ordered, row)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].PropertyID < ordered[j].PropertyID
	})
	return ordered, nil
}
