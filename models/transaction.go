package models

import "time"

// Типы проводок: DEBIT - арендный доход, CREDIT - расход по объекту.
const (
	TransactionDebit  = "DEBIT"
	TransactionCredit = "CREDIT"
)

// Transaction представляет одну финансовую операцию по объекту недвижимости.
// CreatedAt назначается при создании, не изменяется и служит ключом
// отчетного периода.
type Transaction struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PropertyID  uint      `json:"property_id" gorm:"not null;index"`
	Property    *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	Type        string    `json:"type" gorm:"type:varchar(10);not null"`
	Description string    `json:"description" gorm:"not null"`
	Amount      float64   `json:"amount" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
