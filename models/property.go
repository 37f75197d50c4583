package models

import "time"

// Property представляет объект недвижимости под управлением агентства.
// LandlordID и TenantID необязательны и пишутся только когда заданы.
type Property struct {
	ID                   uint          `json:"id" gorm:"primaryKey"`
	Name                 string        `json:"name" gorm:"not null"`
	RentPerMonth         float64       `json:"rent_per_month" gorm:"not null"`
	CommissionPercentage float64       `json:"commission_percentage" gorm:"not null"`
	UserID               uint          `json:"user_id" gorm:"not null;index"`
	User                 *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	LandlordID           *uint         `json:"landlord_id,omitempty"`
	TenantID             *uint         `json:"tenant_id,omitempty"`
	Transactions         []Transaction `json:"transactions,omitempty" gorm:"foreignKey:PropertyID"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}
