package repository

import (
	"errors"
	"math"
	"unicode/utf8"

	"gorm.io/gorm"

	"estate-crm/models"
)

// TransactionRepository выполняет операции хранилища над проводками.
// Существование объекта недвижимости перепроверяется всякий раз, когда
// property_id задается или меняется.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// CreateTransactionInput - данные для создания проводки.
type CreateTransactionInput struct {
	PropertyID  *uint    `json:"property_id"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
}

// Validate возвращает первое нарушенное правило.
func (in *CreateTransactionInput) Validate() error {
	if in.PropertyID == nil || in.Type == "" || in.Description == "" || in.Amount == nil {
		return invalid("Property Id, Type, Description, Amount are required!")
	}
	if *in.PropertyID == 0 {
		return invalid("Property ID is required")
	}
	return validateTransactionFields(&in.Type, &in.Description, in.Amount)
}

func validateTransactionFields(txType, description *string, amount *float64) error {
	if txType != nil && *txType != models.TransactionDebit && *txType != models.TransactionCredit {
		return invalid("Type must be either 'DEBIT' or 'CREDIT'")
	}
	if description != nil && utf8.RuneCountInString(*description) < 5 {
		return invalid("Description must be at least 5 characters")
	}
	if amount != nil && *amount <= 0 {
		return invalid("Amount must be a positive number")
	}
	return nil
}

// Create проверяет вход и существование объекта, затем сохраняет проводку.
func (r *TransactionRepository) Create(in CreateTransactionInput) (*models.Transaction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := r.propertyExists(*in.PropertyID); err != nil {
		return nil, err
	}

	transaction := models.Transaction{
		PropertyID:  *in.PropertyID,
		Type:        in.Type,
		Description: in.Description,
		Amount:      *in.Amount,
	}
	if err := r.db.Create(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

// TransactionPatch - частичное обновление проводки. CreatedAt неизменяем
// и поэтому в патче отсутствует.
type TransactionPatch struct {
	PropertyID  *uint    `json:"property_id"`
	Type        *string  `json:"type"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
}

func (p *TransactionPatch) Validate() error {
	if p.PropertyID != nil && *p.PropertyID == 0 {
		return invalid("Property ID is required")
	}
	return validateTransactionFields(p.Type, p.Description, p.Amount)
}

func (p *TransactionPatch) changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.PropertyID != nil {
		changes["property_id"] = *p.PropertyID
	}
	if p.Type != nil {
		changes["type"] = *p.Type
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Amount != nil {
		changes["amount"] = *p.Amount
	}
	return changes
}

// Update применяет только заданные поля. Смена property_id требует
// существующего объекта: его отсутствие дает ErrPropertyNotFound, отличный
// от ErrTransactionNotFound самой проводки.
func (r *TransactionRepository) Update(id uint, patch TransactionPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	if err := r.exists(id); err != nil {
		return err
	}
	if patch.PropertyID != nil {
		if err := r.propertyExists(*patch.PropertyID); err != nil {
			return err
		}
	}

	changes := patch.changes()
	if len(changes) == 0 {
		return nil
	}
	return r.db.Model(&models.Transaction{}).Where("id = ?", id).Updates(changes).Error
}

func (r *TransactionRepository) Delete(id uint) error {
	if err := r.exists(id); err != nil {
		return err
	}
	return r.db.Delete(&models.Transaction{}, id).Error
}

func (r *TransactionRepository) exists(id uint) error {
	var count int64
	if err := r.db.Model(&models.Transaction{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) propertyExists(id uint) error {
	var count int64
	if err := r.db.Model(&models.Property{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

// List возвращает страницу проводок (id по убыванию) вместе с полной
// записью объекта недвижимости.
func (r *TransactionRepository) List(page, limit int) ([]models.Transaction, int64, int, error) {
	var totalCount int64
	if err := r.db.Model(&models.Transaction{}).Count(&totalCount).Error; err != nil {
		return nil, 0, 0, err
	}

	var transactions []models.Transaction
	offset := (page - 1) * limit
	err := r.db.
		Preload("Property").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(limit)))
	return transactions, totalCount, totalPages, nil
}

func (r *TransactionRepository) GetByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.Preload("Property").First(&transaction, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}
