package repository

import (
	"errors"
	"math"
	"unicode/utf8"

	"gorm.io/gorm"

	"estate-crm/models"
)

// PropertyRepository выполняет все операции хранилища над объектами
// недвижимости. Хэндл БД передается при конструировании.
type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// CreatePropertyInput - данные для создания объекта. Указатели отличают
// отсутствующее поле от нулевого значения (комиссия 0% допустима).
type CreatePropertyInput struct {
	Name                 string   `json:"name"`
	RentPerMonth         *float64 `json:"rent_per_month"`
	CommissionPercentage *float64 `json:"commission_percentage"`
	LandlordID           *uint    `json:"landlord_id"`
	TenantID             *uint    `json:"tenant_id"`
}

// Validate возвращает первое нарушенное правило.
func (in *CreatePropertyInput) Validate() error {
	if in.Name == "" || in.RentPerMonth == nil || in.CommissionPercentage == nil {
		return invalid("Name, Rent, Commission fields are required!")
	}
	return validatePropertyFields(&in.Name, in.RentPerMonth, in.CommissionPercentage)
}

func validatePropertyFields(name *string, rent, commission *float64) error {
	if name != nil && utf8.RuneCountInString(*name) < 3 {
		return invalid("Property name must be at least 3 characters")
	}
	if rent != nil && *rent <= 0 {
		return invalid("Rent must be a positive number")
	}
	if commission != nil {
		if *commission < 0 {
			return invalid("Commission cannot be negative")
		}
		if *commission > 100 {
			return invalid("Commission cannot exceed 100%")
		}
	}
	return nil
}

// Create проверяет вход и сохраняет новый объект. Необязательные ссылки на
// арендодателя и арендатора пишутся только когда заданы.
func (r *PropertyRepository) Create(creatorID uint, in CreatePropertyInput) (*models.Property, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	property := models.Property{
		Name:                 in.Name,
		RentPerMonth:         *in.RentPerMonth,
		CommissionPercentage: *in.CommissionPercentage,
		UserID:               creatorID,
	}
	if in.LandlordID != nil {
		property.LandlordID = in.LandlordID
	}
	if in.TenantID != nil {
		property.TenantID = in.TenantID
	}

	if err := r.db.Create(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// PropertyPatch - частичное обновление: по одному указателю на каждое
// изменяемое поле. В хранилище попадают только заданные поля.
type PropertyPatch struct {
	Name                 *string  `json:"name"`
	RentPerMonth         *float64 `json:"rent_per_month"`
	CommissionPercentage *float64 `json:"commission_percentage"`
	LandlordID           *uint    `json:"landlord_id"`
	TenantID             *uint    `json:"tenant_id"`
}

func (p *PropertyPatch) Validate() error {
	return validatePropertyFields(p.Name, p.RentPerMonth, p.CommissionPercentage)
}

func (p *PropertyPatch) changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.RentPerMonth != nil {
		changes["rent_per_month"] = *p.RentPerMonth
	}
	if p.CommissionPercentage != nil {
		changes["commission_percentage"] = *p.CommissionPercentage
	}
	if p.LandlordID != nil {
		changes["landlord_id"] = *p.LandlordID
	}
	if p.TenantID != nil {
		changes["tenant_id"] = *p.TenantID
	}
	return changes
}

// Update применяет только заданные поля. Отсутствующий объект - ErrPropertyNotFound.
func (r *PropertyRepository) Update(id uint, patch PropertyPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	if err := r.exists(id); err != nil {
		return err
	}

	changes := patch.changes()
	if len(changes) == 0 {
		return nil
	}
	return r.db.Model(&models.Property{}).Where("id = ?", id).Updates(changes).Error
}

func (r *PropertyRepository) Delete(id uint) error {
	if err := r.exists(id); err != nil {
		return err
	}
	return r.db.Delete(&models.Property{}, id).Error
}

func (r *PropertyRepository) exists(id uint) error {
	var count int64
	if err := r.db.Model(&models.Property{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

// publicUserFields ограничивает подгружаемого создателя публичными полями.
func publicUserFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "role")
}

// List возвращает страницу объектов (id по убыванию) вместе с публичными
// полями создателя и проводками, общее число строк и число страниц.
func (r *PropertyRepository) List(page, limit int) ([]models.Property, int64, int, error) {
	var totalCount int64
	if err := r.db.Model(&models.Property{}).Count(&totalCount).Error; err != nil {
		return nil, 0, 0, err
	}

	var properties []models.Property
	offset := (page - 1) * limit
	err := r.db.
		Preload("User", publicUserFields).
		Preload("Transactions").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&properties).Error
	if err != nil {
		return nil, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(limit)))
	return properties, totalCount, totalPages, nil
}

func (r *PropertyRepository) GetByID(id uint) (*models.Property, error) {
	var property models.Property
	err := r.db.
		Preload("User", publicUserFields).
		Preload("Transactions").
		First(&property, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// PropertyName - строка списка уникальных имен объектов.
type PropertyName struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// DistinctNames возвращает по одной записи на уникальное имя.
// При дублях побеждает наименьший id.
func (r *PropertyRepository) DistinctNames() ([]PropertyName, error) {
	var names []PropertyName
	err := r.db.Model(&models.Property{}).
		Select("MIN(id) AS id, name").
		Group("name").
		Order("MIN(id)").
		Scan(&names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
