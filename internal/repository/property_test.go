package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate-crm/models"
)

func TestPropertyCreateRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)
	repo := NewPropertyRepository(db)

	created, err := repo.Create(admin.ID, CreatePropertyInput{
		Name:                 "Oak St",
		RentPerMonth:         f64(1000),
		CommissionPercentage: f64(10),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oak St", fetched.Name)
	assert.Equal(t, 1000.0, fetched.RentPerMonth)
	assert.Equal(t, 10.0, fetched.CommissionPercentage)
	assert.Equal(t, admin.ID, fetched.UserID)
	assert.Nil(t, fetched.LandlordID)
	assert.Nil(t, fetched.TenantID)

	// Создатель подгружается только публичными полями.
	require.NotNil(t, fetched.User)
	assert.Equal(t, admin.Email, fetched.User.Email)
	assert.Empty(t, fetched.User.Password)
}

func TestPropertyCreateOptionalForeignKeys(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)
	repo := NewPropertyRepository(db)

	landlord := models.User{Name: "Landlord", Email: "landlord@example.com", Password: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(&landlord).Error)

	created, err := repo.Create(admin.ID, CreatePropertyInput{
		Name:                 "Elm Street 5",
		RentPerMonth:         f64(750),
		CommissionPercentage: f64(5),
		LandlordID:           u32(landlord.ID),
	})
	require.NoError(t, err)

	fetched, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.LandlordID)
	assert.Equal(t, landlord.ID, *fetched.LandlordID)
	assert.Nil(t, fetched.TenantID)
}

func TestPropertyCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)
	repo := NewPropertyRepository(db)

	tests := []struct {
		name    string
		input   CreatePropertyInput
		message string
	}{
		{
			name:    "missing fields",
			input:   CreatePropertyInput{Name: "Oak St"},
			message: "Name, Rent, Commission fields are required!",
		},
		{
			name:    "short name",
			input:   CreatePropertyInput{Name: "Ok", RentPerMonth: f64(100), CommissionPercentage: f64(5)},
			message: "Property name must be at least 3 characters",
		},
		{
			name:    "non-positive rent",
			input:   CreatePropertyInput{Name: "Oak St", RentPerMonth: f64(0), CommissionPercentage: f64(5)},
			message: "Rent must be a positive number",
		},
		{
			name:    "negative commission",
			input:   CreatePropertyInput{Name: "Oak St", RentPerMonth: f64(100), CommissionPercentage: f64(-1)},
			message: "Commission cannot be negative",
		},
		{
			name:    "commission above 100",
			input:   CreatePropertyInput{Name: "Oak St", RentPerMonth: f64(100), CommissionPercentage: f64(101)},
			message: "Commission cannot exceed 100%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(admin.ID, tt.input)
			require.Error(t, err)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.message, validationErr.Message)
		})
	}

	// Нулевая комиссия допустима: диапазон [0, 100] включительно.
	_, err := repo.Create(admin.ID, CreatePropertyInput{
		Name: "Oak St", RentPerMonth: f64(100), CommissionPercentage: f64(0),
	})
	assert.NoError(t, err)
}

func TestPropertyUpdatePartial(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)
	repo := NewPropertyRepository(db)

	created, err := repo.Create(admin.ID, CreatePropertyInput{
		Name: "Oak St", RentPerMonth: f64(1000), CommissionPercentage: f64(10),
	})
	require.NoError(t, err)

	// Меняется только имя, остальные поля остаются прежними.
	err = repo.Update(created.ID, PropertyPatch{Name: str("Oak Street")})
	require.NoError(t, err)

	fetched, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oak Street", fetched.Name)
	assert.Equal(t, 1000.0, fetched.RentPerMonth)
	assert.Equal(t, 10.0, fetched.CommissionPercentage)
}

func TestPropertyUpdateValidatesPatch(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)
	repo := NewPropertyRepository(db)

	created, err := repo.Create(admin.ID, CreatePropertyInput{
		Name: "Oak St", RentPerMonth: f64(1000), CommissionPercentage: f64(10),
	})
	require.NoError(t, err)

	err = repo.Update(created.ID, PropertyPatch{RentPerMonth: f64(-5)})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Rent must be a positive number", validationErr.Message)
}

func TestPropertyUpdateNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPropertyRepository(db)

	err := repo.Update(9999, PropertyPatch{Name: str("Anything")})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestPropertyDeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPropertyRepository(db)

	assert.ErrorIs(t, repo.Delete(9999), ErrPropertyNotFound)
}

func TestPropertyDelete(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)
	repo := NewPropertyRepository(db)

	created, err := repo.Create(admin.ID, CreatePropertyInput{
		Name: "Oak St", RentPerMonth: f64(1000), CommissionPercentage: f64(10),
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))
	_, err = repo.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestPropertyGetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPropertyRepository(db)

	_, err := repo.GetByID(9999)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestPropertyListPagination(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)
	repo := NewPropertyRepository(db)

	for i := 0; i < 7; i++ {
		_, err := repo.Create(admin.ID, CreatePropertyInput{
			Name: "Property", RentPerMonth: f64(100), CommissionPercentage: f64(1),
		})
		require.NoError(t, err)
	}

	items, totalCount, totalPages, err := repo.List(1, 3)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, int64(7), totalCount)
	assert.Equal(t, 3, totalPages) // ceil(7/3)

	// Порядок - id по убыванию.
	assert.Greater(t, items[0].ID, items[1].ID)
	assert.Greater(t, items[1].ID, items[2].ID)

	// Последняя страница короче.
	items, _, _, err = repo.List(3, 3)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	// Страница за пределами данных пуста, но не ошибочна.
	items, _, _, err = repo.List(10, 3)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPropertyListJoinsTransactions(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)
	repo := NewPropertyRepository(db)
	txRepo := NewTransactionRepository(db)

	created, err := repo.Create(admin.ID, CreatePropertyInput{
		Name: "Oak St", RentPerMonth: f64(1000), CommissionPercentage: f64(10),
	})
	require.NoError(t, err)

	_, err = txRepo.Create(CreateTransactionInput{
		PropertyID: u32(created.ID), Type: models.TransactionDebit,
		Description: "Monthly rent", Amount: f64(1000),
	})
	require.NoError(t, err)

	items, _, _, err := repo.List(1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Len(t, items[0].Transactions, 1)
	assert.Equal(t, "Monthly rent", items[0].Transactions[0].Description)
	require.NotNil(t, items[0].User)
	assert.Equal(t, admin.Email, items[0].User.Email)
}

func TestDistinctNamesTieBreak(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)
	repo := NewPropertyRepository(db)

	first, err := repo.Create(admin.ID, CreatePropertyInput{
		Name: "Oak St", RentPerMonth: f64(1000), CommissionPercentage: f64(10),
	})
	require.NoError(t, err)
	_, err = repo.Create(admin.ID, CreatePropertyInput{
		Name: "Oak St", RentPerMonth: f64(1200), CommissionPercentage: f64(8),
	})
	require.NoError(t, err)
	other, err := repo.Create(admin.ID, CreatePropertyInput{
		Name: "Elm St", RentPerMonth: f64(900), CommissionPercentage: f64(7),
	})
	require.NoError(t, err)

	names, err := repo.DistinctNames()
	require.NoError(t, err)
	require.Len(t, names, 2)

	// По одной записи на имя, при дублях побеждает наименьший id.
	byName := map[string]uint{}
	for _, n := range names {
		byName[n.Name] = n.ID
	}
	assert.Equal(t, first.ID, byName["Oak St"])
	assert.Equal(t, other.ID, byName["Elm St"])
}
