package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/apperr"
	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

func TestRegisterCompanyCreatesProfile(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountService(db)

	user, err := accounts.Register(&dtos.RegisterRequest{
		Username:        "acme",
		Email:           "hr@acme.test",
		Password:        "s3cret-pass",
		Role:            models.RoleCompany,
		FirstName:       "Ada",
		LastName:        "Lovelace",
		CompanyTitle:    "Acme Corp",
		CompanyLocation: "Berlin",
	})
	require.NoError(t, err)

	var company models.Company
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&company).Error)
	assert.Equal(t, "Acme Corp", company.Title)
	assert.Equal(t, "Berlin", company.Location)
	assert.Equal(t, "Welcome to Acme Corp!", company.Description)
	assert.Nil(t, company.Website)
	assert.False(t, company.IsActive)

	var companies int64
	db.Model(&models.Company{}).Where("user_id = ?", user.ID).Count(&companies)
	assert.EqualValues(t, 1, companies)

	var profiles int64
	db.Model(&models.SeekerProfile{}).Count(&profiles)
	assert.EqualValues(t, 0, profiles)
}

func TestRegisterCompanyKeepsSuppliedFields(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountService(db)

	user, err := accounts.Register(&dtos.RegisterRequest{
		Username:           "globex",
		Email:              "hr@globex.test",
		Password:           "s3cret-pass",
		Role:               models.RoleCompany,
		CompanyTitle:       "Globex",
		CompanyDescription: "We make things.",
		CompanyWebsite:     "https://globex.test",
	})
	require.NoError(t, err)

	var company models.Company
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&company).Error)
	assert.Equal(t, "We make things.", company.Description)
	require.NotNil(t, company.Website)
	assert.Equal(t, "https://globex.test", *company.Website)
}

func TestRegisterCompanyRequiresTitle(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountService(db)

	_, err := accounts.Register(&dtos.RegisterRequest{
		Username:     "noname",
		Email:        "noname@example.com",
		Password:     "s3cret-pass",
		Role:         models.RoleCompany,
		CompanyTitle: "   ",
	})
	require.Error(t, err)

	var validation *apperr.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "company_title", validation.Field)

	// Nothing was written: no account, no company.
	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.EqualValues(t, 0, users)
	var companies int64
	db.Model(&models.Company{}).Count(&companies)
	assert.EqualValues(t, 0, companies)
}

func TestRegisterJobSeekerCreatesSeekerProfile(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountService(db)

	user := registerUser(t, accounts, dtos.RegisterRequest{
		Username: "seeker",
		Role:     models.RoleJobSeeker,
	})

	var profiles int64
	db.Model(&models.SeekerProfile{}).Where("user_id = ?", user.ID).Count(&profiles)
	assert.EqualValues(t, 1, profiles)

	var companies int64
	db.Model(&models.Company{}).Count(&companies)
	assert.EqualValues(t, 0, companies)
}

func TestRegisterAdminCreatesNoProfile(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountService(db)

	registerUser(t, accounts, dtos.RegisterRequest{
		Username: "root",
		Role:     models.RoleAdmin,
	})

	var profiles int64
	db.Model(&models.SeekerProfile{}).Count(&profiles)
	assert.EqualValues(t, 0, profiles)
	var companies int64
	db.Model(&models.Company{}).Count(&companies)
	assert.EqualValues(t, 0, companies)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountService(db)

	registerUser(t, accounts, dtos.RegisterRequest{
		Username: "dupe",
		Email:    "first@example.com",
		Role:     models.RoleJobSeeker,
	})

	_, err := accounts.Register(&dtos.RegisterRequest{
		Username: "dupe",
		Email:    "second@example.com",
		Password: "s3cret-pass",
		Role:     models.RoleJobSeeker,
	})
	var validation *apperr.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "username", validation.Field)

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.EqualValues(t, 1, users)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountService(db)

	registerUser(t, accounts, dtos.RegisterRequest{
		Username: "first",
		Email:    "shared@example.com",
		Role:     models.RoleJobSeeker,
	})

	_, err := accounts.Register(&dtos.RegisterRequest{
		Username: "second",
		Email:    "shared@example.com",
		Password: "s3cret-pass",
		Role:     models.RoleJobSeeker,
	})
	var validation *apperr.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "email", validation.Field)

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.EqualValues(t, 1, users)
}

func TestRegisterHashesPassword(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountService(db)

	user := registerUser(t, accounts, dtos.RegisterRequest{
		Username: "hasher",
		Password: "plaintext-here",
		Role:     models.RoleJobSeeker,
	})

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "plaintext-here", stored.PasswordHash)
	assert.True(t, auth.CheckPassword(stored.PasswordHash, "plaintext-here"))
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountService(db)

	registerUser(t, accounts, dtos.RegisterRequest{
		Username: "login-user",
		Password: "correct-horse",
		Role:     models.RoleJobSeeker,
	})

	token, user, err := accounts.Login(&dtos.LoginRequest{Username: "login-user", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// RequireAuth accepts what Login issued.
	id, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)

	_, _, err = accounts.Login(&dtos.LoginRequest{Username: "login-user", Password: "wrong"})
	assert.Error(t, err)

	_, _, err = accounts.Login(&dtos.LoginRequest{Username: "nobody", Password: "correct-horse"})
	assert.Error(t, err)
}
