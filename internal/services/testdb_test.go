package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobboard/internal/database"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

// setupTestDB opens a per-test in-memory sqlite database with the full
// schema. cache=shared keeps GORM's pooled connections on the same store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func registerUser(t *testing.T, accounts *AccountService, req dtos.RegisterRequest) *models.User {
	t.Helper()
	if req.Password == "" {
		req.Password = "s3cret-pass"
	}
	if req.Email == "" {
		req.Email = req.Username + "@example.com"
	}
	user, err := accounts.Register(&req)
	require.NoError(t, err)
	return user
}

func activateCompany(t *testing.T, db *gorm.DB, userID uint) *models.Company {
	t.Helper()
	var company models.Company
	require.NoError(t, db.Where("user_id = ?", userID).First(&company).Error)
	require.NoError(t, db.Model(&company).Update("is_active", true).Error)
	company.IsActive = true
	return &company
}
