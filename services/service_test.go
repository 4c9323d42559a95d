package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/archidesk/access"
	"github.com/archidesk/config"
	"github.com/archidesk/database"
	"github.com/archidesk/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "password123"

func testConfig() config.Config {
	return config.Config{
		JWTSecret:    "test-secret",
		TokenExpiry:  time.Hour,
		AdminCode:    "ADMIN123",
		DefaultLimit: 10,
		MaxLimit:     100,
	}
}

// setupTestDB points the package-wide connection at a fresh in-memory
// database for the duration of one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory store.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		sqlDB.Close()
	})
}

var seedSeq int

func seedUser(t *testing.T, name string, role models.Role) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	seedSeq++
	user := models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s-%d@example.com", name, seedSeq),
		Phone:    "5551234567",
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func callerFor(u models.User) access.Caller {
	return access.Caller{ID: u.ID, Role: u.Role}
}

func seedProject(t *testing.T, architect, client models.User) models.Project {
	t.Helper()

	project := models.Project{
		Title:       "Harbor House",
		Description: "Two-storey residence by the harbor",
		Status:      models.ProjectStatusPlanning,
		Phase:       models.ProjectPhasePlanning,
		ArchitectID: architect.ID,
		ClientID:    client.ID,
	}
	require.NoError(t, database.DB.Create(&project).Error)
	return project
}
