package utils

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/anjiri1684/exercise_platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Team{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestGenerateUniqueInviteCode(t *testing.T) {
	db := setupTestDB(t)

	code, err := GenerateUniqueInviteCode(db)
	require.NoError(t, err)
	assert.Len(t, code, inviteCodeLength)

	for _, r := range code {
		assert.True(t, strings.ContainsRune(letterBytes, r), "unexpected character %q in code", r)
	}
}

func TestGenerateUniqueInviteCode_AvoidsExistingCodes(t *testing.T) {
	db := setupTestDB(t)

	isFalse := false
	owner := &models.User{
		Name:     "Owner",
		Email:    "owner@example.com",
		Password: "secret123",
		Teacher:  &isFalse,
		Admin:    &isFalse,
	}
	require.NoError(t, db.Create(owner).Error)

	taken, err := GenerateUniqueInviteCode(db)
	require.NoError(t, err)

	team := &models.Team{Name: "Taken", InviteCode: taken, OwnerID: owner.ID}
	require.NoError(t, db.Create(team).Error)

	code, err := GenerateUniqueInviteCode(db)
	require.NoError(t, err)
	assert.NotEqual(t, taken, code)
}
