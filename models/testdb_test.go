package models

import (
	"path/filepath"
	"testing"

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

	err = db.AutoMigrate(
		&User{},
		&Team{},
		&Exercise{},
		&Question{},
		&QuestionDependency{},
		&TestCase{},
		&Answer{},
		&AnswerTestCaseResult{},
		&Certificate{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func boolPtr(b bool) *bool {
	return &b
}

func validUser(name, email string) *User {
	return &User{
		Name:     name,
		Email:    email,
		Password: "secret123",
		Teacher:  boolPtr(false),
		Admin:    boolPtr(false),
	}
}
