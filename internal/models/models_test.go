package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&Profile{}, &ProfileHistory{}, &WaterLog{}, &FoodLog{}, &WorkoutLog{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestProfileGetsID(t *testing.T) {
	db := setupTestDB(t)
	profile := &Profile{UserID: 42, Weight: 70, Height: 175, Age: 30}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
	if profile.ID == uuid.Nil {
		t.Error("Profile ID should be set after creation")
	}
}

func TestProfileUserIDUnique(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Create(&Profile{UserID: 7, Weight: 70, Height: 175, Age: 30}).Error; err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
	if err := db.Create(&Profile{UserID: 7, Weight: 80, Height: 180, Age: 40}).Error; err == nil {
		t.Error("Expected unique constraint violation for duplicate user_id")
	}
}

func TestWaterLogIdentity(t *testing.T) {
	db := setupTestDB(t)
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2024, 5, 1, 1, 30, 0, 0, loc)

	entry := &WaterLog{UserID: 1, Amount: 250, Timestamp: ts}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("Failed to create water log: %v", err)
	}
	if entry.ID == uuid.Nil {
		t.Error("WaterLog ID should be set after creation")
	}
	if entry.Timestamp.Location() != time.UTC {
		t.Errorf("Timestamp should be stored in UTC, got %v", entry.Timestamp.Location())
	}
	if !entry.Timestamp.Equal(ts) {
		t.Errorf("Timestamp instant changed: got %v want %v", entry.Timestamp, ts)
	}
}

func TestLogTimestampDefaultsToNow(t *testing.T) {
	db := setupTestDB(t)
	before := time.Now().Add(-time.Second)
	entry := &WorkoutLog{UserID: 1, WorkoutType: "running", Duration: 30, CaloriesBurned: 280}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("Failed to create workout log: %v", err)
	}
	if entry.Timestamp.Before(before) {
		t.Errorf("Timestamp should default to now, got %v", entry.Timestamp)
	}
}
