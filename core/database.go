package core

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens (or creates) the development database and migrates the
// schema. Use ":memory:" in tests.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&Employee{}, &User{}, &OtpChallenge{}, &TimeRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return db, nil
}

// SeedEmployees inserts the development roster once. Registration only
// accepts employee numbers present here, which is what makes
// "Employee Number does not exist!" reachable in local testing.
func SeedEmployees(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Employee{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	employees := []Employee{
		{EmployeeNumber: "EMP-1001", FirstName: "Maria", Surname: "Santos", WorkMode: "Onsite"},
		{EmployeeNumber: "EMP-1002", FirstName: "Jose", Surname: "Reyes", WorkMode: "Online"},
		{EmployeeNumber: "EMP-1003", FirstName: "Ana", Surname: "Cruz", WorkMode: "Onsite"},
		{EmployeeNumber: "EMP-1004", FirstName: "Paolo", Surname: "Garcia", WorkMode: "Online"},
	}

	return db.Create(&employees).Error
}
