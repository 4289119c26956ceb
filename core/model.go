package core

import "time"

type Employee struct {
	EmployeeID     uint   `gorm:"primaryKey;autoIncrement"`
	EmployeeNumber string `gorm:"uniqueIndex"`
	FirstName      string
	Surname        string
	WorkMode       string `gorm:"default:Onsite"` // Onsite or Online
}

type User struct {
	UserID         uint   `gorm:"primaryKey;autoIncrement"`
	Username       string `gorm:"uniqueIndex"`
	PasswordHash   string
	DeviceID       string `gorm:"index"`
	EmployeeID     uint   `gorm:"uniqueIndex"`
	Employee       Employee
	Verified       bool
	Locked         bool
	FailedAttempts int
	CreatedAt      time.Time
}

type OtpChallenge struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"index"`
	Code      string
	Used      bool
	CreatedAt time.Time
}

type TimeRecord struct {
	ID         string `gorm:"primaryKey"`
	EmployeeID uint   `gorm:"index"`
	CreatedAt  time.Time
	TimeIn     *time.Time
	TimeOut    *time.Time
	TotalHours float64
	Type       string // Onsite or Online
}
