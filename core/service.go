package core

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rcauthy.net/rcauthy/security"
	"rcauthy.net/rcauthy/utils"
)

// The literal rejection strings of the service contract. The mobile and
// terminal front-ends display these verbatim, so the wording is frozen.
var (
	ErrUsernameNotFound        = errors.New("Username not found!")
	ErrIncorrectPassword       = errors.New("Incorrect Password!")
	ErrTwoFactorRequired       = errors.New("2FA is required!")
	ErrAccountLocked           = errors.New("User account is locked")
	ErrDeviceMismatch          = errors.New("Device ID mismatch. Access denied.")
	ErrDeviceAlreadyRegistered = errors.New("Device already registered to an account.")
	ErrDeviceReRegistered      = errors.New("User Successfully Re-registered!")
	ErrUsernameExists          = errors.New("Username already exists.")
	ErrUserAlreadyRegistered   = errors.New("This user is already registered!")
	ErrEmployeeNotFound        = errors.New("Employee Number does not exist!")
	ErrWeakPassword            = errors.New("Please create a stronger password. Password should contain special characters.")
	ErrEmptyPassword           = errors.New("Password cannot be null or empty")
	ErrAlreadyTimedIn          = errors.New("You have already timed in today!")
	ErrNotTimedIn              = errors.New("You haven't timed in yet!")
	ErrInvalidOtp              = errors.New("Invalid OTP. Please try again.")
)

const maxFailedAttempts = 5

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Authenticate checks credentials and device binding. On success the
// returned identity feeds token creation; several failure paths also
// mutate state (lockout counter, device re-binding, OTP issuance).
func (s *Service) Authenticate(username, password, deviceID string) (*security.Identity, error) {
	var user User
	err := s.db.Preload("Employee").Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUsernameNotFound
	}
	if err != nil {
		return nil, err
	}

	if user.Locked {
		return nil, ErrAccountLocked
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		user.FailedAttempts++
		if user.FailedAttempts >= maxFailedAttempts {
			user.Locked = true
		}
		if err := s.db.Save(&user).Error; err != nil {
			return nil, err
		}
		if user.Locked {
			return nil, ErrAccountLocked
		}
		return nil, ErrIncorrectPassword
	}

	if user.DeviceID == "" {
		// Binding was reset by an admin; adopt the new device and tell
		// the user to press login again.
		user.DeviceID = deviceID
		if err := s.db.Save(&user).Error; err != nil {
			return nil, err
		}
		return nil, ErrDeviceReRegistered
	}

	if user.DeviceID != deviceID {
		return nil, ErrDeviceMismatch
	}

	if !user.Verified {
		if _, err := s.issueOtp(user.Username); err != nil {
			return nil, err
		}
		return nil, ErrTwoFactorRequired
	}

	user.FailedAttempts = 0
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	return &security.Identity{
		Username:       user.Username,
		EmployeeNumber: user.Employee.EmployeeNumber,
		DeviceID:       user.DeviceID,
		Authorities:    []string{"ROLE_EMPLOYEE"},
	}, nil
}

// RegisterUser creates an unverified account bound to the device and
// issues the first OTP challenge. Returns the challenge code so the
// caller can log it (the development stand-in for SMS delivery).
func (s *Service) RegisterUser(username, password, deviceID, employeeNumber string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if !strings.ContainsAny(password, "!@#$%^&*()_-+=[]{}|;:,.<>?/") {
		return "", ErrWeakPassword
	}

	var employee Employee
	err := s.db.Where("employee_number = ?", employeeNumber).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrEmployeeNotFound
	}
	if err != nil {
		return "", err
	}

	var count int64
	if err := s.db.Model(&User{}).Where("employee_id = ?", employee.EmployeeID).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrUserAlreadyRegistered
	}

	if err := s.db.Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrUsernameExists
	}

	if err := s.db.Model(&User{}).Where("device_id = ?", deviceID).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrDeviceAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := User{
		Username:     username,
		PasswordHash: string(hash),
		DeviceID:     deviceID,
		EmployeeID:   employee.EmployeeID,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", err
	}

	return s.issueOtp(username)
}

func (s *Service) issueOtp(username string) (string, error) {
	var n uint32
	if err := binary.Read(rand.Reader, binary.BigEndian, &n); err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n%1000000)

	challenge := OtpChallenge{Username: username, Code: code}
	if err := s.db.Create(&challenge).Error; err != nil {
		return "", err
	}

	return code, nil
}

// PendingOtp returns the latest unused challenge code for a username.
// Development helper; the real service delivers codes out of band.
func (s *Service) PendingOtp(username string) (string, error) {
	var challenge OtpChallenge
	err := s.db.Where("username = ? AND used = ?", username, false).
		Order("created_at DESC, id DESC").First(&challenge).Error
	if err != nil {
		return "", err
	}
	return challenge.Code, nil
}

// VerifyOtp consumes the latest unused challenge and marks the account
// verified.
func (s *Service) VerifyOtp(username, code string) error {
	var challenge OtpChallenge
	err := s.db.Where("username = ? AND used = ?", username, false).
		Order("created_at DESC, id DESC").First(&challenge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidOtp
	}
	if err != nil {
		return err
	}

	if challenge.Code != code {
		return ErrInvalidOtp
	}

	challenge.Used = true
	if err := s.db.Save(&challenge).Error; err != nil {
		return err
	}

	return s.db.Model(&User{}).Where("username = ?", username).
		Update("verified", true).Error
}

func (s *Service) findEmployee(employeeNumber string) (*Employee, error) {
	var employee Employee
	err := s.db.Where("employee_number = ?", employeeNumber).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// AddTimeIn opens today's record. One record per employee per day, so a
// second time-in is rejected even after the first was timed out.
func (s *Service) AddTimeIn(employeeNumber string) error {
	employee, err := s.findEmployee(employeeNumber)
	if err != nil {
		return err
	}

	now := utils.ManilaNow()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var count int64
	if err := s.db.Model(&TimeRecord{}).
		Where("employee_id = ? AND created_at >= ?", employee.EmployeeID, dayStart).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyTimedIn
	}

	record := TimeRecord{
		ID:         uuid.New().String(),
		EmployeeID: employee.EmployeeID,
		CreatedAt:  now,
		TimeIn:     &now,
		Type:       employee.WorkMode,
	}

	return s.db.Create(&record).Error
}

// AddTimeOut closes the open record and derives the total hours.
func (s *Service) AddTimeOut(employeeNumber string) error {
	employee, err := s.findEmployee(employeeNumber)
	if err != nil {
		return err
	}

	open, err := s.openRecord(employee.EmployeeID)
	if err != nil {
		return err
	}
	if open == nil {
		return ErrNotTimedIn
	}

	now := utils.ManilaNow()
	open.TimeOut = &now
	open.TotalHours = math.Round(now.Sub(*open.TimeIn).Hours()*100) / 100

	return s.db.Save(open).Error
}

func (s *Service) openRecord(employeeID uint) (*TimeRecord, error) {
	var record TimeRecord
	err := s.db.Where("employee_id = ? AND time_in IS NOT NULL AND time_out IS NULL", employeeID).
		Order("created_at DESC").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// UserLogs returns every record for the employee, newest first.
func (s *Service) UserLogs(employeeNumber string) ([]TimeRecord, error) {
	employee, err := s.findEmployee(employeeNumber)
	if err != nil {
		return nil, err
	}

	var records []TimeRecord
	if err := s.db.Where("employee_id = ?", employee.EmployeeID).
		Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// AuthenticatorCode derives the employee's rotating six-digit code from
// the signing secret and a 30-second time step.
func (s *Service) AuthenticatorCode(employeeNumber string, secret []byte, now time.Time) (string, error) {
	employee, err := s.findEmployee(employeeNumber)
	if err != nil {
		return "", err
	}

	step := uint64(now.Unix() / 30)
	mac := hmac.New(sha1.New, secret)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], step)
	mac.Write(buf[:])
	mac.Write([]byte(employee.EmployeeNumber))
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	value := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	return fmt.Sprintf("%06d", value%1000000), nil
}
