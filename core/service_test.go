package core

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"rcauthy.net/rcauthy/utils"
)

func testService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.Create(&Employee{EmployeeNumber: "EMP-1001", FirstName: "Maria", Surname: "Santos", WorkMode: "Onsite"}).Error; err != nil {
		t.Fatalf("failed to seed employee: %v", err)
	}
	return NewService(db), db
}

func register(t *testing.T, svc *Service, username, deviceID string) string {
	t.Helper()
	otp, err := svc.RegisterUser(username, "secret!pw", deviceID, "EMP-1001")
	if err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	return otp
}

func TestRegisterValidation(t *testing.T) {
	svc, db := testService(t)

	_, err := svc.RegisterUser("maria", "", "device-1", "EMP-1001")
	assert.ErrorIs(t, err, ErrEmptyPassword)

	_, err = svc.RegisterUser("maria", "nospecialchars", "device-1", "EMP-1001")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.RegisterUser("maria", "secret!pw", "device-1", "EMP-9999")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	register(t, svc, "maria", "device-1")

	// Same employee, new username.
	_, err = svc.RegisterUser("maria2", "secret!pw", "device-2", "EMP-1001")
	assert.ErrorIs(t, err, ErrUserAlreadyRegistered)

	// Same username against a second employee.
	if err := db.Create(&Employee{EmployeeNumber: "EMP-1002"}).Error; err != nil {
		t.Fatal(err)
	}
	_, err = svc.RegisterUser("maria", "secret!pw", "device-2", "EMP-1002")
	assert.ErrorIs(t, err, ErrUsernameExists)

	// Same device against a second employee.
	_, err = svc.RegisterUser("jose", "secret!pw", "device-1", "EMP-1002")
	assert.ErrorIs(t, err, ErrDeviceAlreadyRegistered)
}

func TestAuthenticateFlow(t *testing.T) {
	svc, _ := testService(t)
	register(t, svc, "maria", "device-1")

	// Unverified account demands 2FA.
	_, err := svc.Authenticate("maria", "secret!pw", "device-1")
	assert.ErrorIs(t, err, ErrTwoFactorRequired)

	assert.ErrorIs(t, svc.VerifyOtp("maria", "000000"), ErrInvalidOtp)

	// Authenticate issued a fresh challenge on top of the registration
	// one; the latest unused code is the one VerifyOtp consumes.
	latest := latestOtp(t, svc, "maria")
	if err := svc.VerifyOtp("maria", latest); err != nil {
		t.Fatalf("failed to verify otp: %v", err)
	}

	identity, err := svc.Authenticate("maria", "secret!pw", "device-1")
	if err != nil {
		t.Fatalf("failed to authenticate: %v", err)
	}
	assert.Equal(t, "maria", identity.Username)
	assert.Equal(t, "EMP-1001", identity.EmployeeNumber)
}

func latestOtp(t *testing.T, svc *Service, username string) string {
	t.Helper()
	code, err := svc.PendingOtp(username)
	if err != nil {
		t.Fatalf("no pending otp: %v", err)
	}
	return code
}

func verify(t *testing.T, svc *Service, username string) {
	t.Helper()
	if err := svc.VerifyOtp(username, latestOtp(t, svc, username)); err != nil {
		t.Fatalf("failed to verify: %v", err)
	}
}

func TestAuthenticateRejections(t *testing.T) {
	svc, _ := testService(t)
	register(t, svc, "maria", "device-1")
	verify(t, svc, "maria")

	_, err := svc.Authenticate("nobody", "secret!pw", "device-1")
	assert.ErrorIs(t, err, ErrUsernameNotFound)

	_, err = svc.Authenticate("maria", "wrong", "device-1")
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	_, err = svc.Authenticate("maria", "secret!pw", "other-device")
	assert.ErrorIs(t, err, ErrDeviceMismatch)
}

func TestLockoutAfterRepeatedFailures(t *testing.T) {
	svc, _ := testService(t)
	register(t, svc, "maria", "device-1")
	verify(t, svc, "maria")

	var err error
	for i := 0; i < maxFailedAttempts; i++ {
		_, err = svc.Authenticate("maria", "wrong", "device-1")
	}
	assert.ErrorIs(t, err, ErrAccountLocked)

	// Correct password no longer helps.
	_, err = svc.Authenticate("maria", "secret!pw", "device-1")
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestDeviceReRegistration(t *testing.T) {
	svc, db := testService(t)
	register(t, svc, "maria", "device-1")
	verify(t, svc, "maria")

	// Admin clears the binding; next login adopts the new device and
	// asks the user to press again.
	if err := db.Model(&User{}).Where("username = ?", "maria").Update("device_id", "").Error; err != nil {
		t.Fatal(err)
	}

	_, err := svc.Authenticate("maria", "secret!pw", "device-2")
	assert.ErrorIs(t, err, ErrDeviceReRegistered)

	identity, err := svc.Authenticate("maria", "secret!pw", "device-2")
	if err != nil {
		t.Fatalf("second attempt should succeed: %v", err)
	}
	assert.Equal(t, "device-2", identity.DeviceID)
}

func TestTimeInOut(t *testing.T) {
	svc, _ := testService(t)

	assert.ErrorIs(t, svc.AddTimeOut("EMP-1001"), ErrNotTimedIn)

	if err := svc.AddTimeIn("EMP-1001"); err != nil {
		t.Fatalf("failed to time in: %v", err)
	}
	assert.ErrorIs(t, svc.AddTimeIn("EMP-1001"), ErrAlreadyTimedIn)

	if err := svc.AddTimeOut("EMP-1001"); err != nil {
		t.Fatalf("failed to time out: %v", err)
	}

	// One record per day: timing out does not reopen the day.
	assert.ErrorIs(t, svc.AddTimeIn("EMP-1001"), ErrAlreadyTimedIn)

	logs, err := svc.UserLogs("EMP-1001")
	if err != nil {
		t.Fatalf("failed to fetch logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(logs))
	}
	assert.Equal(t, "Onsite", logs[0].Type)
	assert.NotNil(t, logs[0].TimeIn)
	assert.NotNil(t, logs[0].TimeOut)
	assert.GreaterOrEqual(t, logs[0].TotalHours, 0.0)
}

func TestTimeInNewDay(t *testing.T) {
	svc, db := testService(t)

	var employee Employee
	if err := db.Where("employee_number = ?", "EMP-1001").First(&employee).Error; err != nil {
		t.Fatal(err)
	}

	// Yesterday's closed record does not block today's time-in.
	yesterday := utils.ManilaNow().AddDate(0, 0, -1)
	record := TimeRecord{
		ID:         "r-yesterday",
		EmployeeID: employee.EmployeeID,
		CreatedAt:  yesterday,
		TimeIn:     &yesterday,
		TimeOut:    &yesterday,
		TotalHours: 8,
		Type:       "Onsite",
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatal(err)
	}

	if err := svc.AddTimeIn("EMP-1001"); err != nil {
		t.Fatalf("failed to time in on a new day: %v", err)
	}
}

func TestAuthenticatorCode(t *testing.T) {
	svc, _ := testService(t)
	secret := []byte("test-secret")
	now := time.Date(2025, 8, 1, 8, 0, 0, 0, time.UTC)

	code, err := svc.AuthenticatorCode("EMP-1001", secret, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)

	// Stable within a 30-second step, rotates across steps.
	again, _ := svc.AuthenticatorCode("EMP-1001", secret, now.Add(10*time.Second))
	assert.Equal(t, code, again)

	later, _ := svc.AuthenticatorCode("EMP-1001", secret, now.Add(30*time.Second))
	assert.NotEqual(t, code, later)

	_, err = svc.AuthenticatorCode("EMP-9999", secret, now)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}
