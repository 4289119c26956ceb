package handlers

import (
	"time"

	"rcauthy.net/rcauthy/core"
	"rcauthy.net/rcauthy/utils"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	DeviceID string `json:"deviceId" binding:"required"`
}

type RegisterRequest struct {
	User struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password"`
		DeviceID string `json:"deviceId" binding:"required"`
	} `json:"user" binding:"required"`
	Employee EmployeeRef `json:"employee" binding:"required"`
}

type VerifyOtpRequest struct {
	Username string `json:"username" binding:"required"`
	Otp      string `json:"otp" binding:"required"`
}

type EmployeeRef struct {
	EmployeeNumber string `json:"employeeNumber" binding:"required"`
}

type EmployeePayload struct {
	Employee EmployeeRef `json:"employee" binding:"required"`
}

type LogEntryDTO struct {
	ID         string  `json:"id"`
	CreatedAt  string  `json:"createdAt"`
	TimeIn     *string `json:"timeIn"`
	TimeOut    *string `json:"timeOut"`
	TotalHours float64 `json:"totalHours"`
	Type       string  `json:"type"`
}

func toLogEntryDTO(r core.TimeRecord) LogEntryDTO {
	dto := LogEntryDTO{
		ID:         r.ID,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		TotalHours: r.TotalHours,
		Type:       r.Type,
	}
	if r.TimeIn != nil {
		dto.TimeIn = utils.Ptr(r.TimeIn.Format(time.RFC3339))
	}
	if r.TimeOut != nil {
		dto.TimeOut = utils.Ptr(r.TimeOut.Format(time.RFC3339))
	}
	return dto
}
