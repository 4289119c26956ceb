package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"rcauthy.net/rcauthy/core"
	"rcauthy.net/rcauthy/security"
	"rcauthy.net/rcauthy/web/common"
)

// Login authenticates and hands the session token back in the jwt-token
// response header; the body carries the employee number. Rejections are
// plain-text bodies the front-ends display verbatim.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		reject(c, http.StatusBadRequest, common.FormatBindingError(err))
		return
	}

	identity, err := h.Svc.Authenticate(req.Username, req.Password, req.DeviceID)
	if err != nil {
		if errors.Is(err, core.ErrAccountLocked) {
			h.Notifier.Error(fmt.Sprintf("Account locked: %s", req.Username))
		}
		reject(c, statusForAuthError(err), err.Error())
		return
	}

	token, err := security.CreateSessionToken(identity, h.Base64Secret, h.TokenTTL)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to create session token")
		return
	}

	c.Header("jwt-token", token)
	c.String(http.StatusOK, "%s", identity.EmployeeNumber)
}

func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		reject(c, http.StatusBadRequest, common.FormatBindingError(err))
		return
	}

	otp, err := h.Svc.RegisterUser(
		req.User.Username,
		req.User.Password,
		req.User.DeviceID,
		req.Employee.EmployeeNumber,
	)
	if err != nil {
		reject(c, http.StatusBadRequest, err.Error())
		return
	}

	// Development stand-in for OTP delivery.
	fmt.Printf("[OTP] %s -> %s\n", req.User.Username, otp)
	h.Notifier.Info(fmt.Sprintf("New registration: %s (%s)", req.User.Username, req.Employee.EmployeeNumber))

	c.String(http.StatusOK, "Registered. Verify the OTP sent to you.")
}

func (h *Handler) VerifyOtp(c *gin.Context) {
	var req VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		reject(c, http.StatusBadRequest, common.FormatBindingError(err))
		return
	}

	if err := h.Svc.VerifyOtp(req.Username, req.Otp); err != nil {
		reject(c, http.StatusBadRequest, err.Error())
		return
	}

	c.String(http.StatusOK, "OTP verified.")
}

func statusForAuthError(err error) int {
	switch {
	case errors.Is(err, core.ErrUsernameNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrIncorrectPassword),
		errors.Is(err, core.ErrAccountLocked),
		errors.Is(err, core.ErrDeviceMismatch),
		errors.Is(err, core.ErrTwoFactorRequired):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrDeviceReRegistered):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
