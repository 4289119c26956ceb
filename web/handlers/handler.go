package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"rcauthy.net/rcauthy/core"
	"rcauthy.net/rcauthy/infrastructure/communication"
	"rcauthy.net/rcauthy/web/middlewares"
)

type Handler struct {
	Svc          *core.Service
	SigningKey   []byte
	Base64Secret string
	TokenTTL     time.Duration
	Notifier     *communication.Notifier
}

// reject writes a plain-text rejection. The body is written verbatim,
// never interpreted as a format string, since front-ends display it
// as-is.
func reject(c *gin.Context, status int, message string) {
	c.String(status, "%s", message)
}

// Register wires the service's public and bearer-protected routes.
func (h *Handler) Register(r *gin.Engine) {
	user := r.Group("/user")
	{
		user.POST("/login", h.Login)
		user.POST("/register", h.RegisterUser)
		user.POST("/verify-otp", h.VerifyOtp)
	}

	protected := r.Group("/")
	protected.Use(middlewares.Authentication(h.SigningKey))
	{
		protected.POST("/authenticator/getAuthenticatorCode", h.AuthenticatorCode)
		protected.POST("/time-record/addTimeIn", h.AddTimeIn)
		protected.POST("/time-record/addTimeOut", h.AddTimeOut)
		protected.POST("/time-record/getUserLogs", h.UserLogs)
	}
}
