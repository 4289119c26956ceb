package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rcauthy.net/rcauthy/web/common"
)

func (h *Handler) AuthenticatorCode(c *gin.Context) {
	var req EmployeePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		reject(c, http.StatusBadRequest, common.FormatBindingError(err))
		return
	}

	code, err := h.Svc.AuthenticatorCode(req.Employee.EmployeeNumber, h.SigningKey, time.Now())
	if err != nil {
		reject(c, http.StatusBadRequest, err.Error())
		return
	}

	c.String(http.StatusOK, "%s", code)
}
