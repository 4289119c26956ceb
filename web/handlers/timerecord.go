package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rcauthy.net/rcauthy/utils"
	"rcauthy.net/rcauthy/web/common"
)

func (h *Handler) AddTimeIn(c *gin.Context) {
	var req EmployeePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		reject(c, http.StatusBadRequest, common.FormatBindingError(err))
		return
	}

	if err := h.Svc.AddTimeIn(req.Employee.EmployeeNumber); err != nil {
		reject(c, http.StatusBadRequest, err.Error())
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handler) AddTimeOut(c *gin.Context) {
	var req EmployeePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		reject(c, http.StatusBadRequest, common.FormatBindingError(err))
		return
	}

	if err := h.Svc.AddTimeOut(req.Employee.EmployeeNumber); err != nil {
		reject(c, http.StatusBadRequest, err.Error())
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handler) UserLogs(c *gin.Context) {
	var req EmployeePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		reject(c, http.StatusBadRequest, common.FormatBindingError(err))
		return
	}

	records, err := h.Svc.UserLogs(req.Employee.EmployeeNumber)
	if err != nil {
		reject(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, utils.Map(records, toLogEntryDTO))
}
