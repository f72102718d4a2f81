package handlers

import (
	"net/http"

	"github.com/gartstein/hrms/internal/hrms/models"
	"github.com/gin-gonic/gin"
)

// CreateEmployee handles POST /employees.
func (h *Handler) CreateEmployee(c *gin.Context) {
	var in models.EmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.writeError(c, bindError(err))
		return
	}

	created, err := h.employees.CreateEmployee(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEmployeeResponse(created))
}

// ListEmployees handles GET /employees.
func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.employees.ListEmployees(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := employeeListResponse{
		Employees: make([]employeeResponse, 0, len(employees)),
		Total:     len(employees),
	}
	for i := range employees {
		resp.Employees = append(resp.Employees, toEmployeeResponse(&employees[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteEmployee handles DELETE /employees/:employee_id.
func (h *Handler) DeleteEmployee(c *gin.Context) {
	code := models.EmployeeCode(c.Param("employee_id"))
	if err := h.employees.DeleteEmployee(c.Request.Context(), code); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
