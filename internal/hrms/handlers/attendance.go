package handlers

import (
	"net/http"

	e "github.com/gartstein/hrms/internal/hrms/errors"
	"github.com/gartstein/hrms/internal/hrms/models"
	"github.com/gin-gonic/gin"
)

// MarkAttendance handles POST /attendance.
func (h *Handler) MarkAttendance(c *gin.Context) {
	var in models.AttendanceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.writeError(c, bindError(err))
		return
	}

	marked, err := h.attendance.MarkAttendance(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMarkedAttendanceResponse(marked))
}

// EmployeeAttendance handles GET /attendance/:employee_id.
func (h *Handler) EmployeeAttendance(c *gin.Context) {
	from, err := dateQuery(c, "from_date")
	if err != nil {
		h.writeError(c, err)
		return
	}
	to, err := dateQuery(c, "to_date")
	if err != nil {
		h.writeError(c, err)
		return
	}

	code := models.EmployeeCode(c.Param("employee_id"))
	history, err := h.attendance.ListEmployeeAttendance(c.Request.Context(), code, models.DateRange{From: from, To: to})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeAttendanceResponse(history))
}

// ListAttendance handles GET /attendance.
func (h *Handler) ListAttendance(c *gin.Context) {
	on, err := dateQuery(c, "on_date")
	if err != nil {
		h.writeError(c, err)
		return
	}

	overview, err := h.attendance.ListAttendance(c.Request.Context(), on)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAttendanceOverviewResponse(overview))
}

// dateQuery parses an optional YYYY-MM-DD query parameter.
func dateQuery(c *gin.Context, name string) (*models.Date, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, e.Invalid(name, err.Error())
	}
	return &d, nil
}
