package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the HTTP API routes and middleware.
func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), AccessLog(logger), Recovery(logger))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders:   []string{requestIDHeader},
	}))

	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/dashboard", h.Dashboard)

	employees := r.Group("/employees")
	{
		employees.POST("", h.CreateEmployee)
		employees.GET("", h.ListEmployees)
		employees.DELETE("/:employee_id", h.DeleteEmployee)
	}

	attendance := r.Group("/attendance")
	{
		attendance.POST("", h.MarkAttendance)
		attendance.GET("", h.ListAttendance)
		attendance.GET("/:employee_id", h.EmployeeAttendance)
	}

	return r
}
