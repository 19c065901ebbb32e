package handlers

import (
	"ClinicaViva/models"
	"ClinicaViva/services"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	appointment.UserID = userID

	if err := h.service.Create(c.Request.Context(), &appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, appointment)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.service.GetByID(c.Request.Context(), userID, c.Param("appointment_id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if appointment == nil {
		c.JSON(404, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(200, appointment)
}

// GetAllAppointments lists the user's appointments; optional from/to query
// parameters bound the appointment date.
func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	from := c.DefaultQuery("from", "")
	to := c.DefaultQuery("to", "")

	appointments, err := h.service.GetAll(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointments)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	appointment.ID = c.Param("appointment_id")
	appointment.UserID = userID

	if err := h.service.Update(c.Request.Context(), &appointment); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, c.Param("appointment_id")); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Appointment deleted"})
}
