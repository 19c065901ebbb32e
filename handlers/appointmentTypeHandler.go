package handlers

import (
	"ClinicaViva/models"
	"ClinicaViva/services"
	"errors"

	"github.com/gin-gonic/gin"
)

type AppointmentTypeHandler struct {
	service *services.AppointmentTypeService
}

func NewAppointmentTypeHandler(service *services.AppointmentTypeService) *AppointmentTypeHandler {
	return &AppointmentTypeHandler{service: service}
}

func (h *AppointmentTypeHandler) CreateAppointmentType(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	var appointmentType models.AppointmentType
	if err := c.ShouldBindJSON(&appointmentType); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	appointmentType.UserID = userID

	if err := h.service.Create(c.Request.Context(), &appointmentType); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, appointmentType)
}

func (h *AppointmentTypeHandler) GetAllAppointmentTypes(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	appointmentTypes, err := h.service.GetAll(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointmentTypes)
}

func (h *AppointmentTypeHandler) GetAppointmentTypeByID(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	appointmentType, err := h.service.GetByID(c.Request.Context(), userID, c.Param("type_id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if appointmentType == nil {
		c.JSON(404, gin.H{"error": "Appointment type not found"})
		return
	}
	c.JSON(200, appointmentType)
}

func (h *AppointmentTypeHandler) UpdateAppointmentType(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	var appointmentType models.AppointmentType
	if err := c.ShouldBindJSON(&appointmentType); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	appointmentType.ID = c.Param("type_id")
	appointmentType.UserID = userID

	if err := h.service.Update(c.Request.Context(), &appointmentType); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointmentType)
}

// DeleteAppointmentType refuses with 409 while any appointment still
// references the type; that refusal is a business rule, not a failure.
func (h *AppointmentTypeHandler) DeleteAppointmentType(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, c.Param("type_id")); err != nil {
		if errors.Is(err, services.ErrAppointmentTypeInUse) {
			c.JSON(409, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Appointment type deleted"})
}
