package handlers

import (
	"ClinicaViva/models"
	"ClinicaViva/services"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	patient.CreatedBy = userID

	if err := h.service.Create(c.Request.Context(), &patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, patient)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.service.GetByID(c.Request.Context(), userID, c.Param("patient_id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if patient == nil {
		c.JSON(404, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	patients, err := h.service.GetAll(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, patients)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	patient.ID = c.Param("patient_id")
	patient.CreatedBy = userID

	if err := h.service.Update(c.Request.Context(), &patient); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, c.Param("patient_id")); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Patient deleted"})
}
