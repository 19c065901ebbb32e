package controllers

import (
	"ClinicaViva/handlers"
	"ClinicaViva/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupClinicRoutes registers the clinic CRUD and report routes. Every route
// requires a valid session token; the owner scoping comes from the token.
func SetupClinicRoutes(router *gin.Engine, patientHandler *handlers.PatientHandler, appointmentTypeHandler *handlers.AppointmentTypeHandler, appointmentHandler *handlers.AppointmentHandler, reportHandler *handlers.ReportHandler) {
	clinic := router.Group("/").Use(middlewares.TokenAuthMiddleware())
	{
		clinic.POST("/patients", patientHandler.CreatePatient)
		clinic.GET("/patients", patientHandler.GetAllPatients)
		clinic.GET("/patients/:patient_id", patientHandler.GetPatientByID)
		clinic.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
		clinic.DELETE("/patients/:patient_id", patientHandler.DeletePatient)

		clinic.POST("/appointment_types", appointmentTypeHandler.CreateAppointmentType)
		clinic.GET("/appointment_types", appointmentTypeHandler.GetAllAppointmentTypes)
		clinic.GET("/appointment_types/:type_id", appointmentTypeHandler.GetAppointmentTypeByID)
		clinic.PUT("/appointment_types/:type_id", appointmentTypeHandler.UpdateAppointmentType)
		clinic.DELETE("/appointment_types/:type_id", appointmentTypeHandler.DeleteAppointmentType)

		clinic.POST("/appointments", appointmentHandler.CreateAppointment)
		clinic.GET("/appointments", appointmentHandler.GetAllAppointments)
		clinic.GET("/appointments/:appointment_id", appointmentHandler.GetAppointmentByID)
		clinic.PUT("/appointments/:appointment_id", appointmentHandler.UpdateAppointment)
		clinic.DELETE("/appointments/:appointment_id", appointmentHandler.DeleteAppointment)

		clinic.GET("/reports/financial", reportHandler.GetFinancialReport)
		clinic.GET("/reports/financial/export", reportHandler.ExportFinancialReport)
	}
}
