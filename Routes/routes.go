package Routes

import (
	"RehabCenter/Controllers"
	"RehabCenter/Middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ConfigRoutes(router *gin.Engine, db *gorm.DB) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))
	router.Use(Middleware.Database(db))

	api := router.Group("/api")
	{
		// Patient-related routes
		api.GET("/patients", Controllers.FetchPatients)
		api.GET("/patients/:id", Controllers.GetPatient)
		api.GET("/patients/:id/stats", Controllers.GetPatientStats)
		api.POST("/patients", Controllers.CreatePatient)
		api.PUT("/patients/:id", Controllers.UpdatePatient)
		api.DELETE("/patients/:id", Controllers.DeletePatient)

		// Therapist-related routes
		api.GET("/therapists", Controllers.FetchTherapists)
		api.GET("/therapists/:id", Controllers.GetTherapist)
		api.GET("/therapists/:id/schedule", Controllers.GetTherapistSchedule)
		api.POST("/therapists", Controllers.CreateTherapist)
		api.PUT("/therapists/:id", Controllers.UpdateTherapist)
		api.DELETE("/therapists/:id", Controllers.DeleteTherapist)

		// Schedule-related routes
		api.GET("/schedules", Controllers.FetchSchedules)
		api.GET("/schedules/available", Controllers.GetAvailableSlots)
		api.GET("/schedules/:id", Controllers.GetSchedule)
		api.POST("/schedules", Controllers.CreateSchedule)
		api.PUT("/schedules/:id", Controllers.UpdateSchedule)
		api.DELETE("/schedules/:id", Controllers.DeleteSchedule)

		// Diagnosis-related routes
		api.GET("/diagnoses", Controllers.FetchDiagnoses)
		api.GET("/diagnoses/:id", Controllers.GetDiagnosis)
		api.POST("/diagnoses", Controllers.CreateDiagnosis)
		api.PUT("/diagnoses/:id", Controllers.UpdateDiagnosis)
		api.DELETE("/diagnoses/:id", Controllers.DeleteDiagnosis)

		// Procedure-related routes
		api.GET("/procedures", Controllers.FetchProcedures)
		api.GET("/procedures/:id", Controllers.GetProcedure)
		api.POST("/procedures", Controllers.CreateProcedure)
		api.PUT("/procedures/:id", Controllers.UpdateProcedure)
		api.DELETE("/procedures/:id", Controllers.DeleteProcedure)

		// Medical record-related routes
		api.GET("/medical-records", Controllers.FetchMedicalRecords)
		api.GET("/medical-records/:id", Controllers.GetMedicalRecord)
		api.POST("/medical-records", Controllers.CreateMedicalRecord)
		api.PUT("/medical-records/:id", Controllers.UpdateMedicalRecord)
		api.DELETE("/medical-records/:id", Controllers.DeleteMedicalRecord)

		// Session-related routes
		api.GET("/sessions", Controllers.FetchSessions)
		api.GET("/sessions/:id", Controllers.GetSession)
		api.POST("/sessions", Controllers.CreateSession)
		api.POST("/sessions/:id/complete", Controllers.CompleteSession)
		api.PUT("/sessions/:id", Controllers.UpdateSession)
		api.DELETE("/sessions/:id", Controllers.DeleteSession)

		// Invoice-related routes
		api.GET("/invoices", Controllers.FetchInvoices)
		api.GET("/invoices/:id", Controllers.GetInvoice)
		api.POST("/invoices", Controllers.CreateInvoice)
		api.POST("/invoices/export", Controllers.ExportInvoicesTable)
		api.PUT("/invoices/:id", Controllers.UpdateInvoice)
		api.DELETE("/invoices/:id", Controllers.DeleteInvoice)

		// Payment-related routes
		api.GET("/payments", Controllers.FetchPayments)
		api.GET("/payments/:id", Controllers.GetPayment)
		api.POST("/payments", Controllers.CreatePayment)
		api.PUT("/payments/:id", Controllers.UpdatePayment)
		api.DELETE("/payments/:id", Controllers.DeletePayment)
	}
}
