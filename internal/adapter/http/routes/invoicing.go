package routes

import (
	"tradebill/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients  = "/clients"
	PathJobs     = "/jobs"
	PathInvoices = "/invoices"
)

func addInvoicingRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler, jobHandler *handlers.JobHandler, invoiceHandler *handlers.InvoiceHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:client_id", clientHandler.GetClientByID)
		clients.PUT("/:client_id", clientHandler.UpdateClient)
		clients.DELETE("/:client_id", clientHandler.DeleteClient)
		clients.GET("/:client_id/jobs", clientHandler.ListClientJobs)
		clients.GET("/:client_id/invoices", clientHandler.ListClientInvoices)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:job_id", jobHandler.GetJobByID)
		jobs.PUT("/:job_id", jobHandler.UpdateJob)
		jobs.DELETE("/:job_id", jobHandler.DeleteJob)
		jobs.GET("/:job_id/details", jobHandler.GetJobDetails)
		jobs.GET("/:job_id/invoice", jobHandler.GetJobInvoice)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.POST("/pdf", invoiceHandler.RenderInvoicePDF)
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoiceByID)
		invoices.PUT("/:invoice_id", invoiceHandler.UpdateInvoice)
		invoices.DELETE("/:invoice_id", invoiceHandler.DeleteInvoice)
		invoices.GET("/:invoice_id/details", invoiceHandler.GetInvoiceDetails)
		invoices.GET("/:invoice_id/printable", invoiceHandler.GetInvoicePrintable)
		invoices.GET("/:invoice_id/pdf", invoiceHandler.DownloadInvoicePDF)
		invoices.GET("/:invoice_id/pdf/base64", invoiceHandler.GetInvoicePDFBase64)
	}
}
