package routes

import (
	"brokerhub/internal/adapter/http/handlers"
	"brokerhub/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomerInvoices   = "/customer-invoices"
	PathContractorInvoices = "/contractor-invoices"
	PathPayments           = "/payments"
)

func addFinancialRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, paymentHandler *handlers.PaymentHandler) {
	customerInvoices := rg.Group(PathCustomerInvoices)
	{
		customerInvoices.POST("/", invoiceHandler.CreateCustomerInvoice)
		customerInvoices.GET("/", invoiceHandler.ListByKind(entities.InvoiceKindCustomer))
		customerInvoices.GET("/:id", invoiceHandler.GetByID)
		customerInvoices.PATCH("/:id/total", invoiceHandler.UpdateTotal)
		customerInvoices.POST("/:id/send", invoiceHandler.Send)
		customerInvoices.POST("/:id/overdue", invoiceHandler.MarkOverdue)
		customerInvoices.POST("/:id/void", invoiceHandler.Void)
	}

	contractorInvoices := rg.Group(PathContractorInvoices)
	{
		contractorInvoices.POST("/", invoiceHandler.CreateContractorInvoice)
		contractorInvoices.GET("/", invoiceHandler.ListByKind(entities.InvoiceKindContractor))
		contractorInvoices.GET("/:id", invoiceHandler.GetByID)
		contractorInvoices.PATCH("/:id/total", invoiceHandler.UpdateTotal)
		contractorInvoices.POST("/:id/send", invoiceHandler.Send)
		contractorInvoices.POST("/:id/overdue", invoiceHandler.MarkOverdue)
		contractorInvoices.POST("/:id/void", invoiceHandler.Void)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/all", paymentHandler.ListAll)
		payments.POST("/:invoice_id", paymentHandler.Charge)
		payments.GET("/:invoice_id", paymentHandler.ListByInvoice)
	}
}
