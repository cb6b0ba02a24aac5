package routes

import (
	"brokerhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs        = "/jobs"
	PathQuotes      = "/quotes"
	PathCustomers   = "/customers"
	PathContractors = "/contractors"
)

func addBrokerageRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, quoteHandler *handlers.QuoteHandler, customerHandler *handlers.CustomerHandler, contractorHandler *handlers.ContractorHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.Create)
		jobs.GET("", jobHandler.List)
		jobs.GET("/:id", jobHandler.GetByID)
		jobs.PATCH("/update/:id", jobHandler.Update)
		jobs.POST("/:id/transition", jobHandler.Transition)
		jobs.GET("/:id/address-suggestion", jobHandler.SuggestAddress)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.Create)
		quotes.GET("", quoteHandler.ListByJob)
		quotes.GET("/:id", quoteHandler.GetByID)
		quotes.POST("/:id/send", quoteHandler.Send)
		quotes.POST("/:id/approve", quoteHandler.Approve)
		quotes.POST("/:id/reject", quoteHandler.Reject)
		quotes.POST("/:id/expire", quoteHandler.Expire)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.Create)
		customers.GET("", customerHandler.List)
		customers.GET("/:id", customerHandler.GetByID)
		customers.PATCH("/:id", customerHandler.Update)
	}

	contractors := rg.Group(PathContractors)
	{
		contractors.POST("", contractorHandler.Create)
		contractors.GET("", contractorHandler.List)
		contractors.GET("/:id", contractorHandler.GetByID)
		contractors.PATCH("/:id", contractorHandler.Update)
	}
}
