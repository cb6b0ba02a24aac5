package handlers

import (
	"errors"
	"log"
	"net/http"

	"brokerhub/internal/adapter/http/dto/request"
	"brokerhub/internal/adapter/http/dto/response"
	"brokerhub/internal/domain/entities"
	"brokerhub/internal/usecase"
	"brokerhub/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler serves both invoice kinds. Routes fix the kind, so customer
// endpoints can never create or list contractor documents and vice versa.
type InvoiceHandler struct {
	useCase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(useCase usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{useCase: useCase}
}

// CreateCustomerInvoice godoc
// @Summary      Create a customer invoice
// @Description  Generates a draft invoice from an approved quote
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateCustomerInvoiceRequest  true  "Source quote"
// @Success      201      {object}  response.Envelope{data=response.InvoiceResponse}
// @Failure      409      {object}  pkg.HTTPError
// @Router       /customer-invoices/ [post]
func (h *InvoiceHandler) CreateCustomerInvoice(c *gin.Context) {
	var req request.CreateCustomerInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[invoice_handler][http] invalid customer invoice payload: %v", err)
		writeAppError(c, errInvalidPayload)
		return
	}

	inv, err := h.useCase.CreateFromQuote(c.Request.Context(), req.ToInput(operatorID(c)))
	if err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Wrap(response.FromInvoice(inv)))
}

// CreateContractorInvoice godoc
// @Summary      Create a contractor invoice
// @Description  Opens a payable toward the contractor assigned to a job
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateContractorInvoiceRequest  true  "Invoice payload"
// @Success      201      {object}  response.Envelope{data=response.InvoiceResponse}
// @Failure      400      {object}  pkg.HTTPError
// @Router       /contractor-invoices/ [post]
func (h *InvoiceHandler) CreateContractorInvoice(c *gin.Context) {
	var req request.CreateContractorInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[invoice_handler][http] invalid contractor invoice payload: %v", err)
		writeAppError(c, errInvalidPayload)
		return
	}

	inv, err := h.useCase.CreateForContractor(c.Request.Context(), req.ToInput(operatorID(c)))
	if err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Wrap(response.FromInvoice(inv)))
}

// GetByID godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  response.Envelope{data=response.InvoiceResponse}
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	inv, err := h.useCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromInvoice(inv)))
}

// ListByKind returns a gin handler listing invoices of one kind, optionally
// narrowed to a job.
func (h *InvoiceHandler) ListByKind(kind entities.InvoiceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jobID := c.Query("job_id"); jobID != "" {
			list, err := h.useCase.ListByJobID(c.Request.Context(), jobID)
			if err != nil {
				writeAppError(c, mapInvoiceError(err))
				return
			}
			filtered := make([]entities.Invoice, 0, len(list))
			for _, inv := range list {
				if inv.Kind == kind {
					filtered = append(filtered, inv)
				}
			}
			c.JSON(http.StatusOK, response.Wrap(response.FromInvoices(filtered)))
			return
		}

		list, err := h.useCase.ListByKind(c.Request.Context(), kind)
		if err != nil {
			writeAppError(c, mapInvoiceError(err))
			return
		}
		c.JSON(http.StatusOK, response.Wrap(response.FromInvoices(list)))
	}
}

// UpdateTotal godoc
// @Summary      Update an invoice total
// @Description  Rejected once the invoice has a succeeded payment
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Invoice ID"
// @Param        request  body      request.UpdateInvoiceTotalRequest true  "New total"
// @Success      200      {object}  response.Envelope{data=response.InvoiceResponse}
// @Failure      409      {object}  pkg.HTTPError
// @Router       /invoices/{id}/total [patch]
func (h *InvoiceHandler) UpdateTotal(c *gin.Context) {
	var req request.UpdateInvoiceTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[invoice_handler][http] invalid total payload: %v", err)
		writeAppError(c, errInvalidPayload)
		return
	}

	inv, err := h.useCase.UpdateTotal(c.Request.Context(), c.Param("id"), *req.Total)
	if err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromInvoice(inv)))
}

// Send godoc
// @Summary      Send an invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  response.Envelope{data=response.InvoiceResponse}
// @Failure      409  {object}  pkg.HTTPError
// @Router       /invoices/{id}/send [post]
func (h *InvoiceHandler) Send(c *gin.Context) {
	inv, err := h.useCase.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromInvoice(inv)))
}

// MarkOverdue godoc
// @Summary      Mark an invoice overdue
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  response.Envelope{data=response.InvoiceResponse}
// @Failure      409  {object}  pkg.HTTPError
// @Router       /invoices/{id}/overdue [post]
func (h *InvoiceHandler) MarkOverdue(c *gin.Context) {
	inv, err := h.useCase.MarkOverdue(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromInvoice(inv)))
}

// Void godoc
// @Summary      Void an invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  response.Envelope{data=response.InvoiceResponse}
// @Failure      409  {object}  pkg.HTTPError
// @Router       /invoices/{id}/void [post]
func (h *InvoiceHandler) Void(c *gin.Context) {
	inv, err := h.useCase.Void(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapInvoiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromInvoice(inv)))
}

func mapInvoiceError(err error) *pkg.AppError {
	if appErr := mapValidationError(err); appErr != nil {
		return appErr
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_ID", "Invoice id must be provided", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvoiceInput):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invoice payload is missing required fields", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_JOB_ID", "Job id must be provided", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_ID", "Quote id must be provided", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractorNotFound):
		return pkg.NewDomainErrorSimple("CONTRACTOR_NOT_FOUND", "Contractor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Invoice can only be generated from an approved quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceSettled):
		return pkg.NewDomainErrorSimple("INVOICE_SETTLED", "Invoice already has a succeeded payment and is immutable", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidInvoiceTransition):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_TRANSITION", "Invoice status transition is not allowed", http.StatusConflict)
	default:
		log.Printf("[invoice_handler][http] unexpected error: %v", err)
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Unexpected internal error", http.StatusInternalServerError)
	}
}
