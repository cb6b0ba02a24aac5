package handlers

import (
	"errors"
	"log"
	"net/http"

	"brokerhub/internal/adapter/http/dto/request"
	"brokerhub/internal/adapter/http/dto/response"
	"brokerhub/internal/usecase"
	"brokerhub/pkg"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	useCase usecase.IPaymentUseCase
}

func NewPaymentHandler(useCase usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{useCase: useCase}
}

// Charge godoc
// @Summary      Charge an invoice
// @Description  Sends the card payload to the processor and records the attempt; a second succeeded charge is rejected
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        invoice_id  path      string                 true  "Invoice ID"
// @Param        request     body      request.ChargeRequest  true  "Processor payload"
// @Success      201         {object}  response.Envelope{data=response.PaymentResponse}
// @Failure      409         {object}  pkg.HTTPError
// @Router       /payments/{invoice_id} [post]
func (h *PaymentHandler) Charge(c *gin.Context) {
	var req request.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment_handler][http] invalid charge payload: %v", err)
		writeAppError(c, errInvalidPayload)
		return
	}

	p, err := h.useCase.Charge(c.Request.Context(), c.Param("invoice_id"), usecase.ChargeInput{
		CardLastFour:    req.CardLastFour,
		ProviderPayload: req.Payment,
	})
	if err != nil {
		writeAppError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Wrap(response.FromPayment(p)))
}

// ListByInvoice godoc
// @Summary      List payments for an invoice
// @Tags         payments
// @Produce      json
// @Param        invoice_id  path      string  true  "Invoice ID"
// @Success      200         {object}  response.Envelope{data=[]response.PaymentResponse}
// @Router       /payments/{invoice_id} [get]
func (h *PaymentHandler) ListByInvoice(c *gin.Context) {
	payments, err := h.useCase.ListByInvoiceID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		writeAppError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromPayments(payments)))
}

// ListAll godoc
// @Summary      List all payments
// @Tags         payments
// @Produce      json
// @Success      200  {object}  response.Envelope{data=[]response.PaymentResponse}
// @Router       /payments/all [get]
func (h *PaymentHandler) ListAll(c *gin.Context) {
	payments, err := h.useCase.List(c.Request.Context())
	if err != nil {
		writeAppError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromPayments(payments)))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_ID", "Invoice id must be provided", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProviderPayload):
		return pkg.NewDomainErrorSimple("INVALID_PROVIDER_PAYLOAD", "Processor payload is missing or malformed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotPayable):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PAYABLE", "Invoice is not in a chargeable status", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceAlreadySettled):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_SETTLED", "Invoice already has a succeeded payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment processor is unavailable", http.StatusBadGateway)
	default:
		log.Printf("[payment_handler][http] unexpected error: %v", err)
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Unexpected internal error", http.StatusInternalServerError)
	}
}
