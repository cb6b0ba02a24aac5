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

type QuoteHandler struct {
	useCase usecase.IQuoteUseCase
}

func NewQuoteHandler(useCase usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{useCase: useCase}
}

// Create godoc
// @Summary      Create a quote
// @Description  Prices and stores a draft quote for a job; only one active quote per job is allowed
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateQuoteRequest  true  "Pricing fields"
// @Success      201      {object}  response.Envelope{data=response.QuoteResponse}
// @Failure      409      {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[quote_handler][http] invalid create payload: %v", err)
		writeAppError(c, errInvalidPayload)
		return
	}

	quote, err := h.useCase.Create(c.Request.Context(), req.ToInput(operatorID(c)))
	if err != nil {
		writeAppError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Wrap(response.FromQuote(quote)))
}

// GetByID godoc
// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.Envelope{data=response.QuoteResponse}
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *gin.Context) {
	quote, err := h.useCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromQuote(quote)))
}

// ListByJob godoc
// @Summary      List quotes for a job
// @Tags         quotes
// @Produce      json
// @Param        job_id  query     string  true  "Job ID"
// @Success      200     {object}  response.Envelope{data=[]response.QuoteResponse}
// @Router       /quotes [get]
func (h *QuoteHandler) ListByJob(c *gin.Context) {
	quotes, err := h.useCase.ListByJobID(c.Request.Context(), c.Query("job_id"))
	if err != nil {
		writeAppError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromQuotes(quotes)))
}

// Send godoc
// @Summary      Send a quote
// @Description  Marks the draft quote as sent and moves the job into quote_pending
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.Envelope{data=response.QuoteResponse}
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/send [post]
func (h *QuoteHandler) Send(c *gin.Context) {
	quote, err := h.useCase.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromQuote(quote)))
}

// Approve godoc
// @Summary      Approve a quote
// @Description  Records customer acceptance; the job is approved separately via its transition endpoint
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.Envelope{data=response.QuoteResponse}
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/approve [post]
func (h *QuoteHandler) Approve(c *gin.Context) {
	quote, err := h.useCase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromQuote(quote)))
}

// Reject godoc
// @Summary      Reject a quote
// @Description  Records customer rejection with a mandatory reason
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Quote ID"
// @Param        request  body      request.RejectQuoteRequest  true  "Rejection reason"
// @Success      200      {object}  response.Envelope{data=response.QuoteResponse}
// @Failure      409      {object}  pkg.HTTPError
// @Router       /quotes/{id}/reject [post]
func (h *QuoteHandler) Reject(c *gin.Context) {
	var req request.RejectQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[quote_handler][http] invalid reject payload: %v", err)
		writeAppError(c, errInvalidPayload)
		return
	}

	quote, err := h.useCase.Reject(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		writeAppError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromQuote(quote)))
}

// Expire godoc
// @Summary      Expire a quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.Envelope{data=response.QuoteResponse}
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/expire [post]
func (h *QuoteHandler) Expire(c *gin.Context) {
	quote, err := h.useCase.Expire(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromQuote(quote)))
}

func mapQuoteError(err error) *pkg.AppError {
	if appErr := mapValidationError(err); appErr != nil {
		return appErr
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_ID", "Quote id must be provided", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_JOB_ID", "Job id must be provided", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateActiveQuote):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_ACTIVE", "Job already has an active quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteTerminal):
		return pkg.NewDomainErrorSimple("QUOTE_TERMINAL", "Quote has already been resolved", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidQuoteTransition):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_TRANSITION", "Quote status transition is not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingRejectionReason):
		return pkg.NewDomainErrorSimple("MISSING_REJECTION_REASON", "Rejection requires a reason", http.StatusBadRequest)
	default:
		log.Printf("[quote_handler][http] unexpected error: %v", err)
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Unexpected internal error", http.StatusInternalServerError)
	}
}
