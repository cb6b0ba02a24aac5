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

type JobHandler struct {
	useCase usecase.IJobUseCase
}

func NewJobHandler(useCase usecase.IJobUseCase) *JobHandler {
	return &JobHandler{useCase: useCase}
}

// Create godoc
// @Summary      Create a job
// @Description  Creates a new service job for a customer
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateJobRequest  true  "Job payload"
// @Success      201      {object}  response.Envelope{data=response.JobResponse}
// @Failure      400      {object}  pkg.HTTPError
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req request.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[job_handler][http] invalid create payload: %v", err)
		writeAppError(c, errInvalidPayload)
		return
	}

	job, err := h.useCase.Create(c.Request.Context(), req.ToInput(operatorID(c)))
	if err != nil {
		writeAppError(c, mapJobError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Wrap(response.FromJob(job)))
}

// GetByID godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Envelope{data=response.JobResponse}
// @Failure      404  {object}  pkg.HTTPError
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.useCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapJobError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromJob(job)))
}

// List godoc
// @Summary      List jobs
// @Description  Lists jobs, optionally filtered by customer
// @Tags         jobs
// @Produce      json
// @Param        customer_id  query     string  false  "Customer ID filter"
// @Success      200          {object}  response.Envelope{data=[]response.JobResponse}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	if customerID := c.Query("customer_id"); customerID != "" {
		list, err := h.useCase.ListByCustomerID(c.Request.Context(), customerID)
		if err != nil {
			writeAppError(c, mapJobError(err))
			return
		}
		c.JSON(http.StatusOK, response.Wrap(response.FromJobs(list)))
		return
	}

	list, err := h.useCase.List(c.Request.Context())
	if err != nil {
		writeAppError(c, mapJobError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromJobs(list)))
}

// Update godoc
// @Summary      Update a job
// @Description  Updates mutable job fields; address edits are ignored while the job mirrors the customer address
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Job ID"
// @Param        request  body      request.UpdateJobRequest  true  "Fields to update"
// @Success      200      {object}  response.Envelope{data=response.JobResponse}
// @Failure      404      {object}  pkg.HTTPError
// @Router       /jobs/update/{id} [patch]
func (h *JobHandler) Update(c *gin.Context) {
	var req request.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[job_handler][http] invalid update payload: %v", err)
		writeAppError(c, errInvalidPayload)
		return
	}

	job, err := h.useCase.Update(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		writeAppError(c, mapJobError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromJob(job)))
}

// Transition godoc
// @Summary      Transition a job
// @Description  Moves the job through its lifecycle; cancellation records the acting operator
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Job ID"
// @Param        request  body      request.TransitionJobRequest  true  "Target status"
// @Success      200      {object}  response.Envelope{data=response.JobResponse}
// @Failure      409      {object}  pkg.HTTPError
// @Router       /jobs/{id}/transition [post]
func (h *JobHandler) Transition(c *gin.Context) {
	var req request.TransitionJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[job_handler][http] invalid transition payload: %v", err)
		writeAppError(c, errInvalidPayload)
		return
	}

	job, err := h.useCase.Transition(c.Request.Context(), c.Param("id"), entities.JobStatus(req.Status), operatorID(c), req.Reason)
	if err != nil {
		writeAppError(c, mapJobError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromJob(job)))
}

// SuggestAddress godoc
// @Summary      Suggest a job address
// @Description  Returns the customer billing address as a candidate and whether the job is in sync with it
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Envelope{data=response.AddressSuggestionResponse}
// @Failure      404  {object}  pkg.HTTPError
// @Router       /jobs/{id}/address-suggestion [get]
func (h *JobHandler) SuggestAddress(c *gin.Context) {
	suggestion, err := h.useCase.SuggestAddress(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapJobError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromAddressSuggestion(suggestion)))
}

func mapJobError(err error) *pkg.AppError {
	if appErr := mapValidationError(err); appErr != nil {
		return appErr
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_JOB_ID", "Job id must be provided", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJobInput):
		return pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Job title and customer id are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Job status transition is not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingApprovedQuote):
		return pkg.NewDomainErrorSimple("MISSING_APPROVED_QUOTE", "Job cannot be approved without an approved quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingCancelledBy):
		return pkg.NewDomainErrorSimple("MISSING_CANCELLED_BY", "Cancellation requires an acting operator", http.StatusBadRequest)
	default:
		log.Printf("[job_handler][http] unexpected error: %v", err)
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Unexpected internal error", http.StatusInternalServerError)
	}
}
