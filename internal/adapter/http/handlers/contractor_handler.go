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

type ContractorHandler struct {
	useCase usecase.IContractorUseCase
}

func NewContractorHandler(useCase usecase.IContractorUseCase) *ContractorHandler {
	return &ContractorHandler{useCase: useCase}
}

// Create godoc
// @Summary      Create a contractor
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateContractorRequest  true  "Contractor payload"
// @Success      201      {object}  response.Envelope{data=response.ContractorResponse}
// @Failure      400      {object}  pkg.HTTPError
// @Router       /contractors [post]
func (h *ContractorHandler) Create(c *gin.Context) {
	var req request.CreateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[contractor_handler][http] invalid create payload: %v", err)
		writeAppError(c, errInvalidPayload)
		return
	}

	contractor, err := h.useCase.Create(c.Request.Context(), req.ToInput(operatorID(c)))
	if err != nil {
		writeAppError(c, mapContractorError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Wrap(response.FromContractor(contractor)))
}

// GetByID godoc
// @Summary      Get a contractor
// @Tags         contractors
// @Produce      json
// @Param        id   path      string  true  "Contractor ID"
// @Success      200  {object}  response.Envelope{data=response.ContractorResponse}
// @Failure      404  {object}  pkg.HTTPError
// @Router       /contractors/{id} [get]
func (h *ContractorHandler) GetByID(c *gin.Context) {
	contractor, err := h.useCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapContractorError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromContractor(contractor)))
}

// List godoc
// @Summary      List contractors
// @Tags         contractors
// @Produce      json
// @Success      200  {object}  response.Envelope{data=[]response.ContractorResponse}
// @Router       /contractors [get]
func (h *ContractorHandler) List(c *gin.Context) {
	contractors, err := h.useCase.List(c.Request.Context())
	if err != nil {
		writeAppError(c, mapContractorError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromContractors(contractors)))
}

// Update godoc
// @Summary      Update a contractor
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Contractor ID"
// @Param        request  body      request.UpdateContractorRequest  true  "Fields to update"
// @Success      200      {object}  response.Envelope{data=response.ContractorResponse}
// @Failure      404      {object}  pkg.HTTPError
// @Router       /contractors/{id} [patch]
func (h *ContractorHandler) Update(c *gin.Context) {
	var req request.UpdateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[contractor_handler][http] invalid update payload: %v", err)
		writeAppError(c, errInvalidPayload)
		return
	}

	contractor, err := h.useCase.Update(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		writeAppError(c, mapContractorError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromContractor(contractor)))
}

func mapContractorError(err error) *pkg.AppError {
	if appErr := mapValidationError(err); appErr != nil {
		return appErr
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidContractorID):
		return pkg.NewDomainErrorSimple("INVALID_CONTRACTOR_ID", "Contractor id must be provided", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractorNotFound):
		return pkg.NewDomainErrorSimple("CONTRACTOR_NOT_FOUND", "Contractor not found", http.StatusNotFound)
	default:
		log.Printf("[contractor_handler][http] unexpected error: %v", err)
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Unexpected internal error", http.StatusInternalServerError)
	}
}
