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

type CustomerHandler struct {
	useCase usecase.ICustomerUseCase
}

func NewCustomerHandler(useCase usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{useCase: useCase}
}

// Create godoc
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateCustomerRequest  true  "Customer payload"
// @Success      201      {object}  response.Envelope{data=response.CustomerResponse}
// @Failure      400      {object}  pkg.HTTPError
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[customer_handler][http] invalid create payload: %v", err)
		writeAppError(c, errInvalidPayload)
		return
	}

	customer, err := h.useCase.Create(c.Request.Context(), req.ToInput(operatorID(c)))
	if err != nil {
		writeAppError(c, mapCustomerError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Wrap(response.FromCustomer(customer)))
}

// GetByID godoc
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {object}  response.Envelope{data=response.CustomerResponse}
// @Failure      404  {object}  pkg.HTTPError
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	customer, err := h.useCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppError(c, mapCustomerError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromCustomer(customer)))
}

// List godoc
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Success      200  {object}  response.Envelope{data=[]response.CustomerResponse}
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.useCase.List(c.Request.Context())
	if err != nil {
		writeAppError(c, mapCustomerError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromCustomers(customers)))
}

// Update godoc
// @Summary      Update a customer
// @Description  Applies a partial edit; the billing address is replaced or cleared as a whole
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Customer ID"
// @Param        request  body      request.UpdateCustomerRequest  true  "Fields to update"
// @Success      200      {object}  response.Envelope{data=response.CustomerResponse}
// @Failure      404      {object}  pkg.HTTPError
// @Router       /customers/{id} [patch]
func (h *CustomerHandler) Update(c *gin.Context) {
	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[customer_handler][http] invalid update payload: %v", err)
		writeAppError(c, errInvalidPayload)
		return
	}

	customer, err := h.useCase.Update(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		writeAppError(c, mapCustomerError(err))
		return
	}

	c.JSON(http.StatusOK, response.Wrap(response.FromCustomer(customer)))
}

func mapCustomerError(err error) *pkg.AppError {
	if appErr := mapValidationError(err); appErr != nil {
		return appErr
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER_ID", "Customer id must be provided", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		log.Printf("[customer_handler][http] unexpected error: %v", err)
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Unexpected internal error", http.StatusInternalServerError)
	}
}
