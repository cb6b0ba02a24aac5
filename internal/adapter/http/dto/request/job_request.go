package request

import (
	"brokerhub/internal/domain/entities"
	"brokerhub/internal/usecase"
)

type CreateJobRequest struct {
	Title                 string         `json:"title" binding:"required"`
	Description           string         `json:"description"`
	CustomerID            string         `json:"customer_id" binding:"required"`
	ContractorID          string         `json:"contractor_id"`
	Address               AddressRequest `json:"address"`
	SameAsCustomerAddress bool           `json:"same_as_customer_address"`
	Priority              string         `json:"priority"`
	PayType               string         `json:"pay_type"`
	ScheduledDate         string         `json:"scheduled_date"`
	ScheduledTime         string         `json:"scheduled_time"`
}

func (r CreateJobRequest) ToInput(createdBy string) usecase.CreateJobInput {
	return usecase.CreateJobInput{
		Title:                 r.Title,
		Description:           r.Description,
		CustomerID:            r.CustomerID,
		ContractorID:          r.ContractorID,
		Address:               r.Address.ToAddress(),
		SameAsCustomerAddress: r.SameAsCustomerAddress,
		Priority:              entities.JobPriority(r.Priority),
		PayType:               entities.PayType(r.PayType),
		ScheduledDate:         r.ScheduledDate,
		ScheduledTime:         r.ScheduledTime,
		CreatedBy:             createdBy,
	}
}

// UpdateJobRequest mirrors the dashboard's PATCH payloads: only fields the
// operator changed are present, so every field is a pointer.
type UpdateJobRequest struct {
	Title                 *string         `json:"title"`
	Description           *string         `json:"description"`
	CustomerID            *string         `json:"customer_id"`
	ContractorID          *string         `json:"contractor_id"`
	Address               *AddressRequest `json:"address"`
	SameAsCustomerAddress *bool           `json:"same_as_customer_address"`
	Priority              *string         `json:"priority"`
	PayType               *string         `json:"pay_type"`
	ScheduledDate         *string         `json:"scheduled_date"`
	ScheduledTime         *string         `json:"scheduled_time"`
}

func (r UpdateJobRequest) ToInput() usecase.UpdateJobInput {
	in := usecase.UpdateJobInput{
		Title:                 r.Title,
		Description:           r.Description,
		CustomerID:            r.CustomerID,
		ContractorID:          r.ContractorID,
		Address:               addressPtr(r.Address),
		SameAsCustomerAddress: r.SameAsCustomerAddress,
		ScheduledDate:         r.ScheduledDate,
		ScheduledTime:         r.ScheduledTime,
	}
	if r.Priority != nil {
		p := entities.JobPriority(*r.Priority)
		in.Priority = &p
	}
	if r.PayType != nil {
		p := entities.PayType(*r.PayType)
		in.PayType = &p
	}
	return in
}

type TransitionJobRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}
