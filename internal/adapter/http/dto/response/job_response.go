package response

import (
	"time"

	"brokerhub/internal/domain/entities"
	"brokerhub/internal/usecase"
)

type AddressResponse struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

func fromAddress(a entities.Address) AddressResponse {
	return AddressResponse{Street: a.Street, City: a.City, State: a.State, Zip: a.Zip}
}

type JobResponse struct {
	ID                    string          `json:"id"`
	Title                 string          `json:"title"`
	Description           string          `json:"description,omitempty"`
	CustomerID            string          `json:"customer_id"`
	ContractorID          string          `json:"contractor_id,omitempty"`
	Address               AddressResponse `json:"address"`
	SameAsCustomerAddress bool            `json:"same_as_customer_address"`
	Status                string          `json:"status"`
	Priority              string          `json:"priority"`
	PayType               string          `json:"pay_type"`
	ScheduledDate         string          `json:"scheduled_date,omitempty"`
	ScheduledTime         string          `json:"scheduled_time,omitempty"`
	StartedAt             *time.Time      `json:"started_at,omitempty"`
	CompletedAt           *time.Time      `json:"completed_at,omitempty"`
	CancelledAt           *time.Time      `json:"cancelled_at,omitempty"`
	CancelledBy           string          `json:"cancelled_by,omitempty"`
	CancellationReason    string          `json:"cancellation_reason,omitempty"`
	CreatedBy             string          `json:"created_by,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:                    j.ID,
		Title:                 j.Title,
		Description:           j.Description,
		CustomerID:            j.CustomerID,
		ContractorID:          j.ContractorID,
		Address:               fromAddress(j.Address),
		SameAsCustomerAddress: j.SameAsCustomerAddress,
		Status:                string(j.Status),
		Priority:              string(j.Priority),
		PayType:               string(j.PayType),
		ScheduledDate:         j.ScheduledDate,
		ScheduledTime:         j.ScheduledTime,
		StartedAt:             j.StartedAt,
		CompletedAt:           j.CompletedAt,
		CancelledAt:           j.CancelledAt,
		CancelledBy:           j.CancelledBy,
		CancellationReason:    j.CancellationReason,
		CreatedBy:             j.CreatedBy,
		CreatedAt:             j.CreatedAt,
		UpdatedAt:             j.UpdatedAt,
	}
}

type AddressSuggestionResponse struct {
	Candidate AddressResponse `json:"candidate"`
	InSync    bool            `json:"in_sync"`
}

func FromAddressSuggestion(s usecase.AddressSuggestion) AddressSuggestionResponse {
	return AddressSuggestionResponse{Candidate: fromAddress(s.Candidate), InSync: s.InSync}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
