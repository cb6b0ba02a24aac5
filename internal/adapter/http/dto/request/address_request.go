package request

import "brokerhub/internal/domain/entities"

type AddressRequest struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

func (r AddressRequest) ToAddress() entities.Address {
	return entities.Address{Street: r.Street, City: r.City, State: r.State, Zip: r.Zip}
}

func addressPtr(r *AddressRequest) *entities.Address {
	if r == nil {
		return nil
	}
	a := r.ToAddress()
	return &a
}
