package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the external card processor (e.g. Mercado Pago).
//
// The payment use case sends the charge request and persists the provider's
// response payload for traceability; providerPaymentID becomes the payment's
// external reference.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
