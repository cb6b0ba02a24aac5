package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"brokerhub/internal/adapter/http/handlers/mocks"
	"brokerhub/internal/domain/entities"
	"brokerhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_Charge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:invoice_id", h.Charge)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/inv-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already settled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:invoice_id", h.Charge)

		uc.EXPECT().Charge(gomock.Any(), "inv-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrInvoiceAlreadySettled)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/inv-1", bytes.NewBufferString(`{"card_last_four":"4242","payment":{"token":"tok"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVOICE_ALREADY_SETTLED" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("gateway down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:invoice_id", h.Charge)

		uc.EXPECT().Charge(gomock.Any(), "inv-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrPaymentGatewayUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/inv-1", bytes.NewBufferString(`{"payment":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:invoice_id", h.Charge)

		uc.EXPECT().Charge(gomock.Any(), "inv-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.ChargeInput) (entities.Payment, error) {
				if in.CardLastFour != "4242" {
					t.Fatalf("expected card last four, got %q", in.CardLastFour)
				}
				return entities.Payment{ID: "pay-1", InvoiceID: "inv-1", Amount: 216, Status: entities.PaymentStatusSucceeded}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/inv-1", bytes.NewBufferString(`{"card_last_four":"4242","payment":{"token":"tok"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Data map[string]any `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Data["id"] != "pay-1" || body.Data["status"] != "succeeded" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_ListByInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.GET("/v1/payments/:invoice_id", h.ListByInvoice)

	uc.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.Payment{
		{ID: "pay-1", Status: entities.PaymentStatusFailed},
		{ID: "pay-2", Status: entities.PaymentStatusSucceeded},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/inv-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapPaymentError(t *testing.T) {
	if got := mapPaymentError(usecase.ErrInvalidPaymentInvoiceID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPaymentError(usecase.ErrInvoiceNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPaymentError(usecase.ErrInvoiceNotPayable); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPaymentError(usecase.ErrPaymentGatewayUnavailable); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
	if got := mapPaymentError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
