package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/stakeledger/internal/domain"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{domain.NewError(domain.KindValidation, "x"), http.StatusBadRequest},
		{domain.NewError(domain.KindInsufficientBalance, "x"), http.StatusPaymentRequired},
		{domain.NewError(domain.KindScheduleRestriction, "x"), http.StatusUnprocessableEntity},
		{fmt.Errorf("wrapped: %w", domain.NewError(domain.KindInvalidState, "x")), http.StatusConflict},
		{domain.NewError(domain.KindDuplicateOperation, "x"), http.StatusConflict},
		{domain.NewError(domain.KindNotFound, "x"), http.StatusNotFound},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, Status(tt.err), tt.err.Error())
	}
}

func TestWriteHidesInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestIDParam(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
		ok   bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", tt.raw)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

		id, err := IDParam(r)
		assert.Equal(t, tt.want, id)
		assert.Equal(t, tt.ok, err == nil, tt.raw)
	}
}

func TestDecode(t *testing.T) {
	var v struct {
		Amount string `json:"amount"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount":"10"}`))
	assert.NoError(t, Decode(r, &v))
	assert.Equal(t, "10", v.Amount)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"sum":"10"}`))
	assert.ErrorIs(t, Decode(r, &v), domain.ErrValidation)
}

func TestDecodeValidatesTags(t *testing.T) {
	type request struct {
		TxHash string `json:"tx_hash" validate:"required,hexadecimal,min=8,max=128"`
		Day    string `json:"day,omitempty" validate:"omitempty,datetime=2006-01-02"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"tx_hash":"0x5e771ed0","day":"2026-10-15"}`},
		{name: "missing", body: `{}`, wantErr: "tx_hash is required"},
		{name: "too short", body: `{"tx_hash":"abc"}`, wantErr: "tx_hash must satisfy min=8"},
		{name: "not hex", body: `{"tx_hash":"tx-0001-zz"}`, wantErr: "invalid tx_hash"},
		{name: "bad date", body: `{"tx_hash":"deadbeef","day":"15.10.2026"}`, wantErr: "day must be formatted as 2006-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v request
			err := Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)), &v)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, http.StatusBadRequest, Status(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
