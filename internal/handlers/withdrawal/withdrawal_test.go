package withdrawal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/service/withdrawalservice"
	"github.com/GlebRadaev/stakeledger/pkg/auth"
)

const wallet = "TQ1z9aXvJ8xJ3pWQ4c9u7p2N6dJrG5h8Lk"

type decimalEq string

func (m decimalEq) Matches(x any) bool {
	v, ok := x.(decimal.Decimal)
	return ok && v.Equal(decimal.RequireFromString(string(m)))
}

func (m decimalEq) String() string { return "decimal equal to " + string(m) }

func NewMock(t *testing.T) (*WithdrawalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestCreateWithdrawalHandler(t *testing.T) {
	body := `{"amount":"50","wallet_address":"` + wallet + `"}`
	tests := []struct {
		name         string
		body         string
		err          error
		callService  bool
		expectedCode int
	}{
		{"Accepted", body, nil, true, http.StatusCreated},
		{"Insufficient balance", body, domain.NewError(domain.KindInsufficientBalance, "withdrawable balance 10.00 is less than 50.00"), true, http.StatusPaymentRequired},
		{"Closed day", body, domain.NewError(domain.KindScheduleRestriction, "next allowed day is 15"), true, http.StatusUnprocessableEntity},
		{"Below minimum", body, domain.NewError(domain.KindValidation, "minimum withdrawal is 100.00"), true, http.StatusBadRequest},
		{"Bad wallet", `{"amount":"50","wallet_address":"x"}`, nil, false, http.StatusBadRequest},
		{"Wallet with symbols", `{"amount":"50","wallet_address":"TQ1z9aXv;DROP"}`, nil, false, http.StatusBadRequest},
		{"Missing wallet", `{"amount":"50"}`, nil, false, http.StatusBadRequest},
		{"Unknown field", `{"sum":"50"}`, nil, false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			if tt.callService {
				call := service.EXPECT().Create(gomock.Any(), int64(4), decimalEq("50"), wallet)
				if tt.err != nil {
					call.Return(nil, tt.err)
				} else {
					call.Return(&domain.WithdrawalRequest{ID: 9, Status: domain.StatusPending}, nil)
				}
			}
			r := httptest.NewRequest(http.MethodPost, "/api/user/withdrawals", strings.NewReader(tt.body))
			r = r.WithContext(context.WithValue(r.Context(), auth.AccountIDKey, int64(4)))
			w := httptest.NewRecorder()
			handler.CreateWithdrawal(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetWithdrawalsHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().ListByAccount(gomock.Any(), int64(4)).Return(nil, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/user/withdrawals", nil)
	r = r.WithContext(context.WithValue(r.Context(), auth.AccountIDKey, int64(4)))
	w := httptest.NewRecorder()
	handler.GetWithdrawals(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDecideWithdrawalHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Decide(gomock.Any(), int64(9), withdrawalservice.Decision{Approve: true, TxHash: "0x5e771ed0a4c1"}).
		Return(&domain.WithdrawalRequest{ID: 9, Status: domain.StatusApproved, TxHash: "0x5e771ed0a4c1"}, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "9")
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"approve":true,"tx_hash":"0x5e771ed0a4c1"}`))
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()
	handler.DecideWithdrawal(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"approved"`)
}

func TestDecideWithdrawalHandlerRejectsBadTxHash(t *testing.T) {
	handler, _ := NewMock(t)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "9")
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"approve":true,"tx_hash":"settled"}`))
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()
	handler.DecideWithdrawal(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListWithdrawalsHandler(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		prepareMock  func(s *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name:  "Pending",
			query: "?status=pending",
			prepareMock: func(s *MockService) {
				s.EXPECT().ListByStatus(gomock.Any(), domain.StatusPending).
					Return([]domain.WithdrawalRequest{{ID: 9, Status: domain.StatusPending}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"status":"pending"`,
		},
		{
			name: "No filter",
			prepareMock: func(s *MockService) {
				s.EXPECT().ListByStatus(gomock.Any(), domain.Status("")).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "Unknown status",
			query:        "?status=paid",
			prepareMock:  func(s *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)
			w := httptest.NewRecorder()
			handler.ListWithdrawals(w, httptest.NewRequest(http.MethodGet, "/api/admin/withdrawals"+tt.query, nil))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}
