package withdrawal

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/dto"
	"github.com/GlebRadaev/stakeledger/internal/handlers/httpx"
	"github.com/GlebRadaev/stakeledger/internal/service/withdrawalservice"
	"github.com/GlebRadaev/stakeledger/pkg/auth"
	"github.com/GlebRadaev/stakeledger/pkg/utils"
)

//go:generate mockgen -source=withdrawal.go -destination=mock_withdrawal.go -package=withdrawal

type Service interface {
	Create(ctx context.Context, accountID int64, gross decimal.Decimal, walletAddress string) (*domain.WithdrawalRequest, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.WithdrawalRequest, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.WithdrawalRequest, error)
	Decide(ctx context.Context, id int64, decision withdrawalservice.Decision) (*domain.WithdrawalRequest, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// CreateWithdrawal godoc
//
//	@Summary		Request a withdrawal
//	@Description	Hold the amount from ROI and commission balances until an admin settles or rejects it.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateWithdrawalRequestDTO	true	"Withdrawal request payload"
//	@Success		201		{object}	dto.WithdrawalResponseDTO		"Pending withdrawal"
//	@Failure		400		{object}	utils.Response					"Invalid amount or wallet"
//	@Failure		401		{object}	utils.Response					"Account not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient balance"
//	@Failure		422		{object}	utils.Response					"Withdrawals closed today"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/withdrawals [post]
func (h *WithdrawalHandler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWithdrawalRequestDTO
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}

	wd, err := h.withdrawalService.Create(r.Context(), auth.AccountID(r.Context()), req.Amount, req.WalletAddress)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.WithdrawalResponse(wd))
}

// GetWithdrawals godoc
//
//	@Summary		List own withdrawals
//	@Description	Withdrawals of the authenticated account, newest first.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO	"Withdrawals"
//	@Failure		401	{object}	utils.Response				"Account not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.withdrawalService.ListByAccount(r.Context(), auth.AccountID(r.Context()))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i := range withdrawals {
		response[i] = dto.WithdrawalResponse(&withdrawals[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// DecideWithdrawal godoc
//
//	@Summary		Settle or reject a withdrawal
//	@Description	Approval needs the settlement tx hash. Rejection needs a reason and returns the held amount.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Withdrawal id"
//	@Param			request	body		dto.DecisionRequestDTO		true	"Decision"
//	@Success		200		{object}	dto.WithdrawalResponseDTO	"Decided withdrawal"
//	@Failure		400		{object}	utils.Response				"Missing tx hash or reason"
//	@Failure		404		{object}	utils.Response				"Withdrawal not found"
//	@Failure		409		{object}	utils.Response				"Withdrawal already decided"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/decision [post]
func (h *WithdrawalHandler) DecideWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	var req dto.DecisionRequestDTO
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}

	wd, err := h.withdrawalService.Decide(r.Context(), id, withdrawalservice.Decision{
		Approve: req.Approve,
		TxHash:  req.TxHash,
		Reason:  req.Reason,
	})
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawalResponse(wd))
}

// ListWithdrawals godoc
//
//	@Summary		List withdrawals for review
//	@Description	All withdrawals, oldest first, optionally filtered by status.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string						false	"pending, approved or rejected"
//	@Success		200		{array}		dto.WithdrawalResponseDTO	"Withdrawals"
//	@Failure		400		{object}	utils.Response				"Unknown status"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *WithdrawalHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	status, err := httpx.StatusParam(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	withdrawals, err := h.withdrawalService.ListByStatus(r.Context(), status)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i := range withdrawals {
		response[i] = dto.WithdrawalResponse(&withdrawals[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
