package deposit

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/dto"
	"github.com/GlebRadaev/stakeledger/internal/handlers/httpx"
	"github.com/GlebRadaev/stakeledger/internal/service/depositservice"
	"github.com/GlebRadaev/stakeledger/pkg/auth"
	"github.com/GlebRadaev/stakeledger/pkg/utils"
)

//go:generate mockgen -source=deposit.go -destination=mock_deposit.go -package=deposit

type Service interface {
	Create(ctx context.Context, accountID int64, gross decimal.Decimal, method string, txHash string) (*domain.DepositRequest, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.DepositRequest, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.DepositRequest, error)
	Decide(ctx context.Context, id int64, decision depositservice.Decision) (*depositservice.Outcome, error)
}

type DepositHandler struct {
	depositService Service
}

func New(depositService Service) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
	}
}

// CreateDeposit godoc
//
//	@Summary		Submit a deposit
//	@Description	Register an on-chain transfer for admin review. The charge shown is a preview and is recomputed at approval.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateDepositRequestDTO	true	"Deposit request payload"
//	@Success		201		{object}	dto.DepositResponseDTO		"Pending deposit"
//	@Failure		400		{object}	utils.Response				"Invalid amount or tx hash"
//	@Failure		401		{object}	utils.Response				"Account not authorized"
//	@Failure		409		{object}	utils.Response				"Tx hash already submitted"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/deposits [post]
func (h *DepositHandler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepositRequestDTO
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}

	dep, err := h.depositService.Create(r.Context(), auth.AccountID(r.Context()), req.Amount, req.Method, req.TxHash)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.DepositResponse(dep))
}

// GetDeposits godoc
//
//	@Summary		List own deposits
//	@Description	Deposits of the authenticated account, newest first.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DepositResponseDTO	"Deposits"
//	@Failure		401	{object}	utils.Response			"Account not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/deposits [get]
func (h *DepositHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	deposits, err := h.depositService.ListByAccount(r.Context(), auth.AccountID(r.Context()))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	response := make([]dto.DepositResponseDTO, len(deposits))
	for i := range deposits {
		response[i] = dto.DepositResponse(&deposits[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListDeposits godoc
//
//	@Summary		List deposits for review
//	@Description	All deposits, oldest first, optionally filtered by status.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string					false	"pending, approved or rejected"
//	@Success		200		{array}		dto.DepositResponseDTO	"Deposits"
//	@Failure		400		{object}	utils.Response			"Unknown status"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/deposits [get]
func (h *DepositHandler) ListDeposits(w http.ResponseWriter, r *http.Request) {
	status, err := httpx.StatusParam(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	deposits, err := h.depositService.ListByStatus(r.Context(), status)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	response := make([]dto.DepositResponseDTO, len(deposits))
	for i := range deposits {
		response[i] = dto.DepositResponse(&deposits[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// DecideDeposit godoc
//
//	@Summary		Approve or reject a deposit
//	@Description	Approval credits the stake and pays commissions, promotion rewards and level changes in one transaction.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Deposit id"
//	@Param			request	body		dto.DecisionRequestDTO			true	"Decision"
//	@Success		200		{object}	dto.DepositDecisionResponseDTO	"Decision outcome"
//	@Failure		400		{object}	utils.Response					"Invalid decision body"
//	@Failure		404		{object}	utils.Response					"Deposit not found"
//	@Failure		409		{object}	utils.Response					"Deposit already decided"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/deposits/{id}/decision [post]
func (h *DepositHandler) DecideDeposit(w http.ResponseWriter, r *http.Request) {
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

	out, err := h.depositService.Decide(r.Context(), id, depositservice.Decision{Approve: req.Approve, Reason: req.Reason})
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DepositDecisionResponseDTO{
		Deposit:     dto.DepositResponse(out.Deposit),
		Commissions: dto.CommissionsResponse(out.Commissions),
		Rewards:     dto.RewardsResponse(out.Rewards),
		LevelChange: out.LevelChange,
	})
}
