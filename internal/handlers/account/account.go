package account

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/dto"
	"github.com/GlebRadaev/stakeledger/internal/handlers/httpx"
	"github.com/GlebRadaev/stakeledger/internal/service/accountservice"
	"github.com/GlebRadaev/stakeledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/stakeledger/pkg/auth"
	"github.com/GlebRadaev/stakeledger/pkg/utils"
	"github.com/GlebRadaev/stakeledger/pkg/validate"
)

//go:generate mockgen -source=account.go -destination=mock_account.go -package=account

type Service interface {
	Create(ctx context.Context, parentID *int64) (*domain.Account, error)
	Get(ctx context.Context, id int64) (*domain.Account, error)
	Team(ctx context.Context, id int64) (*accountservice.Team, error)
}

type LedgerService interface {
	History(ctx context.Context, accountID int64, limit int, offset int) ([]domain.LedgerEntry, error)
	Reconcile(ctx context.Context, accountID int64) (*ledgerservice.Reconciliation, error)
}

type AccountHandler struct {
	accountService Service
	ledgerService  LedgerService
}

func New(accountService Service, ledgerService LedgerService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		ledgerService:  ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current account balances
//	@Description	Wallet, ROI, commission, investment and staked balances of the authenticated account.
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balances"
//	@Failure		401	{object}	utils.Response			"Account not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	acc, err := h.accountService.Get(r.Context(), auth.AccountID(r.Context()))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponse(acc))
}

// GetLedger godoc
//
//	@Summary		Get ledger history
//	@Description	Ledger entries of the authenticated account, newest first.
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int								false	"Page size (max 500)"
//	@Param			offset	query		int								false	"Entries to skip"
//	@Success		200		{array}		dto.LedgerEntryResponseDTO		"Ledger entries"
//	@Failure		400		{object}	utils.Response					"Invalid paging"
//	@Failure		401		{object}	utils.Response					"Account not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/ledger [get]
func (h *AccountHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := validate.Page(r.URL.Query().Get("limit"), r.URL.Query().Get("offset"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid limit or offset")
		return
	}
	entries, err := h.ledgerService.History(r.Context(), auth.AccountID(r.Context()), limit, offset)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LedgerResponse(entries))
}

// GetTeam godoc
//
//	@Summary		Get referral team
//	@Description	Number of accounts at each depth below the authenticated account.
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	accountservice.Team	"Team counts"
//	@Failure		401	{object}	utils.Response		"Account not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/team [get]
func (h *AccountHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.accountService.Team(r.Context(), auth.AccountID(r.Context()))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, team)
}

// CreateAccount godoc
//
//	@Summary		Register an account
//	@Description	Create an account, optionally under a referrer. The referrer cannot be changed later.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAccountRequestDTO	true	"Referrer"
//	@Success		201		{object}	dto.AccountResponseDTO		"Created account"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		404		{object}	utils.Response				"Referrer not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequestDTO
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	acc, err := h.accountService.Create(r.Context(), req.ParentID)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.AccountResponse(acc))
}

// Reconcile godoc
//
//	@Summary		Reconcile account balances
//	@Description	Fold the ledger per balance class and compare with stored balances.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int								true	"Account id"
//	@Success		200	{object}	ledgerservice.Reconciliation	"Reconciliation report"
//	@Failure		400	{object}	utils.Response					"Invalid id"
//	@Failure		404	{object}	utils.Response					"Account not found"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/accounts/{id}/reconcile [get]
func (h *AccountHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	report, err := h.ledgerService.Reconcile(r.Context(), id)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}
