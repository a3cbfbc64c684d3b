package promotion

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/dto"
	"github.com/GlebRadaev/stakeledger/internal/handlers/httpx"
	"github.com/GlebRadaev/stakeledger/pkg/utils"
)

//go:generate mockgen -source=promotion.go -destination=mock_promotion.go -package=promotion

type Service interface {
	Create(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error)
	Update(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Promotion, error)
	Active(ctx context.Context) (*domain.Promotion, error)
	Rewards(ctx context.Context, promotionID int64) ([]domain.PromotionReward, error)
	Migrate(ctx context.Context, promotionID int64) (*domain.MigrationResult, error)
}

type PromotionHandler struct {
	promotionService Service
}

func New(promotionService Service) *PromotionHandler {
	return &PromotionHandler{
		promotionService: promotionService,
	}
}

// GetActive godoc
//
//	@Summary		Get the running promotion
//	@Tags			Promotions
//	@Produce		json
//	@Success		200	{object}	dto.PromotionResponseDTO	"Running promotion"
//	@Success		204	{object}	utils.Response				"No promotion running"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/promotions/active [get]
func (h *PromotionHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	p, err := h.promotionService.Active(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	if p == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PromotionResponse(p))
}

// ListPromotions godoc
//
//	@Summary		List promotions
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PromotionResponseDTO	"Promotions"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/promotions [get]
func (h *PromotionHandler) ListPromotions(w http.ResponseWriter, r *http.Request) {
	list, err := h.promotionService.List(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	response := make([]dto.PromotionResponseDTO, len(list))
	for i := range list {
		response[i] = dto.PromotionResponse(&list[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreatePromotion godoc
//
//	@Summary		Create a promotion
//	@Description	Self and referral percents apply to deposits approved between start and end date, both inclusive.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PromotionRequestDTO		true	"Promotion"
//	@Success		201		{object}	dto.PromotionResponseDTO	"Created promotion"
//	@Failure		400		{object}	utils.Response				"Invalid promotion"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/promotions [post]
func (h *PromotionHandler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	p, ok := h.decode(w, r)
	if !ok {
		return
	}
	created, err := h.promotionService.Create(r.Context(), p)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PromotionResponse(created))
}

// UpdatePromotion godoc
//
//	@Summary		Update a promotion
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Promotion id"
//	@Param			request	body		dto.PromotionRequestDTO		true	"Promotion"
//	@Success		200		{object}	dto.PromotionResponseDTO	"Updated promotion"
//	@Failure		400		{object}	utils.Response				"Invalid promotion"
//	@Failure		404		{object}	utils.Response				"Promotion not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/promotions/{id} [put]
func (h *PromotionHandler) UpdatePromotion(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	p, ok := h.decode(w, r)
	if !ok {
		return
	}
	p.ID = id
	updated, err := h.promotionService.Update(r.Context(), p)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PromotionResponse(updated))
}

// DeletePromotion godoc
//
//	@Summary		Delete a promotion
//	@Description	Soft delete. Rewards already paid stay on the ledger.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Promotion id"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Promotion not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/promotions/{id} [delete]
func (h *PromotionHandler) DeletePromotion(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	if err := h.promotionService.Delete(r.Context(), id); err != nil {
		httpx.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetRewards godoc
//
//	@Summary		List rewards paid by a promotion
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Promotion id"
//	@Success		200	{array}		dto.RewardResponseDTO	"Rewards"
//	@Failure		404	{object}	utils.Response			"Promotion not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/promotions/{id}/rewards [get]
func (h *PromotionHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	rewards, err := h.promotionService.Rewards(r.Context(), id)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RewardsResponse(rewards))
}

// MigrateRewards godoc
//
//	@Summary		Backfill promotion rewards
//	@Description	Grant rewards for deposits approved inside the promotion window that were not rewarded yet.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Promotion id"
//	@Success		200	{object}	domain.MigrationResult	"Migrated and skipped deposits"
//	@Failure		404	{object}	utils.Response			"Promotion not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/promotions/{id}/migrate [post]
func (h *PromotionHandler) MigrateRewards(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	result, err := h.promotionService.Migrate(r.Context(), id)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

func (h *PromotionHandler) decode(w http.ResponseWriter, r *http.Request) (*domain.Promotion, bool) {
	var req dto.PromotionRequestDTO
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, err)
		return nil, false
	}
	p, err := req.Promotion()
	if err != nil {
		httpx.Error(w, r, err)
		return nil, false
	}
	return p, true
}
