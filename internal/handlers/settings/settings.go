package settings

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/dto"
	"github.com/GlebRadaev/stakeledger/internal/handlers/httpx"
	"github.com/GlebRadaev/stakeledger/pkg/utils"
)

//go:generate mockgen -source=settings.go -destination=mock_settings.go -package=settings

type Service interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, patch domain.SettingsPatch) (*domain.Settings, error)
}

type SettingsHandler struct {
	settingsService Service
}

func New(settingsService Service) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings godoc
//
//	@Summary		Get platform settings
//	@Description	Charges, withdrawal days and limits, and the daily ROI time.
//	@Tags			Settings
//	@Produce		json
//	@Success		200	{object}	dto.SettingsDTO	"Current settings"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/settings [get]
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.settingsService.Get(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettingsResponse(s))
}

// UpdateSettings godoc
//
//	@Summary		Update platform settings
//	@Description	Only the fields present in the body change. A new ROI time is picked up by the scheduler right away.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateSettingsRequestDTO	true	"Settings patch"
//	@Success		200		{object}	dto.SettingsDTO					"Updated settings"
//	@Failure		400		{object}	utils.Response					"Invalid settings"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/settings [put]
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequestDTO
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	s, err := h.settingsService.Update(r.Context(), req.Patch())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettingsResponse(s))
}
