package batch

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/dto"
	"github.com/GlebRadaev/stakeledger/internal/handlers/httpx"
	"github.com/GlebRadaev/stakeledger/internal/jobs"
	"github.com/GlebRadaev/stakeledger/internal/service/roiservice"
	"github.com/GlebRadaev/stakeledger/pkg/utils"
)

//go:generate mockgen -source=batch.go -destination=mock_batch.go -package=batch

type ROIService interface {
	RunDaily(ctx context.Context, asOf time.Time) (*domain.ROISummary, error)
	Status() roiservice.Status
}

type LevelService interface {
	RecomputeAll(ctx context.Context) (*domain.LevelSummary, error)
}

type CapitalService interface {
	ReleaseMatured(ctx context.Context, asOf time.Time) (*domain.CapitalSummary, error)
}

type Scheduler interface {
	Status() jobs.Schedule
}

type BatchHandler struct {
	roiService     ROIService
	levelService   LevelService
	capitalService CapitalService
	scheduler      Scheduler
}

func New(roiService ROIService, levelService LevelService, capitalService CapitalService, scheduler Scheduler) *BatchHandler {
	return &BatchHandler{
		roiService:     roiService,
		levelService:   levelService,
		capitalService: capitalService,
		scheduler:      scheduler,
	}
}

// RunROI godoc
//
//	@Summary		Run daily ROI
//	@Description	Credit one day of ROI for the given date (default today, UTC). Accounts already paid for the date are skipped.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RunROIRequestDTO	false	"Accrual date"
//	@Success		200		{object}	domain.ROISummary		"Run summary"
//	@Failure		400		{object}	utils.Response			"Invalid date"
//	@Failure		409		{object}	utils.Response			"Run already in progress"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/roi/run [post]
func (h *BatchHandler) RunROI(w http.ResponseWriter, r *http.Request) {
	var req dto.RunROIRequestDTO
	asOf, ok := decodeAsOf(w, r, &req, &req.AsOf)
	if !ok {
		return
	}

	summary, err := h.roiService.RunDaily(r.Context(), asOf)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// ROIStatus godoc
//
//	@Summary		ROI scheduler status
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ROIStatusResponseDTO	"Scheduler status"
//	@Router			/api/admin/roi/status [get]
func (h *BatchHandler) ROIStatus(w http.ResponseWriter, r *http.Request) {
	st := h.roiService.Status()
	sched := h.scheduler.Status()
	utils.RespondWithJSON(w, http.StatusOK, dto.ROIStatusResponseDTO{
		Running:     st.Running,
		Schedule:    sched.Spec,
		LastRun:     st.LastRun,
		NextRun:     sched.NextRun,
		LastSummary: st.LastSummary,
	})
}

// RecalculateLevels godoc
//
//	@Summary		Recalculate all levels
//	@Description	Re-evaluate every account's tier from one snapshot. The summary lists the accounts that changed, the ones skipped because their level moved meanwhile, and failed writes.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.LevelSummary	"Recalculation summary"
//	@Failure		409	{object}	utils.Response		"Recalculation already in progress"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/levels/recalculate [post]
func (h *BatchHandler) RecalculateLevels(w http.ResponseWriter, r *http.Request) {
	summary, err := h.levelService.RecomputeAll(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// ReleaseCapital godoc
//
//	@Summary		Release matured capital
//	@Description	Return the principal of every approved deposit whose lock-in term ended by the given date (default now) to the owner's wallet. Deposits already released are skipped.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ReleaseCapitalRequestDTO	false	"Cut-off date"
//	@Success		200		{object}	domain.CapitalSummary			"Release summary"
//	@Failure		400		{object}	utils.Response					"Invalid date"
//	@Failure		409		{object}	utils.Response					"Release already in progress"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/capital/release [post]
func (h *BatchHandler) ReleaseCapital(w http.ResponseWriter, r *http.Request) {
	var req dto.ReleaseCapitalRequestDTO
	asOf, ok := decodeAsOf(w, r, &req, &req.AsOf)
	if !ok {
		return
	}

	summary, err := h.capitalService.ReleaseMatured(r.Context(), asOf)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// decodeAsOf reads an optional body into req and parses the date it leaves in asOf.
// An empty body or date yields the zero time.
func decodeAsOf(w http.ResponseWriter, r *http.Request, req any, asOf *string) (time.Time, bool) {
	if r.ContentLength != 0 && r.Body != http.NoBody {
		if err := httpx.Decode(r, req); err != nil {
			httpx.Error(w, r, err)
			return time.Time{}, false
		}
	}
	if *asOf == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", *asOf)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "as_of must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}
