package accountservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/pg"
)

//go:generate mockgen -source=accountservice.go -destination=mock_accountservice.go -package=accountservice

type Repo interface {
	Create(ctx context.Context, parentID *int64, level int) (*domain.Account, error)
	Get(ctx context.Context, id int64) (*domain.Account, error)
	Downline(ctx context.Context, id int64, maxDepth int) ([]domain.Account, error)
}

type TierRepo interface {
	List(ctx context.Context) ([]domain.Tier, error)
}

// Team is the downline of an account counted per depth. Counts[d-1] is the size of depth d.
type Team struct {
	AccountID int64 `json:"account_id"`
	Direct    int   `json:"direct"`
	Total     int   `json:"total"`
	Counts    []int `json:"counts"`
}

type Service struct {
	repo      Repo
	tiers     TierRepo
	txManager pg.TXManager
	maxDepth  int
}

func New(repo Repo, tiers TierRepo, txManager pg.TXManager, maxDepth int) *Service {
	return &Service{
		repo:      repo,
		tiers:     tiers,
		txManager: txManager,
		maxDepth:  maxDepth,
	}
}

// Create registers an account under parentID (nil for a root) on the lowest tier.
func (s *Service) Create(ctx context.Context, parentID *int64) (*domain.Account, error) {
	rows, err := s.tiers.List(ctx)
	if err != nil {
		return nil, err
	}
	lowest, ok := domain.NewTierTable(rows).Lowest()
	if !ok {
		return nil, domain.NewError(domain.KindInvalidState, "tier table is empty")
	}

	var acc *domain.Account
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if parentID != nil {
			if _, err := s.repo.Get(ctx, *parentID); err != nil {
				return err
			}
		}
		acc, err = s.repo.Create(ctx, parentID, lowest.Level)
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("account created", zap.Int64("accountID", acc.ID), zap.Int64p("parentID", parentID))
	return acc, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Account, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Team(ctx context.Context, id int64) (*Team, error) {
	members, err := s.repo.Downline(ctx, id, s.maxDepth)
	if err != nil {
		return nil, err
	}

	depth := map[int64]int{id: 0}
	team := &Team{AccountID: id, Counts: []int{}}
	// Downline is ordered by id and parents are always created before children.
	for _, m := range members {
		if m.ID == id || m.ParentID == nil {
			continue
		}
		pd, ok := depth[*m.ParentID]
		if !ok {
			continue
		}
		d := pd + 1
		depth[m.ID] = d
		for len(team.Counts) < d {
			team.Counts = append(team.Counts, 0)
		}
		team.Counts[d-1]++
		team.Total++
	}
	if len(team.Counts) > 0 {
		team.Direct = team.Counts[0]
	}
	return team, nil
}
