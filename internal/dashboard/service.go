package dashboard

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/internal/assets"
	"lakeside-exchange/marketplace-backend/internal/investments"
)

// KPISnapshot is the headline dashboard card data.
type KPISnapshot struct {
	TotalInvestment     float64   `json:"totalInvestment"`
	ActiveOpportunities int       `json:"activeOpportunities"`
	MatchedTransactions int       `json:"matchedTransactions"`
	PortfolioReturn     float64   `json:"portfolioReturn"`
	RefreshedAt         time.Time `json:"refreshedAt"`
}

// TrendPoint is one step of a funding trend series.
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Service aggregates dashboard data over the listing and investment
// stores. The KPI snapshot is cached and refreshed on a schedule so
// the landing page never pays the aggregation cost.
type Service struct {
	listings    *assets.Service
	investments investments.Repository
	trends      map[string][]TrendPoint
	activity    *ActivityLog
	logger      *zap.Logger

	mu       sync.RWMutex
	snapshot KPISnapshot
}

func NewService(
	listings *assets.Service,
	invRepo investments.Repository,
	trends map[string][]TrendPoint,
	activity *ActivityLog,
	logger *zap.Logger,
) *Service {
	return &Service{
		listings:    listings,
		investments: invRepo,
		trends:      trends,
		activity:    activity,
		logger:      logger,
	}
}

// StartSnapshotJob refreshes the KPI cache now and then once a minute
// on the shared cron scheduler.
func (s *Service) StartSnapshotJob(scheduler *cron.Cron) error {
	s.Refresh(context.Background())
	_, err := scheduler.AddFunc("@every 1m", func() {
		s.Refresh(context.Background())
	})
	return err
}

// Refresh recomputes the KPI snapshot from current state.
func (s *Service) Refresh(ctx context.Context) {
	listings, err := s.listings.List(ctx, assets.Filter{})
	if err != nil {
		s.logger.Warn("kpi refresh: listing query failed", zap.Error(err))
		return
	}
	invs, err := s.investments.List(ctx)
	if err != nil {
		s.logger.Warn("kpi refresh: investment query failed", zap.Error(err))
		return
	}

	snapshot := KPISnapshot{RefreshedAt: time.Now()}
	for _, l := range listings {
		snapshot.TotalInvestment += l.RaisedAmount
		switch l.Status {
		case assets.StatusListed, assets.StatusFunding:
			snapshot.ActiveOpportunities++
		}
	}
	snapshot.MatchedTransactions = len(invs)

	var invested, current float64
	for _, inv := range invs {
		invested += inv.Amount
		current += inv.CurrentValue
	}
	if invested > 0 {
		snapshot.PortfolioReturn = (current - invested) / invested * 100
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()
}

// KPI returns the cached snapshot.
func (s *Service) KPI() KPISnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Trends returns the funding trend series per asset type.
func (s *Service) Trends() map[string][]TrendPoint {
	return s.trends
}

// Featured returns the four listings closest to their funding target.
func (s *Service) Featured(ctx context.Context) ([]*assets.Listing, error) {
	listings, err := s.listings.List(ctx, assets.Filter{})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(listings, func(i, j int) bool {
		return progress(listings[i]) > progress(listings[j])
	})
	if len(listings) > 4 {
		listings = listings[:4]
	}
	return listings, nil
}

func progress(l *assets.Listing) float64 {
	if l.TargetAmount == 0 {
		return 0
	}
	return l.RaisedAmount / l.TargetAmount
}
