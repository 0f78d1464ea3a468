package admin

import (
	"context"
	"math"

	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/internal/assets"
)

// Overview is the central kitchen headline data.
type Overview struct {
	TotalAssets     float64            `json:"totalAssets"` // raised, in 10k units
	AssetPipeline   int                `json:"assetPipeline"`
	PendingApproval int                `json:"pendingApproval"`
	SystemHealth    float64            `json:"systemHealth"`
	Pipeline        PipelineCounts     `json:"pipeline"`
	Distribution    map[string]float64 `json:"distribution"`
}

// PipelineCounts breaks the asset pipeline down by listing status.
type PipelineCounts struct {
	Pending     int `json:"pending"`
	UnderReview int `json:"underReview"`
	Listed      int `json:"listed"`
	Funding     int `json:"funding"`
	Completed   int `json:"completed"`
}

// Service aggregates the admin console views over the listing mirror.
type Service struct {
	listings *assets.Service
	logger   *zap.Logger
}

func NewService(listings *assets.Service, logger *zap.Logger) *Service {
	return &Service{listings: listings, logger: logger}
}

// Overview computes pipeline and distribution stats over all listings.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	listings, err := s.listings.List(ctx, assets.Filter{})
	if err != nil {
		return nil, err
	}

	out := &Overview{
		AssetPipeline: len(listings),
		SystemHealth:  98.5,
		Distribution:  map[string]float64{},
	}
	typeCounts := map[string]int{}
	for _, l := range listings {
		out.TotalAssets += l.RaisedAmount / 10000
		typeCounts[l.Type]++
		switch l.Status {
		case assets.StatusPending:
			out.Pipeline.Pending++
		case assets.StatusUnderReview:
			out.Pipeline.UnderReview++
		case assets.StatusListed, assets.StatusFunding:
			out.Pipeline.Listed++
			if l.Status == assets.StatusFunding {
				out.Pipeline.Funding++
			}
		case assets.StatusFunded:
			out.Pipeline.Completed++
		}
	}
	out.PendingApproval = out.Pipeline.Pending

	if len(listings) > 0 {
		total := float64(len(listings))
		for assetType, count := range typeCounts {
			out.Distribution[assetType] = math.Round(float64(count) / total * 100)
		}
	}
	return out, nil
}

// PipelineAssets returns every listing for the review console.
func (s *Service) PipelineAssets(ctx context.Context) ([]*assets.Listing, error) {
	return s.listings.List(ctx, assets.Filter{})
}
