package matching

import (
	"context"
	"math"
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/internal/assets"
	"lakeside-exchange/marketplace-backend/pkg/apperrors"
)

// Recommendation pairs a listing with its match score and the reasons
// behind it.
type Recommendation struct {
	Asset          *assets.Listing `json:"asset"`
	MatchScore     int             `json:"matchScore"`
	MatchReasons   []string        `json:"matchReasons"`
	Recommendation string          `json:"recommendation"`
}

// ReturnEstimate is the output of the return calculator.
type ReturnEstimate struct {
	Principal       float64 `json:"principal"`
	EstimatedReturn float64 `json:"estimatedReturn"`
	TotalValue      float64 `json:"totalValue"`
	ROI             float64 `json:"roi"`
}

// Service scores live listings against a generic investor profile.
type Service struct {
	listings *assets.Service
	logger   *zap.Logger
}

func NewService(listings *assets.Service, logger *zap.Logger) *Service {
	return &Service{listings: listings, logger: logger}
}

// Recommendations scores every FUNDING listing and returns the top ten
// by match score.
func (s *Service) Recommendations(ctx context.Context) ([]Recommendation, error) {
	listings, err := s.listings.List(ctx, assets.Filter{Status: string(assets.StatusFunding)})
	if err != nil {
		return nil, err
	}

	out := make([]Recommendation, 0, len(listings))
	for _, listing := range listings {
		out = append(out, score(listing))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	if len(out) > 10 {
		out = out[:10]
	}
	return out, nil
}

// score mirrors the demo heuristic: a fixed base, a funding-progress
// bonus, a risk adjustment and a little jitter, capped at 98.
func score(listing *assets.Listing) Recommendation {
	baseScore := 70.0
	var progress float64
	if listing.TargetAmount > 0 {
		progress = listing.RaisedAmount / listing.TargetAmount
	}
	progressBonus := progress * 15

	var riskAdjustment float64
	switch listing.RiskLevel {
	case "LOW":
		riskAdjustment = 10
	case "MEDIUM":
		riskAdjustment = 5
	}

	matchScore := int(math.Round(baseScore + progressBonus + riskAdjustment + rand.Float64()*5))
	if matchScore > 98 {
		matchScore = 98
	}

	reasons := []string{}
	if listing.RiskLevel == "LOW" {
		reasons = append(reasons, "low risk profile fits conservative mandates")
	}
	if listing.ExpectedReturn.Min >= 10 {
		reasons = append(reasons, "projected returns clear the 10% floor")
	}
	if progress > 0.5 {
		reasons = append(reasons, "funding is past the halfway mark")
	}
	passed := 0
	for _, ok := range listing.DueDiligence {
		if ok {
			passed++
		}
	}
	if passed >= 3 {
		reasons = append(reasons, "due diligence checks complete")
	}
	reasons = append(reasons, "matches your stated investment preferences")

	tier := "CONSIDER"
	if matchScore >= 80 {
		tier = "HIGHLY_RECOMMENDED"
	} else if matchScore >= 70 {
		tier = "RECOMMENDED"
	}

	return Recommendation{
		Asset:          listing,
		MatchScore:     matchScore,
		MatchReasons:   reasons,
		Recommendation: tier,
	}
}

// Compare returns the listings for the given IDs, silently skipping
// any that no longer exist.
func (s *Service) Compare(ctx context.Context, assetIDs []string) ([]*assets.Listing, error) {
	if assetIDs == nil {
		return nil, apperrors.Validation("assetIds must be a list of asset IDs")
	}
	out := make([]*assets.Listing, 0, len(assetIDs))
	for _, id := range assetIDs {
		if listing, err := s.listings.Get(ctx, id); err == nil {
			out = append(out, listing)
		}
	}
	return out, nil
}

// Calculate runs the simple-interest return estimate used by the
// matching workbench.
func (s *Service) Calculate(amount, expectedReturn float64, periodMonths int) ReturnEstimate {
	estimated := amount * (expectedReturn / 100) * (float64(periodMonths) / 12)
	var roi float64
	if amount > 0 {
		roi = estimated / amount * 100
	}
	return ReturnEstimate{
		Principal:       amount,
		EstimatedReturn: estimated,
		TotalValue:      amount + estimated,
		ROI:             roi,
	}
}
