package assets

import (
	"strings"
	"time"
)

// Status is the market-facing listing status.
type Status string

const (
	StatusPending     Status = "PENDING"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusListed      Status = "LISTED"
	StatusFunding     Status = "FUNDING"
	StatusFunded      Status = "FUNDED"
)

// ListingIDPrefix is the naming convention for listings synthesized
// from approved projects. Retained as a derivation fallback for
// legacy-shaped records; the ProjectID back-reference is authoritative.
const ListingIDPrefix = "asset-from-"

// ListingIDFor derives the listing ID for an approved project.
func ListingIDFor(projectID string) string {
	return ListingIDPrefix + projectID
}

// ProjectIDFromListingID recovers the originating project ID from a
// convention-shaped listing ID.
func ProjectIDFromListingID(listingID string) (string, bool) {
	if !strings.HasPrefix(listingID, ListingIDPrefix) {
		return "", false
	}
	return strings.TrimPrefix(listingID, ListingIDPrefix), true
}

// ExpectedReturn is the projected return range for a listing.
type ExpectedReturn struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Type string  `json:"type"`
}

// Listing represents a project's public market-facing appearance.
// ProjectID is empty for listings created directly by an admin.
type Listing struct {
	ID               string             `json:"id"`
	ProjectID        string             `json:"projectId,omitempty"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Type             string             `json:"type"`
	OriginalCategory string             `json:"originalCategory,omitempty"`
	TargetAmount     float64            `json:"targetAmount"`
	RaisedAmount     float64            `json:"raisedAmount"`
	MinInvestment    float64            `json:"minInvestment"`
	MaxInvestment    float64            `json:"maxInvestment"`
	ExpectedReturn   ExpectedReturn     `json:"expectedReturn"`
	RevenueStructure map[string]float64 `json:"revenueStructure"`
	RiskLevel        string             `json:"riskLevel"`
	RiskScore        int                `json:"riskScore"`
	Region           string             `json:"region"`
	City             string             `json:"city"`
	Status           Status             `json:"status"`
	FundingDeadline  string             `json:"fundingDeadline"`
	InvestmentPeriod int                `json:"investmentPeriod"`
	DueDiligence     map[string]bool    `json:"dueDiligence,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// Clone returns a copy safe to hand out of the repository.
func (l *Listing) Clone() *Listing {
	out := *l
	if l.RevenueStructure != nil {
		out.RevenueStructure = make(map[string]float64, len(l.RevenueStructure))
		for k, v := range l.RevenueStructure {
			out.RevenueStructure[k] = v
		}
	}
	if l.DueDiligence != nil {
		out.DueDiligence = make(map[string]bool, len(l.DueDiligence))
		for k, v := range l.DueDiligence {
			out.DueDiligence[k] = v
		}
	}
	return &out
}

// RiskScoreFor maps a risk tier to its indicative score.
func RiskScoreFor(riskLevel string) int {
	switch riskLevel {
	case "LOW":
		return 30
	case "MEDIUM":
		return 50
	default:
		return 70
	}
}

// Filter narrows a market listing query. Zero values match everything.
type Filter struct {
	Types      []string
	RiskLevels []string
	Status     string
	Region     string
}

// Matches reports whether a listing passes the filter. A LISTED status
// filter also admits FUNDING and FUNDED listings, since those are live
// on the market.
func (f Filter) Matches(l *Listing) bool {
	if len(f.Types) > 0 && !contains(f.Types, l.Type) {
		return false
	}
	if len(f.RiskLevels) > 0 && !contains(f.RiskLevels, l.RiskLevel) {
		return false
	}
	if f.Status != "" {
		if f.Status == string(StatusListed) {
			switch l.Status {
			case StatusListed, StatusFunding, StatusFunded:
			default:
				return false
			}
		} else if string(l.Status) != f.Status {
			return false
		}
	}
	if f.Region != "" && l.Region != f.Region {
		return false
	}
	return true
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// UnlistResult reports the outcome of pulling a listing from the
// market: which project now holds the pending submission, and whether
// it had to be synthesized.
type UnlistResult struct {
	AssetID     string `json:"assetId"`
	ProjectID   string `json:"projectId"`
	Synthesized bool   `json:"synthesized"`
	Message     string `json:"message"`
}
