package projects

import "time"

// Status is the project lifecycle status.
type Status string

const (
	StatusDraft       Status = "DRAFT"
	StatusPending     Status = "PENDING"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
	StatusListed      Status = "LISTED"
	StatusFunding     Status = "FUNDING"
	StatusFunded      Status = "FUNDED"
)

// Decision is an admin review outcome.
type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

// ExpectedReturn is the projected return range for a project.
type ExpectedReturn struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Type string  `json:"type"`
}

// Document is a supporting file attached to a submission.
type Document struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Project represents a funding proposal submitted by a project owner.
type Project struct {
	ID               string             `json:"id"`
	OwnerID          string             `json:"ownerId"`
	OwnerName        string             `json:"ownerName"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Type             string             `json:"type"`
	OriginalCategory string             `json:"originalCategory,omitempty"`
	TargetAmount     float64            `json:"targetAmount"`
	MinInvestment    float64            `json:"minInvestment"`
	MaxInvestment    float64            `json:"maxInvestment"`
	ExpectedReturn   ExpectedReturn     `json:"expectedReturn"`
	RevenueStructure map[string]float64 `json:"revenueStructure"`
	RiskLevel        string             `json:"riskLevel"`
	Region           string             `json:"region"`
	City             string             `json:"city"`
	InvestmentPeriod int                `json:"investmentPeriod"` // months
	FundingDeadline  string             `json:"fundingDeadline"`  // YYYY-MM-DD
	Status           Status             `json:"status"`
	SubmittedAt      *time.Time         `json:"submittedAt,omitempty"`
	ReviewedAt       *time.Time         `json:"reviewedAt,omitempty"`
	ReviewNotes      string             `json:"reviewNotes,omitempty"`
	Documents        []Document         `json:"documents,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// Clone returns a copy of the project that is safe to hand out of the
// repository. Maps and slices are copied so callers cannot mutate
// stored state.
func (p *Project) Clone() *Project {
	out := *p
	if p.RevenueStructure != nil {
		out.RevenueStructure = make(map[string]float64, len(p.RevenueStructure))
		for k, v := range p.RevenueStructure {
			out.RevenueStructure[k] = v
		}
	}
	if p.Documents != nil {
		out.Documents = append([]Document(nil), p.Documents...)
	}
	if p.SubmittedAt != nil {
		t := *p.SubmittedAt
		out.SubmittedAt = &t
	}
	if p.ReviewedAt != nil {
		t := *p.ReviewedAt
		out.ReviewedAt = &t
	}
	return &out
}
