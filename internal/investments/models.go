package investments

import "time"

// Investment links an investor to a market listing.
type Investment struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	AssetID        string    `json:"assetId"`
	Amount         float64   `json:"amount"`
	ManagementFee  float64   `json:"managementFee"`
	TransactionFee float64   `json:"transactionFee"`
	NetAmount      float64   `json:"netAmount"`
	CurrentValue   float64   `json:"currentValue"`
	ReturnRate     float64   `json:"returnRate"`
	Status         string    `json:"status"`
	PNoteNumber    string    `json:"pNoteNumber"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// AssetSummary is the slice of listing data embedded in portfolio
// responses.
type AssetSummary struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Type              string  `json:"type"`
	Status            string  `json:"status"`
	ExpectedReturnMin float64 `json:"expectedReturnMin"`
	ExpectedReturnMax float64 `json:"expectedReturnMax"`
}

// InvestmentWithAsset pairs an investment with its listing summary.
// Asset is nil when the listing has been unlisted since.
type InvestmentWithAsset struct {
	Investment
	Asset *AssetSummary `json:"asset"`
}

// Milestone is an upcoming dividend checkpoint derived from the
// listing's investment period.
type Milestone struct {
	ID             string       `json:"id"`
	AssetID        string       `json:"assetId"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	DueDate        string       `json:"dueDate"`
	Status         string       `json:"status"`
	ExpectedAmount float64      `json:"expectedAmount"`
	Asset          AssetSummary `json:"asset"`
}

// PortfolioStats aggregates an investor's holdings.
type PortfolioStats struct {
	TotalValue         float64            `json:"totalValue"`
	TotalReturn        float64            `json:"totalReturn"`
	Distribution       map[string]float64 `json:"distribution"`
	UpcomingMilestones []Milestone        `json:"upcomingMilestones"`
	UserID             string             `json:"userId"`
}
