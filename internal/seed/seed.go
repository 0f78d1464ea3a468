package seed

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"lakeside-exchange/marketplace-backend/internal/assets"
	"lakeside-exchange/marketplace-backend/internal/auth"
	"lakeside-exchange/marketplace-backend/internal/dashboard"
	"lakeside-exchange/marketplace-backend/internal/investments"
	"lakeside-exchange/marketplace-backend/internal/notifications"
	"lakeside-exchange/marketplace-backend/internal/projects"
)

// Stores collects the repositories the demo dataset is loaded into.
type Stores struct {
	Users       auth.Repository
	Projects    projects.Repository
	Listings    assets.Repository
	Investments investments.Repository
	Activity    *dashboard.ActivityLog
}

// Apply loads the demo dataset: accounts, in-flight submissions, market
// listings, investment records and the activity feed. It returns the
// funding trend series keyed by asset type for the dashboard.
func Apply(ctx context.Context, stores Stores, logger *zap.Logger) (map[string][]dashboard.TrendPoint, error) {
	for _, u := range demoUsers() {
		if err := stores.Users.Insert(ctx, u); err != nil {
			return nil, err
		}
	}
	for _, p := range demoProjects() {
		if err := stores.Projects.Insert(ctx, p); err != nil {
			return nil, err
		}
	}
	for _, l := range demoListings() {
		if err := stores.Listings.Insert(ctx, l); err != nil {
			return nil, err
		}
	}
	for _, inv := range demoInvestments() {
		if err := stores.Investments.Insert(ctx, inv); err != nil {
			return nil, err
		}
	}
	stores.Activity.Seed(demoActivities())

	logger.Info("demo dataset loaded",
		zap.Int("users", len(demoUsers())),
		zap.Int("projects", len(demoProjects())),
		zap.Int("listings", len(demoListings())),
		zap.Int("investments", len(demoInvestments())),
	)
	return trendSeries(), nil
}

func hash(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h)
}

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func tsp(value string) *time.Time {
	t := ts(value)
	return &t
}

func demoUsers() []*auth.User {
	return []*auth.User{
		{
			ID:               "investor-inst-001",
			Email:            "droplet@capital.com",
			PasswordHash:     hash("demo123"),
			Name:             "Droplet Capital Management",
			Role:             auth.RoleInvestor,
			Phone:            "021-68886666",
			OrganizationType: "INSTITUTION",
			CreatedAt:        ts("2024-01-10T00:00:00Z"),
			UpdatedAt:        ts("2026-01-20T00:00:00Z"),
		},
		{
			ID:               "investor-inst-002",
			Email:            "stream@asset.com",
			PasswordHash:     hash("demo123"),
			Name:             "Streamside Asset Management",
			Role:             auth.RoleInvestor,
			Phone:            "021-23219000",
			OrganizationType: "INSTITUTION",
			CreatedAt:        ts("2024-02-15T00:00:00Z"),
			UpdatedAt:        ts("2026-01-20T00:00:00Z"),
		},
		{
			ID:               "investor-inst-003",
			Email:            "dewdrop@trust.com",
			PasswordHash:     hash("demo123"),
			Name:             "Dewdrop Trust Co.",
			Role:             auth.RoleInvestor,
			Phone:            "0755-82430888",
			OrganizationType: "INSTITUTION",
			CreatedAt:        ts("2024-03-20T00:00:00Z"),
			UpdatedAt:        ts("2026-01-20T00:00:00Z"),
		},
		{
			ID:               "investor-individual-001",
			Email:            "m.archer@wealth.com",
			PasswordHash:     hash("demo123"),
			Name:             "Ming Archer",
			Role:             auth.RoleInvestor,
			Phone:            "138-0013-8888",
			OrganizationType: "INDIVIDUAL",
			CreatedAt:        ts("2023-06-15T00:00:00Z"),
			UpdatedAt:        ts("2026-01-20T00:00:00Z"),
		},
		{
			ID:               "project-owner-001",
			Email:            "concert@operator.com",
			PasswordHash:     hash("demo123"),
			Name:             "Starlight Entertainment Group",
			Role:             auth.RoleProjectOwner,
			Phone:            "010-84568888",
			OrganizationType: "INSTITUTION",
			CreatedAt:        ts("2024-05-01T00:00:00Z"),
			UpdatedAt:        ts("2026-01-20T00:00:00Z"),
		},
		{
			ID:               "project-owner-002",
			Email:            "racing@venue.com",
			PasswordHash:     hash("demo123"),
			Name:             "Grand Circuit Events Ltd.",
			Role:             auth.RoleProjectOwner,
			Phone:            "021-68881234",
			OrganizationType: "INSTITUTION",
			CreatedAt:        ts("2024-04-10T00:00:00Z"),
			UpdatedAt:        ts("2026-01-20T00:00:00Z"),
		},
		{
			ID:               "admin-001",
			Email:            "admin@lakeside.com",
			PasswordHash:     hash("admin123"),
			Name:             "Lakeside Exchange Operations",
			Role:             auth.RoleAdmin,
			Phone:            "400-888-6666",
			OrganizationType: "INSTITUTION",
			CreatedAt:        ts("2023-01-01T00:00:00Z"),
			UpdatedAt:        ts("2026-01-20T00:00:00Z"),
		},
	}
}

func demoProjects() []*projects.Project {
	return []*projects.Project{
		{
			ID:        "project-submit-001",
			OwnerID:   "project-owner-001",
			OwnerName: "Starlight Entertainment Group",
			Title:     "Jay Chou 2026 World Tour Revenue Rights",
			Description: "Revenue-share financing for the China leg of the 2026 " +
				"world tour: 12 shows across 5 cities, projected attendance above " +
				"600,000. Income mix is roughly 65% ticketing, 25% sponsorship and " +
				"10% merchandise. Venue leases and the promoter contract are signed " +
				"and cancellation insurance is in place.",
			Type:             "CO_INVESTMENT",
			OriginalCategory: "CONCERT_TICKET",
			TargetAmount:     15000000,
			MinInvestment:    500000,
			MaxInvestment:    5000000,
			ExpectedReturn:   projects.ExpectedReturn{Min: 18, Max: 28, Type: "project payout"},
			RevenueStructure: map[string]float64{
				"ticket sales": 65,
				"sponsorship":  25,
				"merchandise":  10,
			},
			RiskLevel:        "MEDIUM",
			Region:           "Nationwide",
			City:             "Beijing",
			InvestmentPeriod: 12,
			FundingDeadline:  "2026-03-31",
			Status:           projects.StatusUnderReview,
			SubmittedAt:      tsp("2026-01-20T10:30:00Z"),
			Documents: []projects.Document{
				{Name: "performance-contract.pdf", URL: "/documents/project-001/contract.pdf", Type: "application/pdf"},
				{Name: "venue-lease.pdf", URL: "/documents/project-001/venue.pdf", Type: "application/pdf"},
				{Name: "financial-forecast.xlsx", URL: "/documents/project-001/financial.xlsx", Type: "application/vnd.ms-excel"},
			},
			CreatedAt: ts("2026-01-18T09:00:00Z"),
			UpdatedAt: ts("2026-01-20T10:30:00Z"),
		},
		{
			ID:        "project-submit-002",
			OwnerID:   "project-owner-001",
			OwnerName: "Starlight Entertainment Group",
			Title:     "Mayday Stadium Tour Revenue Rights",
			Description: "Revenue-share financing for a 15-show stadium tour " +
				"across 6 cities with projected attendance above 550,000. Income " +
				"mix is roughly 70% ticketing, 20% sponsorship and 10% merchandise " +
				"plus streaming rights. Venue letters of intent are signed.",
			Type:             "CO_INVESTMENT",
			OriginalCategory: "CONCERT_TICKET",
			TargetAmount:     12000000,
			MinInvestment:    500000,
			MaxInvestment:    3000000,
			ExpectedReturn:   projects.ExpectedReturn{Min: 15, Max: 25, Type: "project payout"},
			RevenueStructure: map[string]float64{
				"ticket sales":            70,
				"sponsorship":             20,
				"merchandise + streaming": 10,
			},
			RiskLevel:        "MEDIUM",
			Region:           "Nationwide",
			City:             "Shanghai",
			InvestmentPeriod: 10,
			FundingDeadline:  "2026-04-30",
			Status:           projects.StatusPending,
			SubmittedAt:      tsp("2026-01-23T14:30:00Z"),
			CreatedAt:        ts("2026-01-22T09:15:00Z"),
			UpdatedAt:        ts("2026-01-23T14:30:00Z"),
		},
	}
}

func demoListings() []*assets.Listing {
	fullDD := map[string]bool{
		"financial_audit":    true,
		"legal_compliance":   true,
		"operational_review": true,
		"market_analysis":    true,
	}
	return []*assets.Listing{
		{
			ID:    "mifc-fund-lp-001",
			Title: "Flagship Fund LP Units 2024-Q1",
			Description: "Junior LP units of the flagship fund, 400M of a 500M " +
				"structure. The fund spreads capital across revenue-share projects " +
				"in entertainment, sports venues and campus facilities with a 10M " +
				"per-project limit. Base return 15% annualized with 80% of excess " +
				"returns above the senior hurdle accruing to LP holders. Junior " +
				"units absorb first losses.",
			Type:           "MIFC_FUND_LP",
			TargetAmount:   400000000,
			RaisedAmount:   280000000,
			MinInvestment:  5000000,
			MaxInvestment:  100000000,
			ExpectedReturn: assets.ExpectedReturn{Min: 15, Max: 20, Type: "annualized plus carry"},
			RevenueStructure: map[string]float64{
				"base return":  75,
				"excess carry": 25,
			},
			RiskLevel:        "HIGH",
			RiskScore:        68,
			Region:           "Nationwide",
			City:             "Shanghai",
			Status:           assets.StatusFunding,
			FundingDeadline:  "2026-03-31",
			InvestmentPeriod: 60,
			DueDiligence: map[string]bool{
				"financial_audit":  true,
				"legal_compliance": true,
				"risk_assessment":  true,
				"strategy_review":  true,
			},
			CreatedAt: ts("2024-01-15T00:00:00Z"),
			UpdatedAt: ts("2026-01-26T00:00:00Z"),
		},
		{
			ID:    "mifc-abs-001",
			Title: "Flagship Fund ABS Senior Tranche 2024-A1",
			Description: "Senior asset-backed tranche with priority claim on the " +
				"500M portfolio and an 80% junior cushion. Fixed 8% annual coupon " +
				"paid quarterly, transferable after an 18 month holding period.",
			Type:           "MIFC_ABS",
			TargetAmount:   100000000,
			RaisedAmount:   65000000,
			MinInvestment:  3000000,
			MaxInvestment:  30000000,
			ExpectedReturn: assets.ExpectedReturn{Min: 8, Max: 8, Type: "fixed annual"},
			RevenueStructure: map[string]float64{
				"fixed coupon": 100,
			},
			RiskLevel:        "LOW",
			RiskScore:        25,
			Region:           "Nationwide",
			City:             "Shanghai",
			Status:           assets.StatusFunding,
			FundingDeadline:  "2026-02-28",
			InvestmentPeriod: 36,
			DueDiligence: map[string]bool{
				"financial_audit":  true,
				"legal_compliance": true,
				"risk_assessment":  true,
				"credit_rating":    true,
			},
			CreatedAt: ts("2024-01-15T00:00:00Z"),
			UpdatedAt: ts("2026-01-26T00:00:00Z"),
		},
		{
			ID:    "asset-001",
			Title: "Jay Chou 2026 Tour Revenue Rights (Co-Investment)",
			Description: "Overflow tranche of a flagship fund position. Total " +
				"project need 15M, fund commitment capped at 10M, remaining 5M " +
				"open for co-investment on equal terms. Ticketing and merchandise " +
				"revenue rights for the China leg, projected attendance 400,000+.",
			Type:             "CO_INVESTMENT",
			OriginalCategory: "CONCERT_TICKET",
			TargetAmount:     5000000,
			RaisedAmount:     3500000,
			MinInvestment:    500000,
			MaxInvestment:    5000000,
			ExpectedReturn:   assets.ExpectedReturn{Min: 18, Max: 28, Type: "project payout"},
			RevenueStructure: map[string]float64{
				"ticket sales": 75,
				"merchandise":  15,
				"sponsorship":  10,
			},
			RiskLevel:        "MEDIUM",
			RiskScore:        55,
			Region:           "Nationwide",
			City:             "Beijing",
			Status:           assets.StatusFunding,
			FundingDeadline:  "2026-02-01",
			InvestmentPeriod: 8,
			DueDiligence:     fullDD,
			CreatedAt:        ts("2025-12-20T00:00:00Z"),
			UpdatedAt:        ts("2026-01-26T00:00:00Z"),
		},
		{
			ID:    "asset-002",
			Title: "TFBOYS 10th Anniversary Tour Revenue Rights (Co-Investment)",
			Description: "Overflow tranche: total need 21.5M, fund commitment 10M, " +
				"11.5M open for co-investment. Anniversary tour covering 15 shows " +
				"in 10 cities with a large established fan base.",
			Type:             "CO_INVESTMENT",
			OriginalCategory: "CONCERT_TICKET",
			TargetAmount:     11500000,
			RaisedAmount:     8000000,
			MinInvestment:    500000,
			MaxInvestment:    5000000,
			ExpectedReturn:   assets.ExpectedReturn{Min: 15, Max: 25, Type: "project payout"},
			RevenueStructure: map[string]float64{
				"ticket sales":     70,
				"merchandise":      20,
				"streaming rights": 10,
			},
			RiskLevel:        "MEDIUM",
			RiskScore:        52,
			Region:           "Nationwide",
			City:             "Shenzhen",
			Status:           assets.StatusFunding,
			FundingDeadline:  "2026-03-15",
			InvestmentPeriod: 10,
			DueDiligence:     fullDD,
			CreatedAt:        ts("2026-01-02T00:00:00Z"),
			UpdatedAt:        ts("2026-01-26T00:00:00Z"),
		},
		{
			ID:    "asset-003",
			Title: "Shanghai F1 Circuit Event Revenue Rights (Co-Investment)",
			Description: "Overflow tranche: total need 32.5M, fund commitment 10M, " +
				"22.5M open for co-investment. Grand prix and year-round event " +
				"operations at the international circuit, 50+ events annually " +
				"with stable cash flow.",
			Type:             "CO_INVESTMENT",
			OriginalCategory: "RACING_TRACK",
			TargetAmount:     22500000,
			RaisedAmount:     16000000,
			MinInvestment:    1000000,
			MaxInvestment:    10000000,
			ExpectedReturn:   assets.ExpectedReturn{Min: 12, Max: 18, Type: "annualized"},
			RevenueStructure: map[string]float64{
				"ticket revenue":     40,
				"event hosting":      35,
				"commercial leasing": 25,
			},
			RiskLevel:        "MEDIUM",
			RiskScore:        45,
			Region:           "East China",
			City:             "Shanghai",
			Status:           assets.StatusFunding,
			FundingDeadline:  "2026-03-31",
			InvestmentPeriod: 36,
			DueDiligence:     fullDD,
			CreatedAt:        ts("2026-01-01T00:00:00Z"),
			UpdatedAt:        ts("2026-01-26T00:00:00Z"),
		},
		{
			ID:    "asset-004",
			Title: "Zhuhai Circuit GT Series Operating Rights (Co-Investment)",
			Description: "Overflow tranche: total need 18M, fund commitment 10M, " +
				"8M open for co-investment. GT race series and tuning culture " +
				"festival revenue rights with diversified income sources.",
			Type:             "CO_INVESTMENT",
			OriginalCategory: "RACING_TRACK",
			TargetAmount:     8000000,
			RaisedAmount:     5000000,
			MinInvestment:    500000,
			MaxInvestment:    3000000,
			ExpectedReturn:   assets.ExpectedReturn{Min: 10, Max: 15, Type: "annualized"},
			RevenueStructure: map[string]float64{
				"ticket revenue":    35,
				"event hosting":     30,
				"brand sponsorship": 20,
				"merchandise":       15,
			},
			RiskLevel:        "MEDIUM",
			RiskScore:        50,
			Region:           "South China",
			City:             "Zhuhai",
			Status:           assets.StatusFunding,
			FundingDeadline:  "2026-04-15",
			InvestmentPeriod: 24,
			DueDiligence: map[string]bool{
				"financial_audit":    true,
				"legal_compliance":   true,
				"operational_review": true,
				"market_analysis":    false,
			},
			CreatedAt: ts("2026-01-05T00:00:00Z"),
			UpdatedAt: ts("2026-01-26T00:00:00Z"),
		},
		{
			ID:    "asset-005",
			Title: "Top Beauty Creator Network Ad Revenue Rights (Co-Investment)",
			Description: "Overflow tranche: total need 20M, fund commitment 10M, " +
				"10M fully subscribed by co-investors. Ad placement revenue rights " +
				"across a network of top-50 beauty creators with 500M+ combined " +
				"followers and monthly GMV above 200M.",
			Type:             "CO_INVESTMENT",
			OriginalCategory: "STREAMING",
			TargetAmount:     10000000,
			RaisedAmount:     10000000,
			MinInvestment:    500000,
			MaxInvestment:    2000000,
			ExpectedReturn:   assets.ExpectedReturn{Min: 25, Max: 40, Type: "annualized"},
			RevenueStructure: map[string]float64{
				"ad placement ROI share":   70,
				"live commerce commission": 20,
				"brand partnerships":       10,
			},
			RiskLevel:        "HIGH",
			RiskScore:        72,
			Region:           "Nationwide",
			City:             "Hangzhou",
			Status:           assets.StatusFunded,
			FundingDeadline:  "2026-01-15",
			InvestmentPeriod: 12,
			DueDiligence:     fullDD,
			CreatedAt:        ts("2025-12-01T00:00:00Z"),
			UpdatedAt:        ts("2026-01-26T00:00:00Z"),
		},
		{
			ID:    "asset-006",
			Title: "Consumer Tech Creator Ad Campaign (Co-Investment)",
			Description: "Overflow tranche: total need 15M, fund commitment 10M, " +
				"5M open for co-investment. Ad spend across leading consumer tech " +
				"review and unboxing channels.",
			Type:             "CO_INVESTMENT",
			OriginalCategory: "STREAMING",
			TargetAmount:     5000000,
			RaisedAmount:     3000000,
			MinInvestment:    300000,
			MaxInvestment:    1500000,
			ExpectedReturn:   assets.ExpectedReturn{Min: 20, Max: 35, Type: "annualized"},
			RevenueStructure: map[string]float64{
				"ad placement ROI share": 65,
				"branded content":        25,
				"commerce commission":    10,
			},
			RiskLevel:        "HIGH",
			RiskScore:        68,
			Region:           "Nationwide",
			City:             "Shenzhen",
			Status:           assets.StatusFunding,
			FundingDeadline:  "2026-02-28",
			InvestmentPeriod: 12,
			DueDiligence: map[string]bool{
				"financial_audit":    true,
				"legal_compliance":   true,
				"operational_review": false,
				"market_analysis":    true,
			},
			CreatedAt: ts("2026-01-10T00:00:00Z"),
			UpdatedAt: ts("2026-01-26T00:00:00Z"),
		},
		{
			ID:    "asset-007",
			Title: "East China Campus Smart Retail (Co-Investment)",
			Description: "Overflow tranche: total need 25M, fund commitment 10M, " +
				"15M open for co-investment. Smart convenience stores across 30 " +
				"campuses in Shanghai, Hangzhou and Nanjing serving 500,000+ " +
				"students.",
			Type:             "CO_INVESTMENT",
			OriginalCategory: "CAMPUS_FACILITY",
			TargetAmount:     15000000,
			RaisedAmount:     12000000,
			MinInvestment:    200000,
			MaxInvestment:    2500000,
			ExpectedReturn:   assets.ExpectedReturn{Min: 8, Max: 12, Type: "annualized"},
			RevenueStructure: map[string]float64{
				"sales revenue share": 60,
				"rental income":       25,
				"ad placements":       15,
			},
			RiskLevel:        "LOW",
			RiskScore:        28,
			Region:           "East China",
			City:             "Shanghai",
			Status:           assets.StatusFunding,
			FundingDeadline:  "2026-02-15",
			InvestmentPeriod: 48,
			DueDiligence:     fullDD,
			CreatedAt:        ts("2025-11-15T00:00:00Z"),
			UpdatedAt:        ts("2026-01-26T00:00:00Z"),
		},
		{
			ID:    "asset-008",
			Title: "Southwest Campus Self-Service Facilities (Co-Investment)",
			Description: "Overflow tranche: total need 18M, fund commitment 10M, " +
				"8M open for co-investment. Self-service laundry, printing and " +
				"smart locker operations across 20 campuses in Chengdu and " +
				"Chongqing.",
			Type:             "CO_INVESTMENT",
			OriginalCategory: "CAMPUS_FACILITY",
			TargetAmount:     8000000,
			RaisedAmount:     3000000,
			MinInvestment:    100000,
			MaxInvestment:    1800000,
			ExpectedReturn:   assets.ExpectedReturn{Min: 7, Max: 11, Type: "annualized"},
			RevenueStructure: map[string]float64{
				"service revenue":  55,
				"equipment rental": 30,
				"ad revenue":       15,
			},
			RiskLevel:        "LOW",
			RiskScore:        25,
			Region:           "Southwest",
			City:             "Chengdu",
			Status:           assets.StatusFunding,
			FundingDeadline:  "2026-05-01",
			InvestmentPeriod: 36,
			DueDiligence: map[string]bool{
				"financial_audit":    true,
				"legal_compliance":   true,
				"operational_review": true,
				"market_analysis":    false,
			},
			CreatedAt: ts("2026-01-08T00:00:00Z"),
			UpdatedAt: ts("2026-01-26T00:00:00Z"),
		},
	}
}

func demoInvestments() []*investments.Investment {
	return []*investments.Investment{
		{
			ID:             "inv-demo-001",
			UserID:         "investor-inst-001",
			AssetID:        "mifc-fund-lp-001",
			Amount:         20000000,
			ManagementFee:  400000,
			TransactionFee: 200000,
			NetAmount:      19400000,
			CurrentValue:   20500000,
			ReturnRate:     5.67,
			Status:         "CONFIRMED",
			PNoteNumber:    "PN-MIFCLP001",
			CreatedAt:      ts("2024-02-15T10:30:00Z"),
			UpdatedAt:      ts("2026-01-26T00:00:00Z"),
		},
		{
			ID:             "inv-demo-002",
			UserID:         "investor-inst-002",
			AssetID:        "mifc-abs-001",
			Amount:         15000000,
			ManagementFee:  300000,
			TransactionFee: 150000,
			NetAmount:      14550000,
			CurrentValue:   15500000,
			ReturnRate:     6.53,
			Status:         "CONFIRMED",
			PNoteNumber:    "PN-MIFCABS001",
			CreatedAt:      ts("2024-03-10T14:20:00Z"),
			UpdatedAt:      ts("2026-01-26T00:00:00Z"),
		},
		{
			ID:             "inv-demo-003",
			UserID:         "investor-inst-003",
			AssetID:        "asset-005",
			Amount:         2000000,
			ManagementFee:  40000,
			TransactionFee: 20000,
			NetAmount:      1940000,
			CurrentValue:   2450000,
			ReturnRate:     26.29,
			Status:         "CONFIRMED",
			PNoteNumber:    "PN-COINV005",
			CreatedAt:      ts("2025-12-05T09:00:00Z"),
			UpdatedAt:      ts("2026-01-26T00:00:00Z"),
		},
		{
			ID:             "inv-demo-004",
			UserID:         "investor-individual-001",
			AssetID:        "asset-001",
			Amount:         1000000,
			ManagementFee:  20000,
			TransactionFee: 10000,
			NetAmount:      970000,
			CurrentValue:   1050000,
			ReturnRate:     8.25,
			Status:         "CONFIRMED",
			PNoteNumber:    "PN-COINV001",
			CreatedAt:      ts("2026-01-05T16:45:00Z"),
			UpdatedAt:      ts("2026-01-26T00:00:00Z"),
		},
	}
}

func demoActivities() []notifications.Event {
	return []notifications.Event{
		{
			ID:          "act-001",
			Type:        notifications.EventInvestmentMade,
			Description: "Droplet Capital invested ¥20,000,000 in \"Flagship Fund LP Units 2024-Q1\"",
			CreatedAt:   ts("2026-01-25T06:30:00Z"),
		},
		{
			ID:          "act-002",
			Type:        notifications.EventAssetApproved,
			Description: "\"Jay Chou 2026 Tour Revenue Rights (Co-Investment)\" cleared due diligence review",
			CreatedAt:   ts("2026-01-24T14:20:00Z"),
		},
		{
			ID:          "act-003",
			Type:        notifications.EventDividendPaid,
			Description: "\"Top Beauty Creator Network Ad Revenue Rights\" completed Q4 dividend distribution",
			CreatedAt:   ts("2026-01-23T10:00:00Z"),
		},
		{
			ID:          "act-004",
			Type:        notifications.EventMilestoneHit,
			Description: "\"Flagship Fund ABS Senior Tranche\" reached 65% of funding target",
			CreatedAt:   ts("2026-01-22T16:45:00Z"),
		},
		{
			ID:          "act-005",
			Type:        notifications.EventAssetSubmitted,
			Description: "New co-investment project \"Strawberry Music Festival 2026 Tour Revenue Rights\" submitted for review",
			CreatedAt:   ts("2026-01-21T09:15:00Z"),
		},
	}
}

func trendSeries() map[string][]dashboard.TrendPoint {
	return map[string][]dashboard.TrendPoint{
		"MIFC_FUND_LP": {
			{Date: "2024-01", Value: 0},
			{Date: "2024-03", Value: 50000000},
			{Date: "2024-06", Value: 120000000},
			{Date: "2024-09", Value: 200000000},
			{Date: "2024-12", Value: 250000000},
			{Date: "2026-01", Value: 280000000},
		},
		"MIFC_ABS": {
			{Date: "2024-01", Value: 0},
			{Date: "2024-03", Value: 20000000},
			{Date: "2024-06", Value: 40000000},
			{Date: "2024-09", Value: 50000000},
			{Date: "2024-12", Value: 60000000},
			{Date: "2026-01", Value: 65000000},
		},
		"CO_INVESTMENT": {
			{Date: "2024-01", Value: 8000000},
			{Date: "2024-03", Value: 25000000},
			{Date: "2024-06", Value: 42000000},
			{Date: "2024-09", Value: 58000000},
			{Date: "2024-12", Value: 75000000},
			{Date: "2026-01", Value: 89000000},
		},
	}
}
