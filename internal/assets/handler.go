package assets

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/pkg/respond"
)

// Unlister pulls a listing from the market and restores its project
// side. Implemented by the marketplace service.
type Unlister interface {
	Unlist(ctx context.Context, assetID string) (*UnlistResult, error)
}

// Handler handles HTTP requests for market listings
type Handler struct {
	service *Service
	bridge  Unlister
	logger  *zap.Logger
}

func NewHandler(service *Service, bridge Unlister, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		bridge:  bridge,
		logger:  logger,
	}
}

// RegisterRoutes registers market listing routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/assets")
	{
		group.GET("", h.listAssets)
		group.GET("/:id", h.getAsset)
		group.POST("/:id/unlist", h.unlistAsset)
	}
}

// listingView flattens the expected return range the way the
// marketplace frontend consumes it.
type listingView struct {
	*Listing
	ExpectedReturnMin  float64 `json:"expectedReturnMin"`
	ExpectedReturnMax  float64 `json:"expectedReturnMax"`
	ExpectedReturnType string  `json:"expectedReturnType"`
}

func toView(l *Listing) listingView {
	return listingView{
		Listing:            l,
		ExpectedReturnMin:  l.ExpectedReturn.Min,
		ExpectedReturnMax:  l.ExpectedReturn.Max,
		ExpectedReturnType: l.ExpectedReturn.Type,
	}
}

func (h *Handler) listAssets(c *gin.Context) {
	filter := Filter{
		Types:      c.QueryArray("type"),
		RiskLevels: c.QueryArray("riskLevel"),
		Status:     c.Query("status"),
		Region:     c.Query("region"),
	}

	listings, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respond.Error(c, err)
		return
	}

	views := make([]listingView, 0, len(listings))
	for _, l := range listings {
		views = append(views, toView(l))
	}
	respond.OK(c, gin.H{
		"assets": views,
		"items":  views,
		"pagination": gin.H{
			"total":      len(views),
			"page":       1,
			"limit":      20,
			"totalPages": 1,
		},
	})
}

func (h *Handler) getAsset(c *gin.Context) {
	listing, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, toView(listing))
}

func (h *Handler) unlistAsset(c *gin.Context) {
	result, err := h.bridge.Unlist(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, result)
}
