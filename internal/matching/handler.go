package matching

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/pkg/respond"
)

// Handler handles HTTP requests for the matching workbench
type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers matching routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/matching")
	{
		group.GET("/recommendations", h.recommendations)
		group.POST("/compare", h.compare)
		group.POST("/calculate", h.calculate)
	}
}

func (h *Handler) recommendations(c *gin.Context) {
	recommendations, err := h.service.Recommendations(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, gin.H{"recommendations": recommendations})
}

func (h *Handler) compare(c *gin.Context) {
	var payload struct {
		AssetIDs []string `json:"assetIds"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	listings, err := h.service.Compare(c.Request.Context(), payload.AssetIDs)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, gin.H{"assets": listings})
}

func (h *Handler) calculate(c *gin.Context) {
	var payload struct {
		Amount         float64 `json:"amount"`
		ExpectedReturn float64 `json:"expectedReturn"`
		Period         int     `json:"period"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	respond.OK(c, h.service.Calculate(payload.Amount, payload.ExpectedReturn, payload.Period))
}
