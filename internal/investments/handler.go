package investments

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/pkg/respond"
)

// Handler handles HTTP requests for investments
type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers investment routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/investments")
	{
		group.GET("", h.listInvestments)
		group.GET("/my", h.listMine)
		group.GET("/portfolio/stats", h.portfolioStats)
		group.GET("/:id", h.getInvestment)
		group.POST("", h.createInvestment)
	}
}

func (h *Handler) listInvestments(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, list)
}

func userIDFromRequest(c *gin.Context) string {
	if userID := c.Query("userId"); userID != "" {
		return userID
	}
	return c.GetHeader("X-User-ID")
}

func (h *Handler) listMine(c *gin.Context) {
	userID := userIDFromRequest(c)
	list, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, gin.H{
		"investments": list,
		"userId":      userID,
	})
}

func (h *Handler) portfolioStats(c *gin.Context) {
	stats, err := h.service.PortfolioStats(c.Request.Context(), userIDFromRequest(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, stats)
}

func (h *Handler) getInvestment(c *gin.Context) {
	investment, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, investment)
}

func (h *Handler) createInvestment(c *gin.Context) {
	var req CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}
	if req.UserID == "" {
		req.UserID = userIDFromRequest(c)
	}

	investment, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, investment)
}
