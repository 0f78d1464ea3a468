package dashboard

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/pkg/respond"
)

// Handler handles HTTP requests for the investor dashboard
type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers dashboard routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/dashboard")
	{
		group.GET("", h.kpi)
		group.GET("/kpi", h.kpi)
		group.GET("/trends", h.trends)
		group.GET("/featured", h.featured)
		group.GET("/activities", h.activities)
	}
}

func (h *Handler) kpi(c *gin.Context) {
	respond.OK(c, h.service.KPI())
}

func (h *Handler) trends(c *gin.Context) {
	respond.OK(c, h.service.Trends())
}

func (h *Handler) featured(c *gin.Context) {
	featured, err := h.service.Featured(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, featured)
}

func (h *Handler) activities(c *gin.Context) {
	respond.OK(c, h.service.activity.Recent(20))
}
