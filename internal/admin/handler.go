package admin

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/internal/assets"
	"lakeside-exchange/marketplace-backend/internal/dashboard"
	"lakeside-exchange/marketplace-backend/internal/projects"
	"lakeside-exchange/marketplace-backend/pkg/respond"
)

// Handler handles HTTP requests for the central kitchen console.
// Approvals delegate to the same review coordinator as the project
// routes, so there is a single entry point for decisions.
type Handler struct {
	service  *Service
	listings *assets.Service
	reviews  projects.ReviewCoordinator
	activity *dashboard.ActivityLog
	logger   *zap.Logger
}

func NewHandler(
	service *Service,
	listings *assets.Service,
	reviews projects.ReviewCoordinator,
	activity *dashboard.ActivityLog,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		service:  service,
		listings: listings,
		reviews:  reviews,
		activity: activity,
		logger:   logger,
	}
}

// RegisterRoutes registers central kitchen routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/central-kitchen")
	{
		group.GET("/overview", h.overview)
		group.GET("/pending", h.pending)
		group.GET("/activities", h.activities)
		group.POST("/approve/:id", h.approve)
		group.POST("/assets", h.createAsset)
	}
}

func (h *Handler) overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, overview)
}

func (h *Handler) pending(c *gin.Context) {
	listings, err := h.service.PipelineAssets(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, gin.H{"assets": listings})
}

func (h *Handler) activities(c *gin.Context) {
	respond.OK(c, h.activity.Recent(20))
}

func (h *Handler) approve(c *gin.Context) {
	var payload struct {
		Action  projects.Decision `json:"action"`
		Comment string            `json:"comment"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	project, err := h.reviews.Review(c.Request.Context(), c.Param("id"), payload.Action, payload.Comment)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, project)
}

func (h *Handler) createAsset(c *gin.Context) {
	var req assets.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	listing, err := h.listings.Create(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Created(c, listing)
}
