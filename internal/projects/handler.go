package projects

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/pkg/respond"
)

// ReviewCoordinator performs the review and revoke operations with
// their listing side effects. Implemented by the marketplace service.
type ReviewCoordinator interface {
	Review(ctx context.Context, projectID string, decision Decision, notes string) (*Project, error)
	Revoke(ctx context.Context, projectID string) (*Project, error)
}

// Handler handles HTTP requests for project submissions
type Handler struct {
	service *Service
	reviews ReviewCoordinator
	logger  *zap.Logger
}

func NewHandler(service *Service, reviews ReviewCoordinator, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		reviews: reviews,
		logger:  logger,
	}
}

// RegisterRoutes registers project routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/projects")
	{
		group.GET("/my", h.listMine)
		group.GET("/admin/pending", h.listReviewQueue)
		group.GET("/:id", h.getProject)
		group.POST("", h.createProject)
		group.PUT("/:id", h.updateProject)
		group.DELETE("/:id", h.deleteProject)

		group.POST("/:id/submit", h.submitProject)
		group.POST("/:id/withdraw", h.withdrawProject)
		group.POST("/:id/review", h.reviewProject)
		group.POST("/:id/revoke", h.revokeProject)
	}
}

func (h *Handler) listMine(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		respond.Unauthorized(c, "UNAUTHORIZED", "userId is required")
		return
	}

	list, err := h.service.ListForOwner(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, gin.H{
		"projects": list,
		"total":    len(list),
	})
}

func (h *Handler) listReviewQueue(c *gin.Context) {
	list, err := h.service.ListReviewQueue(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, gin.H{
		"projects": list,
		"total":    len(list),
	})
}

func (h *Handler) getProject(c *gin.Context) {
	project, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, project)
}

func (h *Handler) createProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	project, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Created(c, project)
}

type updatePayload struct {
	UserID string `json:"userId"`
	UpdateProjectRequest
}

func (h *Handler) updateProject(c *gin.Context) {
	var payload updatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	project, err := h.service.Update(c.Request.Context(), c.Param("id"), payload.UserID, payload.UpdateProjectRequest)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, project)
}

func (h *Handler) deleteProject(c *gin.Context) {
	var payload struct {
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), payload.UserID); err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, gin.H{"message": "Project deleted successfully"})
}

func (h *Handler) submitProject(c *gin.Context) {
	project, err := h.service.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, project)
}

func (h *Handler) withdrawProject(c *gin.Context) {
	project, err := h.service.Withdraw(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, project)
}

func (h *Handler) reviewProject(c *gin.Context) {
	var payload struct {
		Action Decision `json:"action"`
		Notes  string   `json:"notes"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.BadRequest(c, err.Error())
		return
	}

	project, err := h.reviews.Review(c.Request.Context(), c.Param("id"), payload.Action, payload.Notes)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, project)
}

func (h *Handler) revokeProject(c *gin.Context) {
	project, err := h.reviews.Revoke(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.OK(c, project)
}
