package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"aptos-hunt-backend/internal/middleware"
	"aptos-hunt-backend/internal/models"
	"aptos-hunt-backend/internal/services"
)

// ProjectsHandler serves the public surface: the approved listing, detail
// lookup by slug or id, and the donation intent stub.
type ProjectsHandler struct {
	service *services.ProjectService
	logger  zerolog.Logger
}

func NewProjectsHandler(service *services.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{
		service: service,
		logger:  log.With().Str("handler", "projects").Logger(),
	}
}

// Explore godoc
// @Summary     Approved project listing
// @Description Lists approved projects, newest submission first. A store failure degrades to an empty listing.
// @Tags        projects
// @Produce     json
// @Success     200 {object} models.ExploreResponse
// @Router      /projects [get]
func (h *ProjectsHandler) Explore(c *gin.Context) {
	projects, err := h.service.ListApproved(c.Request.Context())
	if err != nil {
		// The listing degrades instead of failing; the error stays in logs.
		h.logger.Error().Err(err).Msg("failed to list approved projects")
		projects = nil
	}

	summaries := make([]models.ProjectSummary, len(projects))
	for i := range projects {
		summaries[i] = models.NewProjectSummary(&projects[i])
	}

	c.JSON(http.StatusOK, models.ExploreResponse{
		Projects: summaries,
		Limit:    h.service.MaxListRows(),
	})
}

// Detail godoc
// @Summary     Project detail
// @Description Resolves one project by slug, falling back to the record id for records submitted before slugs existed.
// @Tags        projects
// @Produce     json
// @Param       slug path string true "Project slug or record id"
// @Success     200 {object} models.ProjectResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{slug} [get]
func (h *ProjectsHandler) Detail(c *gin.Context) {
	key := c.Param("slug")

	project, err := h.service.Lookup(c.Request.Context(), key)
	if err != nil {
		if !errors.Is(err, services.ErrProjectNotFound) {
			h.logger.Error().Err(err).Str("key", key).Msg("project lookup failed")
		}
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
		return
	}

	c.JSON(http.StatusOK, models.NewProjectResponse(project))
}

// Donate godoc
// @Summary     Record a donation intent
// @Description Donations are not executed on-chain by this service; the intent is validated and logged only.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       slug path string true "Project slug or record id"
// @Param       request body models.DonateRequest false "Donation details"
// @Success     202 {object} models.DonateResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Security    Bearer
// @Router      /projects/{slug}/donate [post]
func (h *ProjectsHandler) Donate(c *gin.Context) {
	key := c.Param("slug")
	wallet := c.GetString(middleware.WalletAddressKey)

	project, err := h.service.Lookup(c.Request.Context(), key)
	if err != nil {
		if !errors.Is(err, services.ErrProjectNotFound) {
			h.logger.Error().Err(err).Str("key", key).Msg("project lookup failed")
		}
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
		return
	}

	var req models.DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	h.logger.Info().
		Str("project_id", project.ID.String()).
		Str("project", project.Name).
		Str("donor", wallet).
		Str("recipient", project.WalletAddress).
		Float64("amount_apt", req.Amount).
		Msg("donation intent")

	c.JSON(http.StatusAccepted, models.DonateResponse{
		Status:  "accepted",
		Message: "donation intent recorded; on-chain transfer is not performed by this service",
	})
}
