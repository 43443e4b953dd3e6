package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"aptos-hunt-backend/internal/middleware"
	"aptos-hunt-backend/internal/models"
	"aptos-hunt-backend/internal/services"
	"aptos-hunt-backend/internal/store"
)

// Logo uploads are small images; 2 MiB is plenty.
const maxLogoBytes = 2 << 20

// MyProjectsHandler serves the wallet-scoped workflow: the owner's record
// list, status-gated saves, and logo uploads.
type MyProjectsHandler struct {
	service *services.ProjectService
	logger  zerolog.Logger
}

func NewMyProjectsHandler(service *services.ProjectService) *MyProjectsHandler {
	return &MyProjectsHandler{
		service: service,
		logger:  log.With().Str("handler", "my_projects").Logger(),
	}
}

// List godoc
// @Summary     The session wallet's projects
// @Description Lists every record submitted by the session wallet, any status, newest first. Each record carries an editable flag derived from its status.
// @Tags        my-projects
// @Produce     json
// @Success     200 {object} models.ProjectListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Security    Bearer
// @Router      /my/projects [get]
func (h *MyProjectsHandler) List(c *gin.Context) {
	wallet := c.GetString(middleware.WalletAddressKey)

	projects, err := h.service.MyProjects(c.Request.Context(), wallet)
	if err != nil {
		h.logger.Error().Err(err).Str("wallet", wallet).Msg("failed to list wallet projects")
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "failed to load projects"})
		return
	}

	c.JSON(http.StatusOK, projectList(projects, h.service.MaxListRows()))
}

// Save godoc
// @Summary     Save an edit to a pending project
// @Description Applies a partial update of the user-editable fields, then returns the wallet's full record set refetched from the store so the client reconciles against persisted values. Records whose status is no longer Pending are rejected.
// @Tags        my-projects
// @Accept      json
// @Produce     json
// @Param       project_id path string true "Record id"
// @Param       request body models.UpdateProjectRequest true "Edited fields"
// @Success     200 {object} models.ProjectListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Security    Bearer
// @Router      /my/projects/{project_id} [patch]
func (h *MyProjectsHandler) Save(c *gin.Context) {
	wallet := c.GetString(middleware.WalletAddressKey)

	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	projects, err := h.service.SaveEdit(c.Request.Context(), wallet, projectID, req)
	if err != nil {
		h.writeWorkflowError(c, wallet, projectID, "save failed", err)
		return
	}

	c.JSON(http.StatusOK, projectList(projects, h.service.MaxListRows()))
}

// UploadLogo godoc
// @Summary     Upload a project logo
// @Description Stores a logo image for one of the wallet's pending projects and persists its public URL on the record.
// @Tags        my-projects
// @Accept      multipart/form-data
// @Produce     json
// @Param       project_id path string true "Record id"
// @Param       logo formData file true "Logo image (png, jpeg, webp, svg)"
// @Success     200 {object} models.LogoUploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     413 {object} models.ErrorResponse
// @Security    Bearer
// @Router      /my/projects/{project_id}/logo [post]
func (h *MyProjectsHandler) UploadLogo(c *gin.Context) {
	wallet := c.GetString(middleware.WalletAddressKey)

	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "logo file is required"})
		return
	}
	if fileHeader.Size > maxLogoBytes {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "logo too large"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "logo must be an image"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read logo"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxLogoBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read logo"})
		return
	}

	project, err := h.service.AttachLogo(c.Request.Context(), wallet, projectID, fileHeader.Filename, contentType, data)
	if err != nil {
		h.writeWorkflowError(c, wallet, projectID, "logo upload failed", err)
		return
	}

	c.JSON(http.StatusOK, models.LogoUploadResponse{
		ProjectID: project.ID.String(),
		LogoURL:   project.LogoURL,
	})
}

func (h *MyProjectsHandler) writeWorkflowError(c *gin.Context, wallet string, projectID uuid.UUID, msg string, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
	case errors.Is(err, services.ErrNotEditable):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "project is no longer editable",
			Message: "only pending projects can be changed",
		})
	case store.IsTransient(err):
		h.logger.Error().Err(err).Str("wallet", wallet).Str("project_id", projectID.String()).Msg(msg)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "record store unavailable",
			Message: "please try again",
		})
	default:
		h.logger.Error().Err(err).Str("wallet", wallet).Str("project_id", projectID.String()).Msg(msg)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msg})
	}
}

func projectList(projects []models.Project, limit int) models.ProjectListResponse {
	out := make([]models.ProjectResponse, len(projects))
	for i := range projects {
		out[i] = models.NewProjectResponse(&projects[i])
	}
	return models.ProjectListResponse{Projects: out, Limit: limit}
}
