package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"aptos-hunt-backend/internal/middleware"
	"aptos-hunt-backend/internal/models"
	"aptos-hunt-backend/internal/services"
	"aptos-hunt-backend/internal/store"
)

type SubmissionsHandler struct {
	service *services.ProjectService
	logger  zerolog.Logger
}

func NewSubmissionsHandler(service *services.ProjectService) *SubmissionsHandler {
	return &SubmissionsHandler{
		service: service,
		logger:  log.With().Str("handler", "submissions").Logger(),
	}
}

// Submit godoc
// @Summary     Submit a project
// @Description Creates a Pending record for the session wallet. The slug is derived from the name, the balance is snapshotted at submission time, and the network is fixed to Testnet.
// @Tags        submissions
// @Accept      json
// @Produce     json
// @Param       request body models.SubmitProjectRequest true "Project details"
// @Success     201 {object} models.ProjectResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Security    Bearer
// @Router      /submissions [post]
func (h *SubmissionsHandler) Submit(c *gin.Context) {
	wallet := c.GetString(middleware.WalletAddressKey)

	var req models.SubmitProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	project, err := h.service.Submit(c.Request.Context(), wallet, req)
	if err != nil {
		h.logger.Error().Err(err).Str("wallet", wallet).Msg("submission failed")
		if store.IsTransient(err) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error:   "record store unavailable",
				Message: "failed to submit project, please try again",
			})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "failed to submit project",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.NewProjectResponse(project))
}
