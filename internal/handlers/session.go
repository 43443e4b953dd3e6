package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"aptos-hunt-backend/internal/config"
	"aptos-hunt-backend/internal/middleware"
	"aptos-hunt-backend/internal/models"
	"aptos-hunt-backend/internal/services"
)

// Aptos account addresses: 0x-prefixed hex, up to 32 bytes.
var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{1,64}$`)

type SessionHandler struct {
	cfg     *config.Config
	service *services.ProjectService
	logger  zerolog.Logger
}

func NewSessionHandler(cfg *config.Config, service *services.ProjectService) *SessionHandler {
	return &SessionHandler{
		cfg:     cfg,
		service: service,
		logger:  log.With().Str("handler", "session").Logger(),
	}
}

// Connect godoc
// @Summary     Open a wallet session
// @Description Mints a session token for a connected wallet. The token must be sent as a Bearer token on wallet-scoped routes.
// @Tags        session
// @Accept      json
// @Produce     json
// @Param       request body models.ConnectRequest true "Wallet details"
// @Success     200 {object} models.SessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /session/connect [post]
func (h *SessionHandler) Connect(c *gin.Context) {
	var req models.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	if !addressPattern.MatchString(req.Address) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid wallet address"})
		return
	}

	network := req.Network
	if network == "" {
		network = models.NetworkTestnet
	}

	token, expiresAt, err := middleware.IssueSessionToken(h.cfg, req.Address, req.WalletName, network)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to issue session token")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to open session"})
		return
	}

	h.logger.Info().Str("wallet", req.Address).Str("wallet_name", req.WalletName).
		Str("network", network).Msg("wallet connected")

	c.JSON(http.StatusOK, models.SessionResponse{
		Token:     token,
		Address:   req.Address,
		Network:   network,
		ExpiresAt: expiresAt,
	})
}

// Disconnect godoc
// @Summary     Close the wallet session
// @Description Tokens are stateless; disconnect records the event and the client discards its token.
// @Tags        session
// @Success     204
// @Failure     401 {object} models.ErrorResponse
// @Security    Bearer
// @Router      /session [delete]
func (h *SessionHandler) Disconnect(c *gin.Context) {
	wallet := c.GetString(middleware.WalletAddressKey)
	h.logger.Info().Str("wallet", wallet).Msg("wallet disconnected")
	c.Status(http.StatusNoContent)
}

// Balance godoc
// @Summary     Current wallet balance
// @Description Reads the session wallet's APT balance from the testnet fullnode.
// @Tags        session
// @Produce     json
// @Success     200 {object} models.BalanceResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Security    Bearer
// @Router      /wallet/balance [get]
func (h *SessionHandler) Balance(c *gin.Context) {
	wallet := c.GetString(middleware.WalletAddressKey)

	balance, err := h.service.BalanceAPT(c.Request.Context(), wallet)
	if err != nil {
		h.logger.Error().Err(err).Str("wallet", wallet).Msg("balance read failed")
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "failed to read balance"})
		return
	}

	network := c.GetString(middleware.WalletNetworkKey)
	if network == "" {
		network = models.NetworkTestnet
	}

	c.JSON(http.StatusOK, models.BalanceResponse{
		Address:    wallet,
		BalanceAPT: balance,
		Network:    network,
	})
}
