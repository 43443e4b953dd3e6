package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"aptos-hunt-backend/internal/config"
)

// Context keys set by SessionMiddleware for wallet-scoped handlers.
const (
	WalletAddressKey = "wallet_address"
	WalletNetworkKey = "wallet_network"
)

// IssueSessionToken mints the wallet session token handed out by the connect
// endpoint. The token carries the account address as subject plus the wallet
// application name and network.
func IssueSessionToken(cfg *config.Config, address, walletName, network string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(cfg.SessionTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     address,
		"wallet":  walletName,
		"network": network,
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	})

	signed, err := token.SignedString([]byte(cfg.SessionSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// SessionMiddleware validates the Bearer session token and exposes the
// wallet address and network to downstream handlers. Wallet-scoped routes
// never see a request without a valid session.
func SessionMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "empty token"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.SessionSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))

		if err != nil || !token.Valid {
			var errorMsg string
			switch {
			case err == nil:
				errorMsg = "invalid token"
			case strings.Contains(err.Error(), "signature is invalid"):
				errorMsg = "token signature is invalid"
			case strings.Contains(err.Error(), "token is expired"):
				errorMsg = "session has expired, reconnect your wallet"
			default:
				errorMsg = err.Error()
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session", "message": errorMsg})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session claims"})
			c.Abort()
			return
		}

		address, ok := claims["sub"].(string)
		if !ok || address == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing wallet address in session"})
			c.Abort()
			return
		}

		c.Set(WalletAddressKey, address)
		if network, ok := claims["network"].(string); ok {
			c.Set(WalletNetworkKey, network)
		}
		c.Next()
	}
}
