package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lumapay/luma/src/Infrastructure/privy"
	"github.com/lumapay/luma/src/logger"
	walletdomain "github.com/lumapay/luma/src/wallet/domain"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextEOA           = "externallyOwnedAccount"
	ContextWalletAddress = "walletAddress"
)

// Middleware resolves the Privy session token into the user's smart wallet.
// Every authenticated request carries the EOA and the wallet address in the
// gin context; the wallet is registered on first contact.
type Middleware struct {
	privy   *privy.Client
	wallets walletdomain.WalletUseCase
	logger  *logger.Logger
}

func NewMiddleware(p *privy.Client, wallets walletdomain.WalletUseCase, logg *logger.Logger) *Middleware {
	return &Middleware{privy: p, wallets: wallets, logger: logg}
}

func (m *Middleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := m.privy.VerifyToken(c.Request.Context(), token)
		if err != nil {
			m.logger.Infof("auth: token rejected: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		w, err := m.wallets.GetOrCreate(c.Request.Context(), user.EOA)
		if err != nil {
			m.logger.Errorf("auth: wallet resolve for %s: %v", user.EOA, err)
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "wallet unavailable"})
			return
		}

		c.Set(ContextEOA, user.EOA)
		c.Set(ContextWalletAddress, w.WalletAddress)
		c.Next()
	}
}

// WalletAddress reads the smart wallet address set by Authenticate.
func WalletAddress(c *gin.Context) string {
	return c.GetString(ContextWalletAddress)
}

// EOA reads the externally owned account set by Authenticate.
func EOA(c *gin.Context) string {
	return c.GetString(ContextEOA)
}
