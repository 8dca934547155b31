package main

import (
	"net/http"
	"time"

	"github.com/lumapay/luma/src/Infrastructure/notus"
	"github.com/lumapay/luma/src/Infrastructure/privy"
	"github.com/lumapay/luma/src/auth"
	"github.com/lumapay/luma/src/config"
	"github.com/lumapay/luma/src/logger"

	dashboardHD "github.com/lumapay/luma/src/dashboard/delivery/http"
	dashboard "github.com/lumapay/luma/src/dashboard/usecase"
	fiatAdapter "github.com/lumapay/luma/src/fiat/adapter"
	fiatHD "github.com/lumapay/luma/src/fiat/delivery/http"
	fiatService "github.com/lumapay/luma/src/fiat/service"
	fiat "github.com/lumapay/luma/src/fiat/usecase"
	kycAdapter "github.com/lumapay/luma/src/kyc/adapter"
	kycHD "github.com/lumapay/luma/src/kyc/delivery/http"
	kycService "github.com/lumapay/luma/src/kyc/service"
	kyc "github.com/lumapay/luma/src/kyc/usecase"
	poolAdapter "github.com/lumapay/luma/src/pool/adapter"
	poolHD "github.com/lumapay/luma/src/pool/delivery/http"
	poolService "github.com/lumapay/luma/src/pool/service"
	pool "github.com/lumapay/luma/src/pool/usecase"
	swapAdapter "github.com/lumapay/luma/src/swap/adapter"
	swapHD "github.com/lumapay/luma/src/swap/delivery/http"
	swapService "github.com/lumapay/luma/src/swap/service"
	swap "github.com/lumapay/luma/src/swap/usecase"
	walletAdapter "github.com/lumapay/luma/src/wallet/adapter"
	walletHD "github.com/lumapay/luma/src/wallet/delivery/http"
	walletService "github.com/lumapay/luma/src/wallet/service"
	wallet "github.com/lumapay/luma/src/wallet/usecase"

	_ "github.com/lumapay/luma/docs" // Swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	cfg := config.LoadFromEnv()
	logg := logger.New(cfg.Env)

	// --- Upstream clients ---
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	notusClient, err := notus.NewClient(cfg.Notus.BaseURL,
		notus.WithAPIKey(cfg.Notus.APIKey),
		notus.WithHTTPClient(httpClient),
		notus.WithLogger(logg.Zerolog()),
	)
	if err != nil {
		logg.Fatalf("Failed to build notus client: %v", err)
	}

	privyClient, err := privy.NewClient(cfg.Privy.BaseURL, cfg.Privy.AppID, cfg.Privy.AppSecret,
		privy.WithLogger(logg.Zerolog()),
	)
	if err != nil {
		logg.Fatalf("Failed to build privy client: %v", err)
	}

	// --- Dependencies ---
	walletSvc := walletService.NewService(walletAdapter.NewNotusAdapter(notusClient), logg)
	walletUC := wallet.NewUseCase(walletSvc, logg)

	swapSvc := swapService.NewService(swapAdapter.NewNotusAdapter(notusClient), logg)
	swapUC := swap.NewUseCase(swapSvc, logg)

	poolSvc := poolService.NewService(poolAdapter.NewNotusAdapter(notusClient), logg)
	poolUC := pool.NewUseCase(poolSvc, logg)

	fiatSvc := fiatService.NewService(fiatAdapter.NewNotusAdapter(notusClient), logg)
	fiatUC := fiat.NewUseCase(fiatSvc, logg)

	kycSvc := kycService.NewService(kycAdapter.NewNotusAdapter(notusClient), logg)
	kycStore := kycAdapter.NewWalletMetadataStore(walletSvc)
	kycUC := kyc.NewUseCase(kycSvc, kycStore, logg)

	dashboardUC := dashboard.NewUseCase(walletUC, swapSvc, logg)

	authMW := auth.NewMiddleware(privyClient, walletUC, logg)

	// --- Router ---
	r := gin.New()

	// Core middleware
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(func(c *gin.Context) {
		start := time.Now()
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", reqID)
		c.Next()
		logg.Infof("%s %s status:%d duration:%s request_id:%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			reqID,
		)
	})

	// --- Healthcheck ---
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Swagger ---
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- API routes ---
	api := r.Group("/", authMW.Authenticate())
	walletHD.NewHandler(walletUC, logg).RegisterRoutes(api.Group("/wallet"))
	swapHD.NewHandler(swapUC, logg).RegisterRoutes(api.Group("/crypto"))
	poolHD.NewHandler(poolUC, logg).RegisterRoutes(api.Group("/pools"))
	fiatHD.NewHandler(fiatUC, logg).RegisterRoutes(api.Group("/fiat"))
	kycHD.NewHandler(kycUC, logg).RegisterRoutes(api.Group("/kyc"))
	dashboardHD.NewHandler(dashboardUC, logg).RegisterRoutes(api.Group("/dashboard"))

	// --- Start server ---
	logg.Infof("Starting service on %s (env=%s)", cfg.ListenAddr, cfg.Env)
	logg.Infof("Swagger UI available at http://localhost%s/swagger/index.html", cfg.ListenAddr)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Fatalf("Server terminated unexpectedly: %v", err)
	}
}
