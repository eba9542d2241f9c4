package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/azhagan2/retail-pos-pipeline/src/common/logger"
	"github.com/azhagan2/retail-pos-pipeline/src/dashboard/business"
	"github.com/azhagan2/retail-pos-pipeline/src/dashboard/config"
	"github.com/azhagan2/retail-pos-pipeline/src/dashboard/internal/refresher"
)

var log = logger.GetLogger()

type Server struct {
	config    *config.Config
	service   business.DashboardService
	refresher *refresher.Refresher
	engine    *gin.Engine
}

func InitServer(conf *config.Config, service business.DashboardService) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())

	initMetrics()
	engine.Use(prometheusMiddleware())

	if len(conf.AllowedOrigins) > 0 {
		engine.Use(cors.New(cors.Config{
			AllowOrigins: conf.AllowedOrigins,
			AllowMethods: []string{"GET"},
			AllowHeaders: []string{"Origin", "Content-Type"},
		}))
	}

	s := &Server{
		config:    conf,
		service:   service,
		refresher: refresher.NewRefresher(service, time.Duration(conf.RefreshSeconds)*time.Second),
		engine:    engine,
	}
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api")
	api.GET("/sales", s.handleSales)
	api.GET("/sales/refunds", s.handleRefundRates)
	api.GET("/sales/cancellations", s.handleCancelRates)
	api.GET("/store-sales", s.handleStoreSales)
	api.GET("/inventory", s.handleInventory)
	api.GET("/inventory/reorder", s.handleReorderAlerts)
	api.GET("/snapshot", s.handleSnapshot)
}

func salesFilterFromQuery(c *gin.Context) business.SalesFilter {
	return business.SalesFilter{
		City:    c.Query("city"),
		StoreID: c.Query("store"),
	}
}

func (s *Server) handleSales(c *gin.Context) {
	rows, err := s.service.SalesSummary(c.Request.Context(), salesFilterFromQuery(c))
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) handleRefundRates(c *gin.Context) {
	rates, err := s.service.RefundRates(c.Request.Context(), salesFilterFromQuery(c))
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, rates)
}

func (s *Server) handleCancelRates(c *gin.Context) {
	rates, err := s.service.CancelRates(c.Request.Context(), salesFilterFromQuery(c))
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, rates)
}

func (s *Server) handleStoreSales(c *gin.Context) {
	rows, err := s.service.StoreSales(c.Request.Context())
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) handleInventory(c *gin.Context) {
	items, err := s.service.Inventory(c.Request.Context())
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) handleReorderAlerts(c *gin.Context) {
	items, err := s.service.ReorderAlerts(c.Request.Context())
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) handleSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, s.refresher.Snapshot())
}

func abortWithQueryError(c *gin.Context, err error) {
	log.Errorf("Warehouse query failed: %v", err)
	c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

// Engine exposes the router for handler tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the snapshot refresher and serves the API until a shutdown
// signal arrives.
func (s *Server) Run() error {
	log.Infof("Starting dashboard server on port %s...", s.config.Port)

	if err := s.refresher.Start(); err != nil {
		return err
	}
	defer s.refresher.Stop()

	httpServer := &http.Server{
		Addr:    ":" + s.config.Port,
		Handler: s.engine,
	}

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChannel
		log.Infof("action: shutdown_signal | result: received")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			log.Errorf("Error shutting down HTTP server: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
