package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	authdomain "github.com/fieldgridlabs/fieldgrid/internal/auth/domain"
	"github.com/fieldgridlabs/fieldgrid/internal/config"
	meterdomain "github.com/fieldgridlabs/fieldgrid/internal/meter/domain"
	"github.com/fieldgridlabs/fieldgrid/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Config   config.Config
	Log      *zap.Logger
	Metrics  *observability.Metrics
	MeterSvc meterdomain.Service
	AuthSvc  authdomain.Service
}

type Server struct {
	cfg      config.Config
	log      *zap.Logger
	metrics  *observability.Metrics
	meterSvc meterdomain.Service
	authSvc  authdomain.Service
}

func New(p Params) *Server {
	return &Server{
		cfg:      p.Config,
		log:      p.Log.Named("server"),
		metrics:  p.Metrics,
		meterSvc: p.MeterSvc,
		authSvc:  p.AuthSvc,
	}
}

func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(s.requestLogger(), gin.Recovery())

	router.GET("/healthz", s.Healthz)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))

	router.POST("/login", s.Login)
	router.GET("/getRoutes", s.ListRoutes)
	router.GET("/api/meter-details/:id", s.GetMeterDetails)
	router.POST("/submitReading", s.SubmitReading)

	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		c.Next()

		s.log.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(started)),
		)
	}
}

func (s *Server) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func RunHTTP(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.HTTP.Addr,
		Handler: s.Router(),
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			s.log.Info("http server listening", zap.String("addr", s.cfg.HTTP.Addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(New),
	fx.Invoke(RunHTTP),
)
