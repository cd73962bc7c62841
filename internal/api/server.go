package api

import (
	"context"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/eventpass-api/docs"
	v1 "github.com/vietanh2810/eventpass-api/internal/api/handler/v1"
	"github.com/vietanh2810/eventpass-api/internal/api/middleware"
	"github.com/vietanh2810/eventpass-api/internal/config"
	"github.com/vietanh2810/eventpass-api/internal/i18n"
	"github.com/vietanh2810/eventpass-api/internal/pkg/whatsapp"
	"github.com/vietanh2810/eventpass-api/internal/repository"
	"github.com/vietanh2810/eventpass-api/internal/repository/dao"
	"github.com/vietanh2810/eventpass-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
	Hub    *v1.LiveHub
}

type handlers struct {
	auth        *v1.AuthHandler
	participant *v1.ParticipantHandler
	payment     *v1.PaymentHandler
	scan        *v1.ScanHandler
	stats       *v1.StatsHandler
	whatsapp    *v1.WhatsAppHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		Hub:    v1.NewLiveHub(conf.API.AllowedCORSDomains),
	}

	s.MountMiddlewares()

	participantRepo := repository.NewParticipantRepository(dao.NewParticipantDAO(db), dao.NewPaymentHistoryDAO(db))
	s.MountHandlers(handlers{
		auth:        s.initAuthHandler(db),
		participant: s.initParticipantHandler(participantRepo),
		payment:     s.initPaymentHandler(participantRepo),
		scan:        s.initScanHandler(db, participantRepo),
		stats:       v1.NewStatsHandler(service.NewStatsService(participantRepo)),
		whatsapp:    v1.NewWhatsAppHandler(whatsapp.NewClient(conf.WhatsApp.WebhookURL, conf.WhatsApp.Timeout)),
	})

	return s
}

// RunHub serves live clients until ctx is cancelled.
func (s *Server) RunHub(ctx context.Context) {
	s.Hub.Run(ctx)
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	adminDAO := dao.NewAdminDAO(db)
	repo := repository.NewAdminRepository(adminDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initParticipantHandler(repo *repository.ParticipantRepository) *v1.ParticipantHandler {
	defaultTotal := decimal.NewFromFloat(s.Config.Registration.DefaultTotalAmount)
	svc := service.NewParticipantService(repo, s.Hub, defaultTotal)
	handler := v1.NewParticipantHandler(svc)

	return handler
}

func (s *Server) initPaymentHandler(repo *repository.ParticipantRepository) *v1.PaymentHandler {
	svc := service.NewPaymentService(repo, s.Hub)
	handler := v1.NewPaymentHandler(svc)

	return handler
}

func (s *Server) initScanHandler(db *gorm.DB, repo *repository.ParticipantRepository) *v1.ScanHandler {
	sessions := repository.NewScanSessionRepository(dao.NewScanSessionDAO(db))
	svc := service.NewScanService(repo, sessions, s.Hub)
	handler := v1.NewScanHandler(svc, i18n.NewTranslator(s.Config.API.DefaultLocale))

	return handler
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.RequestLogger())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", h.auth.HandleLogin)
		public.POST("/participants", h.participant.HandleRegister)
		public.GET("/participants/:id", h.participant.HandleGet)
		public.GET("/participants/:id/qr.png", h.participant.HandleGetQRCode)
		public.POST("/scans", h.scan.HandleScan)
	}

	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.GET("/auth/session", h.auth.HandleGetSession)
		admin.GET("/participants", h.participant.HandleList)
		admin.PUT("/participants/:id", h.participant.HandleUpdate)
		admin.DELETE("/participants/:id", h.participant.HandleDelete)
		admin.GET("/participants/:id/payments", h.payment.HandleGetPaymentHistory)
		admin.POST("/payments", h.payment.HandleUpdatePayment)
		admin.POST("/send-whatsapp", h.whatsapp.HandleSendWhatsApp)
		admin.GET("/stats", h.stats.HandleGetStats)
		admin.GET("/live", s.Hub.HandleWebSocket)
	}

	// the URL printed into shareable QR links
	s.Router.GET("/qr-display/:id", h.participant.HandleGetQRCode)
	s.Router.GET("/", v1.HandleHealthcheck)

	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "EventPass API"
	docs.SwaggerInfo.Description = "Event registration, payment tracking and door check-in."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
