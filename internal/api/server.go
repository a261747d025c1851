package api

import (
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/connaissance/fest-api/docs"
	v1 "github.com/connaissance/fest-api/internal/api/handler/v1"
	"github.com/connaissance/fest-api/internal/api/middleware"
	"github.com/connaissance/fest-api/internal/config"
	"github.com/connaissance/fest-api/internal/repository"
	"github.com/connaissance/fest-api/internal/repository/dao"
	"github.com/connaissance/fest-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

type handlers struct {
	event        *v1.EventHandler
	participant  *v1.ParticipantHandler
	registration *v1.RegistrationHandler
	stats        *v1.StatsHandler
	siteConfig   *v1.SiteConfigHandler
	admin        *v1.AdminHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()
	s.mountHandlers(s.initHandlers(db))

	return s
}

func (s *Server) initHandlers(db *gorm.DB) handlers {
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	participantRepo := repository.NewParticipantRepository(dao.NewParticipantDAO(db))
	siteConfigRepo := repository.NewSiteConfigRepository(dao.NewSiteConfigDAO(db))

	return handlers{
		event: v1.NewEventHandler(service.NewEventService(eventRepo)),
		participant: v1.NewParticipantHandler(
			service.NewParticipantService(participantRepo, eventRepo),
			service.NewExportService(participantRepo),
		),
		registration: v1.NewRegistrationHandler(service.NewRegistrationService(participantRepo, eventRepo)),
		stats:        v1.NewStatsHandler(service.NewStatsService(eventRepo, participantRepo)),
		siteConfig:   v1.NewSiteConfigHandler(service.NewSiteConfigService(siteConfigRepo)),
		admin:        v1.NewAdminHandler(service.NewAdminService(s.Config.Admin)),
	}
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) mountHandlers(h handlers) {
	const basePath = "/api"

	api := s.Router.Group(basePath)
	{
		api.GET("/events", h.event.HandleGetEvents)
		api.GET("/events/:id", h.event.HandleGetEvent)
		api.POST("/events", h.event.HandleCreateEvent)
		api.PUT("/events/:id", h.event.HandleUpdateEvent)
		api.DELETE("/events/:id", h.event.HandleDeleteEvent)

		api.POST("/register", h.registration.HandleRegister)

		api.GET("/participants", h.participant.HandleGetParticipants)
		api.GET("/participants/download", h.participant.HandleDownloadParticipants)
		api.PUT("/participants/:id", h.participant.HandleUpdateParticipant)
		api.DELETE("/participants/:id", h.participant.HandleDeleteParticipant)

		api.GET("/stats", h.stats.HandleGetStats)

		api.POST("/admin/verify", h.admin.HandleVerify)

		api.GET("/config", h.siteConfig.HandleGetConfig)
		api.PUT("/config", h.siteConfig.HandleUpdateConfig)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Connaissance festival API"
	docs.SwaggerInfo.Description = "Events, registrations and site settings for the Connaissance festival."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
