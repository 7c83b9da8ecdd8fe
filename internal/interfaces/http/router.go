package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/storage"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
	"helpdesk/internal/shared/version"
)

type Router struct {
	engine *gin.Engine
	db     *gorm.DB
	logger logger.Interface
}

// NewRouter wires repositories, use cases, and handlers into a ready gin
// engine.
func NewRouter(cfg *config.Config, database *gorm.DB, log logger.Interface) (*Router, error) {
	fileStore, err := storage.NewFileStore(cfg.Storage.FilesDir)
	if err != nil {
		return nil, err
	}

	ticketRepo := repository.NewTicketRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	attachmentRepo := repository.NewAttachmentRepository(database)
	eventRepo := repository.NewEventRepository(database)

	recorder := usecases.NewRecorder(eventRepo)
	txManager := db.NewTransactionManager(database)
	markdownSvc := markdown.NewService()

	ticketHandler := tickethandlers.NewTicketHandler(
		usecases.NewCreateTicketUseCase(ticketRepo, recorder, txManager, log),
		usecases.NewUpdateTicketUseCase(ticketRepo, recorder, txManager, log),
		usecases.NewAddCommentUseCase(ticketRepo, commentRepo, recorder, txManager, log),
		usecases.NewAddAttachmentUseCase(ticketRepo, attachmentRepo, recorder, fileStore, txManager, log),
		usecases.NewGetTicketUseCase(ticketRepo, commentRepo, attachmentRepo, eventRepo, markdownSvc, log),
		usecases.NewGetAttachmentFileUseCase(attachmentRepo, fileStore),
		usecases.NewListTicketsUseCase(ticketRepo),
		usecases.NewListEventsUseCase(ticketRepo, eventRepo),
	)

	engine := gin.New()

	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	r := &Router{
		engine: engine,
		db:     database,
		logger: log,
	}

	engine.GET("/healthz", r.healthCheck)
	engine.GET("/version", r.version)

	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler: ticketHandler,
	})

	return r, nil
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) healthCheck(c *gin.Context) {
	sqlDB, err := r.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		r.logger.Errorw("health check failed", "error", err)
		c.JSON(503, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}

func (r *Router) version(c *gin.Context) {
	c.JSON(200, gin.H{
		"version": version.Version,
		"commit":  version.GitCommit,
	})
}
