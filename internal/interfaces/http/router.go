// Package http assembles the gin engine: repositories, use cases,
// handlers and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"maintdesk/internal/application/ticket/usecases"
	"maintdesk/internal/infrastructure/auth"
	"maintdesk/internal/infrastructure/config"
	"maintdesk/internal/infrastructure/repository"
	"maintdesk/internal/infrastructure/storage"
	tickethandlers "maintdesk/internal/interfaces/http/handlers/ticket"
	"maintdesk/internal/interfaces/http/middleware"
	"maintdesk/internal/interfaces/http/routes"
	"maintdesk/internal/shared/authorization"
	"maintdesk/internal/shared/db"
	"maintdesk/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	gormDB *gorm.DB
	logger logger.Interface
}

func NewRouter(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	return &Router{
		engine: gin.New(),
		cfg:    cfg,
		gormDB: gormDB,
		logger: log,
	}
}

func (r *Router) SetupRoutes() error {
	r.engine.Use(gin.Recovery())

	r.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	store, err := storage.NewAttachmentStore(r.cfg.Storage.UploadRoot)
	if err != nil {
		return err
	}

	tm := db.NewTransactionManager(r.gormDB)
	ticketRepo := repository.NewTicketRepository(r.gormDB, r.logger.Named("ticket_repository"))
	roleChecker := authorization.NewRoleChecker(r.gormDB)

	jwtService := auth.NewJWTService(r.cfg.Auth.JWT.Secret, r.cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, r.logger.Named("auth"))

	handler := tickethandlers.NewTicketHandler(
		usecases.NewCreateTicketUseCase(ticketRepo, tm, r.logger.Named("create_ticket")),
		usecases.NewListTicketsUseCase(ticketRepo, r.logger.Named("list_tickets")),
		usecases.NewGetTicketUseCase(ticketRepo, r.logger.Named("get_ticket")),
		usecases.NewCompleteTicketUseCase(ticketRepo, tm, r.logger.Named("complete_ticket")),
		usecases.NewDeleteTicketUseCase(ticketRepo, roleChecker, tm, r.logger.Named("delete_ticket")),
		usecases.NewUploadAttachmentUseCase(ticketRepo, store, r.cfg.Storage.MaxUploadBytes, r.logger.Named("upload_attachment")),
		usecases.NewDownloadAttachmentUseCase(ticketRepo, store, r.logger.Named("download_attachment")),
		r.logger.Named("ticket_handler"),
	)

	routes.SetupMaintenanceRoutes(r.engine, &routes.MaintenanceRouteConfig{
		TicketHandler:  handler,
		AuthMiddleware: authMiddleware,
	})

	return nil
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
