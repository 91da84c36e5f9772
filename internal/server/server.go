package server

import (
	"strings"
	"time"

	"anoa.com/useremployee/internal/config"
	"anoa.com/useremployee/internal/handler"
	"anoa.com/useremployee/internal/repository"
	"anoa.com/useremployee/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	engine *gin.Engine
	store  *repository.Store
}

func NewServer(cfg *config.Config, store *repository.Store) *Server {
	handoff := service.NewHandoff()
	hub := service.NewToastHub()

	// The user form surfaces toasts; the employee form explicitly opts out.
	userFormSvc := service.NewUserFormService(store, handoff, hub, cfg)
	employeeFormSvc := service.NewEmployeeFormService(store, handoff, service.NoopNotifier{}, cfg)

	homeHandler := handler.NewHomeHandler()
	userFormHandler := handler.NewUserFormHandler(userFormSvc)
	employeeFormHandler := handler.NewEmployeeFormHandler(employeeFormSvc)
	notificationHandler := handler.NewNotificationHandler(hub)

	router := gin.New()

	setupCORS(router, cfg)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	router.GET("/", homeHandler.GetHome)
	router.GET("/health", homeHandler.GetHealth)

	userForm := router.Group("/userForm")
	{
		userForm.GET("", userFormHandler.GetView)
		userForm.PUT("/draft", userFormHandler.UpdateDraft)
		userForm.POST("/save", userFormHandler.Save)
		userForm.POST("/reset", userFormHandler.Reset)
		userForm.POST("/edit/:id", userFormHandler.Edit)
		userForm.POST("/sort", userFormHandler.ToggleSort)
		userForm.POST("/collapse", userFormHandler.ToggleCollapse)
		userForm.POST("/delete/:id", userFormHandler.RequestDelete)
		userForm.POST("/delete-confirm", userFormHandler.ConfirmDelete)
		userForm.POST("/delete-cancel", userFormHandler.CancelDelete)
		userForm.POST("/goToEmployee", userFormHandler.GoToEmployee)
	}

	employeeForm := router.Group("/employeeForm")
	{
		employeeForm.GET("", employeeFormHandler.GetView)
		employeeForm.PUT("/draft", employeeFormHandler.UpdateDraft)
		employeeForm.POST("/save", employeeFormHandler.Save)
		employeeForm.POST("/reset", employeeFormHandler.Reset)
		employeeForm.POST("/edit/:id", employeeFormHandler.Edit)
		employeeForm.POST("/sort", employeeFormHandler.ToggleSort)
		employeeForm.POST("/collapse", employeeFormHandler.ToggleCollapse)
		employeeForm.POST("/delete/:id", employeeFormHandler.RequestDelete)
		employeeForm.POST("/delete-confirm", employeeFormHandler.ConfirmDelete)
		employeeForm.POST("/delete-cancel", employeeFormHandler.CancelDelete)
	}

	router.GET("/notifications/ws", notificationHandler.HandleWebSocket)

	return &Server{
		engine: router,
		store:  store,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, cfg *config.Config) {
	var origins []string
	if cfg.AllowedOrigins != "" {
		origins = strings.Split(cfg.AllowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
