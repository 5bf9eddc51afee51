package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PhysicsUofRAUI/project-manager/internal/repository"
	"github.com/PhysicsUofRAUI/project-manager/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server serves the dashboard page and the record-browser API.
type Server struct {
	store     *repository.Store
	dashboard *service.DashboardService
	tasks     *service.TaskService
	topN      int
	log       *slog.Logger
	router    *gin.Engine
}

// NewServer wires all routes.
func NewServer(store *repository.Store, dashboard *service.DashboardService, tasks *service.TaskService, topN int, log *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		store:     store,
		dashboard: dashboard,
		tasks:     tasks,
		topN:      topN,
		log:       log,
		router:    router,
	}

	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	// Dashboard
	router.GET("/", s.handleIndex)

	// Record browser
	api := router.Group("/api")
	{
		api.GET("/tasks", s.handleListTasks)
		api.POST("/tasks", s.handleCreateTask)
		api.GET("/tasks/:id", s.handleGetTask)
		api.DELETE("/tasks/:id", s.handleDeleteTask)
		api.POST("/tasks/:id/complete", s.handleCompleteTask)
		api.POST("/tasks/:id/cycles", s.handleLogCycle)
		api.GET("/tasks/:id/cycles", s.handleListCycles)

		api.GET("/projects", s.handleListProjects)
		api.POST("/projects", s.handleCreateProject)
		api.GET("/projects/:id", s.handleGetProject)
		api.GET("/projects/:id/children", s.handleListProjectChildren)
		api.PUT("/projects/:id", s.handleUpdateProject)
		api.DELETE("/projects/:id", s.handleDeleteProject)

		api.GET("/categories", s.handleListCategories)
		api.POST("/categories", s.handleCreateCategory)
		api.PUT("/categories/:id", s.handleUpdateCategory)
		api.DELETE("/categories/:id", s.handleDeleteCategory)

		api.GET("/dependencies", s.handleListDependencies)
		api.POST("/dependencies", s.handleCreateDependency)
		api.DELETE("/dependencies/:id", s.handleDeleteDependency)

		api.GET("/xp-history", s.handleListXPHistory)
	}

	return s
}

// Handler exposes the router for the surrounding http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}
