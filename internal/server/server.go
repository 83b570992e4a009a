// Package server exposes the REST surface over Gin. Every resource
// lives under /api/v1 behind the bearer-token middleware; /api/healthz
// and the login route stay open.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bizdesk/internal/storage"
)

// Server provides HTTP handlers for the business desk backend.
type Server struct {
	engine    *gin.Engine
	store     storage.Store
	auth      *Authenticator
	logger    *slog.Logger
	staticDir string
}

// New constructs the HTTP server with routes and middleware configured.
func New(store storage.Store, auth *Authenticator, logger *slog.Logger, staticDir string) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/api"))

	srv := &Server{
		engine:    router,
		store:     store,
		auth:      auth,
		logger:    logger,
		staticDir: staticDir,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API and static handlers together.
func (s *Server) registerRoutes() {
	s.engine.GET("/api/healthz", s.handleHealth)
	s.engine.POST("/api/v1/auth/login", s.handleLogin)

	api := s.engine.Group("/api/v1", s.auth.Middleware())
	{
		api.POST("/auth/logout", s.handleLogout)

		tasks := api.Group("/tasks")
		{
			tasks.GET("", s.handleListTasks)
			tasks.POST("", s.handleCreateTask)
			tasks.GET("/:id", s.handleGetTask)
			tasks.PUT("/:id", s.handleUpdateTask)
			tasks.DELETE("/:id", s.handleDeleteTask)
			tasks.PUT("/:id/favorite", s.handleToggleFavorite)
		}

		sprints := api.Group("/sprints")
		{
			sprints.GET("", s.handleListSprints)
			sprints.POST("", s.handleCreateSprint)
			sprints.GET("/:id", s.handleGetSprint)
			sprints.PUT("/:id", s.handleUpdateSprint)
			sprints.PUT("/:id/start", s.handleStartSprint)
			sprints.PUT("/:id/complete", s.handleCompleteSprint)
		}

		epics := api.Group("/epics")
		{
			epics.GET("", s.handleListEpics)
			epics.POST("", s.handleCreateEpic)
			epics.PUT("/:id", s.handleUpdateEpic)
		}

		boards := api.Group("/boards")
		{
			boards.GET("", s.handleListBoards)
			boards.POST("", s.handleCreateBoard)
			boards.GET("/:id", s.handleGetBoard)
			boards.PUT("/:id", s.handleUpdateBoard)
		}

		companies := api.Group("/companies")
		{
			companies.GET("", s.handleListCompanies)
			companies.POST("", s.handleCreateCompany)
			companies.GET("/:id", s.handleGetCompany)
			companies.PUT("/:id", s.handleUpdateCompany)
			companies.DELETE("/:id", s.handleDeleteCompany)
			companies.PUT("/:id/activate", s.handleActivateCompany)
			companies.PUT("/:id/deactivate", s.handleDeactivateCompany)
		}

		departments := api.Group("/departments")
		{
			departments.GET("", s.handleListDepartments)
			departments.POST("", s.handleCreateDepartment)
			departments.GET("/:id", s.handleGetDepartment)
			departments.PUT("/:id", s.handleUpdateDepartment)
			departments.DELETE("/:id", s.handleDeleteDepartment)
		}

		employees := api.Group("/employees")
		{
			employees.GET("", s.handleListEmployees)
			employees.POST("", s.handleCreateEmployee)
			employees.GET("/:id", s.handleGetEmployee)
			employees.PUT("/:id", s.handleUpdateEmployee)
			employees.DELETE("/:id", s.handleDeleteEmployee)
		}

		finances := api.Group("/finances")
		{
			finances.GET("/transactions", s.handleListTransactions)
			finances.POST("/transactions", s.handleCreateTransaction)
			finances.GET("/transactions/:id", s.handleGetTransaction)
			finances.PUT("/transactions/:id", s.handleUpdateTransaction)
			finances.DELETE("/transactions/:id", s.handleDeleteTransaction)
			finances.GET("/accounts", s.handleListAccounts)
			finances.POST("/accounts", s.handleCreateAccount)
			finances.GET("/accounts/:id", s.handleGetAccount)
			finances.PUT("/accounts/:id", s.handleUpdateAccount)
			finances.DELETE("/accounts/:id", s.handleDeleteAccount)
		}

		passwords := api.Group("/passwords")
		{
			passwords.GET("", s.handleListPasswords)
			passwords.POST("", s.handleCreatePassword)
			passwords.GET("/:id", s.handleGetPassword)
			passwords.PUT("/:id", s.handleUpdatePassword)
			passwords.DELETE("/:id", s.handleDeletePassword)
		}

		categories := api.Group("/password-categories")
		{
			categories.GET("", s.handleListPasswordCategories)
			categories.POST("", s.handleCreatePasswordCategory)
			categories.GET("/:id", s.handleGetPasswordCategory)
			categories.PUT("/:id", s.handleUpdatePasswordCategory)
			categories.DELETE("/:id", s.handleDeletePasswordCategory)
		}
	}

	s.mountStatic()
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseID converts a path parameter to int64 with error handling.
func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
		return 0, false
	}
	return id, true
}

// queryID reads an optional int64 query parameter; missing or malformed
// values mean "no constraint".
func queryID(c *gin.Context, name string) int64 {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// respondError logs the error and returns a JSON payload.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	if err != nil {
		s.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondStorageError maps the storage sentinels to HTTP statuses.
func (s *Server) respondStorageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.respondError(c, http.StatusNotFound, err)
	case errors.Is(err, storage.ErrInvalid):
		s.respondError(c, http.StatusBadRequest, err)
	case errors.Is(err, storage.ErrConflict):
		s.respondError(c, http.StatusConflict, err)
	default:
		s.respondError(c, http.StatusInternalServerError, err)
	}
}
