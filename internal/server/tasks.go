package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizdesk/internal/models"
	"bizdesk/internal/storage"
)

// handleListTasks fetches tasks, optionally narrowed by companyId,
// boardId and assigneeId query parameters.
func (s *Server) handleListTasks(c *gin.Context) {
	q := storage.TaskQuery{
		CompanyID:  queryID(c, "companyId"),
		BoardID:    queryID(c, "boardId"),
		AssigneeID: queryID(c, "assigneeId"),
	}

	tasks, err := s.store.ListTasks(c.Request.Context(), q)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (s *Server) handleGetTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := s.store.GetTask(c.Request.Context(), id)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := s.store.CreateTask(c.Request.Context(), task)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": created})
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	task.ID = id

	updated, err := s.store.UpdateTask(c.Request.Context(), task)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": updated})
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteTask(c.Request.Context(), id); err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// handleToggleFavorite flips the favorite star on a task.
func (s *Server) handleToggleFavorite(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := s.store.ToggleTaskFavorite(c.Request.Context(), id)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

// ---- sprints ----

func (s *Server) handleListSprints(c *gin.Context) {
	sprints, err := s.store.ListSprints(c.Request.Context(), queryID(c, "companyId"))
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sprints": sprints})
}

func (s *Server) handleGetSprint(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	sprint, err := s.store.GetSprint(c.Request.Context(), id)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sprint": sprint})
}

func (s *Server) handleCreateSprint(c *gin.Context) {
	var sprint models.Sprint
	if err := c.ShouldBindJSON(&sprint); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := s.store.CreateSprint(c.Request.Context(), sprint)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sprint": created})
}

func (s *Server) handleUpdateSprint(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var sprint models.Sprint
	if err := c.ShouldBindJSON(&sprint); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	sprint.ID = id

	updated, err := s.store.UpdateSprint(c.Request.Context(), sprint)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sprint": updated})
}

func (s *Server) handleStartSprint(c *gin.Context) {
	s.setSprintStatus(c, models.SprintActive)
}

func (s *Server) handleCompleteSprint(c *gin.Context) {
	s.setSprintStatus(c, models.SprintCompleted)
}

func (s *Server) setSprintStatus(c *gin.Context, status string) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	sprint, err := s.store.SetSprintStatus(c.Request.Context(), id, status)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sprint": sprint})
}

// ---- epics ----

func (s *Server) handleListEpics(c *gin.Context) {
	epics, err := s.store.ListEpics(c.Request.Context(), queryID(c, "companyId"))
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"epics": epics})
}

func (s *Server) handleCreateEpic(c *gin.Context) {
	var epic models.Epic
	if err := c.ShouldBindJSON(&epic); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := s.store.CreateEpic(c.Request.Context(), epic)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"epic": created})
}

func (s *Server) handleUpdateEpic(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var epic models.Epic
	if err := c.ShouldBindJSON(&epic); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	epic.ID = id

	updated, err := s.store.UpdateEpic(c.Request.Context(), epic)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"epic": updated})
}
