package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizdesk/internal/models"
)

func (s *Server) handleListPasswords(c *gin.Context) {
	passwords, err := s.store.ListPasswords(c.Request.Context(), queryID(c, "companyId"))
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"passwords": passwords})
}

func (s *Server) handleGetPassword(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	password, err := s.store.GetPassword(c.Request.Context(), id)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"password": password})
}

func (s *Server) handleCreatePassword(c *gin.Context) {
	var password models.Password
	if err := c.ShouldBindJSON(&password); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := s.store.CreatePassword(c.Request.Context(), password)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"password": created})
}

func (s *Server) handleUpdatePassword(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var password models.Password
	if err := c.ShouldBindJSON(&password); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	password.ID = id

	updated, err := s.store.UpdatePassword(c.Request.Context(), password)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"password": updated})
}

func (s *Server) handleDeletePassword(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeletePassword(c.Request.Context(), id); err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ---- categories ----

func (s *Server) handleListPasswordCategories(c *gin.Context) {
	categories, err := s.store.ListPasswordCategories(c.Request.Context())
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (s *Server) handleGetPasswordCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := s.store.GetPasswordCategory(c.Request.Context(), id)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

func (s *Server) handleCreatePasswordCategory(c *gin.Context) {
	var category models.PasswordCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := s.store.CreatePasswordCategory(c.Request.Context(), category)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": created})
}

func (s *Server) handleUpdatePasswordCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var category models.PasswordCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	category.ID = id

	updated, err := s.store.UpdatePasswordCategory(c.Request.Context(), category)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": updated})
}

func (s *Server) handleDeletePasswordCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeletePasswordCategory(c.Request.Context(), id); err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
