package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizdesk/internal/models"
)

func (s *Server) handleListBoards(c *gin.Context) {
	boards, err := s.store.ListBoards(c.Request.Context(), queryID(c, "companyId"))
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"boards": boards})
}

func (s *Server) handleGetBoard(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	board, err := s.store.GetBoard(c.Request.Context(), id)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"board": board})
}

func (s *Server) handleCreateBoard(c *gin.Context) {
	var board models.Board
	if err := c.ShouldBindJSON(&board); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := s.store.CreateBoard(c.Request.Context(), board)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"board": created})
}

func (s *Server) handleUpdateBoard(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var board models.Board
	if err := c.ShouldBindJSON(&board); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	board.ID = id

	updated, err := s.store.UpdateBoard(c.Request.Context(), board)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"board": updated})
}
