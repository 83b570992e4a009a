package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizdesk/internal/models"
)

func (s *Server) handleListTransactions(c *gin.Context) {
	transactions, err := s.store.ListTransactions(c.Request.Context(), queryID(c, "companyId"))
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

func (s *Server) handleGetTransaction(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	transaction, err := s.store.GetTransaction(c.Request.Context(), id)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

func (s *Server) handleCreateTransaction(c *gin.Context) {
	var transaction models.Transaction
	if err := c.ShouldBindJSON(&transaction); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := s.store.CreateTransaction(c.Request.Context(), transaction)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": created})
}

func (s *Server) handleUpdateTransaction(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var transaction models.Transaction
	if err := c.ShouldBindJSON(&transaction); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	transaction.ID = id

	updated, err := s.store.UpdateTransaction(c.Request.Context(), transaction)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": updated})
}

func (s *Server) handleDeleteTransaction(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteTransaction(c.Request.Context(), id); err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ---- accounts ----

func (s *Server) handleListAccounts(c *gin.Context) {
	accounts, err := s.store.ListAccounts(c.Request.Context(), queryID(c, "companyId"))
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

func (s *Server) handleGetAccount(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	account, err := s.store.GetAccount(c.Request.Context(), id)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account})
}

func (s *Server) handleCreateAccount(c *gin.Context) {
	var account models.Account
	if err := c.ShouldBindJSON(&account); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := s.store.CreateAccount(c.Request.Context(), account)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"account": created})
}

func (s *Server) handleUpdateAccount(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var account models.Account
	if err := c.ShouldBindJSON(&account); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	account.ID = id

	updated, err := s.store.UpdateAccount(c.Request.Context(), account)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": updated})
}

func (s *Server) handleDeleteAccount(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteAccount(c.Request.Context(), id); err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
