package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizdesk/internal/models"
)

// ---- companies ----

func (s *Server) handleListCompanies(c *gin.Context) {
	companies, err := s.store.ListCompanies(c.Request.Context())
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

func (s *Server) handleGetCompany(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	company, err := s.store.GetCompany(c.Request.Context(), id)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

func (s *Server) handleCreateCompany(c *gin.Context) {
	var company models.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := s.store.CreateCompany(c.Request.Context(), company)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": created})
}

func (s *Server) handleUpdateCompany(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var company models.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	company.ID = id

	updated, err := s.store.UpdateCompany(c.Request.Context(), company)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": updated})
}

func (s *Server) handleDeleteCompany(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteCompany(c.Request.Context(), id); err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) handleActivateCompany(c *gin.Context) {
	s.setCompanyActive(c, true)
}

func (s *Server) handleDeactivateCompany(c *gin.Context) {
	s.setCompanyActive(c, false)
}

func (s *Server) setCompanyActive(c *gin.Context, active bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	company, err := s.store.SetCompanyActive(c.Request.Context(), id, active)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// ---- departments ----

func (s *Server) handleListDepartments(c *gin.Context) {
	departments, err := s.store.ListDepartments(c.Request.Context(), queryID(c, "companyId"))
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"departments": departments})
}

func (s *Server) handleGetDepartment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	department, err := s.store.GetDepartment(c.Request.Context(), id)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"department": department})
}

func (s *Server) handleCreateDepartment(c *gin.Context) {
	var department models.Department
	if err := c.ShouldBindJSON(&department); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := s.store.CreateDepartment(c.Request.Context(), department)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"department": created})
}

func (s *Server) handleUpdateDepartment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var department models.Department
	if err := c.ShouldBindJSON(&department); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	department.ID = id

	updated, err := s.store.UpdateDepartment(c.Request.Context(), department)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"department": updated})
}

func (s *Server) handleDeleteDepartment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteDepartment(c.Request.Context(), id); err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ---- employees ----

func (s *Server) handleListEmployees(c *gin.Context) {
	employees, err := s.store.ListEmployees(c.Request.Context(), queryID(c, "companyId"))
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

func (s *Server) handleGetEmployee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	employee, err := s.store.GetEmployee(c.Request.Context(), id)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employee": employee})
}

func (s *Server) handleCreateEmployee(c *gin.Context) {
	var employee models.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := s.store.CreateEmployee(c.Request.Context(), employee)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"employee": created})
}

func (s *Server) handleUpdateEmployee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var employee models.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	employee.ID = id

	updated, err := s.store.UpdateEmployee(c.Request.Context(), employee)
	if err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employee": updated})
}

func (s *Server) handleDeleteEmployee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteEmployee(c.Request.Context(), id); err != nil {
		s.respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
