package handler

import (
	"github.com/gin-gonic/gin"

	staffapp "github.com/bizdesk/backend/internal/application/staff"
)

// EmployeeHandler handles employee API endpoints
type EmployeeHandler struct {
	BaseHandler
	employeeService *staffapp.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *staffapp.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Create handles POST /staff/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req staffapp.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, employee)
}

// GetByID handles GET /staff/employees/:id
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, employee)
}

// List handles GET /staff/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	employees, err := h.employeeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	total, err := h.employeeService.Count(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, employees, total, filter.Page, filter.PageSize)
}

// Update handles PUT /staff/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req staffapp.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, employee)
}

// Delete handles DELETE /staff/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
