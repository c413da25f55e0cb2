package handler

import (
	partnerapp "github.com/erp/crm/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles employee-related API endpoints
type EmployeeHandler struct {
	BaseHandler
	employeeService *partnerapp.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *partnerapp.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// RegisterRoutes mounts the employee endpoints under rg
func (h *EmployeeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	employees := rg.Group("/employees")
	employees.GET("", h.List)
	employees.POST("", h.Create)
	employees.GET("/:id", h.GetByID)
	employees.PUT("/:id", h.Update)
	employees.DELETE("/:id", h.Delete)
}

// List godoc
// @ID           listEmployees
// @Summary      List employees
// @Description  Retrieve every active employee
// @Tags         employees
// @Produce      json
// @Success      200 {array} partnerapp.EmployeeResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.GetAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employees)
}

// GetByID godoc
// @ID           getEmployeeById
// @Summary      Get employee by ID
// @Description  Retrieve an active employee
// @Tags         employees
// @Produce      json
// @Param        id path int true "Employee ID" minimum(1)
// @Success      200 {object} partnerapp.EmployeeResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// Create godoc
// @ID           createEmployee
// @Summary      Create an employee
// @Description  Create an active employee. The email must not belong to another active employee.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replays of the same key are rejected"
// @Param        request body partnerapp.SaveEmployeeRequest true "Employee to create"
// @Success      201 {object} partnerapp.EmployeeResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      413 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req partnerapp.SaveEmployeeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.Save(c.Request.Context(), 0, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, employee)
}

// Update godoc
// @ID           replaceEmployee
// @Summary      Replace an employee
// @Description  Replace every field of an active employee. Omitted optional fields are cleared.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id path int true "Employee ID" minimum(1)
// @Param        request body partnerapp.SaveEmployeeRequest true "Employee fields"
// @Success      200 {object} partnerapp.EmployeeResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      413 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req partnerapp.SaveEmployeeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.Save(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// Delete godoc
// @ID           deleteEmployee
// @Summary      Delete an employee
// @Description  Soft-delete an active employee
// @Tags         employees
// @Produce      json
// @Param        id path int true "Employee ID" minimum(1)
// @Success      204
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.employeeService.Remove(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
