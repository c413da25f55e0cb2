package handler

import (
	partnerapp "github.com/erp/crm/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// RegisterRoutes mounts the customer endpoints under rg
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	customers.POST("", h.Create)
	customers.GET("", h.List)
	customers.GET("/page", h.ListPage)
	customers.GET("/search", h.Search)
	customers.GET("/recent", h.ListRecent)
	customers.GET("/valid-phone", h.ListWithValidPhone)
	customers.GET("/count", h.Count)
	customers.GET("/exists", h.Exists)
	customers.GET("/:id", h.GetByID)
	customers.PUT("/:id", h.Update)
	customers.DELETE("/:id", h.Delete)
	customers.PATCH("/:id/toggle-status", h.ToggleStatus)
}

// RecentQuery holds the limit of GET /customers/recent
type RecentQuery struct {
	Limit int `form:"limit"`
}

// ExistsQuery holds the email of GET /customers/exists
type ExistsQuery struct {
	Email string `form:"email" binding:"notblank"`
}

// Create godoc
// @ID           createCustomer
// @Summary      Create a customer
// @Description  Create an active customer. The email must not belong to another active customer.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replays of the same key are rejected"
// @Param        request body partnerapp.CreateCustomerRequest true "Customer to create"
// @Success      201 {object} partnerapp.CustomerResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      413 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req partnerapp.CreateCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, customer)
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Description  Retrieve every active customer, newest first
// @Tags         customers
// @Produce      json
// @Success      200 {array} partnerapp.CustomerResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customers)
}

// ListPage godoc
// @ID           listCustomerPage
// @Summary      List customers by page
// @Description  Retrieve one page of active customers
// @Tags         customers
// @Produce      json
// @Param        page query int false "Page number" minimum(1) default(1)
// @Param        size query int false "Page size" minimum(1) maximum(100) default(20)
// @Param        sort_by query string false "Sort field" Enums(id, firstname, lastname, email, created_at, updated_at)
// @Param        sort_order query string false "Sort direction" Enums(asc, desc) default(desc)
// @Success      200 {object} shared.Paginated[partnerapp.CustomerResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/customers/page [get]
func (h *CustomerHandler) ListPage(c *gin.Context) {
	var filter partnerapp.CustomerListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	page, err := h.customerService.ListPage(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, page)
}

// Search godoc
// @ID           searchCustomers
// @Summary      Search customers
// @Description  Case-insensitive substring search over first name, last name and email of active customers. An empty query lists all.
// @Tags         customers
// @Produce      json
// @Param        q query string false "Search term"
// @Param        page query int false "Page number" minimum(1) default(1)
// @Param        size query int false "Page size" minimum(1) maximum(100) default(20)
// @Param        sort_by query string false "Sort field" Enums(id, firstname, lastname, email, created_at, updated_at)
// @Param        sort_order query string false "Sort direction" Enums(asc, desc) default(desc)
// @Success      200 {object} shared.Paginated[partnerapp.CustomerResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/customers/search [get]
func (h *CustomerHandler) Search(c *gin.Context) {
	var filter partnerapp.CustomerListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	page, err := h.customerService.Search(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, page)
}

// ListRecent godoc
// @ID           listRecentCustomers
// @Summary      List recent customers
// @Description  Retrieve the most recently created active customers
// @Tags         customers
// @Produce      json
// @Param        limit query int false "Maximum number of customers" minimum(1) maximum(100) default(10)
// @Success      200 {array} partnerapp.CustomerResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/customers/recent [get]
func (h *CustomerHandler) ListRecent(c *gin.Context) {
	var query RecentQuery
	if !h.BindQuery(c, &query) {
		return
	}

	customers, err := h.customerService.ListRecent(c.Request.Context(), query.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customers)
}

// ListWithValidPhone godoc
// @ID           listCustomersWithValidPhone
// @Summary      List customers with a valid phone
// @Description  Retrieve active customers whose phone is an international number
// @Tags         customers
// @Produce      json
// @Success      200 {array} partnerapp.CustomerResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/customers/valid-phone [get]
func (h *CustomerHandler) ListWithValidPhone(c *gin.Context) {
	customers, err := h.customerService.ListWithValidPhone(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customers)
}

// Count godoc
// @ID           countCustomers
// @Summary      Count customers
// @Description  Count active customers
// @Tags         customers
// @Produce      json
// @Success      200 {object} partnerapp.CountResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/customers/count [get]
func (h *CustomerHandler) Count(c *gin.Context) {
	count, err := h.customerService.CountActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, partnerapp.CountResponse{Count: count})
}

// Exists godoc
// @ID           customerEmailExists
// @Summary      Check customer email
// @Description  Report whether an active customer has the email, ignoring case
// @Tags         customers
// @Produce      json
// @Param        email query string true "Email address"
// @Success      200 {object} partnerapp.ExistsResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/customers/exists [get]
func (h *CustomerHandler) Exists(c *gin.Context) {
	var query ExistsQuery
	if !h.BindQuery(c, &query) {
		return
	}

	exists, err := h.customerService.ExistsByEmail(c.Request.Context(), query.Email)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, partnerapp.ExistsResponse{Exists: exists})
}

// GetByID godoc
// @ID           getCustomerById
// @Summary      Get customer by ID
// @Description  Retrieve an active customer
// @Tags         customers
// @Produce      json
// @Param        id path int true "Customer ID" minimum(1)
// @Success      200 {object} partnerapp.CustomerResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// Update godoc
// @ID           updateCustomer
// @Summary      Update a customer
// @Description  Merge the supplied fields into an active customer. Absent or blank fields keep their stored values.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path int true "Customer ID" minimum(1)
// @Param        request body partnerapp.UpdateCustomerRequest true "Fields to change"
// @Success      200 {object} partnerapp.CustomerResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      413 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req partnerapp.UpdateCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// Delete godoc
// @ID           deleteCustomer
// @Summary      Delete a customer
// @Description  Soft-delete an active customer. The record is kept as inactive.
// @Tags         customers
// @Produce      json
// @Param        id path int true "Customer ID" minimum(1)
// @Success      204
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ToggleStatus godoc
// @ID           toggleCustomerStatus
// @Summary      Toggle customer status
// @Description  Flip a customer between active and inactive. Restoring fails when another active customer has the email.
// @Tags         customers
// @Produce      json
// @Param        id path int true "Customer ID" minimum(1)
// @Success      200 {object} partnerapp.CustomerResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/customers/{id}/toggle-status [patch]
func (h *CustomerHandler) ToggleStatus(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	customer, err := h.customerService.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}
