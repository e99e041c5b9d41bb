package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mestakip/tiretrack/internal/server"
	"github.com/mestakip/tiretrack/internal/user/domain"
)

// PartnerHandler handles vendor and customer endpoints
type PartnerHandler struct {
	vendors   domain.VendorRepository
	customers domain.CustomerRepository
}

// NewPartnerHandler creates a new partner handler
func NewPartnerHandler(vendors domain.VendorRepository, customers domain.CustomerRepository) *PartnerHandler {
	return &PartnerHandler{vendors: vendors, customers: customers}
}

// RegisterRoutes wires vendor and customer endpoints onto the router
func (h *PartnerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/vendors", server.AuthMiddleware(h.ListVendors)).Methods("GET")
	router.HandleFunc("/api/vendors", server.AuthMiddleware(h.CreateVendor)).Methods("POST")
	router.HandleFunc("/api/vendors/{id}", server.AuthMiddleware(h.GetVendor)).Methods("GET")
	router.HandleFunc("/api/vendors/{id}", server.AuthMiddleware(h.UpdateVendor)).Methods("PUT")
	router.HandleFunc("/api/vendors/{id}", server.AuthMiddleware(h.DeleteVendor)).Methods("DELETE")

	router.HandleFunc("/api/customers", server.AuthMiddleware(h.ListCustomers)).Methods("GET")
	router.HandleFunc("/api/customers", server.AuthMiddleware(h.CreateCustomer)).Methods("POST")
	router.HandleFunc("/api/customers/{id}", server.AuthMiddleware(h.GetCustomer)).Methods("GET")
	router.HandleFunc("/api/customers/{id}", server.AuthMiddleware(h.UpdateCustomer)).Methods("PUT")
	router.HandleFunc("/api/customers/{id}", server.AuthMiddleware(h.DeleteCustomer)).Methods("DELETE")
}

// ListVendors handles GET /api/vendors
func (h *PartnerHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	scope := server.ScopeFromContext(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	vendors, err := h.vendors.FindAll(scope, limit, offset)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}

	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: vendors})
}

// CreateVendor handles POST /api/vendors
func (h *PartnerHandler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		PhoneNumber string `json:"phone_number"`
		Address     string `json:"address"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		server.RespondError(w, http.StatusBadRequest, "Vendor name is required")
		return
	}

	scope := server.ScopeFromContext(r.Context())
	vendor := &domain.Vendor{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		OwnerID:     scope.UserID,
	}

	if err := h.vendors.Create(vendor); err != nil {
		server.RespondDomainError(w, err)
		return
	}

	server.RespondJSON(w, http.StatusCreated, server.Response{Success: true, Data: vendor})
}

// GetVendor handles GET /api/vendors/{id}
func (h *PartnerHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid vendor ID")
		return
	}

	vendor, err := h.vendors.FindByID(server.ScopeFromContext(r.Context()), id)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}

	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: vendor})
}

// UpdateVendor handles PUT /api/vendors/{id}
func (h *PartnerHandler) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid vendor ID")
		return
	}

	scope := server.ScopeFromContext(r.Context())
	vendor, err := h.vendors.FindByID(scope, id)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}

	var req struct {
		Name        string `json:"name"`
		PhoneNumber string `json:"phone_number"`
		Address     string `json:"address"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name != "" {
		vendor.Name = req.Name
	}
	if req.PhoneNumber != "" {
		vendor.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		vendor.Address = req.Address
	}

	if err := h.vendors.Update(vendor); err != nil {
		server.RespondDomainError(w, err)
		return
	}

	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: vendor})
}

// DeleteVendor handles DELETE /api/vendors/{id}
func (h *PartnerHandler) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid vendor ID")
		return
	}

	scope := server.ScopeFromContext(r.Context())
	if _, err := h.vendors.FindByID(scope, id); err != nil {
		server.RespondDomainError(w, err)
		return
	}

	if err := h.vendors.SoftDelete(id); err != nil {
		server.RespondDomainError(w, err)
		return
	}

	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Message: "Vendor removed"})
}

// ListCustomers handles GET /api/customers
func (h *PartnerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	scope := server.ScopeFromContext(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	customers, err := h.customers.FindAll(scope, limit, offset)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}

	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: customers})
}

// CreateCustomer handles POST /api/customers
func (h *PartnerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Address   string `json:"address"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FirstName == "" {
		server.RespondError(w, http.StatusBadRequest, "Customer first name is required")
		return
	}

	scope := server.ScopeFromContext(r.Context())
	customer := &domain.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		OwnerID:   scope.UserID,
	}

	if err := h.customers.Create(customer); err != nil {
		server.RespondDomainError(w, err)
		return
	}

	server.RespondJSON(w, http.StatusCreated, server.Response{Success: true, Data: customer})
}

// GetCustomer handles GET /api/customers/{id}
func (h *PartnerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	customer, err := h.customers.FindByID(server.ScopeFromContext(r.Context()), id)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}

	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: customer})
}

// UpdateCustomer handles PUT /api/customers/{id}
func (h *PartnerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	scope := server.ScopeFromContext(r.Context())
	customer, err := h.customers.FindByID(scope, id)
	if err != nil {
		server.RespondDomainError(w, err)
		return
	}

	var req struct {
		FirstName     string `json:"first_name"`
		LastName      string `json:"last_name"`
		Email         string `json:"email"`
		Phone         string `json:"phone"`
		Address       string `json:"address"`
		LoyaltyPoints *int   `json:"loyalty_points"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.FirstName != "" {
		customer.FirstName = req.FirstName
	}
	if req.LastName != "" {
		customer.LastName = req.LastName
	}
	if req.Email != "" {
		customer.Email = req.Email
	}
	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.Address != "" {
		customer.Address = req.Address
	}
	if req.LoyaltyPoints != nil {
		customer.LoyaltyPoints = *req.LoyaltyPoints
	}

	if err := h.customers.Update(customer); err != nil {
		server.RespondDomainError(w, err)
		return
	}

	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Data: customer})
}

// DeleteCustomer handles DELETE /api/customers/{id}
func (h *PartnerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		server.RespondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	scope := server.ScopeFromContext(r.Context())
	if _, err := h.customers.FindByID(scope, id); err != nil {
		server.RespondDomainError(w, err)
		return
	}

	if err := h.customers.SoftDelete(id); err != nil {
		server.RespondDomainError(w, err)
		return
	}

	server.RespondJSON(w, http.StatusOK, server.Response{Success: true, Message: "Customer removed"})
}
