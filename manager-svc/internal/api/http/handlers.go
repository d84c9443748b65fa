package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodcart/manager-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Manager service.ManagerServiceInterface
	Auth    service.AuthServiceInterface
}

func NewHandler(manager service.ManagerServiceInterface, auth service.AuthServiceInterface) *Handler {
	return &Handler{Manager: manager, Auth: auth}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/manager/login", h.login).Methods("POST")

	staff := r.PathPrefix("/api/manager").Subrouter()
	staff.Use(RequireStaff(h.Auth))
	staff.HandleFunc("/orders", h.getOrderCandidates).Methods("GET")
	staff.HandleFunc("/products", h.getProductMatrix).Methods("GET")
	staff.HandleFunc("/restaurants", h.getRestaurants).Methods("GET")
}

func writeJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "manager-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if creds.Username == "" || creds.Password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	token, err := h.Auth.Login(creds.Username, creds.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	case errors.Is(err, service.ErrNotStaff):
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) getOrderCandidates(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Manager.OrderCandidates(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) getProductMatrix(w http.ResponseWriter, r *http.Request) {
	matrix, err := h.Manager.ProductMatrix()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, matrix)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Manager.Restaurants()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}
