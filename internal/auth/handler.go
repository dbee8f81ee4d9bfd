package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/summitit/appointments/pkg/logging"
)

// Handler handles HTTP requests for admin authentication
type Handler struct {
	gate   *Gate
	logger *logging.Logger
}

// NewHandler creates a new auth handler
func NewHandler(gate *Gate, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{gate: gate, logger: logger}
}

// LoginRequest is the POST /admin/login body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Login handles POST /admin/login requests
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.gate.IssueToken(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			h.logger.Warn("admin login rejected", "username", req.Username)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.Error("failed to issue admin token", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("admin login succeeded", "username", req.Username)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(LoginResponse{Token: token, Message: "Login successful"})
}

// Verify handles GET /admin/verify requests. The middleware has already
// validated the token; this just echoes the identity back.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	username, ok := AdminFromContext(r.Context())
	if !ok {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message":  "Token valid",
		"username": username,
	})
}
