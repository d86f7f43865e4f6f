package user

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/contasmart/contasmart/internal/auth"
	"github.com/contasmart/contasmart/internal/http/api"
	"github.com/contasmart/contasmart/internal/user"
)

type Handler struct {
	svc    *user.Service
	tokens *auth.Manager
}

func NewHandler(svc *user.Service, tokens *auth.Manager) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

// AuthRoutes are the unauthenticated register/login endpoints.
func (h *Handler) AuthRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

// ProfileRoutes require an authenticated user.
func (h *Handler) ProfileRoutes(r chi.Router) {
	r.Get("/", h.profile)
	r.Patch("/", h.updateProfile)
}

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Avatar    string    `json:"avatar"`
	Theme     string    `json:"theme"`
	Currency  string    `json:"currency"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(u *user.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Avatar:    u.Avatar,
		Theme:     u.Theme,
		Currency:  u.Currency,
		Language:  u.Language,
		CreatedAt: u.CreatedAt,
	}
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func (h *Handler) session(w http.ResponseWriter, status int, u *user.User) {
	token, err := h.tokens.Token(u.ID)
	if err != nil {
		api.Err(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(sessionResponse{Token: token, User: toResponse(u)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.Register(r.Context(), user.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		// The account exists even when seeding the default categories
		// failed; the session is issued regardless.
		if errors.Is(err, user.ErrSeedDefaults) {
			slog.Error("failed to seed default categories", "user_id", u.ID, "error", err)
		} else if errors.Is(err, user.ErrDuplicate) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		} else {
			api.Err(w, err)
			return
		}
	}

	h.session(w, http.StatusCreated, u)
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		api.Err(w, err)

		return
	}

	h.session(w, http.StatusOK, u)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Get(r.Context(), api.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		api.Err(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(u)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateProfileRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Theme    *string `json:"theme,omitempty"`
	Currency *string `json:"currency,omitempty"`
	Language *string `json:"language,omitempty"`
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), api.UserID(r.Context()), user.ProfileUpdate{
		FullName: req.FullName,
		Theme:    req.Theme,
		Currency: req.Currency,
		Language: req.Language,
	})
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		api.Err(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(u)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
