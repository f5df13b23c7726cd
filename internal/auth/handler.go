// internal/auth/handler.go
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/rosterhq/api-agency/internal/user"
	"github.com/rosterhq/api-agency/internal/utils"
)

type Handler struct {
	Users  *user.Repository
	Secret []byte
}

func NewHandler(users *user.Repository, secret []byte) *Handler {
	return &Handler{Users: users, Secret: secret}
}

type loginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

// POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto loginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.Email == "" || dto.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	u, err := h.Users.FindByEmail(dto.Email)
	if err != nil || !utils.CheckPassword(u.Password, dto.Password) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := GenerateAccessToken(h.Secret, u.ID, u.IsAdmin)
	if err != nil {
		http.Error(w, "could not issue token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(loginResponse{Token: token, User: *u})
}
