// internal/user/handler.go
package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rosterhq/api-agency/internal/utils"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type createUserDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// POST /users
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto createUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.Name == "" || dto.Email == "" {
		http.Error(w, "name and email are required", http.StatusBadRequest)
		return
	}

	// invitation flow: without a password we issue a temporary one
	password := dto.Password
	var temporary string
	if password == "" {
		tmp, err := utils.GenerateTemporaryPassword()
		if err != nil {
			http.Error(w, "could not generate password", http.StatusInternalServerError)
			return
		}
		password, temporary = tmp, tmp
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		http.Error(w, "could not hash password", http.StatusInternalServerError)
		return
	}

	u := User{Name: dto.Name, Email: dto.Email, Password: hash, IsAdmin: dto.IsAdmin}
	if err := h.Repo.Create(&u); err != nil {
		http.Error(w, "could not create user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(struct {
		User
		TemporaryPassword string `json:"temporaryPassword,omitempty"`
	}{u, temporary})
}

// GET /users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "could not list users", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// GET /users/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}
	u, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}
