// internal/talent/handler.go
package talent

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /talents
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var t Talent
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if t.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if t.Status == "" {
		t.Status = "active"
	}

	if err := h.Repo.Create(&t); err != nil {
		http.Error(w, "could not create talent", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(t)
}

// GET /talents?status=active
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	var talents []Talent
	var err error
	if status != "" {
		talents, err = h.Repo.ListByStatus(status)
	} else {
		talents, err = h.Repo.ListAll()
	}
	if err != nil {
		http.Error(w, "could not list talents", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(talents)
}

// GET /talents/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid talent ID", http.StatusBadRequest)
		return
	}
	t, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "talent not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}

// PUT /talents/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid talent ID", http.StatusBadRequest)
		return
	}
	existing, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "talent not found", http.StatusNotFound)
		return
	}

	var body Talent
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}

	existing.Name = body.Name
	existing.Category = body.Category
	existing.Status = body.Status
	existing.AvatarURL = body.AvatarURL
	existing.InstagramHandle = body.InstagramHandle
	existing.Followers = body.Followers
	existing.TikTokHandle = body.TikTokHandle
	existing.TikTokFollowers = body.TikTokFollowers
	existing.SourceURL = body.SourceURL
	existing.Bio = body.Bio

	if err := h.Repo.Update(existing); err != nil {
		http.Error(w, "could not update talent", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existing)
}

// DELETE /talents/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid talent ID", http.StatusBadRequest)
		return
	}
	t, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "talent not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(t); err != nil {
		http.Error(w, "could not delete talent", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
