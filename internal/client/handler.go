// internal/client/handler.go
package client

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

// POST /clients
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var c Client
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if c.CompanyName == "" {
		http.Error(w, "company name is required", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Create(&c); err != nil {
		http.Error(w, "could not create client", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /clients
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "could not list clients", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(clients)
}

// GET /clients/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid client ID", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// PUT /clients/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid client ID", http.StatusBadRequest)
		return
	}
	existing, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}

	var body Client
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}

	existing.CompanyName = body.CompanyName
	existing.ContactName = body.ContactName
	existing.Email = body.Email
	existing.Phone = body.Phone
	existing.Notes = body.Notes

	if err := h.Repo.Update(existing); err != nil {
		http.Error(w, "could not update client", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existing)
}

// DELETE /clients/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid client ID", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(c); err != nil {
		http.Error(w, "could not delete client", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
