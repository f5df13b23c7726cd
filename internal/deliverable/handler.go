// internal/deliverable/handler.go
package deliverable

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rosterhq/api-agency/internal/pricing"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func validMultiplier(m *float64) bool {
	return m == nil || (*m >= 0 && *m <= 1)
}

// POST /deliverables
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var d Deliverable
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if d.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if !pricing.ValidCategory(pricing.Category(d.Category)) {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}
	if !validMultiplier(d.DefaultMultiplier) {
		http.Error(w, "default multiplier must be between 0 and 1", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Create(&d); err != nil {
		http.Error(w, "could not create deliverable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(d)
}

// GET /deliverables
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "could not list deliverables", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GET /deliverables/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid deliverable ID", http.StatusBadRequest)
		return
	}
	d, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "deliverable not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

// PUT /deliverables/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid deliverable ID", http.StatusBadRequest)
		return
	}
	existing, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "deliverable not found", http.StatusNotFound)
		return
	}

	var body Deliverable
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if !pricing.ValidCategory(pricing.Category(body.Category)) {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}
	if !validMultiplier(body.DefaultMultiplier) {
		http.Error(w, "default multiplier must be between 0 and 1", http.StatusBadRequest)
		return
	}

	existing.Name = body.Name
	existing.Category = body.Category
	existing.IsAddon = body.IsAddon
	existing.DefaultMultiplier = body.DefaultMultiplier
	existing.DisplayOrder = body.DisplayOrder

	if err := h.Repo.Update(existing); err != nil {
		http.Error(w, "could not update deliverable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existing)
}

// DELETE /deliverables/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid deliverable ID", http.StatusBadRequest)
		return
	}
	d, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "deliverable not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(d); err != nil {
		http.Error(w, "could not delete deliverable", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /addon-rules
func (h *Handler) CreateRule(w http.ResponseWriter, r *http.Request) {
	var rule AddonRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if rule.BaseDeliverableID == 0 || rule.AddonDeliverableID == 0 {
		http.Error(w, "base and addon deliverables are required", http.StatusBadRequest)
		return
	}
	if !validMultiplier(rule.Multiplier) {
		http.Error(w, "multiplier must be between 0 and 1", http.StatusBadRequest)
		return
	}
	if _, err := h.Repo.FindByID(rule.BaseDeliverableID); err != nil {
		http.Error(w, "base deliverable not found", http.StatusBadRequest)
		return
	}
	addon, err := h.Repo.FindByID(rule.AddonDeliverableID)
	if err != nil {
		http.Error(w, "addon deliverable not found", http.StatusBadRequest)
		return
	}
	// seed the multiplier from the addon's default when the rule omits it
	if rule.Multiplier == nil && addon.DefaultMultiplier != nil {
		rule.Multiplier = addon.DefaultMultiplier
	}

	if err := h.Repo.CreateRule(&rule); err != nil {
		http.Error(w, "could not create addon rule", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rule)
}

// GET /addon-rules?active=true
func (h *Handler) ListRules(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	rules, err := h.Repo.ListRules(activeOnly)
	if err != nil {
		http.Error(w, "could not list addon rules", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rules)
}

// PUT /addon-rules/{id}
func (h *Handler) UpdateRule(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid rule ID", http.StatusBadRequest)
		return
	}
	existing, err := h.Repo.FindRuleByID(uint(id))
	if err != nil {
		http.Error(w, "addon rule not found", http.StatusNotFound)
		return
	}

	var body AddonRule
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if !validMultiplier(body.Multiplier) {
		http.Error(w, "multiplier must be between 0 and 1", http.StatusBadRequest)
		return
	}

	existing.Multiplier = body.Multiplier
	existing.IsActive = body.IsActive

	if err := h.Repo.UpdateRule(existing); err != nil {
		http.Error(w, "could not update addon rule", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existing)
}

// DELETE /addon-rules/{id}
func (h *Handler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid rule ID", http.StatusBadRequest)
		return
	}
	rule, err := h.Repo.FindRuleByID(uint(id))
	if err != nil {
		http.Error(w, "addon rule not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.DeleteRule(rule); err != nil {
		http.Error(w, "could not delete addon rule", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
