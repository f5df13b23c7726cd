// internal/rate/handler.go
package rate

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

func pairFromVars(r *http.Request) (uint, uint, bool) {
	tid, err1 := strconv.Atoi(mux.Vars(r)["id"])
	did, err2 := strconv.Atoi(mux.Vars(r)["deliverableID"])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return uint(tid), uint(did), true
}

// PUT /talents/{id}/rates/{deliverableID}
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	talentID, deliverableID, ok := pairFromVars(r)
	if !ok {
		http.Error(w, "invalid IDs", http.StatusBadRequest)
		return
	}

	var body struct {
		BaseRate int64 `json:"baseRate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if body.BaseRate < 0 {
		http.Error(w, "base rate must be zero or positive", http.StatusBadRequest)
		return
	}

	rate := Rate{TalentID: talentID, DeliverableID: deliverableID, BaseRate: body.BaseRate}
	if err := h.Repo.Upsert(&rate); err != nil {
		http.Error(w, "could not save rate", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rate)
}

// GET /talents/{id}/rates
func (h *Handler) ListByTalent(w http.ResponseWriter, r *http.Request) {
	tid, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid talent ID", http.StatusBadRequest)
		return
	}
	rates, err := h.Repo.ListByTalent(uint(tid))
	if err != nil {
		http.Error(w, "could not list rates", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rates)
}

// DELETE /talents/{id}/rates/{deliverableID}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	talentID, deliverableID, ok := pairFromVars(r)
	if !ok {
		http.Error(w, "invalid IDs", http.StatusBadRequest)
		return
	}
	rate, err := h.Repo.FindByPair(talentID, deliverableID)
	if err != nil {
		http.Error(w, "rate not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(rate); err != nil {
		http.Error(w, "could not delete rate", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
