// internal/quote/handler.go
package quote

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rosterhq/api-agency/internal/auth"
	"github.com/rosterhq/api-agency/internal/deliverable"
	"github.com/rosterhq/api-agency/internal/pricing"
	"github.com/rosterhq/api-agency/internal/rate"
	"github.com/rosterhq/api-agency/internal/talent"
)

// Handler wires the pure pricing core to storage: every create/preview loads
// a fresh reference-data snapshot, runs the computation, and (for create)
// persists the result atomically.
type Handler struct {
	Repo         *Repository
	Rates        *rate.Repository
	Deliverables *deliverable.Repository
	Talents      *talent.Repository
}

func NewHandler(repo *Repository, rates *rate.Repository, deliverables *deliverable.Repository, talents *talent.Repository) *Handler {
	return &Handler{Repo: repo, Rates: rates, Deliverables: deliverables, Talents: talents}
}

func (h *Handler) snapshot() (*pricing.Composer, []pricing.Rule, error) {
	book, err := h.Rates.LoadBook()
	if err != nil {
		return nil, nil, err
	}
	index, err := h.Deliverables.Index()
	if err != nil {
		return nil, nil, err
	}
	names, err := h.Talents.NameIndex()
	if err != nil {
		return nil, nil, err
	}
	rules, err := h.Deliverables.ActivePricingRules()
	if err != nil {
		return nil, nil, err
	}
	return pricing.NewComposer(book, index, names), rules, nil
}

func (h *Handler) build(w http.ResponseWriter, r *http.Request) (*CreateQuoteDTO, *pricing.QuoteResult, bool) {
	var dto CreateQuoteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return nil, nil, false
	}

	composer, rules, err := h.snapshot()
	if err != nil {
		http.Error(w, "could not load reference data", http.StatusInternalServerError)
		return nil, nil, false
	}

	result, err := composer.BuildQuote(dto.Selections, dto.Addons, dto.Custom, rules, dto.Settings)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}
	return &dto, &result, true
}

// POST /quotes/preview
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	_, result, ok := h.build(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PreviewResponse{
		Items:        result.Items,
		Groups:       pricing.GroupByTalent(result.Items),
		Totals:       result.Totals,
		ManualAddons: result.ManualAddons,
	})
}

// POST /quotes
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	dto, result, ok := h.build(w, r)
	if !ok {
		return
	}
	if dto.CampaignName == "" {
		http.Error(w, "campaign name is required", http.StatusBadRequest)
		return
	}
	if dto.ClientID == 0 {
		http.Error(w, "client is required", http.StatusBadRequest)
		return
	}
	if len(result.Items) == 0 {
		http.Error(w, "a quote needs at least one line item", http.StatusBadRequest)
		return
	}

	userID, _ := auth.UserID(r.Context())
	q := Quote{
		ClientID:              dto.ClientID,
		CampaignName:          dto.CampaignName,
		Status:                StatusDraft,
		CreatedByID:           userID,
		CommissionRatePercent: dto.Settings.CommissionRatePercent,
		ASFRatePercent:        dto.Settings.ASFRatePercent,
		ASFEnabled:            dto.Settings.ASFEnabled,
		TalentFees:            result.Totals.TalentFees,
		Commissions:           result.Totals.Commissions,
		ASFTotal:              result.Totals.ASFTotal,
		Total:                 result.Totals.Total,
	}

	items := make([]LineItem, 0, len(result.Items))
	for _, li := range result.Items {
		items = append(items, fromPricing(0, li))
	}

	if err := h.Repo.CreateWithItems(&q, items); err != nil {
		http.Error(w, "could not save quote", http.StatusInternalServerError)
		return
	}

	saved, err := h.Repo.FindByID(q.ID)
	if err != nil {
		http.Error(w, "could not load quote", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saved)
}

// GET /quotes?clientId=1&status=draft
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var quotes []Quote
	var err error
	switch {
	case r.URL.Query().Get("clientId") != "":
		var cid int
		cid, err = strconv.Atoi(r.URL.Query().Get("clientId"))
		if err != nil {
			http.Error(w, "invalid client ID", http.StatusBadRequest)
			return
		}
		quotes, err = h.Repo.ListByClient(uint(cid))
	case r.URL.Query().Get("status") != "":
		quotes, err = h.Repo.ListByStatus(r.URL.Query().Get("status"))
	default:
		quotes, err = h.Repo.ListAll()
	}
	if err != nil {
		http.Error(w, "could not list quotes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quotes)
}

// GET /quotes/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid quote ID", http.StatusBadRequest)
		return
	}
	q, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "quote not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(q)
}

// PATCH /quotes/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid quote ID", http.StatusBadRequest)
		return
	}
	var dto statusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if !ValidStatus(dto.Status) {
		http.Error(w, "unknown status", http.StatusBadRequest)
		return
	}
	if _, err := h.Repo.FindByID(uint(id)); err != nil {
		http.Error(w, "quote not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.UpdateStatus(uint(id), dto.Status); err != nil {
		http.Error(w, "could not update quote status", http.StatusInternalServerError)
		return
	}
	q, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "quote not found after update", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(q)
}

// DELETE /quotes/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid quote ID", http.StatusBadRequest)
		return
	}
	q, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "quote not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(q); err != nil {
		http.Error(w, "could not delete quote", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /quotes/{id}/revisions
func (h *Handler) CreateRevision(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid quote ID", http.StatusBadRequest)
		return
	}
	if _, err := h.Repo.FindByID(uint(id)); err != nil {
		http.Error(w, "quote not found", http.StatusNotFound)
		return
	}

	var dto revisionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.Note == "" {
		http.Error(w, "note is required", http.StatusBadRequest)
		return
	}

	userID, _ := auth.UserID(r.Context())
	rev := Revision{QuoteID: uint(id), AuthorID: userID, Note: dto.Note}
	if err := h.Repo.CreateRevision(&rev); err != nil {
		http.Error(w, "could not save revision", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rev)
}

// GET /quotes/{id}/revisions
func (h *Handler) ListRevisions(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid quote ID", http.StatusBadRequest)
		return
	}
	revs, err := h.Repo.ListRevisions(uint(id))
	if err != nil {
		http.Error(w, "could not list revisions", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(revs)
}
