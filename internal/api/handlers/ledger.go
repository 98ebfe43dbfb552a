package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saiyeshwin/housebook-backend/internal/api/httpx"
	"github.com/saiyeshwin/housebook-backend/internal/api/validate"
	"github.com/saiyeshwin/housebook-backend/internal/models"
	"github.com/saiyeshwin/housebook-backend/internal/services"
	"github.com/shopspring/decimal"
)

type LedgerHandler struct {
	Ledger *services.LedgerService
}

func NewLedgerHandler(s *services.LedgerService) *LedgerHandler {
	return &LedgerHandler{Ledger: s}
}

type entryReq struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction"`
}

func (req entryReq) validate() validate.Errs {
	var errs validate.Errs
	for _, ef := range []*validate.ErrField{
		validate.Required("date", req.Date),
		validate.Date("date", req.Date),
		validate.Required("description", req.Description),
		validate.Amount("amount", req.Amount),
		validate.Direction("direction", models.Direction(req.Direction)),
	} {
		if ef != nil {
			errs = append(errs, *ef)
		}
	}
	return errs
}

func (req entryReq) input() services.EntryInput {
	return services.EntryInput{
		Date:        req.Date,
		Description: req.Description,
		Amount:      req.Amount,
		Direction:   models.Direction(req.Direction),
	}
}

// List returns the computed view: lines most-recent-first with closing
// balances, plus the current balance and last-activity recency.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	view, err := h.Ledger.View(r.Context())
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

func (h *LedgerHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEntry(w, r)
	if !ok {
		return
	}
	e, err := h.Ledger.Create(r.Context(), req.input())
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, e)
}

func (h *LedgerHandler) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEntry(w, r)
	if !ok {
		return
	}
	e, err := h.Ledger.Update(r.Context(), chi.URLParam(r, "id"), req.input())
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, e)
}

func (h *LedgerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Ledger.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "transaction deleted"})
}

func decodeEntry(w http.ResponseWriter, r *http.Request) (entryReq, bool) {
	var req entryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return entryReq{}, false
	}
	if errs := req.validate(); len(errs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", errs.Error(), errs)
		return entryReq{}, false
	}
	return req, true
}
