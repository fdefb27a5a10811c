package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	var req models.EntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.createEntry", err)
		return
	}

	entry, err := h.services.VaultService.Create(r.Context(), req.Ciphertext)
	if err != nil {
		writeError(w, r, "*Handler.createEntry", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.EntryCreatedResponse{ID: entry.ID}, http.StatusCreated)
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		writeError(w, r, "*Handler.listEntries", err)
		return
	}

	entries, err := h.services.VaultService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, "*Handler.listEntries", err)
		return
	}

	resp := make([]models.EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, models.EntryResponse{ID: e.ID, Ciphertext: e.Ciphertext, CreatedAt: e.CreatedAt})
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	var req models.EntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.updateEntry", err)
		return
	}

	if _, err := h.services.VaultService.Update(r.Context(), chi.URLParam(r, "id"), req.Ciphertext); err != nil {
		writeError(w, r, "*Handler.updateEntry", err)
		return
	}

	_, _ = utils.WriteJSON(w, struct{}{}, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.services.VaultService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteEntry", err)
		return
	}

	_, _ = utils.WriteJSON(w, struct{}{}, http.StatusOK)
}

// parseListFilter reads order, after, before and limit. Times are RFC 3339.
func parseListFilter(r *http.Request) (models.ListFilter, error) {
	q := r.URL.Query()
	var filter models.ListFilter

	switch order := models.ListOrder(q.Get("order")); order {
	case "", models.ListNewestFirst, models.ListOldestFirst:
		filter.Order = order
	default:
		return filter, fmt.Errorf("%w: order must be newest or oldest", ErrInvalidQuery)
	}

	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{"after", &filter.CreatedAfter},
		{"before", &filter.CreatedBefore},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return filter, fmt.Errorf("%w: %s must be an RFC 3339 time", ErrInvalidQuery, p.name)
		}
		*p.dst = &ts
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: limit must be a non-negative integer", ErrInvalidQuery)
		}
		filter.Limit = limit
	}

	return filter, nil
}
