package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openbooks/openbooks/internal/adapter/http/dto"
	"github.com/openbooks/openbooks/internal/usecase"
)

// EntryHandler handles ledger entry mutations.
type EntryHandler struct {
	entryUC *usecase.EntryUseCase
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryUC *usecase.EntryUseCase) *EntryHandler {
	return &EntryHandler{entryUC: entryUC}
}

// Create persists a new entry for a customer, along with its tax sibling
// when a tax amount accompanies it.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
		return
	}

	var req dto.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry", err.Error())
		return
	}

	result, err := h.entryUC.CreateEntry(r.Context(), customerID, input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create entry", err.Error())

		return
	}

	resp := dto.CreateEntryResponse{Entry: dto.EntryFromDomain(result.Entry)}
	if result.TaxEntry != nil {
		resp.TaxEntry = dto.EntryFromDomain(result.TaxEntry)
	}

	writeJSON(w, http.StatusCreated, resp)
}

// CreateBulk persists an ordered batch of entries atomically.
func (h *EntryHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
		return
	}

	var req dto.BulkCreateEntriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	inputs, err := req.ToUseCaseInputs()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid batch", err.Error())
		return
	}

	entries, err := h.entryUC.CreateEntriesBulk(r.Context(), customerID, inputs)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create entries", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.EntriesFromDomain(entries))
}

// Get retrieves an entry by ID.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	entry, err := h.entryUC.GetEntry(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get entry", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Update applies a partial, non-amount update to an entry.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	var req dto.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	fields, err := req.ToUseCaseFields()
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "invalid update", err.Error())

		return
	}

	entry, err := h.entryUC.UpdateEntry(r.Context(), id, fields)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update entry", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Delete removes an entry, cascades to its tax sibling and recomputes the
// customer's balances.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	if err := h.entryUC.DeleteEntry(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete entry", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
