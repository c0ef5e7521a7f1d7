package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/openbooks/openbooks/internal/adapter/http/dto"
	"github.com/openbooks/openbooks/internal/infrastructure/metrics"
	"github.com/openbooks/openbooks/internal/usecase"
)

// InvoiceHandler handles the invoice and PO-invoice source projections.
type InvoiceHandler struct {
	invoices   usecase.InvoiceSource
	poInvoices usecase.POInvoiceSource
	idGen      usecase.IDGenerator
	metrics    *metrics.Metrics
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoices usecase.InvoiceSource, poInvoices usecase.POInvoiceSource, idGen usecase.IDGenerator) *InvoiceHandler {
	return &InvoiceHandler{
		invoices:   invoices,
		poInvoices: poInvoices,
		idGen:      idGen,
	}
}

// WithMetrics attaches Prometheus metrics. Returns the handler for
// chaining.
func (h *InvoiceHandler) WithMetrics(m *metrics.Metrics) *InvoiceHandler {
	h.metrics = m
	return h
}

// Create records a sales invoice.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	invoice, err := req.ToDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid invoice", err.Error())
		return
	}

	invoice.ID = h.idGen.Generate()
	invoice.CreatedAt = time.Now().UTC()

	if err := h.invoices.Create(r.Context(), invoice); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create invoice", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.InvoicesCreated.Inc()
	}

	writeJSON(w, http.StatusCreated, dto.InvoiceFromDomain(invoice))
}

// Get retrieves an invoice by ID.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing invoice ID", "")
		return
	}

	invoice, err := h.invoices.GetByID(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get invoice", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceFromDomain(invoice))
}

// ListByCustomer lists a customer's invoices.
func (h *InvoiceHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("customer_id")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing customer_id", "")
		return
	}

	from, err := parseDateQuery(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date", err.Error())
		return
	}

	to, err := parseDateQuery(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date", err.Error())
		return
	}

	invoices, err := h.invoices.ListByCustomer(r.Context(), customerID, from, to)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list invoices", err.Error())

		return
	}

	result := make([]*dto.InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		result[i] = dto.InvoiceFromDomain(inv)
	}

	writeJSON(w, http.StatusOK, result)
}

// CreatePO records a purchase-order invoice.
func (h *InvoiceHandler) CreatePO(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePOInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	invoice, err := req.ToDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid PO invoice", err.Error())
		return
	}

	invoice.ID = h.idGen.Generate()
	invoice.CreatedAt = time.Now().UTC()

	if err := h.poInvoices.Create(r.Context(), invoice); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create PO invoice", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.POInvoicesCreated.Inc()
	}

	writeJSON(w, http.StatusCreated, dto.POInvoiceFromDomain(invoice))
}

// GetPO retrieves a PO invoice by ID.
func (h *InvoiceHandler) GetPO(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing PO invoice ID", "")
		return
	}

	invoice, err := h.poInvoices.GetByID(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get PO invoice", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.POInvoiceFromDomain(invoice))
}

// ListPOByCustomer lists a customer's PO invoices.
func (h *InvoiceHandler) ListPOByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("customer_id")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing customer_id", "")
		return
	}

	from, err := parseDateQuery(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date", err.Error())
		return
	}

	to, err := parseDateQuery(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date", err.Error())
		return
	}

	invoices, err := h.poInvoices.ListByCustomer(r.Context(), customerID, from, to)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list PO invoices", err.Error())

		return
	}

	result := make([]*dto.POInvoiceResponse, len(invoices))
	for i, inv := range invoices {
		result[i] = dto.POInvoiceFromDomain(inv)
	}

	writeJSON(w, http.StatusOK, result)
}
