package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openbooks/openbooks/internal/adapter/http/dto"
	"github.com/openbooks/openbooks/internal/usecase"
)

// StatementHandler serves customer statement reads.
type StatementHandler struct {
	statementUC *usecase.StatementUseCase
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC *usecase.StatementUseCase) *StatementHandler {
	return &StatementHandler{statementUC: statementUC}
}

// Get builds and returns the merged statement for a customer.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
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

	entries, err := h.statementUC.GetCustomerStatement(r.Context(), usecase.GetStatementInput{
		CustomerID: customerID,
		From:       from,
		To:         to,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build statement", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromDomain(customerID, from, to, entries))
}
