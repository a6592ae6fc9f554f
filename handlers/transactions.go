package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"demobank/models"
)

// ListTransactions lists the transaction log
// @Summary      List transactions
// @Description  Get the transaction log, newest first, optionally filtered.
// @Tags         transactions
// @Produce      json
// @Param        type        query  string  false  "credit or debit"
// @Param        category    query  string  false  "Exact category"
// @Param        account_id  query  string  false  "Account ID"
// @Param        from        query  string  false  "Start date (YYYY-MM-DD)"
// @Param        to          query  string  false  "End date (YYYY-MM-DD)"
// @Param        search      query  string  false  "Search in description"
// @Param        limit       query  int     false  "Max results"
// @Success      200  {object}  Response{data=[]models.Transaction}
// @Router       /transactions [get]
// @Security     BearerAuth
func ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	txns, err := session(r).Transactions(models.TransactionFilter{
		Type:      q.Get("type"),
		Category:  q.Get("category"),
		AccountID: q.Get("account_id"),
		From:      q.Get("from"),
		To:        q.Get("to"),
		Search:    q.Get("search"),
		Limit:     limit,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, txns)
}

// GetTransaction retrieves a single transaction by ID
// @Summary      Get transaction
// @Description  Get one transaction log entry.
// @Tags         transactions
// @Produce      json
// @Param        id   path      string  true  "Transaction ID"
// @Success      200  {object}  Response{data=models.Transaction}
// @Failure      404  {object}  Response{error=string}
// @Router       /transactions/{id} [get]
// @Security     BearerAuth
func GetTransaction(w http.ResponseWriter, r *http.Request) {
	txn, err := session(r).Transaction(chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txn)
}
