package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"demobank/bank"
	"demobank/models"
)

// ListAccounts lists every account
// @Summary      List accounts
// @Description  Get checking, savings, cards, and loans as a tagged union.
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Account}
// @Router       /accounts [get]
// @Security     BearerAuth
func ListAccounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, session(r).Accounts())
}

// GetAccount retrieves a single account by ID
// @Summary      Get account
// @Description  Get one account of any kind by its ID.
// @Tags         accounts
// @Produce      json
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  Response{data=models.Account}
// @Failure      404  {object}  Response{error=string}
// @Router       /accounts/{id} [get]
// @Security     BearerAuth
func GetAccount(w http.ResponseWriter, r *http.Request) {
	a, err := session(r).Account(chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// GetAccountTransactions lists one account's transactions
// @Summary      List account transactions
// @Description  Get the transaction log filtered to a single account, newest first.
// @Tags         accounts
// @Produce      json
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  Response{data=[]models.Transaction}
// @Failure      404  {object}  Response{error=string}
// @Router       /accounts/{id}/transactions [get]
// @Security     BearerAuth
func GetAccountTransactions(w http.ResponseWriter, r *http.Request) {
	s := session(r)
	id := chi.URLParam(r, "id")
	if _, err := s.Account(id); err != nil {
		writeEngineError(w, err)
		return
	}
	txns, err := s.Transactions(models.TransactionFilter{AccountID: id})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, txns)
}

// ListProducts lists the new-account catalog
// @Summary      List products
// @Description  Get the fixed catalog of account products available to open.
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Product}
// @Router       /products [get]
// @Security     BearerAuth
func ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, bank.Products)
}

// OpenAccount applies for a new account
// @Summary      Open account
// @Description  Apply for a product from the catalog. A positive initial deposit must meet the product minimum and is funded from checking.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        application  body      models.OpenAccountInput  true  "Application"
// @Success      201  {object}  Response{data=models.Transaction}
// @Failure      400  {object}  Response{error=string}
// @Failure      404  {object}  Response{error=string}
// @Router       /accounts/open [post]
// @Security     BearerAuth
func OpenAccount(w http.ResponseWriter, r *http.Request) {
	var input models.OpenAccountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	txn, err := session(r).OpenAccount(input)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, txn)
}
