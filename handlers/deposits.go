package handlers

import (
	"encoding/json"
	"net/http"

	"demobank/models"
)

// CreateDeposit submits a mobile check deposit
// @Summary      Deposit check
// @Description  Credit checking with a mobile check deposit. Deposits are exempt from transfer limits.
// @Tags         deposits
// @Accept       json
// @Produce      json
// @Param        deposit  body      models.DepositInput  true  "Deposit submission"
// @Success      201  {object}  Response{data=models.Transaction}
// @Failure      400  {object}  Response{error=string}
// @Router       /deposits [post]
// @Security     BearerAuth
func CreateDeposit(w http.ResponseWriter, r *http.Request) {
	var input models.DepositInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	txn, err := session(r).Deposit(input)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, txn)
}
