package handlers

import (
	"encoding/json"
	"net/http"

	"demobank/models"
)

type adviceData struct {
	Reply string `json:"reply"`
}

// GetAdvice asks the financial assistant a question
// @Summary      Ask for advice
// @Description  Ask a free-text question. The assistant sees the ten most recent transactions and the checking balance. If the upstream AI service is not configured or unreachable, a fixed fallback message is returned instead of an error.
// @Tags         advice
// @Accept       json
// @Produce      json
// @Param        question  body      models.AdviceInput  true  "Question"
// @Success      200  {object}  Response{data=adviceData}
// @Failure      400  {object}  Response{error=string}
// @Router       /advice [post]
// @Security     BearerAuth
func GetAdvice(w http.ResponseWriter, r *http.Request) {
	var input models.AdviceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	s := session(r)
	txns, err := s.Transactions(models.TransactionFilter{Limit: 10})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	reply := Advice.Advise(r.Context(), input.Query, txns, s.Ledger().Checking)
	writeJSON(w, http.StatusOK, adviceData{Reply: reply})
}
