package handlers

import "net/http"

// ListLoans lists the customer's loans
// @Summary      List loans
// @Description  Get every loan with balance, rate, and next payment.
// @Tags         loans
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Loan}
// @Router       /loans [get]
// @Security     BearerAuth
func ListLoans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, session(r).Loans())
}
