package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListRecurring lists scheduled recurring payments
// @Summary      List recurring payments
// @Description  Get the schedule of record in insertion order.
// @Tags         recurring
// @Produce      json
// @Success      200  {object}  Response{data=[]models.RecurringPayment}
// @Router       /recurring [get]
// @Security     BearerAuth
func ListRecurring(w http.ResponseWriter, r *http.Request) {
	payments, err := session(r).RecurringPayments()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

// CancelRecurring removes one scheduled payment
// @Summary      Cancel recurring payment
// @Description  Remove exactly one schedule entry. The rest of the schedule is untouched.
// @Tags         recurring
// @Produce      json
// @Param        id   path      string  true  "Recurring payment ID"
// @Success      200  {object}  Response{data=string}
// @Failure      404  {object}  Response{error=string}
// @Router       /recurring/{id} [delete]
// @Security     BearerAuth
func CancelRecurring(w http.ResponseWriter, r *http.Request) {
	if err := session(r).CancelRecurring(chi.URLParam(r, "id")); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "cancelled")
}
