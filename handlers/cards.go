package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListCards lists the customer's cards
// @Summary      List cards
// @Description  Get every card with full details including lock status.
// @Tags         cards
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Card}
// @Router       /cards [get]
// @Security     BearerAuth
func ListCards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, session(r).Cards())
}

// ToggleCardLock flips a card between Active and Frozen
// @Summary      Toggle card lock
// @Description  Freeze an active card or unfreeze a frozen one. Frozen cards are skipped by simulated purchases.
// @Tags         cards
// @Produce      json
// @Param        id   path      string  true  "Card ID"
// @Success      200  {object}  Response{data=models.Card}
// @Failure      404  {object}  Response{error=string}
// @Router       /cards/{id}/lock [post]
// @Security     BearerAuth
func ToggleCardLock(w http.ResponseWriter, r *http.Request) {
	card, err := session(r).ToggleCardLock(chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}
