package handlers

import (
	"encoding/json"
	"net/http"

	"demobank/models"
)

type loginData struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// Login signs in and creates a fresh session
// @Summary      Sign in
// @Description  Accepts any plausible email and password, creates a fresh session seeded with demo data, and returns its bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      models.LoginInput  true  "Sign-in form"
// @Success      200  {object}  Response{data=loginData}
// @Failure      400  {object}  Response{error=string}
// @Router       /login [post]
func Login(w http.ResponseWriter, r *http.Request) {
	var input models.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	s, err := Sessions.Login(input.Name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, loginData{Token: s.Token, Name: s.Name})
}

// Logout ends the session
// @Summary      Sign out
// @Description  Tears down the session; every balance, transaction, and schedule it accumulated is discarded.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  Response{data=string}
// @Failure      401  {object}  Response{error=string}
// @Router       /logout [post]
// @Security     BearerAuth
func Logout(w http.ResponseWriter, r *http.Request) {
	if err := Sessions.Logout(session(r).Token); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "signed out")
}
