package handlers

import (
	"encoding/json"
	"net/http"

	"demobank/models"
)

// PreviewTransfer runs the review step
// @Summary      Preview transfer
// @Description  Validate a transfer or bill-pay submission and return the review summary. No state changes.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        transfer  body      models.TransferInput  true  "Transfer submission"
// @Success      200  {object}  Response{data=models.TransferPreview}
// @Failure      400  {object}  Response{error=string}
// @Failure      422  {object}  Response{error=string}
// @Router       /transfers/preview [post]
// @Security     BearerAuth
func PreviewTransfer(w http.ResponseWriter, r *http.Request) {
	var input models.TransferInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	preview, err := session(r).PreviewTransfer(input)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

// CreateTransfer confirms and commits a transfer
// @Summary      Execute transfer
// @Description  Validate, wait the simulated processing delay, and commit. Recurring submissions only record a schedule entry; nothing moves until some future execution that never happens here. Closing the connection before the delay elapses aborts with no effects.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        transfer  body      models.TransferInput  true  "Transfer submission"
// @Success      201  {object}  Response{data=models.TransferResult}
// @Failure      400  {object}  Response{error=string}
// @Failure      422  {object}  Response{error=string}
// @Router       /transfers [post]
// @Security     BearerAuth
func CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var input models.TransferInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	result, err := session(r).ExecuteTransfer(r.Context(), input)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// GetLimits retrieves the transfer limits
// @Summary      Get limits
// @Description  Get the per-transaction limit, daily limit, and today's sent total.
// @Tags         transfers
// @Produce      json
// @Success      200  {object}  Response{data=models.Limits}
// @Router       /limits [get]
// @Security     BearerAuth
func GetLimits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, session(r).Limits())
}

// UpdateLimits replaces the transfer limits
// @Summary      Update limits
// @Description  Replace both limits. A per-transaction limit above the daily limit is rejected and neither changes.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        limits  body      models.LimitsInput  true  "New limits"
// @Success      200  {object}  Response{data=models.Limits}
// @Failure      400  {object}  Response{error=string}
// @Router       /limits [put]
// @Security     BearerAuth
func UpdateLimits(w http.ResponseWriter, r *http.Request) {
	var input models.LimitsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	limits, err := session(r).UpdateLimits(input.PerTransaction, input.Daily)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, limits)
}
