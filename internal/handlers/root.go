package handlers

import "net/http"

// NewRootHandler returns the service banner.
// @Summary Service banner
// @Tags meta
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Espresso Tracker API"})
	}
}
