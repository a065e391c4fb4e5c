package handlers

import (
	"net/http"
	"strconv"

	"github.com/gartstein/organisations/internal/organisations/models"
)

func (h *Handler) getOrganisationDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationId")
	if !ok {
		return
	}
	details, err := h.organisations.GetOrganisationDetails(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, details)
}

func (h *Handler) getOrganisationSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationId")
	if !ok {
		return
	}
	summary, err := h.organisations.GetOrganisationSummary(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) searchOrganisations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	size, _ := strconv.Atoi(query.Get("size"))
	sortField, sortDir := parseSort(query.Get("sort"))

	result, err := h.organisations.SearchOrganisations(r.Context(), query.Get("name"), page, size, sortField, sortDir)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) createOrganisation(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrganisationRequest
	if !h.decode(w, r, &req) {
		return
	}
	details, err := h.organisations.CreateOrganisation(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, details)
}

func (h *Handler) migrateOrganisation(w http.ResponseWriter, r *http.Request) {
	var req models.MigrateOrganisationRequest
	if !h.decode(w, r, &req) {
		return
	}
	response, err := h.migration.MigrateOrganisation(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, response)
}
