package handlers

import (
	"net/http"

	"github.com/gartstein/organisations/internal/organisations/models"
)

func (h *Handler) syncGetOrganisation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationId")
	if !ok {
		return
	}
	org, err := h.syncOrgs.GetOrganisation(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, org)
}

func (h *Handler) syncCreateOrganisation(w http.ResponseWriter, r *http.Request) {
	var req models.SyncCreateOrganisationRequest
	if !h.decode(w, r, &req) {
		return
	}
	org, err := h.syncOrgs.CreateOrganisation(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, org)
}

func (h *Handler) syncUpdateOrganisation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationId")
	if !ok {
		return
	}
	var req models.SyncUpdateOrganisationRequest
	if !h.decode(w, r, &req) {
		return
	}
	org, err := h.syncOrgs.UpdateOrganisation(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, org)
}

func (h *Handler) syncDeleteOrganisation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationId")
	if !ok {
		return
	}
	org, err := h.syncOrgs.DeleteOrganisation(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, org)
}

func (h *Handler) syncGetAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationAddressId")
	if !ok {
		return
	}
	address, err := h.syncAddresses.GetAddress(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, address)
}

func (h *Handler) syncCreateAddress(w http.ResponseWriter, r *http.Request) {
	var req models.SyncCreateAddressRequest
	if !h.decode(w, r, &req) {
		return
	}
	address, err := h.syncAddresses.CreateAddress(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, address)
}

func (h *Handler) syncUpdateAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationAddressId")
	if !ok {
		return
	}
	var req models.SyncUpdateAddressRequest
	if !h.decode(w, r, &req) {
		return
	}
	address, err := h.syncAddresses.UpdateAddress(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, address)
}

func (h *Handler) syncDeleteAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationAddressId")
	if !ok {
		return
	}
	address, err := h.syncAddresses.DeleteAddress(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, address)
}

func (h *Handler) syncGetPhone(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationPhoneId")
	if !ok {
		return
	}
	phone, err := h.syncPhones.GetPhone(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, phone)
}

func (h *Handler) syncCreatePhone(w http.ResponseWriter, r *http.Request) {
	var req models.SyncCreatePhoneRequest
	if !h.decode(w, r, &req) {
		return
	}
	phone, err := h.syncPhones.CreatePhone(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, phone)
}

func (h *Handler) syncUpdatePhone(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationPhoneId")
	if !ok {
		return
	}
	var req models.SyncUpdatePhoneRequest
	if !h.decode(w, r, &req) {
		return
	}
	phone, err := h.syncPhones.UpdatePhone(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, phone)
}

func (h *Handler) syncDeletePhone(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationPhoneId")
	if !ok {
		return
	}
	phone, err := h.syncPhones.DeletePhone(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, phone)
}

func (h *Handler) syncGetEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationEmailId")
	if !ok {
		return
	}
	email, err := h.syncEmails.GetEmail(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, email)
}

func (h *Handler) syncCreateEmail(w http.ResponseWriter, r *http.Request) {
	var req models.SyncCreateEmailRequest
	if !h.decode(w, r, &req) {
		return
	}
	email, err := h.syncEmails.CreateEmail(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, email)
}

func (h *Handler) syncUpdateEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationEmailId")
	if !ok {
		return
	}
	var req models.SyncUpdateEmailRequest
	if !h.decode(w, r, &req) {
		return
	}
	email, err := h.syncEmails.UpdateEmail(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, email)
}

func (h *Handler) syncDeleteEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationEmailId")
	if !ok {
		return
	}
	email, err := h.syncEmails.DeleteEmail(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, email)
}

func (h *Handler) syncGetWeb(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationWebAddressId")
	if !ok {
		return
	}
	web, err := h.syncWebs.GetWebAddress(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, web)
}

func (h *Handler) syncCreateWeb(w http.ResponseWriter, r *http.Request) {
	var req models.SyncCreateWebRequest
	if !h.decode(w, r, &req) {
		return
	}
	web, err := h.syncWebs.CreateWebAddress(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, web)
}

func (h *Handler) syncUpdateWeb(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationWebAddressId")
	if !ok {
		return
	}
	var req models.SyncUpdateWebRequest
	if !h.decode(w, r, &req) {
		return
	}
	web, err := h.syncWebs.UpdateWebAddress(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, web)
}

func (h *Handler) syncDeleteWeb(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationWebAddressId")
	if !ok {
		return
	}
	web, err := h.syncWebs.DeleteWebAddress(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, web)
}

func (h *Handler) syncGetTypes(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationId")
	if !ok {
		return
	}
	types, err := h.syncTypes.GetTypes(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, types)
}

func (h *Handler) syncUpdateTypes(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationId")
	if !ok {
		return
	}
	var req models.SyncUpdateTypesRequest
	if !h.decode(w, r, &req) {
		return
	}
	types, err := h.syncTypes.UpdateTypes(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, types)
}

func (h *Handler) syncGetAddressPhone(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationAddressPhoneId")
	if !ok {
		return
	}
	link, err := h.syncLinks.GetAddressPhone(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, link)
}

func (h *Handler) syncCreateAddressPhone(w http.ResponseWriter, r *http.Request) {
	var req models.SyncCreateAddressPhoneRequest
	if !h.decode(w, r, &req) {
		return
	}
	link, err := h.syncLinks.CreateAddressPhone(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, link)
}

func (h *Handler) syncUpdateAddressPhone(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationAddressPhoneId")
	if !ok {
		return
	}
	var req models.SyncUpdateAddressPhoneRequest
	if !h.decode(w, r, &req) {
		return
	}
	link, err := h.syncLinks.UpdateAddressPhone(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, link)
}

func (h *Handler) syncDeleteAddressPhone(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "organisationAddressPhoneId")
	if !ok {
		return
	}
	link, err := h.syncLinks.DeleteAddressPhone(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, link)
}
