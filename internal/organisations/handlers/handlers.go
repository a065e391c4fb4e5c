// Package handlers provides the HTTP surface for the organisations service:
// a chi router bridging the transport layer to the business services and
// translating domain errors to status codes.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gartstein/organisations/internal/organisations/auth"
	"github.com/gartstein/organisations/internal/organisations/controller"
	e "github.com/gartstein/organisations/internal/organisations/errors"
	"github.com/gartstein/organisations/internal/organisations/migration"
	"github.com/gartstein/organisations/internal/organisations/sync"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handler holds the business services behind the HTTP routes.
type Handler struct {
	organisations *controller.OrganisationService
	syncOrgs      *sync.OrganisationService
	syncAddresses *sync.AddressService
	syncPhones    *sync.PhoneService
	syncEmails    *sync.EmailService
	syncWebs      *sync.WebService
	syncTypes     *sync.TypesService
	syncLinks     *sync.AddressPhoneService
	migration     *migration.Service
	logger        *zap.Logger
}

func New(
	organisations *controller.OrganisationService,
	syncOrgs *sync.OrganisationService,
	syncAddresses *sync.AddressService,
	syncPhones *sync.PhoneService,
	syncEmails *sync.EmailService,
	syncWebs *sync.WebService,
	syncTypes *sync.TypesService,
	syncLinks *sync.AddressPhoneService,
	migrationSvc *migration.Service,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		organisations: organisations,
		syncOrgs:      syncOrgs,
		syncAddresses: syncAddresses,
		syncPhones:    syncPhones,
		syncEmails:    syncEmails,
		syncWebs:      syncWebs,
		syncTypes:     syncTypes,
		syncLinks:     syncLinks,
		migration:     migrationSvc,
		logger:        logger.Named("http_handler"),
	}
}

// Router assembles all routes, wrapped with the bearer-token middleware.
func (h *Handler) Router(jwtSecret string) http.Handler {
	r := chi.NewRouter()

	r.Get("/organisation/search", h.searchOrganisations)
	r.Get("/organisation/{organisationId}", h.getOrganisationDetails)
	r.Get("/organisation/{organisationId}/summary", h.getOrganisationSummary)
	r.Post("/organisation", h.createOrganisation)

	r.Route("/sync", func(r chi.Router) {
		r.Get("/organisation/{organisationId}", h.syncGetOrganisation)
		r.Post("/organisation", h.syncCreateOrganisation)
		r.Put("/organisation/{organisationId}", h.syncUpdateOrganisation)
		r.Delete("/organisation/{organisationId}", h.syncDeleteOrganisation)

		r.Get("/organisation-address/{organisationAddressId}", h.syncGetAddress)
		r.Post("/organisation-address", h.syncCreateAddress)
		r.Put("/organisation-address/{organisationAddressId}", h.syncUpdateAddress)
		r.Delete("/organisation-address/{organisationAddressId}", h.syncDeleteAddress)

		r.Get("/organisation-phone/{organisationPhoneId}", h.syncGetPhone)
		r.Post("/organisation-phone", h.syncCreatePhone)
		r.Put("/organisation-phone/{organisationPhoneId}", h.syncUpdatePhone)
		r.Delete("/organisation-phone/{organisationPhoneId}", h.syncDeletePhone)

		r.Get("/organisation-email/{organisationEmailId}", h.syncGetEmail)
		r.Post("/organisation-email", h.syncCreateEmail)
		r.Put("/organisation-email/{organisationEmailId}", h.syncUpdateEmail)
		r.Delete("/organisation-email/{organisationEmailId}", h.syncDeleteEmail)

		r.Get("/organisation-web/{organisationWebAddressId}", h.syncGetWeb)
		r.Post("/organisation-web", h.syncCreateWeb)
		r.Put("/organisation-web/{organisationWebAddressId}", h.syncUpdateWeb)
		r.Delete("/organisation-web/{organisationWebAddressId}", h.syncDeleteWeb)

		r.Get("/organisation-types/{organisationId}", h.syncGetTypes)
		r.Put("/organisation-types/{organisationId}", h.syncUpdateTypes)

		r.Get("/organisation-address-phone/{organisationAddressPhoneId}", h.syncGetAddressPhone)
		r.Post("/organisation-address-phone", h.syncCreateAddressPhone)
		r.Put("/organisation-address-phone/{organisationAddressPhoneId}", h.syncUpdateAddressPhone)
		r.Delete("/organisation-address-phone/{organisationAddressPhoneId}", h.syncDeleteAddressPhone)
	})

	r.Post("/migrate/organisation", h.migrateOrganisation)
	r.Handle("/metrics", promhttp.Handler())

	return auth.HTTPMiddleware(r, jwtSecret)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// writeError maps domain errors to HTTP status codes.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, e.ErrDuplicateOrganisation):
		status = http.StatusConflict
	case errors.Is(err, e.ErrOwnershipMismatch),
		errors.Is(err, e.ErrInvalidSortField),
		errors.Is(err, e.ErrInvalidInput):
		status = http.StatusBadRequest
	default:
		h.logger.Error("Request failed", zap.Error(err))
		status = http.StatusInternalServerError
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid " + param})
		return 0, false
	}
	return id, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

// parseSort splits a "field,direction" sort parameter.
func parseSort(raw string) (string, string) {
	if raw == "" {
		return "", ""
	}
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
