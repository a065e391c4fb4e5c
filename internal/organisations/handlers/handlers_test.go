package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gartstein/organisations/internal/organisations/auth"
	"github.com/gartstein/organisations/internal/organisations/controller"
	"github.com/gartstein/organisations/internal/organisations/db"
	"github.com/gartstein/organisations/internal/organisations/events"
	"github.com/gartstein/organisations/internal/organisations/metrics"
	"github.com/gartstein/organisations/internal/organisations/migration"
	"github.com/gartstein/organisations/internal/organisations/models"
	"github.com/gartstein/organisations/internal/organisations/sync"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test_secret"

type noopNotifier struct{}

func (noopNotifier) Send(events.Kind, int64, int64, events.Source) {}

type noopRegister struct{}

func (noopRegister) LookupPrisonName(context.Context, string) (string, error) { return "", nil }

// setupRouter wires the full HTTP stack over an in-memory database.
func setupRouter(t *testing.T) (http.Handler, *db.Repository) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open test database")
	repo, err := db.NewRepositoryFromDB(gdb)
	require.NoError(t, err, "failed to migrate test database")

	logger := zaptest.NewLogger(t)
	m := metrics.New(prometheus.NewRegistry())
	notifier := noopNotifier{}

	handler := New(
		controller.NewOrganisationService(repo, notifier, noopRegister{}, logger),
		sync.NewOrganisationService(repo, notifier, m, logger),
		sync.NewAddressService(repo, notifier, m, logger),
		sync.NewPhoneService(repo, notifier, m, logger),
		sync.NewEmailService(repo, notifier, m, logger),
		sync.NewWebService(repo, notifier, m, logger),
		sync.NewTypesService(repo, notifier, m, logger),
		sync.NewAddressPhoneService(repo, notifier, m, logger),
		migration.NewService(repo, logger),
		logger,
	)
	return handler.Router(testSecret), repo
}

func bearerToken(t *testing.T) string {
	token, err := auth.GenerateToken("12345", testSecret)
	require.NoError(t, err)
	return "Bearer " + token
}

func seedOrganisation(t *testing.T, repo *db.Repository, id int64, name string) {
	require.NoError(t, repo.CreateOrganisation(context.Background(), &models.Organisation{
		OrganisationID:   id,
		OrganisationName: name,
		Active:           true,
		Audit:            models.Audit{CreatedBy: "SEED", CreatedTime: time.Now().UTC()},
	}))
}

func doJSON(router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	request := httptest.NewRequest(method, path, reader)
	if token != "" {
		request.Header.Set("Authorization", token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestGetOrganisationEndpoint(t *testing.T) {
	router, repo := setupRouter(t)
	seedOrganisation(t, repo, 1001, "Sheffield Trust")

	recorder := doJSON(router, http.MethodGet, "/organisation/1001", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var details models.OrganisationDetails
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &details))
	assert.EqualValues(t, 1001, details.OrganisationID)
	assert.Equal(t, "Sheffield Trust", details.OrganisationName)
}

func TestGetOrganisationEndpointNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	recorder := doJSON(router, http.MethodGet, "/organisation/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetOrganisationEndpointBadID(t *testing.T) {
	router, _ := setupRouter(t)

	recorder := doJSON(router, http.MethodGet, "/organisation/notanumber", "", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSearchEndpoint(t *testing.T) {
	router, repo := setupRouter(t)
	seedOrganisation(t, repo, 1001, "Sheffield Trust")
	seedOrganisation(t, repo, 1002, "Leeds Charity")

	recorder := doJSON(router, http.MethodGet, "/organisation/search?name=trust&page=0&size=10", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var page models.OrganisationSummaryPage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Sheffield Trust", page.Content[0].OrganisationName)
}

func TestSearchEndpointRejectsUnknownSort(t *testing.T) {
	router, _ := setupRouter(t)

	recorder := doJSON(router, http.MethodGet, "/organisation/search?sort=comments,asc", "", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateOrganisationEndpointRequiresToken(t *testing.T) {
	router, _ := setupRouter(t)

	recorder := doJSON(router, http.MethodPost, "/organisation", "", models.CreateOrganisationRequest{
		OrganisationName: "UI Organisation",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCreateOrganisationEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	recorder := doJSON(router, http.MethodPost, "/organisation", bearerToken(t), models.CreateOrganisationRequest{
		OrganisationName: "UI Organisation",
		Active:           true,
		CreatedBy:        "JSMITH",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var details models.OrganisationDetails
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &details))
	assert.NotZero(t, details.OrganisationID)
}

func TestSyncOrganisationEndpoints(t *testing.T) {
	router, _ := setupRouter(t)
	token := bearerToken(t)

	recorder := doJSON(router, http.MethodPost, "/sync/organisation", token, models.SyncCreateOrganisationRequest{
		SyncOrganisationData: models.SyncOrganisationData{
			OrganisationID:   1001,
			OrganisationName: "Synced Organisation",
			Active:           true,
		},
		CreatedBy: "NOMIS_SYNC",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	// Duplicate create conflicts.
	recorder = doJSON(router, http.MethodPost, "/sync/organisation", token, models.SyncCreateOrganisationRequest{
		SyncOrganisationData: models.SyncOrganisationData{
			OrganisationID:   1001,
			OrganisationName: "Synced Organisation",
		},
		CreatedBy: "NOMIS_SYNC",
	})
	assert.Equal(t, http.StatusConflict, recorder.Code)

	recorder = doJSON(router, http.MethodGet, "/sync/organisation/1001", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	// Ownership mismatch maps to a bad request.
	recorder = doJSON(router, http.MethodPut, "/sync/organisation/1001", token, models.SyncUpdateOrganisationRequest{
		SyncOrganisationData: models.SyncOrganisationData{
			OrganisationID:   2002,
			OrganisationName: "Hijacked",
		},
		UpdatedBy: "NOMIS_SYNC",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doJSON(router, http.MethodDelete, "/sync/organisation/1001", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(router, http.MethodGet, "/sync/organisation/1001", token, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestSyncEndpointsRejectInvalidBody(t *testing.T) {
	router, _ := setupRouter(t)

	request := httptest.NewRequest(http.MethodPost, "/sync/organisation", bytes.NewReader([]byte("{broken")))
	request.Header.Set("Authorization", bearerToken(t))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestMigrateEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	recorder := doJSON(router, http.MethodPost, "/migrate/organisation", bearerToken(t), models.MigrateOrganisationRequest{
		NomisCorporateID: 1001,
		OrganisationName: "Migrated Organisation",
		Audit:            models.Audit{CreatedBy: "NOMIS_MIGRATION", CreatedTime: time.Now().UTC()},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.MigrateOrganisationResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.EqualValues(t, 1001, response.OrganisationID)
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	recorder := doJSON(router, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
