package db

import (
	"context"
	"testing"

	e "github.com/gartstein/organisations/internal/organisations/errors"
	"github.com/gartstein/organisations/internal/organisations/models"
	"github.com/gartstein/organisations/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedSummaryOrganisation creates an organisation with a primary and a
// secondary address plus a business phone linked to the primary address.
func seedSummaryOrganisation(t *testing.T, repo *Repository, id int64, name string) {
	ctx := context.Background()
	require.NoError(t, repo.CreateOrganisation(ctx, testOrganisation(id, name)))

	primary := &models.OrganisationAddress{
		OrganisationID: id,
		PrimaryAddress: true,
		Street:         utils.Ptr("Primary Street"),
		CityCode:       utils.Ptr("SHEF"),
		PostCode:       utils.Ptr("S1 2AB"),
	}
	require.NoError(t, repo.CreateAddress(ctx, primary))
	require.NoError(t, repo.CreateAddress(ctx, &models.OrganisationAddress{
		OrganisationID: id,
		Street:         utils.Ptr("Secondary Street"),
	}))

	phone := &models.OrganisationPhone{
		OrganisationID: id,
		PhoneType:      "BUS",
		PhoneNumber:    "0114 2345678",
		ExtNumber:      utils.Ptr("123"),
	}
	require.NoError(t, repo.CreatePhone(ctx, phone))
	require.NoError(t, repo.CreateAddressPhone(ctx, &models.OrganisationAddressPhone{
		OrganisationID:        id,
		OrganisationAddressID: primary.OrganisationAddressID,
		OrganisationPhoneID:   phone.OrganisationPhoneID,
	}))
}

// TestGetOrganisationSummary verifies the projection picks the primary address
// and its business phone.
func TestGetOrganisationSummary(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	seedSummaryOrganisation(t, repo, 1001, "Summary Org")

	summary, err := repo.GetOrganisationSummary(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, "Summary Org", summary.OrganisationName)
	require.NotNil(t, summary.Street)
	assert.Equal(t, "Primary Street", *summary.Street, "Summary should use the primary address")
	require.NotNil(t, summary.BusinessPhoneNumber)
	assert.Equal(t, "0114 2345678", *summary.BusinessPhoneNumber)
	require.NotNil(t, summary.BusinessPhoneNumberExtension)
	assert.Equal(t, "123", *summary.BusinessPhoneNumberExtension)
}

// TestGetOrganisationSummaryNoAddress verifies the projection still yields a
// row when no primary address exists.
func TestGetOrganisationSummaryNoAddress(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateOrganisation(ctx, testOrganisation(1001, "Bare Org")))

	summary, err := repo.GetOrganisationSummary(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, "Bare Org", summary.OrganisationName)
	assert.Nil(t, summary.Street)
	assert.Nil(t, summary.BusinessPhoneNumber)
}

// TestGetOrganisationSummaryIgnoresNonBusinessPhone checks that only
// business-typed phones feed the projection.
func TestGetOrganisationSummaryIgnoresNonBusinessPhone(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateOrganisation(ctx, testOrganisation(1001, "Fax Only")))
	address := &models.OrganisationAddress{OrganisationID: 1001, PrimaryAddress: true}
	require.NoError(t, repo.CreateAddress(ctx, address))
	phone := &models.OrganisationPhone{OrganisationID: 1001, PhoneType: "FAX", PhoneNumber: "0114 0000000"}
	require.NoError(t, repo.CreatePhone(ctx, phone))
	require.NoError(t, repo.CreateAddressPhone(ctx, &models.OrganisationAddressPhone{
		OrganisationID:        1001,
		OrganisationAddressID: address.OrganisationAddressID,
		OrganisationPhoneID:   phone.OrganisationPhoneID,
	}))

	summary, err := repo.GetOrganisationSummary(ctx, 1001)
	require.NoError(t, err)
	assert.Nil(t, summary.BusinessPhoneNumber, "Non-business phones should not surface")
}

func TestGetOrganisationSummaryNotFound(t *testing.T) {
	repo := SetupTestDB(t)

	_, err := repo.GetOrganisationSummary(context.Background(), 9999)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

// TestSearchOrganisations covers substring matching, case folding and paging.
func TestSearchOrganisations(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	seedSummaryOrganisation(t, repo, 1001, "Sheffield Trust")
	seedSummaryOrganisation(t, repo, 1002, "Leeds Trust")
	seedSummaryOrganisation(t, repo, 1003, "Acme Solicitors")

	page, err := repo.SearchOrganisations(ctx, "TRUST", 0, 10, "", "")
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalElements, "Matching should be case-insensitive")
	require.Len(t, page.Content, 2)
	assert.Equal(t, "Leeds Trust", page.Content[0].OrganisationName, "Default sort is name ascending")

	page, err = repo.SearchOrganisations(ctx, "", 0, 2, "organisationId", "desc")
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Content, 2)
	assert.EqualValues(t, 1003, page.Content[0].OrganisationID)

	page, err = repo.SearchOrganisations(ctx, "", 1, 2, "organisationId", "desc")
	require.NoError(t, err)
	require.Len(t, page.Content, 1, "Second page should hold the remainder")
	assert.EqualValues(t, 1001, page.Content[0].OrganisationID)

	page, err = repo.SearchOrganisations(ctx, "nowhere", 0, 10, "", "")
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Zero(t, page.TotalElements)
}

// TestSearchOrganisationsRejectsUnknownSort ensures sort input outside the
// allow-list never reaches the ORDER BY clause.
func TestSearchOrganisationsRejectsUnknownSort(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	_, err := repo.SearchOrganisations(ctx, "", 0, 10, "comments; DROP TABLE organisations", "")
	assert.ErrorIs(t, err, e.ErrInvalidSortField)

	_, err = repo.SearchOrganisations(ctx, "", 0, 10, "organisationName", "sideways")
	assert.ErrorIs(t, err, e.ErrInvalidSortField, "Invalid direction should be rejected too")
}
