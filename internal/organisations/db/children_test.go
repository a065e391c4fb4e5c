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

func TestAddressCRUD(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateOrganisation(ctx, testOrganisation(1001, "Owner")))

	address := &models.OrganisationAddress{
		OrganisationID: 1001,
		PrimaryAddress: true,
		Street:         utils.Ptr("Acacia Avenue"),
		PostCode:       utils.Ptr("S1 2AB"),
	}
	require.NoError(t, repo.CreateAddress(ctx, address))
	assert.NotZero(t, address.OrganisationAddressID, "Address ID should be generated")

	retrieved, err := repo.GetAddress(ctx, address.OrganisationAddressID)
	require.NoError(t, err)
	assert.Equal(t, "Acacia Avenue", *retrieved.Street)

	retrieved.Street = utils.Ptr("Rose Lane")
	require.NoError(t, repo.SaveAddress(ctx, retrieved))
	updated, err := repo.GetAddress(ctx, address.OrganisationAddressID)
	require.NoError(t, err)
	assert.Equal(t, "Rose Lane", *updated.Street)

	require.NoError(t, repo.DeleteAddress(ctx, address.OrganisationAddressID))
	_, err = repo.GetAddress(ctx, address.OrganisationAddressID)
	assert.ErrorIs(t, err, e.ErrNotFound)

	err = repo.DeleteAddress(ctx, address.OrganisationAddressID)
	assert.ErrorIs(t, err, e.ErrNotFound, "Deleting twice should report not found")
}

func TestListAddressesScopedToOrganisation(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateOrganisation(ctx, testOrganisation(1001, "First")))
	require.NoError(t, repo.CreateOrganisation(ctx, testOrganisation(1002, "Second")))

	require.NoError(t, repo.CreateAddress(ctx, &models.OrganisationAddress{OrganisationID: 1001}))
	require.NoError(t, repo.CreateAddress(ctx, &models.OrganisationAddress{OrganisationID: 1001}))
	require.NoError(t, repo.CreateAddress(ctx, &models.OrganisationAddress{OrganisationID: 1002}))

	addresses, err := repo.ListAddresses(ctx, 1001)
	require.NoError(t, err)
	assert.Len(t, addresses, 2, "Listing should only return the organisation's own addresses")
}

func TestPhoneCRUD(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateOrganisation(ctx, testOrganisation(1001, "Owner")))

	phone := &models.OrganisationPhone{
		OrganisationID: 1001,
		PhoneType:      "BUS",
		PhoneNumber:    "0114 2345678",
		ExtNumber:      utils.Ptr("123"),
	}
	require.NoError(t, repo.CreatePhone(ctx, phone))
	assert.NotZero(t, phone.OrganisationPhoneID)

	retrieved, err := repo.GetPhone(ctx, phone.OrganisationPhoneID)
	require.NoError(t, err)
	assert.Equal(t, "0114 2345678", retrieved.PhoneNumber)

	retrieved.PhoneNumber = "0114 8765432"
	require.NoError(t, repo.SavePhone(ctx, retrieved))

	require.NoError(t, repo.DeletePhone(ctx, phone.OrganisationPhoneID))
	_, err = repo.GetPhone(ctx, phone.OrganisationPhoneID)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestEmailAndWebCRUD(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateOrganisation(ctx, testOrganisation(1001, "Owner")))

	email := &models.OrganisationEmail{OrganisationID: 1001, EmailAddress: "office@example.com"}
	require.NoError(t, repo.CreateEmail(ctx, email))
	retrievedEmail, err := repo.GetEmail(ctx, email.OrganisationEmailID)
	require.NoError(t, err)
	assert.Equal(t, "office@example.com", retrievedEmail.EmailAddress)
	require.NoError(t, repo.DeleteEmail(ctx, email.OrganisationEmailID))

	web := &models.OrganisationWebAddress{OrganisationID: 1001, WebAddress: "www.example.com"}
	require.NoError(t, repo.CreateWebAddress(ctx, web))
	retrievedWeb, err := repo.GetWebAddress(ctx, web.OrganisationWebAddressID)
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", retrievedWeb.WebAddress)
	require.NoError(t, repo.DeleteWebAddress(ctx, web.OrganisationWebAddressID))
}

// TestReplaceTypes checks the delete-all-then-insert semantics, including the
// clearing case.
func TestReplaceTypes(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateOrganisation(ctx, testOrganisation(1001, "Owner")))

	require.NoError(t, repo.ReplaceTypes(ctx, 1001, []models.OrganisationType{
		{OrganisationID: 1001, OrganisationType: "TRUST"},
		{OrganisationID: 1001, OrganisationType: "SOLICITOR"},
	}))
	types, err := repo.ListTypes(ctx, 1001)
	require.NoError(t, err)
	assert.Len(t, types, 2)

	require.NoError(t, repo.ReplaceTypes(ctx, 1001, []models.OrganisationType{
		{OrganisationID: 1001, OrganisationType: "CHARITY"},
	}))
	types, err = repo.ListTypes(ctx, 1001)
	require.NoError(t, err)
	require.Len(t, types, 1, "Replacement should discard the previous set")
	assert.Equal(t, "CHARITY", types[0].OrganisationType)

	require.NoError(t, repo.ReplaceTypes(ctx, 1001, nil))
	types, err = repo.ListTypes(ctx, 1001)
	require.NoError(t, err)
	assert.Empty(t, types, "An empty replacement should clear the set")
}

func TestAddressPhoneLinkCRUD(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateOrganisation(ctx, testOrganisation(1001, "Owner")))
	address := &models.OrganisationAddress{OrganisationID: 1001}
	require.NoError(t, repo.CreateAddress(ctx, address))
	phone := &models.OrganisationPhone{OrganisationID: 1001, PhoneType: "BUS", PhoneNumber: "0114 2345678"}
	require.NoError(t, repo.CreatePhone(ctx, phone))

	link := &models.OrganisationAddressPhone{
		OrganisationID:        1001,
		OrganisationAddressID: address.OrganisationAddressID,
		OrganisationPhoneID:   phone.OrganisationPhoneID,
	}
	require.NoError(t, repo.CreateAddressPhone(ctx, link))

	retrieved, err := repo.GetAddressPhone(ctx, link.OrganisationAddressPhoneID)
	require.NoError(t, err)
	assert.Equal(t, phone.OrganisationPhoneID, retrieved.OrganisationPhoneID)

	links, err := repo.ListAddressPhones(ctx, 1001)
	require.NoError(t, err)
	assert.Len(t, links, 1)

	require.NoError(t, repo.DeleteAddressPhone(ctx, link.OrganisationAddressPhoneID))
	_, err = repo.GetAddressPhone(ctx, link.OrganisationAddressPhoneID)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

// TestDeleteAllChildren removes every child kind while leaving the
// organisation row in place.
func TestDeleteAllChildren(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateOrganisation(ctx, testOrganisation(1001, "Owner")))

	address := &models.OrganisationAddress{OrganisationID: 1001}
	require.NoError(t, repo.CreateAddress(ctx, address))
	phone := &models.OrganisationPhone{OrganisationID: 1001, PhoneType: "BUS", PhoneNumber: "0114 2345678"}
	require.NoError(t, repo.CreatePhone(ctx, phone))
	require.NoError(t, repo.CreateAddressPhone(ctx, &models.OrganisationAddressPhone{
		OrganisationID:        1001,
		OrganisationAddressID: address.OrganisationAddressID,
		OrganisationPhoneID:   phone.OrganisationPhoneID,
	}))
	require.NoError(t, repo.CreateEmail(ctx, &models.OrganisationEmail{OrganisationID: 1001, EmailAddress: "a@b.c"}))
	require.NoError(t, repo.CreateWebAddress(ctx, &models.OrganisationWebAddress{OrganisationID: 1001, WebAddress: "www"}))
	require.NoError(t, repo.ReplaceTypes(ctx, 1001, []models.OrganisationType{
		{OrganisationID: 1001, OrganisationType: "TRUST"},
	}))

	require.NoError(t, repo.DeleteAllChildren(ctx, 1001))

	count, err := repo.CountOrganisationChildren(ctx, 1001)
	require.NoError(t, err)
	assert.Zero(t, count, "Every child row should be gone")

	exists, err := repo.OrganisationExists(ctx, 1001)
	require.NoError(t, err)
	assert.True(t, exists, "The organisation row itself should survive")
}
