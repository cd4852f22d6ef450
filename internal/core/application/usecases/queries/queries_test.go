package queries_test

import (
	"testing"

	"github.com/spantra1997/SecondServe/internal/core/application/usecases/queries"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/donation"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListDonationsQuery_Valid(t *testing.T) {
	donorID := kernel.NewUUID()

	query, err := queries.NewListDonationsQuery(donation.Available, &donorID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, donation.Available, query.Status())
	assert.Equal(t, &donorID, query.DonorID())
}

func TestNewListDonationsQuery_NoFilters(t *testing.T) {
	query, err := queries.NewListDonationsQuery(donation.Unknown, nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, donation.Unknown, query.Status())
	assert.Nil(t, query.DonorID())
}

func TestNewListDonationsQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewListDonationsQuery(donation.Status(42), nil)
	require.Error(t, err)
}

func TestListDonationsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListDonationsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListDonationsQueryIsNotConstructed)
}

func TestNewListOrdersQuery_Valid(t *testing.T) {
	recipientID := kernel.NewUUID()

	query, err := queries.NewListOrdersQuery(&recipientID, nil, nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, &recipientID, query.RecipientID())
	assert.Nil(t, query.DriverID())
	assert.Nil(t, query.DonorID())
}

func TestNewListOrdersQuery_MultipleFilters(t *testing.T) {
	recipientID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	_, err := queries.NewListOrdersQuery(&recipientID, &driverID, nil)
	require.Error(t, err)
}

func TestNewListOrdersQuery_InvalidFilter(t *testing.T) {
	var zero kernel.UUID

	_, err := queries.NewListOrdersQuery(nil, &zero, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestListOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}

func TestNewAvailableOrdersQuery_Valid(t *testing.T) {
	query := queries.NewAvailableOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestAvailableOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.AvailableOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrAvailableOrdersQueryIsNotConstructed)
}

func TestNewPlatformStatsQuery_Valid(t *testing.T) {
	query := queries.NewPlatformStatsQuery()
	require.NoError(t, query.Validate())
}

func TestPlatformStatsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.PlatformStatsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrPlatformStatsQueryIsNotConstructed)
}

func TestNewImpactStatsQuery_Valid(t *testing.T) {
	query := queries.NewImpactStatsQuery()
	require.NoError(t, query.Validate())
}

func TestImpactStatsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ImpactStatsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrImpactStatsQueryIsNotConstructed)
}

func TestNewGetDonationQuery_Valid(t *testing.T) {
	donationID := kernel.NewUUID()

	query, err := queries.NewGetDonationQuery(donationID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, donationID.IsEqual(query.DonationID()))
}

func TestNewGetDonationQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetDonationQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetDonationQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDonationQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDonationQueryIsNotConstructed)
}
