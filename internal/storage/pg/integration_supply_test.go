package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertSupply(t *testing.T) {
	dept := mustDepartment(t, "supply-upsert")
	u := mustUser(t, dept.Id, "supply-upsert@example.com")
	other := mustUser(t, dept.Id, "supply-upsert-2@example.com")

	created, err := storage.UpsertSupply(dept.Id, "Department", []string{"electrodes", "paste"}, u.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"electrodes", "paste"}, created.Items)
	assert.Equal(t, u.Id, created.LastUpdatedBy)

	// Second write replaces the list wholesale, same row.
	replaced, err := storage.UpsertSupply(dept.Id, "Department", []string{"tape"}, other.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Id, replaced.Id)
	assert.Equal(t, []string{"tape"}, replaced.Items)
	assert.Equal(t, other.Id, replaced.LastUpdatedBy)
}

func TestSuppliesByDepartment(t *testing.T) {
	dept := mustDepartment(t, "supply-list")
	empty := mustDepartment(t, "supply-list-empty")
	u := mustUser(t, dept.Id, "supply-list@example.com")

	_, err := storage.UpsertSupply(dept.Id, "Outpatient Rooms", []string{"wipes"}, u.Id)
	require.NoError(t, err)
	_, err = storage.UpsertSupply(dept.Id, "2nd Floor Storage", []string{"cables"}, u.Id)
	require.NoError(t, err)

	supplies, err := storage.SuppliesByDepartment(dept.Id)
	require.NoError(t, err)
	require.Len(t, supplies, 2)
	// Ordered by storage room name.
	assert.Equal(t, "2nd Floor Storage", supplies[0].StorageRoom)
	assert.Equal(t, "Outpatient Rooms", supplies[1].StorageRoom)

	supplies, err = storage.SuppliesByDepartment(empty.Id)
	require.NoError(t, err)
	assert.Empty(t, supplies)
}

func TestUpsertSupplyEmptyItems(t *testing.T) {
	dept := mustDepartment(t, "supply-empty")
	u := mustUser(t, dept.Id, "supply-empty@example.com")

	_, err := storage.UpsertSupply(dept.Id, "6th Floor Storage", []string{"gel"}, u.Id)
	require.NoError(t, err)

	cleared, err := storage.UpsertSupply(dept.Id, "6th Floor Storage", []string{}, u.Id)
	require.NoError(t, err)
	assert.Empty(t, cleared.Items)
}
