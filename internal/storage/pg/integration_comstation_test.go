package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techflow-dev/techflow/internal/domain"
	internal_errors "github.com/techflow-dev/techflow/internal/errors"
)

func mustStation(t *testing.T, departmentId domain.DepartmentId, name, stationType, location, status string) domain.ComStation {
	t.Helper()
	st, err := storage.CreateStation(domain.ComStation{
		Name:         name,
		Type:         stationType,
		Location:     location,
		Status:       status,
		DepartmentId: departmentId,
	})
	require.NoError(t, err)
	return st
}

func TestCreateStation(t *testing.T) {
	dept := mustDepartment(t, "station-create")

	created := mustStation(t, dept.Id, "EMU-1", domain.StationTypeEmu, domain.StationLocationInpatient, domain.StationStatusActive)
	assert.NotZero(t, created.Id)
	assert.False(t, created.HasTicket)

	fetched, err := storage.StationById(created.Id)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)

	_, err = storage.CreateStation(domain.ComStation{
		Name: "EMU-1", Type: domain.StationTypeEmu, Location: domain.StationLocationInpatient,
		Status: domain.StationStatusActive, DepartmentId: dept.Id,
	})
	var httpErr *internal_errors.ErrorWithStatusCode
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.StatusCode)
}

func TestStationsByDepartmentFilter(t *testing.T) {
	dept := mustDepartment(t, "station-filter")

	mustStation(t, dept.Id, "EMU-A", domain.StationTypeEmu, domain.StationLocationInpatient, domain.StationStatusActive)
	mustStation(t, dept.Id, "Cart-In", domain.StationTypeCart, domain.StationLocationInpatient, domain.StationStatusActive)
	mustStation(t, dept.Id, "Cart-Out", domain.StationTypeCart, domain.StationLocationOutpatient, domain.StationStatusInactive)

	all, err := storage.StationsByDepartment(dept.Id, domain.StationFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	carts, err := storage.StationsByDepartment(dept.Id, domain.StationFilter{Type: domain.StationTypeCart})
	require.NoError(t, err)
	assert.Len(t, carts, 2)

	cartsOut, err := storage.StationsByDepartment(dept.Id, domain.StationFilter{
		Type: domain.StationTypeCart, Location: domain.StationLocationOutpatient,
	})
	require.NoError(t, err)
	require.Len(t, cartsOut, 1)
	assert.Equal(t, "Cart-Out", cartsOut[0].Name)

	inactive, err := storage.StationsByDepartment(dept.Id, domain.StationFilter{Status: domain.StationStatusInactive})
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, "Cart-Out", inactive[0].Name)
}

func TestUpdateStation(t *testing.T) {
	dept := mustDepartment(t, "station-update")

	created := mustStation(t, dept.Id, "EMU-Fix", domain.StationTypeEmu, domain.StationLocationInpatient, domain.StationStatusActive)

	created.Status = domain.StationStatusInactive
	created.IssueDescription = "No video feed"
	created.HasTicket = true
	created.TicketNumber = "INC-4411"
	updated, err := storage.UpdateStation(created)
	require.NoError(t, err)
	assert.Equal(t, domain.StationStatusInactive, updated.Status)
	assert.Equal(t, "No video feed", updated.IssueDescription)
	assert.True(t, updated.HasTicket)
	assert.Equal(t, "INC-4411", updated.TicketNumber)
	assert.Equal(t, "EMU-Fix", updated.Name, "name is immutable on update")

	missing := created
	missing.Id += 100000
	_, err = storage.UpdateStation(missing)
	require.True(t, internal_errors.IsNotFound(err))
}

func TestDeleteStation(t *testing.T) {
	dept := mustDepartment(t, "station-delete")

	created := mustStation(t, dept.Id, "EMU-Del", domain.StationTypeEmu, domain.StationLocationInpatient, domain.StationStatusActive)

	require.NoError(t, storage.DeleteStation(created.Id))
	require.True(t, internal_errors.IsNotFound(storage.DeleteStation(created.Id)))
}
