package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techflow-dev/techflow/internal/api"
	"github.com/techflow-dev/techflow/internal/domain"
)

type MockStationStorage struct {
	CreateStationFunc        func(station domain.ComStation) (domain.ComStation, error)
	StationByIdFunc          func(id domain.StationId) (domain.ComStation, error)
	StationsByDepartmentFunc func(departmentId domain.DepartmentId, filter domain.StationFilter) ([]domain.ComStation, error)
	UpdateStationFunc        func(station domain.ComStation) (domain.ComStation, error)
	DeleteStationFunc        func(id domain.StationId) error
}

func (m *MockStationStorage) CreateStation(station domain.ComStation) (domain.ComStation, error) {
	if m.CreateStationFunc != nil {
		return m.CreateStationFunc(station)
	}
	station.Id = 1
	return station, nil
}

func (m *MockStationStorage) StationById(id domain.StationId) (domain.ComStation, error) {
	if m.StationByIdFunc != nil {
		return m.StationByIdFunc(id)
	}
	return domain.ComStation{
		Id: id, Name: "EMU-01", Type: domain.StationTypeEmu,
		Location: domain.StationLocationInpatient, Status: domain.StationStatusInactive,
		IssueDescription: "frozen on boot", HasTicket: true, TicketNumber: "IT-1234",
		DepartmentId: 5,
	}, nil
}

func (m *MockStationStorage) StationsByDepartment(departmentId domain.DepartmentId, filter domain.StationFilter) ([]domain.ComStation, error) {
	if m.StationsByDepartmentFunc != nil {
		return m.StationsByDepartmentFunc(departmentId, filter)
	}
	return nil, nil
}

func (m *MockStationStorage) UpdateStation(station domain.ComStation) (domain.ComStation, error) {
	if m.UpdateStationFunc != nil {
		return m.UpdateStationFunc(station)
	}
	return station, nil
}

func (m *MockStationStorage) DeleteStation(id domain.StationId) error {
	if m.DeleteStationFunc != nil {
		return m.DeleteStationFunc(id)
	}
	return nil
}

func TestParseStationFilter(t *testing.T) {
	tests := []struct {
		in     string
		want   domain.StationFilter
		hasErr bool
	}{
		{"", domain.StationFilter{}, false},
		{"All", domain.StationFilter{}, false},
		{"EMU Station", domain.StationFilter{Type: "EMU Station"}, false},
		{"EEG Cart - Inpatient", domain.StationFilter{Type: "EEG Cart", Location: "Inpatient"}, false},
		{"EEG Cart - Outpatient", domain.StationFilter{Type: "EEG Cart", Location: "Outpatient"}, false},
		{"EEG Cart - Bellevue", domain.StationFilter{Type: "EEG Cart", Location: "Bellevue"}, false},
		{"Active", domain.StationFilter{Status: "Active"}, false},
		{"Inactive", domain.StationFilter{Status: "Inactive"}, false},
		{"EEG Cart - Mars", domain.StationFilter{}, true},
		{"bogus", domain.StationFilter{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFilter(tt.in)
			if tt.hasErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStationListPassesFilter(t *testing.T) {
	var captured domain.StationFilter
	storage := &MockStationStorage{
		StationsByDepartmentFunc: func(departmentId domain.DepartmentId, filter domain.StationFilter) ([]domain.ComStation, error) {
			captured = filter
			return nil, nil
		},
	}
	svc := NewStation(storage)

	_, err := svc.List(5, "EEG Cart - Inpatient")
	require.NoError(t, err)
	assert.Equal(t, domain.StationFilter{Type: "EEG Cart", Location: "Inpatient"}, captured)
}

func TestStationCreateDefaultsToActive(t *testing.T) {
	svc := NewStation(&MockStationStorage{})

	station, err := svc.Create(5, api.CreateStationRequest{
		Name: "EMU-02", Type: domain.StationTypeEmu, Location: domain.StationLocationInpatient,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StationStatusActive, station.Status)
}

func TestStationReactivationClearsIssueFields(t *testing.T) {
	var captured domain.ComStation
	storage := &MockStationStorage{
		UpdateStationFunc: func(station domain.ComStation) (domain.ComStation, error) {
			captured = station
			return station, nil
		},
	}
	svc := NewStation(storage)

	active := domain.StationStatusActive
	station, err := svc.Update(5, 1, api.UpdateStationRequest{Status: &active})
	require.NoError(t, err)

	assert.Equal(t, domain.StationStatusActive, captured.Status)
	assert.Empty(t, captured.IssueDescription)
	assert.False(t, captured.HasTicket)
	assert.Empty(t, captured.TicketNumber)
	assert.Empty(t, station.IssueDescription)
}

func TestStationCrossDepartmentIsHidden(t *testing.T) {
	storage := &MockStationStorage{
		StationByIdFunc: func(id domain.StationId) (domain.ComStation, error) {
			return domain.ComStation{Id: id, DepartmentId: 99}, nil
		},
	}
	svc := NewStation(storage)

	err := svc.Delete(5, 1)
	assert.Error(t, err)
}
