package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techflow-dev/techflow/internal/domain"
)

type MockSupplyStorage struct {
	SuppliesByDepartmentFunc func(departmentId domain.DepartmentId) ([]domain.Supply, error)
	UpsertSupplyFunc         func(departmentId domain.DepartmentId, storageRoom string, items []string, updatedBy domain.UserId) (domain.Supply, error)
}

func (m *MockSupplyStorage) SuppliesByDepartment(departmentId domain.DepartmentId) ([]domain.Supply, error) {
	if m.SuppliesByDepartmentFunc != nil {
		return m.SuppliesByDepartmentFunc(departmentId)
	}
	return nil, nil
}

func (m *MockSupplyStorage) UpsertSupply(departmentId domain.DepartmentId, storageRoom string, items []string, updatedBy domain.UserId) (domain.Supply, error) {
	if m.UpsertSupplyFunc != nil {
		return m.UpsertSupplyFunc(departmentId, storageRoom, items, updatedBy)
	}
	return domain.Supply{Id: 1, DepartmentId: departmentId, StorageRoom: storageRoom, Items: items, LastUpdatedBy: updatedBy}, nil
}

func TestSupplyReplace(t *testing.T) {
	svc := NewSupply(&MockSupplyStorage{}, &MockDirectory{})

	resp, err := svc.Replace(5, 1, "Department", []string{"electrode gel", "paste"})
	require.NoError(t, err)
	assert.Equal(t, []string{"electrode gel", "paste"}, resp.Items)
	require.NotNil(t, resp.LastUpdatedBy)
	assert.Equal(t, "Alice", resp.LastUpdatedBy.Name)
}

func TestSupplyReplaceUnknownRoom(t *testing.T) {
	svc := NewSupply(&MockSupplyStorage{}, &MockDirectory{})

	_, err := svc.Replace(5, 1, "Broom Closet", []string{"gloves"})
	assert.Error(t, err)
}

func TestSupplyReplaceSanitizesItems(t *testing.T) {
	var captured []string
	storage := &MockSupplyStorage{
		UpsertSupplyFunc: func(departmentId domain.DepartmentId, storageRoom string, items []string, updatedBy domain.UserId) (domain.Supply, error) {
			captured = items
			return domain.Supply{Id: 1, StorageRoom: storageRoom, Items: items, LastUpdatedBy: updatedBy}, nil
		},
	}
	svc := NewSupply(storage, &MockDirectory{})

	_, err := svc.Replace(5, 1, "Department", []string{"<img src=x onerror=alert(1)>gauze"})
	require.NoError(t, err)
	assert.Equal(t, []string{"gauze"}, captured)
}

func TestSupplyListResolvesDanglingUpdater(t *testing.T) {
	storage := &MockSupplyStorage{
		SuppliesByDepartmentFunc: func(departmentId domain.DepartmentId) ([]domain.Supply, error) {
			return []domain.Supply{
				{Id: 1, StorageRoom: "Department", Items: []string{"gel"}, LastUpdatedBy: 1},
				{Id: 2, StorageRoom: "Outpatient Rooms", Items: []string{"wipes"}, LastUpdatedBy: 99},
			}, nil
		},
	}
	svc := NewSupply(storage, &MockDirectory{})

	supplies, err := svc.List(5)
	require.NoError(t, err)
	require.Len(t, supplies, 2)
	require.NotNil(t, supplies[0].LastUpdatedBy)
	assert.Equal(t, "Alice", supplies[0].LastUpdatedBy.Name)
	assert.Nil(t, supplies[1].LastUpdatedBy, "deleted updater resolves to null")
}
