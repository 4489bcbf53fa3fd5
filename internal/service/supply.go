package service

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/techflow-dev/techflow/internal/api"
	"github.com/techflow-dev/techflow/internal/domain"
	"github.com/techflow-dev/techflow/internal/errors"
)

type SupplyService interface {
	List(departmentId domain.DepartmentId) ([]api.SupplyResponse, error)
	Replace(departmentId domain.DepartmentId, userId domain.UserId, storageRoom string, items []string) (api.SupplyResponse, error)
}

type SupplyStorage interface {
	SuppliesByDepartment(departmentId domain.DepartmentId) ([]domain.Supply, error)
	UpsertSupply(departmentId domain.DepartmentId, storageRoom string, items []string, updatedBy domain.UserId) (domain.Supply, error)
}

type Supply struct {
	storage   SupplyStorage
	directory Directory
	sanitizer *bluemonday.Policy
}

func NewSupply(storage SupplyStorage, directory Directory) *Supply {
	return &Supply{storage: storage, directory: directory, sanitizer: bluemonday.StrictPolicy()}
}

func (s *Supply) List(departmentId domain.DepartmentId) ([]api.SupplyResponse, error) {
	supplies, err := s.storage.SuppliesByDepartment(departmentId)
	if err != nil {
		return nil, err
	}
	users, err := s.directory.Users(departmentId)
	if err != nil {
		return nil, err
	}
	resp := make([]api.SupplyResponse, 0, len(supplies))
	for _, sup := range supplies {
		resp = append(resp, supplyResponse(sup, users))
	}
	return resp, nil
}

// Replace overwrites one storage room's item list wholesale, same
// replace semantics as a whiteboard section.
func (s *Supply) Replace(departmentId domain.DepartmentId, userId domain.UserId, storageRoom string, items []string) (api.SupplyResponse, error) {
	if !domain.ValidStorageRoom(storageRoom) {
		return api.SupplyResponse{}, errors.BadRequest("Unknown storage room")
	}

	for i, item := range items {
		items[i] = s.sanitizer.Sanitize(item)
	}

	sup, err := s.storage.UpsertSupply(departmentId, storageRoom, items, userId)
	if err != nil {
		return api.SupplyResponse{}, err
	}
	users, err := s.directory.Users(departmentId)
	if err != nil {
		return api.SupplyResponse{}, err
	}
	return supplyResponse(sup, users), nil
}

func supplyResponse(sup domain.Supply, users map[domain.UserId]domain.User) api.SupplyResponse {
	resp := api.SupplyResponse{
		Id:          sup.Id,
		StorageRoom: sup.StorageRoom,
		Items:       emptyIfNil(sup.Items),
		CreatedAt:   sup.CreatedAt,
		UpdatedAt:   sup.UpdatedAt,
	}
	if u, ok := users[sup.LastUpdatedBy]; ok {
		card := userCard(u)
		resp.LastUpdatedBy = &card
	}
	return resp
}
