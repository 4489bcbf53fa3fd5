package service

import (
	"github.com/techflow-dev/techflow/internal/api"
	"github.com/techflow-dev/techflow/internal/domain"
	"github.com/techflow-dev/techflow/internal/errors"
)

type ProviderService interface {
	List(departmentId domain.DepartmentId) ([]api.ProviderResponse, error)
	Get(departmentId domain.DepartmentId, id domain.ProviderId) (api.ProviderResponse, error)
	Create(departmentId domain.DepartmentId, req api.CreateProviderRequest) (api.ProviderResponse, error)
	Update(departmentId domain.DepartmentId, id domain.ProviderId, req api.UpdateProviderRequest) (api.ProviderResponse, error)
	Delete(departmentId domain.DepartmentId, id domain.ProviderId) error
}

type ProviderStorage interface {
	CreateProvider(data domain.ProviderCreationData) (domain.Provider, error)
	ProviderById(id domain.ProviderId) (domain.Provider, error)
	ProvidersByDepartment(departmentId domain.DepartmentId) ([]domain.Provider, error)
	UpdateProvider(id domain.ProviderId, data domain.ProviderUpdateData) (domain.Provider, error)
	DeleteProvider(id domain.ProviderId) error
}

type Provider struct {
	storage   ProviderStorage
	directory Invalidator
}

func NewProvider(storage ProviderStorage, directory Invalidator) *Provider {
	return &Provider{storage: storage, directory: directory}
}

func (s *Provider) List(departmentId domain.DepartmentId) ([]api.ProviderResponse, error) {
	providers, err := s.storage.ProvidersByDepartment(departmentId)
	if err != nil {
		return nil, err
	}
	resp := make([]api.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		resp = append(resp, providerResponse(p))
	}
	return resp, nil
}

func (s *Provider) Get(departmentId domain.DepartmentId, id domain.ProviderId) (api.ProviderResponse, error) {
	p, err := s.departmentProvider(departmentId, id)
	if err != nil {
		return api.ProviderResponse{}, err
	}
	return providerResponse(p), nil
}

func (s *Provider) Create(departmentId domain.DepartmentId, req api.CreateProviderRequest) (api.ProviderResponse, error) {
	p, err := s.storage.CreateProvider(domain.ProviderCreationData{
		Name:         req.Name,
		ProfileColor: req.ProfileColor,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PagerNumber:  req.PagerNumber,
		OfficeNumber: req.OfficeNumber,
		DepartmentId: departmentId,
	})
	if err != nil {
		return api.ProviderResponse{}, err
	}
	s.directory.Invalidate(departmentId)
	return providerResponse(p), nil
}

func (s *Provider) Update(departmentId domain.DepartmentId, id domain.ProviderId, req api.UpdateProviderRequest) (api.ProviderResponse, error) {
	if _, err := s.departmentProvider(departmentId, id); err != nil {
		return api.ProviderResponse{}, err
	}
	p, err := s.storage.UpdateProvider(id, domain.ProviderUpdateData{
		Name:         req.Name,
		ProfileColor: req.ProfileColor,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PagerNumber:  req.PagerNumber,
		OfficeNumber: req.OfficeNumber,
	})
	if err != nil {
		return api.ProviderResponse{}, err
	}
	s.directory.Invalidate(departmentId)
	return providerResponse(p), nil
}

// Delete removes a provider. Whiteboard slots still holding the id
// become dangling references and are nulled at read time.
func (s *Provider) Delete(departmentId domain.DepartmentId, id domain.ProviderId) error {
	if _, err := s.departmentProvider(departmentId, id); err != nil {
		return err
	}
	if err := s.storage.DeleteProvider(id); err != nil {
		return err
	}
	s.directory.Invalidate(departmentId)
	return nil
}

func (s *Provider) departmentProvider(departmentId domain.DepartmentId, id domain.ProviderId) (domain.Provider, error) {
	p, err := s.storage.ProviderById(id)
	if err != nil {
		return domain.Provider{}, err
	}
	if p.DepartmentId != departmentId {
		return domain.Provider{}, errors.NotFound("Provider not found")
	}
	return p, nil
}

func providerResponse(p domain.Provider) api.ProviderResponse {
	return api.ProviderResponse{
		Id:           p.Id,
		Name:         p.Name,
		ProfileColor: p.ProfileColor,
		Email:        p.Email,
		PhoneNumber:  p.PhoneNumber,
		PagerNumber:  p.PagerNumber,
		OfficeNumber: p.OfficeNumber,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
