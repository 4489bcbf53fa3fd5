package service

import (
	"strings"

	"github.com/techflow-dev/techflow/internal/api"
	"github.com/techflow-dev/techflow/internal/domain"
	"github.com/techflow-dev/techflow/internal/errors"
)

type StationService interface {
	List(departmentId domain.DepartmentId, filter string) ([]api.StationResponse, error)
	Create(departmentId domain.DepartmentId, req api.CreateStationRequest) (api.StationResponse, error)
	Update(departmentId domain.DepartmentId, id domain.StationId, req api.UpdateStationRequest) (api.StationResponse, error)
	Delete(departmentId domain.DepartmentId, id domain.StationId) error
}

type StationStorage interface {
	CreateStation(station domain.ComStation) (domain.ComStation, error)
	StationById(id domain.StationId) (domain.ComStation, error)
	StationsByDepartment(departmentId domain.DepartmentId, filter domain.StationFilter) ([]domain.ComStation, error)
	UpdateStation(station domain.ComStation) (domain.ComStation, error)
	DeleteStation(id domain.StationId) error
}

type Station struct {
	storage StationStorage
}

func NewStation(storage StationStorage) *Station {
	return &Station{storage: storage}
}

// parseFilter maps the dashboard's combined type query values onto
// column filters. "EEG Cart - Inpatient" narrows both type and
// location; a bare type or status narrows one column; empty or "All"
// matches everything.
func parseFilter(filter string) (domain.StationFilter, error) {
	switch filter {
	case "", "All":
		return domain.StationFilter{}, nil
	case domain.StationTypeEmu:
		return domain.StationFilter{Type: domain.StationTypeEmu}, nil
	case domain.StationStatusActive, domain.StationStatusInactive:
		return domain.StationFilter{Status: filter}, nil
	}

	if rest, ok := strings.CutPrefix(filter, domain.StationTypeCart+" - "); ok {
		switch rest {
		case domain.StationLocationInpatient, domain.StationLocationOutpatient, domain.StationLocationBellevue:
			return domain.StationFilter{Type: domain.StationTypeCart, Location: rest}, nil
		}
	}
	return domain.StationFilter{}, errors.BadRequest("Unknown station filter")
}

func (s *Station) List(departmentId domain.DepartmentId, filter string) ([]api.StationResponse, error) {
	parsed, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}
	stations, err := s.storage.StationsByDepartment(departmentId, parsed)
	if err != nil {
		return nil, err
	}
	resp := make([]api.StationResponse, 0, len(stations))
	for _, st := range stations {
		resp = append(resp, stationResponse(st))
	}
	return resp, nil
}

func (s *Station) Create(departmentId domain.DepartmentId, req api.CreateStationRequest) (api.StationResponse, error) {
	station := domain.ComStation{
		Name:             req.Name,
		Type:             req.Type,
		Location:         req.Location,
		Status:           req.Status,
		IssueDescription: req.IssueDescription,
		HasTicket:        req.HasTicket,
		TicketNumber:     req.TicketNumber,
		DepartmentId:     departmentId,
	}
	if station.Status == "" {
		station.Status = domain.StationStatusActive
	}
	normalizeIssue(&station)

	created, err := s.storage.CreateStation(station)
	if err != nil {
		return api.StationResponse{}, err
	}
	return stationResponse(created), nil
}

func (s *Station) Update(departmentId domain.DepartmentId, id domain.StationId, req api.UpdateStationRequest) (api.StationResponse, error) {
	station, err := s.departmentStation(departmentId, id)
	if err != nil {
		return api.StationResponse{}, err
	}

	if req.Type != nil {
		station.Type = *req.Type
	}
	if req.Location != nil {
		station.Location = *req.Location
	}
	if req.Status != nil {
		station.Status = *req.Status
	}
	if req.IssueDescription != nil {
		station.IssueDescription = *req.IssueDescription
	}
	if req.HasTicket != nil {
		station.HasTicket = *req.HasTicket
	}
	if req.TicketNumber != nil {
		station.TicketNumber = *req.TicketNumber
	}
	normalizeIssue(&station)

	updated, err := s.storage.UpdateStation(station)
	if err != nil {
		return api.StationResponse{}, err
	}
	return stationResponse(updated), nil
}

func (s *Station) Delete(departmentId domain.DepartmentId, id domain.StationId) error {
	if _, err := s.departmentStation(departmentId, id); err != nil {
		return err
	}
	return s.storage.DeleteStation(id)
}

func (s *Station) departmentStation(departmentId domain.DepartmentId, id domain.StationId) (domain.ComStation, error) {
	station, err := s.storage.StationById(id)
	if err != nil {
		return domain.ComStation{}, err
	}
	if station.DepartmentId != departmentId {
		return domain.ComStation{}, errors.NotFound("Computer station not found")
	}
	return station, nil
}

// normalizeIssue keeps the issue fields consistent with the status:
// an Active station has no open issue, so the description and ticket
// are cleared on reactivation.
func normalizeIssue(station *domain.ComStation) {
	if station.Status == domain.StationStatusActive {
		station.IssueDescription = ""
		station.HasTicket = false
		station.TicketNumber = ""
	}
}

func stationResponse(st domain.ComStation) api.StationResponse {
	return api.StationResponse{
		Id:               st.Id,
		Name:             st.Name,
		Type:             st.Type,
		Location:         st.Location,
		Status:           st.Status,
		IssueDescription: st.IssueDescription,
		HasTicket:        st.HasTicket,
		TicketNumber:     st.TicketNumber,
		CreatedAt:        st.CreatedAt,
		UpdatedAt:        st.UpdatedAt,
	}
}
