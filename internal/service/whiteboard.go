package service

import (
	"net/http"

	"github.com/microcosm-cc/bluemonday"

	"github.com/techflow-dev/techflow/internal/api"
	"github.com/techflow-dev/techflow/internal/domain"
	"github.com/techflow-dev/techflow/internal/errors"
	"github.com/techflow-dev/techflow/internal/validation"
)

// to mock service in tests
type WhiteboardService interface {
	GetOrCreate(departmentId domain.DepartmentId, userId domain.UserId) (api.WhiteboardResponse, error)
	Replace(departmentId domain.DepartmentId, userId domain.UserId, patch domain.WhiteboardPatch) (api.WhiteboardResponse, error)
}

type WhiteboardStorage interface {
	GetOrCreateWhiteboard(departmentId domain.DepartmentId, requestedBy domain.UserId) (domain.Whiteboard, error)
	UpdateWhiteboardSections(departmentId domain.DepartmentId, updatedBy domain.UserId, patch domain.WhiteboardPatch) (domain.Whiteboard, error)
}

// Directory resolves raw ids into display data for read responses.
type Directory interface {
	Users(departmentId domain.DepartmentId) (map[domain.UserId]domain.User, error)
	Providers(departmentId domain.DepartmentId) (map[domain.ProviderId]domain.Provider, error)
}

type Whiteboard struct {
	storage   WhiteboardStorage
	directory Directory
	sanitizer *bluemonday.Policy
}

func NewWhiteboard(storage WhiteboardStorage, directory Directory) *Whiteboard {
	return &Whiteboard{
		storage:   storage,
		directory: directory,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// GetOrCreate returns the department's resolved board, lazily creating
// an empty one attributed to the requesting user. Idempotent: repeated
// calls never create a second board.
func (s *Whiteboard) GetOrCreate(departmentId domain.DepartmentId, userId domain.UserId) (api.WhiteboardResponse, error) {
	wb, err := s.storage.GetOrCreateWhiteboard(departmentId, userId)
	if err != nil {
		return api.WhiteboardResponse{}, err
	}
	return s.resolve(wb)
}

// Replace applies a section-level patch. The slot checks run before
// anything is written, so a rejected update leaves the stored state
// untouched in full. A department with no board yet gets one seeded
// from the patch.
func (s *Whiteboard) Replace(departmentId domain.DepartmentId, userId domain.UserId, patch domain.WhiteboardPatch) (api.WhiteboardResponse, error) {
	if res := validation.Whiteboard(patch); !res.OK() {
		return api.WhiteboardResponse{}, &errors.ErrorWithStatusCode{Message: res.Message, StatusCode: http.StatusBadRequest}
	}

	s.sanitizeLists(&patch)

	updated, err := s.storage.UpdateWhiteboardSections(departmentId, userId, patch)
	if errors.IsNotFound(err) {
		if _, createErr := s.storage.GetOrCreateWhiteboard(departmentId, userId); createErr != nil {
			return api.WhiteboardResponse{}, createErr
		}
		updated, err = s.storage.UpdateWhiteboardSections(departmentId, userId, patch)
	}
	if err != nil {
		return api.WhiteboardResponse{}, err
	}
	return s.resolve(updated)
}

// sanitizeLists strips markup from the free-text sections before they
// are stored and later rendered by the dashboard.
func (s *Whiteboard) sanitizeLists(patch *domain.WhiteboardPatch) {
	for _, list := range []*[]string{patch.Comments, patch.Birthdays, patch.Anniversaries} {
		if list == nil {
			continue
		}
		for i, text := range *list {
			(*list)[i] = s.sanitizer.Sanitize(text)
		}
	}
}

// resolve expands user and provider ids into display cards. Dangling
// references (entity deleted since assignment) are dropped from lists
// and nulled for single slots rather than failing the read.
func (s *Whiteboard) resolve(wb domain.Whiteboard) (api.WhiteboardResponse, error) {
	users, err := s.directory.Users(wb.DepartmentId)
	if err != nil {
		return api.WhiteboardResponse{}, err
	}
	providers, err := s.directory.Providers(wb.DepartmentId)
	if err != nil {
		return api.WhiteboardResponse{}, err
	}

	userCards := func(ids []domain.UserId) []api.UserCard {
		cards := make([]api.UserCard, 0, len(ids))
		for _, id := range ids {
			if u, ok := users[id]; ok {
				cards = append(cards, userCard(u))
			}
		}
		return cards
	}
	providerCard := func(id *domain.ProviderId) *api.ProviderCard {
		if id == nil {
			return nil
		}
		p, ok := providers[*id]
		if !ok {
			return nil
		}
		return &api.ProviderCard{Id: p.Id, Name: p.Name, ProfileColor: p.ProfileColor}
	}

	resp := api.WhiteboardResponse{
		Id: wb.Id,
		Coverage: api.ResolvedCoverage{
			OnCall:    userCards(wb.Coverage.OnCall),
			SurgCall:  userCards(wb.Coverage.SurgCall),
			Scanning:  userCards(wb.Coverage.Scanning),
			Surgicals: userCards(wb.Coverage.Surgicals),
			Wada:      userCards(wb.Coverage.Wada),
		},
		Outpatients: api.ResolvedOutpatients{
			Np8am:  userCards(wb.Outpatients.Np8am),
			Op8am1: userCards(wb.Outpatients.Op8am1),
			Op8am2: userCards(wb.Outpatients.Op8am2),
			Op10am: userCards(wb.Outpatients.Op10am),
			Op12pm: userCards(wb.Outpatients.Op12pm),
			Op2pm:  userCards(wb.Outpatients.Op2pm),
		},
		ReadingProviders: api.ResolvedReadingProviders{
			Emu:       providerCard(wb.ReadingProviders.Emu),
			Ltm:       providerCard(wb.ReadingProviders.Ltm),
			Routine:   providerCard(wb.ReadingProviders.Routine),
			RoutineAM: providerCard(wb.ReadingProviders.RoutineAM),
			RoutinePM: providerCard(wb.ReadingProviders.RoutinePM),
		},
		Comments:      emptyIfNil(wb.Comments),
		Birthdays:     emptyIfNil(wb.Birthdays),
		Anniversaries: emptyIfNil(wb.Anniversaries),
		CreatedAt:     wb.CreatedAt,
		UpdatedAt:     wb.UpdatedAt,
	}
	if u, ok := users[wb.LastUpdatedBy]; ok {
		card := userCard(u)
		resp.LastUpdatedBy = &card
	}
	return resp, nil
}

func userCard(u domain.User) api.UserCard {
	return api.UserCard{Id: u.Id, Name: u.Name, ProfileImageUrl: u.ProfileImageUrl, ProfileColor: u.ProfileColor}
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
