package api

import (
	"time"

	"github.com/techflow-dev/techflow/internal/domain"
)

// Request DTOs

// UpdateWhiteboardRequest is a section-level patch: a present section
// fully replaces the stored one, an omitted section is left untouched.
type UpdateWhiteboardRequest struct {
	Coverage         *domain.Coverage         `json:"coverage,omitempty"`
	Outpatients      *domain.Outpatients      `json:"outpatients,omitempty"`
	ReadingProviders *domain.ReadingProviders `json:"readingProviders,omitempty"`
	Comments         *[]string                `json:"comments,omitempty"`
	Birthdays        *[]string                `json:"birthdays,omitempty"`
	Anniversaries    *[]string                `json:"anniversaries,omitempty"`
}

func (r UpdateWhiteboardRequest) Patch() domain.WhiteboardPatch {
	return domain.WhiteboardPatch{
		Coverage:         r.Coverage,
		Outpatients:      r.Outpatients,
		ReadingProviders: r.ReadingProviders,
		Comments:         r.Comments,
		Birthdays:        r.Birthdays,
		Anniversaries:    r.Anniversaries,
	}
}

// Response DTOs
// On read, raw ids are expanded to display cards.

type UserCard struct {
	Id              int64   `json:"id"`
	Name            string  `json:"name"`
	ProfileImageUrl *string `json:"profileImageUrl"`
	ProfileColor    *string `json:"profileColor"`
}

type ProviderCard struct {
	Id           int64   `json:"id"`
	Name         string  `json:"name"`
	ProfileColor *string `json:"profileColor"`
}

type ResolvedCoverage struct {
	OnCall    []UserCard `json:"onCall"`
	SurgCall  []UserCard `json:"surgCall"`
	Scanning  []UserCard `json:"scanning"`
	Surgicals []UserCard `json:"surgicals"`
	Wada      []UserCard `json:"wada"`
}

type ResolvedOutpatients struct {
	Np8am  []UserCard `json:"np8am"`
	Op8am1 []UserCard `json:"op8am1"`
	Op8am2 []UserCard `json:"op8am2"`
	Op10am []UserCard `json:"op10am"`
	Op12pm []UserCard `json:"op12pm"`
	Op2pm  []UserCard `json:"op2pm"`
}

type ResolvedReadingProviders struct {
	Emu       *ProviderCard `json:"emu"`
	Ltm       *ProviderCard `json:"ltm"`
	Routine   *ProviderCard `json:"routine"`
	RoutineAM *ProviderCard `json:"routineAM"`
	RoutinePM *ProviderCard `json:"routinePM"`
}

type WhiteboardResponse struct {
	Id               int64                    `json:"id"`
	Coverage         ResolvedCoverage         `json:"coverage"`
	Outpatients      ResolvedOutpatients      `json:"outpatients"`
	ReadingProviders ResolvedReadingProviders `json:"readingProviders"`
	Comments         []string                 `json:"comments"`
	Birthdays        []string                 `json:"birthdays"`
	Anniversaries    []string                 `json:"anniversaries"`
	LastUpdatedBy    *UserCard                `json:"lastUpdatedBy"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
}

type UpdateWhiteboardResponse struct {
	Message    string             `json:"message"`
	Whiteboard WhiteboardResponse `json:"whiteboard"`
}
