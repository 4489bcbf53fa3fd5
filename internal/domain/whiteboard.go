package domain

import "time"

// Whiteboard is the single daily scheduling board of a department.
// Slot sections store raw ids; resolution to display data happens at
// read time so a deleted user or provider never corrupts the board.
type Whiteboard struct {
	Id               WhiteboardId
	DepartmentId     DepartmentId
	Coverage         Coverage
	Outpatients      Outpatients
	ReadingProviders ReadingProviders
	Comments         []string
	Birthdays        []string
	Anniversaries    []string
	LastUpdatedBy    UserId
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Coverage holds the inpatient duty assignments. The json tags double
// as the storage encoding for the section's jsonb column.
type Coverage struct {
	OnCall    []UserId `json:"onCall"`
	SurgCall  []UserId `json:"surgCall"`
	Scanning  []UserId `json:"scanning"`
	Surgicals []UserId `json:"surgicals"`
	Wada      []UserId `json:"wada"`
}

// Outpatients holds the outpatient appointment slots. At most two of
// the three 8 AM slots may be staffed at once.
type Outpatients struct {
	Np8am  []UserId `json:"np8am"`
	Op8am1 []UserId `json:"op8am1"`
	Op8am2 []UserId `json:"op8am2"`
	Op10am []UserId `json:"op10am"`
	Op12pm []UserId `json:"op12pm"`
	Op2pm  []UserId `json:"op2pm"`
}

// ReadingProviders holds single-provider reading slots. Routine (all
// day) is mutually exclusive with the RoutineAM/RoutinePM pair.
type ReadingProviders struct {
	Emu       *ProviderId `json:"emu"`
	Ltm       *ProviderId `json:"ltm"`
	Routine   *ProviderId `json:"routine"`
	RoutineAM *ProviderId `json:"routineAM"`
	RoutinePM *ProviderId `json:"routinePM"`
}

// WhiteboardPatch is a section-level replace: a non-nil section
// overwrites the stored one wholesale, a nil section is untouched.
type WhiteboardPatch struct {
	Coverage         *Coverage
	Outpatients      *Outpatients
	ReadingProviders *ReadingProviders
	Comments         *[]string
	Birthdays        *[]string
	Anniversaries    *[]string
}
