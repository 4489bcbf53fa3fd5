// Package validation holds the pure whiteboard scheduling checks. They
// encode board policy, not storage constraints, so both the API and any
// other mutation path run the exact same functions before persisting.
package validation

import "github.com/techflow-dev/techflow/internal/domain"

type Verdict int

const (
	OK Verdict = iota
	SlotLimitExceeded
	RoutineConflict
)

func (v Verdict) String() string {
	switch v {
	case OK:
		return "ok"
	case SlotLimitExceeded:
		return "slot_limit_exceeded"
	case RoutineConflict:
		return "routine_conflict"
	default:
		return "unknown"
	}
}

// Result is a tagged verdict so callers can branch deterministically
// instead of parsing error strings.
type Result struct {
	Verdict Verdict
	Message string
}

func (r Result) OK() bool {
	return r.Verdict == OK
}

// MaxMorningSlots is the number of 8 AM outpatient slots that can be
// staffed simultaneously.
const MaxMorningSlots = 2

// MorningSlots checks the 8 AM cap on a proposed outpatients section:
// no more than MaxMorningSlots of {np8am, op8am1, op8am2} may be
// non-empty at once.
func MorningSlots(proposed domain.Outpatients) Result {
	staffed := 0
	for _, slot := range [][]domain.UserId{proposed.Np8am, proposed.Op8am1, proposed.Op8am2} {
		if len(slot) > 0 {
			staffed++
		}
	}
	if staffed > MaxMorningSlots {
		return Result{
			Verdict: SlotLimitExceeded,
			Message: "Only two 8 AM outpatient slots can be staffed at the same time",
		}
	}
	return Result{Verdict: OK}
}

// RoutineProviders enforces routine-reading exclusivity: the all-day
// Routine slot and the RoutineAM/RoutinePM pair can never be held
// together. The section replaces the stored one wholesale, so the
// proposal is the post-write state; clearing one side and assigning
// the other in the same save is legal.
func RoutineProviders(proposed domain.ReadingProviders) Result {
	if proposed.Routine != nil && (proposed.RoutineAM != nil || proposed.RoutinePM != nil) {
		return Result{
			Verdict: RoutineConflict,
			Message: "Routine (all day) and Routine AM/PM cannot be assigned at the same time",
		}
	}
	return Result{Verdict: OK}
}

// Whiteboard validates a section-level patch. Each present section is
// checked as the full value it will be stored with; omitted sections
// keep their stored value and are presumed already valid.
func Whiteboard(patch domain.WhiteboardPatch) Result {
	if patch.Outpatients != nil {
		if res := MorningSlots(*patch.Outpatients); !res.OK() {
			return res
		}
	}
	if patch.ReadingProviders != nil {
		if res := RoutineProviders(*patch.ReadingProviders); !res.OK() {
			return res
		}
	}
	return Result{Verdict: OK}
}
