package pg

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/techflow-dev/techflow/internal/domain"
	internal_errors "github.com/techflow-dev/techflow/internal/errors"
)

const whiteboardColumns = `id, department_id, coverage, outpatients, reading_providers,
	comments, birthdays, anniversaries, last_updated_by, created, updated`

// Whiteboard fetches the department's board. Returns 404 if the
// department was never touched; callers normally go through
// GetOrCreateWhiteboard instead.
func (s *Storage) Whiteboard(departmentId domain.DepartmentId) (domain.Whiteboard, error) {
	query := fmt.Sprintf("SELECT %s FROM whiteboards WHERE department_id = $1", whiteboardColumns)
	wb, err := scanWhiteboard(s.db.QueryRow(query, departmentId))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Whiteboard{}, internal_errors.NotFound("Whiteboard not found")
		}
		return domain.Whiteboard{}, err
	}
	return wb, nil
}

// GetOrCreateWhiteboard lazily creates the department's board with
// empty sections. ON CONFLICT DO NOTHING keeps the operation idempotent
// under concurrent first reads: exactly one row per department exists
// afterwards regardless of who raced.
func (s *Storage) GetOrCreateWhiteboard(departmentId domain.DepartmentId, requestedBy domain.UserId) (domain.Whiteboard, error) {
	coverage, outpatients, readingProviders, err := marshalSections(
		&domain.Coverage{}, &domain.Outpatients{}, &domain.ReadingProviders{})
	if err != nil {
		return domain.Whiteboard{}, err
	}

	_, err = s.db.Exec(`
		INSERT INTO whiteboards(department_id, coverage, outpatients, reading_providers, comments, birthdays, anniversaries, last_updated_by)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (department_id) DO NOTHING`,
		departmentId, coverage, outpatients, readingProviders,
		pq.Array([]string{}), pq.Array([]string{}), pq.Array([]string{}), requestedBy)
	if err != nil {
		return domain.Whiteboard{}, err
	}

	return s.Whiteboard(departmentId)
}

// UpdateWhiteboardSections applies a section-level patch: only sections
// present in the patch are SET, each overwriting the stored value
// wholesale. Because every section is its own column, two concurrent
// updates touching different sections both survive; a same-section race
// is last-writer-wins.
func (s *Storage) UpdateWhiteboardSections(departmentId domain.DepartmentId, updatedBy domain.UserId, patch domain.WhiteboardPatch) (domain.Whiteboard, error) {
	sets := []string{"updated = now()"}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	add("last_updated_by", updatedBy)
	if patch.Coverage != nil {
		raw, err := json.Marshal(patch.Coverage)
		if err != nil {
			return domain.Whiteboard{}, err
		}
		add("coverage", raw)
	}
	if patch.Outpatients != nil {
		raw, err := json.Marshal(patch.Outpatients)
		if err != nil {
			return domain.Whiteboard{}, err
		}
		add("outpatients", raw)
	}
	if patch.ReadingProviders != nil {
		raw, err := json.Marshal(patch.ReadingProviders)
		if err != nil {
			return domain.Whiteboard{}, err
		}
		add("reading_providers", raw)
	}
	if patch.Comments != nil {
		add("comments", pq.Array(*patch.Comments))
	}
	if patch.Birthdays != nil {
		add("birthdays", pq.Array(*patch.Birthdays))
	}
	if patch.Anniversaries != nil {
		add("anniversaries", pq.Array(*patch.Anniversaries))
	}

	args = append(args, departmentId)
	query := fmt.Sprintf("UPDATE whiteboards SET %s WHERE department_id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), whiteboardColumns)

	wb, err := scanWhiteboard(s.db.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Whiteboard{}, internal_errors.NotFound("Whiteboard not found")
		}
		return domain.Whiteboard{}, err
	}
	return wb, nil
}

func marshalSections(c *domain.Coverage, o *domain.Outpatients, rp *domain.ReadingProviders) ([]byte, []byte, []byte, error) {
	coverage, err := json.Marshal(c)
	if err != nil {
		return nil, nil, nil, err
	}
	outpatients, err := json.Marshal(o)
	if err != nil {
		return nil, nil, nil, err
	}
	readingProviders, err := json.Marshal(rp)
	if err != nil {
		return nil, nil, nil, err
	}
	return coverage, outpatients, readingProviders, nil
}

func scanWhiteboard(row rowScanner) (domain.Whiteboard, error) {
	var wb domain.Whiteboard
	var coverage, outpatients, readingProviders []byte
	var comments, birthdays, anniversaries domain.StringList
	err := row.Scan(&wb.Id, &wb.DepartmentId, &coverage, &outpatients, &readingProviders,
		&comments, &birthdays, &anniversaries, &wb.LastUpdatedBy, &wb.CreatedAt, &wb.UpdatedAt)
	if err != nil {
		return domain.Whiteboard{}, err
	}
	if err := json.Unmarshal(coverage, &wb.Coverage); err != nil {
		return domain.Whiteboard{}, err
	}
	if err := json.Unmarshal(outpatients, &wb.Outpatients); err != nil {
		return domain.Whiteboard{}, err
	}
	if err := json.Unmarshal(readingProviders, &wb.ReadingProviders); err != nil {
		return domain.Whiteboard{}, err
	}
	wb.Comments = comments
	wb.Birthdays = birthdays
	wb.Anniversaries = anniversaries
	return wb, nil
}
