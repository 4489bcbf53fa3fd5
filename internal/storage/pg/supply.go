package pg

import (
	"github.com/lib/pq"

	"github.com/techflow-dev/techflow/internal/domain"
)

const supplyColumns = `id, department_id, storage_room, items, last_updated_by, created, updated`

func (s *Storage) SuppliesByDepartment(departmentId domain.DepartmentId) ([]domain.Supply, error) {
	rows, err := s.db.Query(
		"SELECT "+supplyColumns+" FROM supplies WHERE department_id = $1 ORDER BY storage_room", departmentId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var supplies []domain.Supply
	for rows.Next() {
		sup, err := scanSupply(rows)
		if err != nil {
			return nil, err
		}
		supplies = append(supplies, sup)
	}
	return supplies, rows.Err()
}

// UpsertSupply replaces a storage room's item list wholesale, creating
// the row on first touch. Same last-writer-wins shape as the whiteboard.
func (s *Storage) UpsertSupply(departmentId domain.DepartmentId, storageRoom string, items []string, updatedBy domain.UserId) (domain.Supply, error) {
	sup, err := scanSupply(s.db.QueryRow(`
		INSERT INTO supplies(department_id, storage_room, items, last_updated_by)
		VALUES($1, $2, $3, $4)
		ON CONFLICT (department_id, storage_room)
		DO UPDATE SET items = EXCLUDED.items, last_updated_by = EXCLUDED.last_updated_by, updated = now()
		RETURNING `+supplyColumns,
		departmentId, storageRoom, pq.Array(items), updatedBy))
	if err != nil {
		return domain.Supply{}, err
	}
	return sup, nil
}

func scanSupply(row rowScanner) (domain.Supply, error) {
	var sup domain.Supply
	var items domain.StringList
	err := row.Scan(&sup.Id, &sup.DepartmentId, &sup.StorageRoom, &items, &sup.LastUpdatedBy, &sup.CreatedAt, &sup.UpdatedAt)
	if err != nil {
		return domain.Supply{}, err
	}
	sup.Items = items
	return sup, nil
}
