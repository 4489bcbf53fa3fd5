package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/techflow-dev/techflow/internal/domain"
	internal_errors "github.com/techflow-dev/techflow/internal/errors"
)

const stationColumns = `id, name, type, location, status, issue_description, has_ticket, ticket_number, department_id, created, updated`

func (s *Storage) CreateStation(station domain.ComStation) (domain.ComStation, error) {
	query := fmt.Sprintf(`
		INSERT INTO com_stations(name, type, location, status, issue_description, has_ticket, ticket_number, department_id)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`, stationColumns)
	st, err := scanStation(s.db.QueryRow(query,
		station.Name, station.Type, station.Location, station.Status,
		station.IssueDescription, station.HasTicket, station.TicketNumber, station.DepartmentId))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ComStation{}, alreadyExists("Computer station already exists")
		}
		return domain.ComStation{}, err
	}
	return st, nil
}

func (s *Storage) StationById(id domain.StationId) (domain.ComStation, error) {
	query := fmt.Sprintf("SELECT %s FROM com_stations WHERE id = $1", stationColumns)
	st, err := scanStation(s.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ComStation{}, internal_errors.NotFound("Computer station not found")
		}
		return domain.ComStation{}, err
	}
	return st, nil
}

func (s *Storage) StationsByDepartment(departmentId domain.DepartmentId, filter domain.StationFilter) ([]domain.ComStation, error) {
	conditions := []string{"department_id = $1"}
	args := []interface{}{departmentId}
	add := func(column, value string) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.Type != "" {
		add("type", filter.Type)
	}
	if filter.Location != "" {
		add("location", filter.Location)
	}
	if filter.Status != "" {
		add("status", filter.Status)
	}

	query := fmt.Sprintf("SELECT %s FROM com_stations WHERE %s ORDER BY created DESC",
		stationColumns, strings.Join(conditions, " AND "))
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []domain.ComStation
	for rows.Next() {
		st, err := scanStation(rows)
		if err != nil {
			return nil, err
		}
		stations = append(stations, st)
	}
	return stations, rows.Err()
}

// UpdateStation overwrites the mutable fields of one station.
func (s *Storage) UpdateStation(station domain.ComStation) (domain.ComStation, error) {
	query := fmt.Sprintf(`
		UPDATE com_stations
		SET type = $1, location = $2, status = $3, issue_description = $4, has_ticket = $5, ticket_number = $6, updated = now()
		WHERE id = $7
		RETURNING %s`, stationColumns)
	st, err := scanStation(s.db.QueryRow(query,
		station.Type, station.Location, station.Status,
		station.IssueDescription, station.HasTicket, station.TicketNumber, station.Id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ComStation{}, internal_errors.NotFound("Computer station not found")
		}
		return domain.ComStation{}, err
	}
	return st, nil
}

func (s *Storage) DeleteStation(id domain.StationId) error {
	result, err := s.db.Exec("DELETE FROM com_stations WHERE id = $1", id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return internal_errors.NotFound("Computer station not found")
	}
	return nil
}

func scanStation(row rowScanner) (domain.ComStation, error) {
	var st domain.ComStation
	err := row.Scan(&st.Id, &st.Name, &st.Type, &st.Location, &st.Status,
		&st.IssueDescription, &st.HasTicket, &st.TicketNumber, &st.DepartmentId, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		return domain.ComStation{}, err
	}
	return st, nil
}
