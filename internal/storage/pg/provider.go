package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/techflow-dev/techflow/internal/domain"
	internal_errors "github.com/techflow-dev/techflow/internal/errors"
)

const providerColumns = `id, name, profile_color, email, phone_number, pager_number, office_number, department_id, created, updated`

func (s *Storage) CreateProvider(data domain.ProviderCreationData) (domain.Provider, error) {
	query := fmt.Sprintf(`
		INSERT INTO providers(name, profile_color, email, phone_number, pager_number, office_number, department_id)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, providerColumns)
	p, err := scanProvider(s.db.QueryRow(query,
		data.Name, nullString(data.ProfileColor), data.Email, data.PhoneNumber,
		data.PagerNumber, data.OfficeNumber, data.DepartmentId))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Provider{}, alreadyExists("Provider already exists")
		}
		return domain.Provider{}, err
	}
	return p, nil
}

func (s *Storage) ProviderById(id domain.ProviderId) (domain.Provider, error) {
	query := fmt.Sprintf("SELECT %s FROM providers WHERE id = $1", providerColumns)
	p, err := scanProvider(s.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Provider{}, internal_errors.NotFound("Provider not found")
		}
		return domain.Provider{}, err
	}
	return p, nil
}

func (s *Storage) ProvidersByDepartment(departmentId domain.DepartmentId) ([]domain.Provider, error) {
	query := fmt.Sprintf("SELECT %s FROM providers WHERE department_id = $1 ORDER BY name", providerColumns)
	return s.providers(query, departmentId)
}

func (s *Storage) ProvidersByIds(ids []domain.ProviderId) ([]domain.Provider, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf("SELECT %s FROM providers WHERE id = ANY($1)", providerColumns)
	return s.providers(query, pq.Array(ids))
}

func (s *Storage) providers(query string, arg interface{}) ([]domain.Provider, error) {
	rows, err := s.db.Query(query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var providers []domain.Provider
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, rows.Err()
}

func (s *Storage) UpdateProvider(id domain.ProviderId, data domain.ProviderUpdateData) (domain.Provider, error) {
	sets := []string{"updated = now()"}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if data.Name != nil {
		add("name", *data.Name)
	}
	if data.ProfileColor != nil {
		add("profile_color", *data.ProfileColor)
	}
	if data.Email != nil {
		add("email", *data.Email)
	}
	if data.PhoneNumber != nil {
		add("phone_number", *data.PhoneNumber)
	}
	if data.PagerNumber != nil {
		add("pager_number", *data.PagerNumber)
	}
	if data.OfficeNumber != nil {
		add("office_number", *data.OfficeNumber)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE providers SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), providerColumns)

	p, err := scanProvider(s.db.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Provider{}, internal_errors.NotFound("Provider not found")
		}
		if isUniqueViolation(err) {
			return domain.Provider{}, alreadyExists("Provider already exists")
		}
		return domain.Provider{}, err
	}
	return p, nil
}

func (s *Storage) DeleteProvider(id domain.ProviderId) error {
	result, err := s.db.Exec("DELETE FROM providers WHERE id = $1", id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return internal_errors.NotFound("Provider not found")
	}
	return nil
}

func scanProvider(row rowScanner) (domain.Provider, error) {
	var p domain.Provider
	var color sql.NullString
	err := row.Scan(&p.Id, &p.Name, &color, &p.Email, &p.PhoneNumber, &p.PagerNumber,
		&p.OfficeNumber, &p.DepartmentId, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Provider{}, err
	}
	p.ProfileColor = stringPtr(color)
	return p, nil
}
