package pg

import (
	"database/sql"
	"errors"

	"github.com/techflow-dev/techflow/internal/domain"
	internal_errors "github.com/techflow-dev/techflow/internal/errors"
)

func (s *Storage) CreateDepartment(name, inviteToken, adminInviteToken string) (domain.Department, error) {
	var d domain.Department
	err := s.db.QueryRow(`
		INSERT INTO departments(name, invite_token, admin_invite_token)
		VALUES($1, $2, $3)
		RETURNING id, name, invite_token, admin_invite_token, created`,
		name, inviteToken, adminInviteToken,
	).Scan(&d.Id, &d.Name, &d.InviteToken, &d.AdminInviteToken, &d.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Department{}, alreadyExists("Department already exists")
		}
		return domain.Department{}, err
	}
	return d, nil
}

func (s *Storage) DepartmentById(id domain.DepartmentId) (domain.Department, error) {
	return s.department("SELECT id, name, invite_token, admin_invite_token, created FROM departments WHERE id = $1", id)
}

func (s *Storage) DepartmentByInviteToken(token string) (domain.Department, error) {
	return s.department("SELECT id, name, invite_token, admin_invite_token, created FROM departments WHERE invite_token = $1", token)
}

func (s *Storage) department(query string, arg interface{}) (domain.Department, error) {
	var d domain.Department
	err := s.db.QueryRow(query, arg).Scan(&d.Id, &d.Name, &d.InviteToken, &d.AdminInviteToken, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Department{}, internal_errors.NotFound("Department not found")
		}
		return domain.Department{}, err
	}
	return d, nil
}
