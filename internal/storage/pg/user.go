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

const userColumns = `id, name, email, pass_hash, profile_image_url, profile_image_public_id,
	profile_color, role, phone_number, pager_number, department_id, created, updated`

func (s *Storage) SaveUser(data domain.UserCreationData) (domain.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users(name, email, pass_hash, profile_image_url, profile_color, role, phone_number, pager_number, department_id)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, userColumns)
	row := s.db.QueryRow(query,
		data.Name, strings.ToLower(data.Email), data.PassHash, nullString(data.ProfileImageUrl),
		nullString(data.ProfileColor), data.Role, data.PhoneNumber, data.PagerNumber, data.DepartmentId)
	u, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, alreadyExists("User already exists")
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *Storage) UserByEmail(email domain.Email) (domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = $1", userColumns)
	return s.user(query, strings.ToLower(email))
}

func (s *Storage) UserById(id domain.UserId) (domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)
	return s.user(query, id)
}

func (s *Storage) user(query string, arg interface{}) (domain.User, error) {
	u, err := scanUser(s.db.QueryRow(query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *Storage) UsersByDepartment(departmentId domain.DepartmentId) ([]domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE department_id = $1 ORDER BY name", userColumns)
	return s.users(query, departmentId)
}

// UsersByIds fetches the given users in one query. Missing ids are
// simply absent from the result; the caller decides what a dangling
// reference means.
func (s *Storage) UsersByIds(ids []domain.UserId) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = ANY($1)", userColumns)
	return s.users(query, pq.Array(ids))
}

func (s *Storage) users(query string, arg interface{}) ([]domain.User, error) {
	rows, err := s.db.Query(query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Storage) UpdateUser(id domain.UserId, data domain.UserUpdateData) (domain.User, error) {
	sets := []string{"updated = now()"}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if data.Name != nil {
		add("name", *data.Name)
	}
	if data.Email != nil {
		add("email", strings.ToLower(*data.Email))
	}
	if data.PassHash != nil {
		add("pass_hash", *data.PassHash)
	}
	if data.ProfileImage != nil {
		add("profile_image_url", nullString(data.ProfileImage.Url))
		add("profile_image_public_id", nullString(data.ProfileImage.PublicId))
	}
	if data.ProfileColor != nil {
		add("profile_color", *data.ProfileColor)
	}
	if data.Role != nil {
		add("role", *data.Role)
	}
	if data.PhoneNumber != nil {
		add("phone_number", *data.PhoneNumber)
	}
	if data.PagerNumber != nil {
		add("pager_number", *data.PagerNumber)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), userColumns)

	u, err := scanUser(s.db.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		if isUniqueViolation(err) {
			return domain.User{}, alreadyExists("Email already taken")
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *Storage) DeleteUser(id domain.UserId) error {
	result, err := s.db.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return internal_errors.NotFound("User not found")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	var imageUrl, imagePublicId, color sql.NullString
	err := row.Scan(&u.Id, &u.Name, &u.Email, &u.PassHash, &imageUrl, &imagePublicId,
		&color, &u.Role, &u.PhoneNumber, &u.PagerNumber, &u.DepartmentId, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	u.ProfileImageUrl = stringPtr(imageUrl)
	u.ProfileImagePublicId = stringPtr(imagePublicId)
	u.ProfileColor = stringPtr(color)
	return u, nil
}
