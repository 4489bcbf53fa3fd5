package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/techflow-dev/techflow/internal/domain"
	internal_errors "github.com/techflow-dev/techflow/internal/errors"
)

const fileColumns = `id, name, kind, file_type, file_url, public_id, size, parent_id, uploaded_by, department_id, created`

func (s *Storage) CreateFile(file domain.File) (domain.File, error) {
	query := fmt.Sprintf(`
		INSERT INTO files(name, kind, file_type, file_url, public_id, size, parent_id, uploaded_by, department_id)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, fileColumns)
	f, err := scanFile(s.db.QueryRow(query,
		file.Name, file.Kind, file.FileType, file.FileUrl, file.PublicId,
		file.Size, nullInt64(file.ParentId), file.UploadedBy, file.DepartmentId))
	if err != nil {
		return domain.File{}, err
	}
	return f, nil
}

func (s *Storage) FileById(id domain.FileId) (domain.File, error) {
	query := fmt.Sprintf("SELECT %s FROM files WHERE id = $1", fileColumns)
	f, err := scanFile(s.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.File{}, internal_errors.NotFound("File not found")
		}
		return domain.File{}, err
	}
	return f, nil
}

// FilesByParent lists a folder's direct children, folders first;
// parentId == nil lists the department root.
func (s *Storage) FilesByParent(departmentId domain.DepartmentId, parentId *domain.FileId) ([]domain.File, error) {
	var rows *sql.Rows
	var err error
	if parentId == nil {
		rows, err = s.db.Query(fmt.Sprintf(
			"SELECT %s FROM files WHERE department_id = $1 AND parent_id IS NULL ORDER BY kind DESC, name", fileColumns), departmentId)
	} else {
		rows, err = s.db.Query(fmt.Sprintf(
			"SELECT %s FROM files WHERE department_id = $1 AND parent_id = $2 ORDER BY kind DESC, name", fileColumns), departmentId, *parentId)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []domain.File
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

func (s *Storage) DeleteFile(id domain.FileId) error {
	result, err := s.db.Exec("DELETE FROM files WHERE id = $1", id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return internal_errors.NotFound("File not found")
	}
	return nil
}

func scanFile(row rowScanner) (domain.File, error) {
	var f domain.File
	var parentId sql.NullInt64
	err := row.Scan(&f.Id, &f.Name, &f.Kind, &f.FileType, &f.FileUrl, &f.PublicId,
		&f.Size, &parentId, &f.UploadedBy, &f.DepartmentId, &f.CreatedAt)
	if err != nil {
		return domain.File{}, err
	}
	f.ParentId = int64Ptr(parentId)
	return f, nil
}
