package service

import (
	"github.com/techflow-dev/techflow/internal/api"
	"github.com/techflow-dev/techflow/internal/domain"
	"github.com/techflow-dev/techflow/internal/errors"
	"github.com/techflow-dev/techflow/internal/logger"
)

type UserService interface {
	List(departmentId domain.DepartmentId) ([]api.UserResponse, error)
	Get(departmentId domain.DepartmentId, id domain.UserId) (api.UserResponse, error)
	Delete(departmentId domain.DepartmentId, id domain.UserId) error
}

type UserStorage interface {
	UserById(id domain.UserId) (domain.User, error)
	UsersByDepartment(departmentId domain.DepartmentId) ([]domain.User, error)
	DeleteUser(id domain.UserId) error
}

type User struct {
	storage   UserStorage
	store     ObjectStore
	directory Invalidator
}

func NewUser(storage UserStorage, store ObjectStore, directory Invalidator) *User {
	return &User{storage: storage, store: store, directory: directory}
}

func (s *User) List(departmentId domain.DepartmentId) ([]api.UserResponse, error) {
	users, err := s.storage.UsersByDepartment(departmentId)
	if err != nil {
		return nil, err
	}
	resp := make([]api.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userResponse(u))
	}
	return resp, nil
}

func (s *User) Get(departmentId domain.DepartmentId, id domain.UserId) (api.UserResponse, error) {
	u, err := s.departmentUser(departmentId, id)
	if err != nil {
		return api.UserResponse{}, err
	}
	return userResponse(u), nil
}

// Delete removes a team member (admin action) along with their stored
// profile image. Image cleanup is best-effort.
func (s *User) Delete(departmentId domain.DepartmentId, id domain.UserId) error {
	u, err := s.departmentUser(departmentId, id)
	if err != nil {
		return err
	}
	if u.ProfileImagePublicId != nil {
		if err := s.store.Destroy(*u.ProfileImagePublicId, "image"); err != nil {
			logger.Log.Warn("failed to remove profile image", "publicId", *u.ProfileImagePublicId, "error", err)
		}
	}
	if err := s.storage.DeleteUser(id); err != nil {
		return err
	}
	s.directory.Invalidate(departmentId)
	return nil
}

// departmentUser fetches the user and hides users of other departments
// behind the same 404 as a missing id.
func (s *User) departmentUser(departmentId domain.DepartmentId, id domain.UserId) (domain.User, error) {
	u, err := s.storage.UserById(id)
	if err != nil {
		return domain.User{}, err
	}
	if u.DepartmentId != departmentId {
		return domain.User{}, errors.NotFound("User not found")
	}
	return u, nil
}

func userResponse(u domain.User) api.UserResponse {
	return api.UserResponse{
		Id:              u.Id,
		Name:            u.Name,
		Email:           u.Email,
		Role:            u.Role,
		ProfileImageUrl: u.ProfileImageUrl,
		ProfileColor:    u.ProfileColor,
		PhoneNumber:     u.PhoneNumber,
		PagerNumber:     u.PagerNumber,
		CreatedAt:       u.CreatedAt,
	}
}
