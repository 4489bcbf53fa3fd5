package service

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/techflow-dev/techflow/internal/api"
	"github.com/techflow-dev/techflow/internal/domain"
	"github.com/techflow-dev/techflow/internal/errors"
	"github.com/techflow-dev/techflow/internal/logger"
)

type AuthService interface {
	Register(req api.RegisterRequest) (Session, error)
	Login(creds domain.Credentials) (Session, error)
	Profile(userId domain.UserId) (Session, error)
	UpdateProfile(userId domain.UserId, req api.UpdateProfileRequest) (Session, error)
	DeleteAccount(userId domain.UserId) error
}

// Session bundles what the auth endpoints return: the user, their
// department, and a bearer token when the call (re)issues one.
type Session struct {
	User       domain.User
	Department domain.Department
	Token      string
}

func (s Session) Profile() api.ProfileResponse {
	return api.ProfileResponse{
		Id:              s.User.Id,
		Name:            s.User.Name,
		Email:           s.User.Email,
		Role:            s.User.Role,
		ProfileImageUrl: s.User.ProfileImageUrl,
		ProfileColor:    s.User.ProfileColor,
		PhoneNumber:     s.User.PhoneNumber,
		PagerNumber:     s.User.PagerNumber,
		Department:      api.DepartmentRef{Id: s.Department.Id, Name: s.Department.Name},
		Token:           s.Token,
	}
}

type AuthStorage interface {
	SaveUser(data domain.UserCreationData) (domain.User, error)
	UserByEmail(email domain.Email) (domain.User, error)
	UserById(id domain.UserId) (domain.User, error)
	UpdateUser(id domain.UserId, data domain.UserUpdateData) (domain.User, error)
	DeleteUser(id domain.UserId) error
	DepartmentById(id domain.DepartmentId) (domain.Department, error)
	DepartmentByInviteToken(token string) (domain.Department, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

// Invalidator lets the auth service drop cached directory entries after
// a profile mutation so whiteboard reads resolve fresh display data.
type Invalidator interface {
	Invalidate(departmentId domain.DepartmentId)
}

type Auth struct {
	storage   AuthStorage
	jwt       Jwt
	store     ObjectStore
	directory Invalidator
}

func NewAuth(storage AuthStorage, jwt Jwt, store ObjectStore, directory Invalidator) *Auth {
	return &Auth{storage: storage, jwt: jwt, store: store, directory: directory}
}

// Register creates an account in the department matching the invite
// token. A matching admin invite token grants the admin role.
func (a *Auth) Register(req api.RegisterRequest) (Session, error) {
	department, err := a.storage.DepartmentByInviteToken(req.DepartmentInviteToken)
	if err != nil {
		if errors.IsNotFound(err) {
			return Session{}, errors.Unauthorized("Invalid invite token. Please try again or contact the admin for the code")
		}
		return Session{}, err
	}

	role := domain.RoleMember
	if req.AdminInviteToken != "" && req.AdminInviteToken == department.AdminInviteToken {
		role = domain.RoleAdmin
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return Session{}, err
	}

	user, err := a.storage.SaveUser(domain.UserCreationData{
		Name:            req.Name,
		Email:           strings.ToLower(req.Email),
		PassHash:        string(passHash),
		ProfileImageUrl: req.ProfileImageUrl,
		ProfileColor:    req.ProfileColor,
		Role:            role,
		PhoneNumber:     req.PhoneNumber,
		PagerNumber:     req.PagerNumber,
		DepartmentId:    department.Id,
	})
	if err != nil {
		return Session{}, err
	}

	a.directory.Invalidate(department.Id)
	return a.session(user, department)
}

func (a *Auth) Login(creds domain.Credentials) (Session, error) {
	badCreds := &errors.ErrorWithStatusCode{Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}

	user, err := a.storage.UserByEmail(strings.ToLower(creds.Email))
	if err != nil {
		if errors.IsNotFound(err) {
			return Session{}, badCreds
		}
		return Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		return Session{}, badCreds
	}

	department, err := a.storage.DepartmentById(user.DepartmentId)
	if err != nil {
		return Session{}, err
	}
	return a.session(user, department)
}

// Profile returns the current user without issuing a new token.
func (a *Auth) Profile(userId domain.UserId) (Session, error) {
	user, err := a.storage.UserById(userId)
	if err != nil {
		return Session{}, err
	}
	department, err := a.storage.DepartmentById(user.DepartmentId)
	if err != nil {
		return Session{}, err
	}
	return Session{User: user, Department: department}, nil
}

func (a *Auth) UpdateProfile(userId domain.UserId, req api.UpdateProfileRequest) (Session, error) {
	user, err := a.storage.UserById(userId)
	if err != nil {
		return Session{}, err
	}
	department, err := a.storage.DepartmentById(user.DepartmentId)
	if err != nil {
		return Session{}, err
	}

	data := domain.UserUpdateData{
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PagerNumber:  req.PagerNumber,
		ProfileColor: req.ProfileColor,
	}

	// Image handling: a new image or a switch to plain color removes
	// the previously stored object. Store cleanup is best-effort; a
	// dangling object must not fail the profile update.
	if req.ProfileImageUrl != nil || req.ClearProfileImage {
		if user.ProfileImagePublicId != nil {
			if err := a.store.Destroy(*user.ProfileImagePublicId, "image"); err != nil {
				logger.Log.Warn("failed to remove old profile image", "publicId", *user.ProfileImagePublicId, "error", err)
			}
		}
		data.ProfileImage = &domain.ProfileImage{Url: req.ProfileImageUrl, PublicId: req.ProfileImagePublicId}
	}

	if req.AdminInviteToken != nil && *req.AdminInviteToken == department.AdminInviteToken {
		role := domain.RoleAdmin
		data.Role = &role
	}

	if req.Password != nil {
		passHash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Error("failed to hash password", "error", err)
			return Session{}, err
		}
		hash := string(passHash)
		data.PassHash = &hash
	}

	updated, err := a.storage.UpdateUser(userId, data)
	if err != nil {
		return Session{}, err
	}

	a.directory.Invalidate(department.Id)
	return a.session(updated, department)
}

func (a *Auth) DeleteAccount(userId domain.UserId) error {
	user, err := a.storage.UserById(userId)
	if err != nil {
		return err
	}
	if user.ProfileImagePublicId != nil {
		if err := a.store.Destroy(*user.ProfileImagePublicId, "image"); err != nil {
			logger.Log.Warn("failed to remove profile image", "publicId", *user.ProfileImagePublicId, "error", err)
		}
	}
	if err := a.storage.DeleteUser(userId); err != nil {
		return err
	}
	a.directory.Invalidate(user.DepartmentId)
	return nil
}

func (a *Auth) session(user domain.User, department domain.Department) (Session, error) {
	token, err := a.jwt.NewToken(user)
	if err != nil {
		return Session{}, err
	}
	return Session{User: user, Department: department, Token: token}, nil
}
