package domain

import "time"

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type User struct {
	Id                   UserId
	Name                 string
	Email                Email
	PassHash             string
	ProfileImageUrl      *string
	ProfileImagePublicId *string
	ProfileColor         *string
	Role                 string
	PhoneNumber          string
	PagerNumber          string
	DepartmentId         DepartmentId
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Credentials struct {
	Email    Email
	Password string
}

type UserCreationData struct {
	Name            string
	Email           Email
	PassHash        string
	ProfileImageUrl *string
	ProfileColor    *string
	Role            string
	PhoneNumber     string
	PagerNumber     string
	DepartmentId    DepartmentId
}

// ProfileImage pairs the served url with the object-store public id so
// the old object can be removed when the image changes.
type ProfileImage struct {
	Url      *string
	PublicId *string
}

// UserUpdateData is a partial update; nil fields are left unchanged.
// A non-nil ProfileImage with nil members clears the stored image.
type UserUpdateData struct {
	Name         *string
	Email        *string
	PassHash     *string
	ProfileImage *ProfileImage
	ProfileColor *string
	Role         *string
	PhoneNumber  *string
	PagerNumber  *string
}
