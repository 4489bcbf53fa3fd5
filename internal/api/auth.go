package api

// Request DTOs

type RegisterRequest struct {
	Name                  string  `json:"name" validate:"required"`
	Email                 string  `json:"email" validate:"required,email"`
	Password              string  `json:"password" validate:"required,min=8"`
	ProfileImageUrl       *string `json:"profileImageUrl,omitempty"`
	ProfileColor          *string `json:"profileColor,omitempty"`
	PhoneNumber           string  `json:"phoneNumber,omitempty"`
	PagerNumber           string  `json:"pagerNumber,omitempty"`
	DepartmentInviteToken string  `json:"departmentInviteToken" validate:"required"`
	AdminInviteToken      string  `json:"adminInviteToken,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries a partial profile update; nil fields are
// untouched. ClearProfileImage switches the user back to a plain color
// and removes the stored image.
type UpdateProfileRequest struct {
	Name                 *string `json:"name,omitempty"`
	Email                *string `json:"email,omitempty" validate:"omitempty,email"`
	Password             *string `json:"password,omitempty" validate:"omitempty,min=8"`
	PhoneNumber          *string `json:"phoneNumber,omitempty"`
	PagerNumber          *string `json:"pagerNumber,omitempty"`
	ProfileImageUrl      *string `json:"profileImageUrl,omitempty"`
	ProfileImagePublicId *string `json:"profileImagePublicId,omitempty"`
	ClearProfileImage    bool    `json:"clearProfileImage,omitempty"`
	ProfileColor         *string `json:"profileColor,omitempty"`
	AdminInviteToken     *string `json:"adminInviteToken,omitempty"`
}

// Response DTOs

type DepartmentRef struct {
	Id   int64  `json:"id"`
	Name string `json:"departmentName"`
}

// ProfileResponse is returned by register/login/profile endpoints.
// Token is only present when the call (re)issues one.
type ProfileResponse struct {
	Id              int64         `json:"id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Role            string        `json:"role"`
	ProfileImageUrl *string       `json:"profileImageUrl"`
	ProfileColor    *string       `json:"profileColor"`
	PhoneNumber     string        `json:"phoneNumber"`
	PagerNumber     string        `json:"pagerNumber"`
	Department      DepartmentRef `json:"departmentId"`
	Token           string        `json:"token,omitempty"`
}

type UploadImageResponse struct {
	ImageUrl string `json:"imageUrl"`
	PublicId string `json:"publicId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
