package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techflow-dev/techflow/internal/api"
	"github.com/techflow-dev/techflow/internal/config"
	"github.com/techflow-dev/techflow/internal/domain"
	internal_errors "github.com/techflow-dev/techflow/internal/errors"
	"github.com/techflow-dev/techflow/internal/service"
	"github.com/techflow-dev/techflow/internal/storage/cloudinary"
)

type MockAuthService struct {
	RegisterFunc      func(req api.RegisterRequest) (service.Session, error)
	LoginFunc         func(creds domain.Credentials) (service.Session, error)
	ProfileFunc       func(userId domain.UserId) (service.Session, error)
	UpdateProfileFunc func(userId domain.UserId, req api.UpdateProfileRequest) (service.Session, error)
	DeleteAccountFunc func(userId domain.UserId) error
}

func (m *MockAuthService) Register(req api.RegisterRequest) (service.Session, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(req)
	}
	return service.Session{
		User:       domain.User{Id: 1, Name: req.Name, Email: req.Email, Role: domain.RoleMember},
		Department: domain.Department{Id: 5, Name: "Neurology"},
		Token:      "token",
	}, nil
}

func (m *MockAuthService) Login(creds domain.Credentials) (service.Session, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(creds)
	}
	return service.Session{
		User:       domain.User{Id: 1, Email: creds.Email},
		Department: domain.Department{Id: 5, Name: "Neurology"},
		Token:      "token",
	}, nil
}

func (m *MockAuthService) Profile(userId domain.UserId) (service.Session, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(userId)
	}
	return service.Session{User: domain.User{Id: userId}}, nil
}

func (m *MockAuthService) UpdateProfile(userId domain.UserId, req api.UpdateProfileRequest) (service.Session, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(userId, req)
	}
	return service.Session{User: domain.User{Id: userId}, Token: "token"}, nil
}

func (m *MockAuthService) DeleteAccount(userId domain.UserId) error {
	if m.DeleteAccountFunc != nil {
		return m.DeleteAccountFunc(userId)
	}
	return nil
}

func TestRegisterHandler(t *testing.T) {
	h := &Handler{}
	router := mux.NewRouter()
	router.HandleFunc("/api/auth/register", h.Register).Methods("POST")

	validBody := []byte(`{
		"name": "Alice",
		"email": "alice@example.com",
		"password": "password123",
		"departmentInviteToken": "JOIN1234"
	}`)

	t.Run("successful registration", func(t *testing.T) {
		h.auth = &MockAuthService{}

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(validBody))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var resp api.ProfileResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Alice", resp.Name)
		assert.Equal(t, "Neurology", resp.Department.Name)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("missing required fields", func(t *testing.T) {
		h.auth = &MockAuthService{}

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer([]byte(`{"name": "Alice"}`)))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid invite token", func(t *testing.T) {
		h.auth = &MockAuthService{
			RegisterFunc: func(req api.RegisterRequest) (service.Session, error) {
				return service.Session{}, internal_errors.Unauthorized("Invalid invite token. Please try again or contact the admin for the code")
			},
		}

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(validBody))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	h := &Handler{}
	router := mux.NewRouter()
	router.HandleFunc("/api/auth/login", h.Login).Methods("POST")

	t.Run("successful login", func(t *testing.T) {
		h.auth = &MockAuthService{}

		body := []byte(`{"email": "alice@example.com", "password": "password123"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.ProfileResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("bad credentials", func(t *testing.T) {
		h.auth = &MockAuthService{
			LoginFunc: func(creds domain.Credentials) (service.Session, error) {
				return service.Session{}, internal_errors.Unauthorized("Invalid email or password")
			},
		}

		body := []byte(`{"email": "alice@example.com", "password": "wrong"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

type MockStore struct {
	uploads int
}

func (m *MockStore) Upload(data io.Reader, filename, publicId, resourceType string) (cloudinary.UploadResult, error) {
	m.uploads++
	return cloudinary.UploadResult{SecureUrl: "https://cdn.example/" + publicId, PublicId: publicId, Bytes: 42}, nil
}

func (m *MockStore) Destroy(publicId, resourceType string) error { return nil }

func TestUploadProfileImageHandler(t *testing.T) {
	store := &MockStore{}
	h := &Handler{
		store: store,
		cfg: &config.Config{
			Public:  config.Public{MaxUploadSizeMB: 10},
			Private: config.Private{Cloudinary: config.Cloudinary{Folder: "techflow"}},
		},
	}
	router := mux.NewRouter()
	router.HandleFunc("/api/auth/upload-profile-image", withUser(testUser, h.UploadProfileImage)).Methods("POST")

	imageForm := func(t *testing.T, filename string) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("image bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())
		return &buf, mw.FormDataContentType()
	}

	t.Run("png accepted", func(t *testing.T) {
		body, contentType := imageForm(t, "avatar.png")
		req := httptest.NewRequest(http.MethodPost, "/api/auth/upload-profile-image", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.UploadImageResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.NotEmpty(t, resp.ImageUrl)
		assert.NotEmpty(t, resp.PublicId)
		assert.Equal(t, 1, store.uploads)
	})

	t.Run("non-image rejected before upload", func(t *testing.T) {
		store.uploads = 0

		body, contentType := imageForm(t, "resume.pdf")
		req := httptest.NewRequest(http.MethodPost, "/api/auth/upload-profile-image", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, 0, store.uploads, "nothing reaches the store")
	})

	t.Run("missing file field", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/upload-profile-image", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteAccountHandler(t *testing.T) {
	h := &Handler{auth: &MockAuthService{}}
	router := mux.NewRouter()
	router.HandleFunc("/api/auth/profile", withUser(testUser, h.DeleteAccount)).Methods("DELETE")

	req := httptest.NewRequest(http.MethodDelete, "/api/auth/profile", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp api.MessageResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Account deleted", resp.Message)
}
