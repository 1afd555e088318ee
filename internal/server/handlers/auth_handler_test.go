package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/mamadbah2/nutrilog/internal/domain/models"
	"github.com/mamadbah2/nutrilog/internal/repository/mocks"
	repo "github.com/mamadbah2/nutrilog/internal/repository/mongodb"
	"github.com/mamadbah2/nutrilog/internal/service/auth"
)

func setupAuthRouter(users *mocks.MockUserRepository, user primitive.ObjectID) (*gin.Engine, *auth.Service) {
	svc := auth.NewService(users, "test-secret", time.Hour, nil)
	h := NewAuthHandler(svc, nil)

	r := gin.New()
	r.POST("/api/users", h.Register)
	r.POST("/api/auth", h.Login)
	r.GET("/api/auth", asUser(user), h.Me)
	return r, svc
}

func TestRegister(t *testing.T) {
	users := new(mocks.MockUserRepository)
	newID := primitive.NewObjectID()
	users.On("Insert", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "ada@example.com" && u.PasswordHash != "secret1"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.User).ID = newID
	}).Return(nil)

	r, svc := setupAuthRouter(users, primitive.NilObjectID)

	w := performRequest(r, http.MethodPost, "/api/users", map[string]string{
		"name": "Ada", "email": "Ada@Example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Token string                 `json:"token"`
		User  map[string]interface{} `json:"user"`
	}
	decode(t, w, &body)
	assert.NotContains(t, body.User, "password")
	assert.Equal(t, "ada@example.com", body.User["email"])

	id, err := svc.ParseToken(body.Token)
	require.NoError(t, err)
	assert.Equal(t, newID, id)
}

func TestRegisterValidation(t *testing.T) {
	r, _ := setupAuthRouter(new(mocks.MockUserRepository), primitive.NilObjectID)

	w := performRequest(r, http.MethodPost, "/api/users", map[string]string{
		"name": "Ada", "email": "not-an-email", "password": "123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body errorsBody
	decode(t, w, &body)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "email", body.Errors[0].Field)
	assert.Equal(t, "password", body.Errors[1].Field)
	assert.Equal(t, "Password must be at least 6 characters", body.Errors[1].Msg)
}

func TestRegisterPasswordTooLong(t *testing.T) {
	users := new(mocks.MockUserRepository)
	r, _ := setupAuthRouter(users, primitive.NilObjectID)

	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{name: "over 72 characters", password: strings.Repeat("a", 80), wantMsg: "Password must be at most 72 characters"},
		{name: "over 72 bytes", password: strings.Repeat("é", 40), wantMsg: "Password must be at most 72 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(r, http.MethodPost, "/api/users", map[string]string{
				"name": "a", "email": "a@b.co", "password": tt.password,
			})
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			var body errorsBody
			decode(t, w, &body)
			require.Len(t, body.Errors, 1)
			assert.Equal(t, "password", body.Errors[0].Field)
			assert.Equal(t, tt.wantMsg, body.Errors[0].Msg)
		})
	}
	users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)

	w := performRequest(r, http.MethodPost, "/api/auth", map[string]string{
		"email": "a@b.co", "password": strings.Repeat("a", 80),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := new(mocks.MockUserRepository)
	users.On("Insert", mock.Anything, mock.Anything).Return(repo.ErrDuplicate)
	r, _ := setupAuthRouter(users, primitive.NilObjectID)

	w := performRequest(r, http.MethodPost, "/api/users", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{ID: primitive.NewObjectID(), Email: "ada@example.com", PasswordHash: string(hash)}
	users := new(mocks.MockUserRepository)
	users.On("FindByEmail", mock.Anything, "ada@example.com").Return(user, nil)
	users.On("FindByEmail", mock.Anything, "bob@example.com").Return(nil, repo.ErrNotFound)
	r, _ := setupAuthRouter(users, primitive.NilObjectID)

	tests := []struct {
		name       string
		email      string
		password   string
		wantStatus int
	}{
		{name: "valid", email: "ada@example.com", password: "secret1", wantStatus: http.StatusOK},
		{name: "wrong password", email: "ada@example.com", password: "nope", wantStatus: http.StatusUnauthorized},
		{name: "unknown email", email: "bob@example.com", password: "secret1", wantStatus: http.StatusUnauthorized},
		{name: "missing password", email: "ada@example.com", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(r, http.MethodPost, "/api/auth", map[string]string{
				"email": tt.email, "password": tt.password,
			})
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestMe(t *testing.T) {
	id := primitive.NewObjectID()
	users := new(mocks.MockUserRepository)
	users.On("FindByID", mock.Anything, id).Return(&models.User{ID: id, Name: "Ada", PasswordHash: "hash"}, nil)
	r, _ := setupAuthRouter(users, id)

	w := performRequest(r, http.MethodGet, "/api/auth", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "hash")
	assert.Contains(t, w.Body.String(), `"name":"Ada"`)
}
