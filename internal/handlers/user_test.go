package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistro-serving/internal/models"
)

type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Insert(_ context.Context, user models.User) (models.User, error) {
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserStore) List(_ context.Context) ([]models.User, error) {
	return f.users, nil
}

func (f *fakeUserStore) Delete(_ context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	for i, user := range f.users {
		if user.ID == oid {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserStore) Promote(_ context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	for i := range f.users {
		if f.users[i].ID == oid {
			if f.users[i].Role == "admin" {
				return 0, nil
			}
			f.users[i].Role = "admin"
			return 1, nil
		}
	}
	return 0, nil
}

func TestCreateUserTwice(t *testing.T) {
	store := &fakeUserStore{}
	h := &UserHandler{Store: store}

	payload := map[string]string{"name": "Test User", "email": "a@x.com"}

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/create/user", payload)
	require.NoError(t, h.CreateUser(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.users, 1)

	c, rec = newJSONContext(t, http.MethodPost, "/api/v1/create/user", payload)
	require.NoError(t, h.CreateUser(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "user already exist", resp["message"])
	require.Len(t, store.users, 1)
}

func TestGetUsers(t *testing.T) {
	store := &fakeUserStore{users: []models.User{
		{ID: primitive.NewObjectID(), Email: "a@x.com"},
		{ID: primitive.NewObjectID(), Email: "b@x.com", Role: "admin"},
	}}
	h := &UserHandler{Store: store}

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/get-users", nil)
	require.NoError(t, h.GetUsers(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)
}

func TestCheckAdminMismatchedEmail(t *testing.T) {
	store := &fakeUserStore{users: []models.User{
		{ID: primitive.NewObjectID(), Email: "b@x.com", Role: "admin"},
	}}
	h := &UserHandler{Store: store}

	c, _ := newJSONContext(t, http.MethodGet, "/api/v1/users/admin/b@x.com", nil)
	c.SetParamNames("email")
	c.SetParamValues("b@x.com")
	c.Set("email", "a@x.com")

	err := h.CheckAdmin(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusForbidden, he.Code)
}

func TestCheckAdminSelf(t *testing.T) {
	store := &fakeUserStore{users: []models.User{
		{ID: primitive.NewObjectID(), Email: "a@x.com", Role: "admin"},
	}}
	h := &UserHandler{Store: store}

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/users/admin/a@x.com", nil)
	c.SetParamNames("email")
	c.SetParamValues("a@x.com")
	c.Set("email", "a@x.com")

	require.NoError(t, h.CheckAdmin(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp["admin"])
}

func TestCheckAdminOrdinaryUser(t *testing.T) {
	store := &fakeUserStore{users: []models.User{
		{ID: primitive.NewObjectID(), Email: "a@x.com"},
	}}
	h := &UserHandler{Store: store}

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/users/admin/a@x.com", nil)
	c.SetParamNames("email")
	c.SetParamValues("a@x.com")
	c.Set("email", "a@x.com")

	require.NoError(t, h.CheckAdmin(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp["admin"])
}

func TestPromoteAdmin(t *testing.T) {
	user := models.User{ID: primitive.NewObjectID(), Email: "a@x.com"}
	store := &fakeUserStore{users: []models.User{user}}
	h := &UserHandler{Store: store}

	c, rec := newJSONContext(t, http.MethodPatch, "/api/v1/admin/"+user.ID.Hex(), nil)
	c.SetParamNames("id")
	c.SetParamValues(user.ID.Hex())

	require.NoError(t, h.PromoteAdmin(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "admin", store.users[0].Role)

	var resp map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(1), resp["modified_count"])
}

func TestDeleteUser(t *testing.T) {
	user := models.User{ID: primitive.NewObjectID(), Email: "a@x.com"}
	store := &fakeUserStore{users: []models.User{user}}
	h := &UserHandler{Store: store}

	c, rec := newJSONContext(t, http.MethodDelete, "/api/v1/delete-user/"+user.ID.Hex(), nil)
	c.SetParamNames("id")
	c.SetParamValues(user.ID.Hex())

	require.NoError(t, h.DeleteUser(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, store.users)
}
