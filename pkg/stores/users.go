package stores

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/W4153WASMCoder/ApplicationService/pkg/models"
)

// UserStore is the HTTP client for the remote user store.
type UserStore struct {
	client *client
}

// NewUserStore creates a client for the user store at baseURL.
func NewUserStore(baseURL string, timeout time.Duration, retryCount int) (*UserStore, error) {
	c, err := newClient(baseURL, timeout, retryCount)
	if err != nil {
		return nil, err
	}
	return &UserStore{client: c}, nil
}

type userListResponse struct {
	Users []*models.User `json:"users"`
	Total int            `json:"total"`
}

// ListUsers returns one page of user records plus the store's total count.
func (s *UserStore) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, int, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	resp := userListResponse{}
	if err := s.client.get(ctx, "/users", query, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Users, resp.Total, nil
}

// RetrieveUser fetches a single user record by id.
func (s *UserStore) RetrieveUser(ctx context.Context, id int) (*models.User, error) {
	user := &models.User{}
	if err := s.client.get(ctx, "/users/"+strconv.Itoa(id), nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser persists a new user record and returns it with the id the
// store assigned.
func (s *UserStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	created := &models.User{}
	if err := s.client.send(ctx, http.MethodPost, "/users", user, created); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateUser replaces the stored record for user.ID.
func (s *UserStore) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	updated := &models.User{}
	if err := s.client.send(ctx, http.MethodPut, "/users/"+strconv.Itoa(user.ID), user, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteUser removes a user record.
func (s *UserStore) DeleteUser(ctx context.Context, id int) error {
	return s.client.send(ctx, http.MethodDelete, "/users/"+strconv.Itoa(id), nil, nil)
}

type verifyCredentialsRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// VerifyCredentials asks the user store to check a username/password pair.
// The store owns all credential material; a mismatch comes back as
// ErrInvalidCredentials.
func (s *UserStore) VerifyCredentials(ctx context.Context, username, password string) (*models.User, error) {
	user := &models.User{}
	req := verifyCredentialsRequest{UserName: username, Password: password}
	if err := s.client.send(ctx, http.MethodPost, "/users/verify", req, user); err != nil {
		return nil, err
	}
	return user, nil
}
