package apiclient

import (
	"context"
	"net/url"
)

// UsersService handles public profile endpoints.
type UsersService struct {
	client *Client
}

// Get returns a user's public profile.
func (s *UsersService) Get(ctx context.Context, userID string) (*User, error) {
	var out User
	if err := s.client.get(ctx, "/api/v1/users/"+url.PathEscape(userID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
