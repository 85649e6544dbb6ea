package apiclient

import (
	"context"
	"net/url"
)

// FriendsService handles friendship endpoints.
type FriendsService struct {
	client *Client
}

// List returns the current user's friends.
func (s *FriendsService) List(ctx context.Context) ([]User, error) {
	var out struct {
		Friends []User `json:"friends"`
	}
	if err := s.client.get(ctx, "/api/v1/friends", &out); err != nil {
		return nil, err
	}
	return out.Friends, nil
}

// Requests returns pending friend requests addressed to the current user.
func (s *FriendsService) Requests(ctx context.Context) ([]FriendRequest, error) {
	var out struct {
		Requests []FriendRequest `json:"requests"`
	}
	if err := s.client.get(ctx, "/api/v1/friends/requests", &out); err != nil {
		return nil, err
	}
	return out.Requests, nil
}

// Send sends a friend request to another user.
func (s *FriendsService) Send(ctx context.Context, userID string) error {
	body := struct {
		UserID string `json:"userId"`
	}{UserID: userID}
	return s.client.post(ctx, "/api/v1/friends/requests", body, nil)
}

// Accept accepts a pending friend request.
func (s *FriendsService) Accept(ctx context.Context, requestID string) error {
	return s.client.put(ctx, "/api/v1/friends/requests/"+url.PathEscape(requestID)+"/accept", nil, nil)
}

// Reject declines a pending friend request.
func (s *FriendsService) Reject(ctx context.Context, requestID string) error {
	return s.client.delete(ctx, "/api/v1/friends/requests/"+url.PathEscape(requestID))
}
