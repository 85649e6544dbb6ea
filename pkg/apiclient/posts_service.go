package apiclient

import (
	"context"
	"net/url"
	"strconv"
)

// PostsService handles the post feed, likes and comments.
type PostsService struct {
	client *Client
}

// CreatePostRequest carries a new post.
type CreatePostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Feed returns one page of the post feed.
func (s *PostsService) Feed(ctx context.Context, page, limit int) (*FeedPage, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/v1/posts"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var out FeedPage
	if err := s.client.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create publishes a new post.
func (s *PostsService) Create(ctx context.Context, req CreatePostRequest) (*Post, error) {
	var out Post
	if err := s.client.post(ctx, "/api/v1/posts", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Like likes a post.
func (s *PostsService) Like(ctx context.Context, postID string) error {
	return s.client.post(ctx, "/api/v1/posts/"+url.PathEscape(postID)+"/like", nil, nil)
}

// Unlike removes the current user's like from a post.
func (s *PostsService) Unlike(ctx context.Context, postID string) error {
	return s.client.delete(ctx, "/api/v1/posts/"+url.PathEscape(postID)+"/like")
}

// Comments returns a post's comments in server order.
func (s *PostsService) Comments(ctx context.Context, postID string) ([]Comment, error) {
	var out struct {
		Comments []Comment `json:"comments"`
	}
	if err := s.client.get(ctx, "/api/v1/posts/"+url.PathEscape(postID)+"/comments", &out); err != nil {
		return nil, err
	}
	return out.Comments, nil
}

// AddComment attaches a comment to a post.
func (s *PostsService) AddComment(ctx context.Context, postID, content string) (*Comment, error) {
	body := struct {
		Content string `json:"content"`
	}{Content: content}

	var out Comment
	if err := s.client.post(ctx, "/api/v1/posts/"+url.PathEscape(postID)+"/comments", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
