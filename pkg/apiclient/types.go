package apiclient

import "time"

// User is the server's user representation.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	AvatarURL string    `json:"avatar"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

// Post is a feed entry.
type Post struct {
	ID           string    `json:"id"`
	Author       User      `json:"author"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	Liked        bool      `json:"liked"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Comment belongs to a post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Author    User      `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// FriendRequest is a pending friendship request addressed to the current user.
type FriendRequest struct {
	ID        string    `json:"id"`
	From      User      `json:"from"`
	CreatedAt time.Time `json:"createdAt"`
}

// PageMeta describes server-side pagination of a list response.
type PageMeta struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNext     bool `json:"hasNextPage"`
}

// FeedPage is one page of the post feed.
type FeedPage struct {
	Posts []Post   `json:"posts"`
	Meta  PageMeta `json:"meta"`
}
