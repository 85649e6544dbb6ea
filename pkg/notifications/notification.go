package notifications

import (
	"time"
)

// Type categorizes a notification. It determines iconography and the
// navigation target when the notification is clicked.
type Type string

const (
	TypeFriendRequest  Type = "friend_request"
	TypeFriendAccepted Type = "friend_accepted"
	TypePostLiked      Type = "post_like"
	TypePostCommented  Type = "post_comment"
	TypeFollowed       Type = "follow"

	// TypeGeneric is the fallback category for types this client version
	// does not recognize. The server may introduce new types at any time.
	TypeGeneric Type = "generic"
)

// Known reports whether the type is one this client version recognizes.
func (t Type) Known() bool {
	switch t {
	case TypeFriendRequest, TypeFriendAccepted, TypePostLiked, TypePostCommented, TypeFollowed:
		return true
	}
	return false
}

// Normalize maps unrecognized types to TypeGeneric so that consumers never
// have to handle an open set.
func (t Type) Normalize() Type {
	if t.Known() {
		return t
	}
	return TypeGeneric
}

// Sender is the denormalized actor summary supplied by the server.
type Sender struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar"`
}

// Notification is a server-owned record cached locally. Notifications are
// never originated on the client; every field is supplied by the server.
type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	RelatedID string    `json:"relatedId"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
