package models

import (
	"fmt"
	"time"
)

// FriendStatus is the lifecycle state of a friendship between two users.
type FriendStatus string

const (
	FriendStatusPending  FriendStatus = "pending"
	FriendStatusAccepted FriendStatus = "accepted"
	FriendStatusRejected FriendStatus = "rejected"
)

// Friendship is a single relationship record between two users. Exactly one
// row exists per user pair regardless of who initiated the request; the pair
// key keeps the combination unique.
type Friendship struct {
	// PairKey is the canonical identifier of the pair: the two user IDs
	// sorted ascending and joined with an underscore, e.g. "7_42".
	PairKey string `json:"pairKey"`

	// RequesterID is the user who sent the friend request.
	RequesterID int64 `json:"requesterId"`

	// AddresseeID is the user the request was sent to. Only this user may
	// accept or reject the request.
	AddresseeID int64 `json:"addresseeId"`

	Status    FriendStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// FriendPairKey builds the canonical pair key for two user IDs. The key is
// symmetric: FriendPairKey(a, b) == FriendPairKey(b, a).
func FriendPairKey(a, b int64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d_%d", a, b)
}

// Friend is the public view of another user returned by friend listings.
type Friend struct {
	UserID int64        `json:"userId"`
	Login  string       `json:"login"`
	Name   string       `json:"name"`
	Status FriendStatus `json:"status"`
}
