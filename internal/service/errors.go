package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrUnknownKind = errors.New("unknown favourite kind")

	ErrFriendRequestToSelf = errors.New("cannot send a friend request to yourself")
	ErrNotRequestAddressee = errors.New("only the addressee can respond to a friend request")
	ErrNotFriends          = errors.New("users are not friends")

	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSyncInProgress   = errors.New("synchronization already in progress")
)
