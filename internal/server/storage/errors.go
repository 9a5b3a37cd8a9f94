package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrRoomNotFound indicates that there is no live room with this id
	ErrRoomNotFound = errors.New("room not found")

	// ErrDuplicateRoomNumber indicates that the property already has a live room with this number
	ErrDuplicateRoomNumber = errors.New("room number already exists")
)
