package domain

import "errors"

var (
	ErrValidation = errors.New("nickname and amount are required")
	ErrNotFound   = errors.New("donation request not found")
	ErrProtocol   = errors.New("malformed decision token")
)
