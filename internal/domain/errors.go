package domain

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidOrder    = errors.New("invalid order")
	ErrInvalidFeedback = errors.New("invalid feedback")
)
