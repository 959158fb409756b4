package middlewarectx

import "errors"

var (
	errMissingHeader = errors.New("missing or invalid authorization header")
	errInvalidToken  = errors.New("invalid or expired token")
)
