package authjwt

import "errors"

var (
	// ErrInvalidToken is returned when the token is malformed, carries an
	// unknown role or was issued by someone else.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when the token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrInvalidSignature is returned when the token signature does not verify.
	ErrInvalidSignature = errors.New("invalid token signature")
)
