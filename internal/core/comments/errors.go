package comments

import "errors"

var (
	// ErrContentEmpty indicates the comment text is empty or whitespace-only
	ErrContentEmpty = errors.New("comment cannot be empty")

	// ErrContentTooLong indicates comment content exceeds 10000 graphemes
	ErrContentTooLong = errors.New("comment content exceeds 10000 graphemes")
)
