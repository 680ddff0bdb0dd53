package review

import "errors"

var (
	ErrReviewNotFound = errors.New("performance review not found")
)
