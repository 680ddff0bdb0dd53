package recruitment

import "errors"

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrStageNotFound     = errors.New("stage not found")
	ErrCandidateNotFound = errors.New("candidate not found")
)
