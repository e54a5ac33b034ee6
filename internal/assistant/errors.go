package assistant

import "errors"

var (
	ErrGeneration = errors.New("language model generation failed")
)
