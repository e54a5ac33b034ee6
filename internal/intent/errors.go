package intent

import "errors"

var (
	ErrEntityExtraction = errors.New("failed to extract entities")
)
