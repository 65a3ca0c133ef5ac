package errors

import "errors"

// Analysis errors
var (
	ErrPromptRender = errors.New("failed to render prompt")
	ErrStoreWrite   = errors.New("failed to persist record")
	ErrStoreRead    = errors.New("failed to read records")
)
