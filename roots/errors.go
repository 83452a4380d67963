package roots

import "errors"

var (
	ErrRootNotFound     = errors.New("roots: no trusted root has been published for the log")
	ErrStateRootMissing = errors.New("roots: the root field of a log state was empty when it should have been provided")
)
