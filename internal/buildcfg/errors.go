package buildcfg

import "errors"

var (
	ErrNotLocal      = errors.New("path must be relative to the launcher directory")
	ErrEmpty         = errors.New("value must not be empty")
	ErrUnknownPolicy = errors.New("unknown self argument policy")
)
