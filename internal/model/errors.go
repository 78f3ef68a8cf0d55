package model

import "errors"

var (
	ErrNotEnoughArgs      = errors.New("not enough arguments provided")
	ErrInvalidArgument    = errors.New("invalid commandline argument provided")
	ErrMissingQueryOrPath = errors.New("query and the file path must be provided")
	ErrEmptyAddress       = errors.New("empty search-node address")
	ErrInvalidEncoding    = errors.New("file contents are not valid UTF-8")
)
