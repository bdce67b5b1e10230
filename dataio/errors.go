package dataio

import "github.com/cockroachdb/errors"

var (
	ErrFileFormat = errors.New("unsupported file format")
	ErrSyntax     = errors.New("syntax error")
)
