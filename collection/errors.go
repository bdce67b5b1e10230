package collection

import "github.com/cockroachdb/errors"

var ErrIndexOutOfRange = errors.New("index out of range")
