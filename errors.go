package treerecon

import (
	"github.com/ar90n/treerecon/collection"
	"github.com/ar90n/treerecon/metric"
	"github.com/cockroachdb/errors"
)

var (
	ErrShapeMismatch       = errors.New("shape mismatch")
	ErrMissingRootLabel    = errors.New("missing root label 0")
	ErrInvalidLabelMapping = errors.New("invalid label mapping")
	ErrInvalidRadius       = errors.New("invalid radius")
	ErrIndexOutOfRange     = collection.ErrIndexOutOfRange
	ErrDisconnected        = errors.New("disconnected")
	ErrEmptyReference      = errors.New("empty reference")
	ErrUnknownMethod       = errors.New("unknown method")
	ErrUnknownMode         = metric.ErrUnknownMode
)
