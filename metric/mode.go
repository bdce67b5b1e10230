package metric

import (
	"github.com/cockroachdb/errors"
)

var ErrUnknownMode = errors.New("unknown mode")

type Mode int

const (
	InnerProduct Mode = iota
	Angle
)

func (m Mode) String() string {
	switch m {
	case InnerProduct:
		return "inner-product"
	case Angle:
		return "angle"
	default:
		return "unknown"
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "inner-product", "inner_product", "":
		return InnerProduct, nil
	case "angle":
		return Angle, nil
	default:
		return InnerProduct, errors.Wrapf(ErrUnknownMode, "%q", s)
	}
}
