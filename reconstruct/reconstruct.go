package reconstruct

import (
	"github.com/ar90n/treerecon"
	"github.com/ar90n/treerecon/metric"
	"github.com/cockroachdb/errors"
)

const (
	MethodSekihara    = "sekihara"
	MethodMst         = "mst"
	MethodMstSekihara = "mst-sekihara"
)

func Methods() []string {
	return []string{MethodSekihara, MethodMst, MethodMstSekihara}
}

func New(method string, param float64, mode metric.Mode, maxGoroutines uint) (treerecon.Reconstructor, error) {
	switch method {
	case MethodSekihara:
		return NewSekiharaReconstructor().SetParam(param).SetMode(mode), nil
	case MethodMst:
		return NewMstReconstructor().SetMaxGoroutines(maxGoroutines), nil
	case MethodMstSekihara:
		return NewWeightedMstReconstructor().SetParam(param).SetMode(mode).SetMaxGoroutines(maxGoroutines), nil
	default:
		return nil, errors.Wrapf(treerecon.ErrUnknownMethod, "%q", method)
	}
}
