package treerecon

import "context"

type Reconstructor interface {
	Reconstruct(ctx context.Context, ps *PointSet) ([]Edge, error)
}
