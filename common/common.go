package common

import "runtime"

func GetProcNum(maxGoRoutines uint) uint {
	if maxGoRoutines == 0 {
		return uint(runtime.NumCPU())
	}

	return maxGoRoutines
}

type Chunk struct {
	Begin uint
	End   uint
}

// GetChunks splits [0, n) into at most procs contiguous ranges whose sizes
// differ by at most one. Empty ranges are not returned.
func GetChunks(n uint, procs uint) []Chunk {
	procs = GetProcNum(procs)
	if n < procs {
		procs = n
	}

	chunks := make([]Chunk, 0, procs)
	if procs == 0 {
		return chunks
	}

	bs := n / procs
	rem := n % procs
	bi := uint(0)
	for i := uint(0); i < procs; i++ {
		ei := bi + bs
		if i < rem {
			ei += 1
		}

		chunks = append(chunks, Chunk{Begin: bi, End: ei})
		bi = ei
	}

	return chunks
}
