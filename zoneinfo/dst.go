package zoneinfo

import (
	"time"

	"github.com/pganssle/zoneinfo/tzif"
)

// inferDST derives the DST component of each type's offset. TZif records
// an isdst flag per type but never the DST magnitude, so it must be
// recovered from context: neither "difference from the prior type" nor
// "difference from the next type" is always correct on its own, since a
// single transition can shift both the base offset and the DST offset at
// once. Preferring the immediate predecessor when it is standard time is
// the historically correct heuristic (grounded in CPython zoneinfo's
// _utcoff_to_dstoff, reframed here to walk transitions by type identity
// rather than by raw array index).
func inferDST(transitionTypes []uint8, types []tzif.LocalTimeTypeRecord) []time.Duration {
	dstOffset := make([]int64, len(types))
	assigned := make([]bool, len(types))

	for i := 1; i < len(transitionTypes); i++ {
		ti := transitionTypes[i]
		if !types[ti].Dst || assigned[ti] {
			continue
		}

		prev := transitionTypes[i-1]
		if !types[prev].Dst {
			dstOffset[ti] = int64(types[ti].Utoff) - int64(types[prev].Utoff)
			assigned[ti] = true
			continue
		}

		if i+1 < len(transitionTypes) {
			next := transitionTypes[i+1]
			if !types[next].Dst {
				dstOffset[ti] = int64(types[ti].Utoff) - int64(types[next].Utoff)
				assigned[ti] = true
			}
		}
	}

	result := make([]time.Duration, len(types))
	for k := range types {
		off := dstOffset[k]
		if types[k].Dst && off == 0 {
			off = 3600
		}
		result[k] = time.Duration(off) * time.Second
	}
	return result
}
