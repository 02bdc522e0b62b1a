package wm

// RotateTags circularly rotates the low tagCount bits of mask by shift
// positions. Positive shifts move toward higher bits, negative toward lower.
// Bits above tagCount are discarded, so rotating by i and then -i always
// round-trips.
func RotateTags(mask uint32, shift, tagCount int) uint32 {
	if tagCount <= 0 {
		return 0
	}
	full := uint32(1)<<tagCount - 1
	mask &= full
	shift %= tagCount
	if shift < 0 {
		shift += tagCount
	}
	if shift == 0 {
		return mask
	}
	return ((mask << shift) | (mask >> (tagCount - shift))) & full
}
