package chunk

// Plan splits total into parts until all parts are below limit.
//
// Every pass halves all parts that are too big. The first half stays in place,
// the second half (+1 for odd values) is appended. Parts appended during a pass
// are only checked in the next pass. The order of the returned parts is the
// order of the chunk files and must not be sorted.
//
//   Plan(10, 3) = [2 2 1 1 2 2]
//
// special case: total < limit returns [total] (also for total == 0)
// special case: limit == 1 and total >= 1 never terminates and is an error
func Plan(total, limit int64) ([]int64, error) {
	// input validation
	if total < 0 {
		return nil, Errorf(InvalidInput, "Invalid total size: %d", total)
	}
	if limit < 1 || (limit < MinSplitSize && total >= limit) {
		return nil, Errorf(InvalidInput, "Split size must be at least %d bytes.", MinSplitSize)
	}

	parts := []int64{total}
	for !below(parts, limit) {
		// snapshot: new parts are not visited in this pass
		n := len(parts)
		for i := 0; i < n; i++ {
			part := parts[i]
			if part >= limit {
				half := part / 2
				parts[i] = half
				parts = append(parts, part-half)
			}
		}
	}
	return parts, nil
}

// Sum returns the sum of all parts.
func Sum(parts []int64) int64 {
	sum := int64(0)
	for _, p := range parts {
		sum += p
	}
	return sum
}

// Max returns the biggest part (0 for an empty list).
func Max(parts []int64) int64 {
	max := int64(0)
	for _, p := range parts {
		if p > max {
			max = p
		}
	}
	return max
}

// below checks whether all parts are smaller than limit.
func below(parts []int64, limit int64) bool {
	for _, p := range parts {
		if p >= limit {
			return false
		}
	}
	return true
}
