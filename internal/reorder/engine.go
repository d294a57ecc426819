package reorder

// Reorder moves draggedID within ids so that it lands at toIndex, where
// toIndex is an insertion slot in [0, len(ids)] as produced by
// InsertionIndex. The input is never mutated; the result is a fresh slice.
//
// Dropping an item onto its own slot (toIndex equal to its current index
// or current index + 1) leaves the order unchanged. When toIndex points
// past the removal position it is decremented by one, because removing
// the item first shifts every later index down.
//
// An absent draggedID is a no-op: the caller may race with an external
// edit that deleted the row mid-drag.
func Reorder(ids []string, draggedID string, toIndex int) []string {
	out := make([]string, len(ids))
	copy(out, ids)

	from := indexOf(out, draggedID)
	if from < 0 {
		return out
	}

	toIndex = clamp(toIndex, 0, len(out))
	if toIndex == from || toIndex == from+1 {
		return out
	}

	out = append(out[:from], out[from+1:]...)
	if toIndex > from {
		toIndex--
	}

	out = append(out, "")
	copy(out[toIndex+1:], out[toIndex:])
	out[toIndex] = draggedID
	return out
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
