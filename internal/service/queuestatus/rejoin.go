package queuestatus

// RejoinSlot picks the slot index a rejoining visit is moved to: right after
// the Nth currently-confirmed upcoming visit, or after the last one when
// fewer than N exist. confirmedSlots must be ascending. ok is false when no
// confirmed visit exists, meaning the visit keeps its original slot.
func RejoinSlot(confirmedSlots []int, n int) (int, bool) {
	if len(confirmedSlots) == 0 {
		return 0, false
	}
	if n < 1 {
		n = 1
	}
	anchor := n - 1
	if anchor >= len(confirmedSlots) {
		anchor = len(confirmedSlots) - 1
	}
	return confirmedSlots[anchor] + 1, true
}
