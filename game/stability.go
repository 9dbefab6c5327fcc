package game

// StableDiscs returns the discs of either color that can no longer be
// flipped. The set grows from the occupied corners: a disc joins once every
// line through it is cut by the board edge, completely filled, or continues
// into a stable disc of the same color.
func StableDiscs(gs GameState) Bitboard {
	occupied := gs.Occupied()
	stable := Empty
	frontier := Corners & occupied

	for frontier != Empty {
		added := Empty
		for _, p := range frontier.Positions() {
			if isStable(p, gs, stable|added) {
				added |= Bit(p)
			}
		}
		if added == Empty {
			break
		}
		stable |= added
		frontier = Neighbours(added) & occupied &^ stable
	}
	return stable
}

func isStable(p Position, gs GameState, stable Bitboard) bool {
	owner, ok := gs.At(p)
	if !ok {
		return false
	}
	occupied := gs.Occupied()
	anchors := stable & gs.BitboardOf(owner)
	full := lines(p)
	for i, axis := range axes(p) {
		switch {
		case axis.Count() < 2:
		case axis&anchors != Empty:
		case full[i]&^occupied == Empty:
		default:
			return false
		}
	}
	return true
}
