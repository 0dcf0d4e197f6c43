package strategy

// Basic returns the built-in total-dependent basic strategy for multi-deck
// games. Rule-dependent plays are encoded as conditional actions, so one
// chart serves any Rules combination; deviations are layered on separately.
func Basic() *Table {
	t := NewTable()

	// Hard totals.
	hard(t, 4, 8, 2, 11, Hit)
	hard(t, 9, 9, 2, 2, Hit)
	hard(t, 9, 9, 3, 6, DoubleHit)
	hard(t, 9, 9, 7, 11, Hit)
	hard(t, 10, 10, 2, 9, DoubleHit)
	hard(t, 10, 10, 10, 11, Hit)
	hard(t, 11, 11, 2, 11, DoubleHit)
	hard(t, 12, 12, 2, 3, Hit)
	hard(t, 12, 12, 4, 6, Stand)
	hard(t, 12, 12, 7, 11, Hit)
	hard(t, 13, 16, 2, 6, Stand)
	hard(t, 13, 16, 7, 11, Hit)
	hard(t, 15, 15, 10, 10, SurrenderHit)
	hard(t, 16, 16, 9, 11, SurrenderHit)
	hard(t, 17, 21, 2, 11, Stand)

	// Soft totals (ace counted as 11).
	soft(t, 12, 12, 2, 11, Hit)
	soft(t, 13, 14, 2, 4, Hit)
	soft(t, 13, 14, 5, 6, DoubleHit)
	soft(t, 13, 14, 7, 11, Hit)
	soft(t, 15, 16, 2, 3, Hit)
	soft(t, 15, 16, 4, 6, DoubleHit)
	soft(t, 15, 16, 7, 11, Hit)
	soft(t, 17, 17, 2, 2, Hit)
	soft(t, 17, 17, 3, 6, DoubleHit)
	soft(t, 17, 17, 7, 11, Hit)
	soft(t, 18, 18, 2, 6, DoubleStand)
	soft(t, 18, 18, 7, 8, Stand)
	soft(t, 18, 18, 9, 11, Hit)
	soft(t, 19, 19, 2, 5, Stand)
	soft(t, 19, 19, 6, 6, DoubleStand)
	soft(t, 19, 19, 7, 11, Stand)
	soft(t, 20, 21, 2, 11, Stand)

	// Pairs, keyed by the paired card's value.
	pair(t, 2, 2, 3, SplitIfDAS)
	pair(t, 2, 4, 7, Split)
	pair(t, 2, 8, 11, Hit)
	pair(t, 3, 2, 3, SplitIfDAS)
	pair(t, 3, 4, 7, Split)
	pair(t, 3, 8, 11, Hit)
	pair(t, 4, 2, 4, Hit)
	pair(t, 4, 5, 6, SplitIfDAS)
	pair(t, 4, 7, 11, Hit)
	pair(t, 5, 2, 9, DoubleHit)
	pair(t, 5, 10, 11, Hit)
	pair(t, 6, 2, 2, SplitIfDAS)
	pair(t, 6, 3, 6, Split)
	pair(t, 6, 7, 11, Hit)
	pair(t, 7, 2, 7, Split)
	pair(t, 7, 8, 11, Hit)
	pair(t, 8, 2, 11, Split)
	pair(t, 9, 2, 6, Split)
	pair(t, 9, 7, 7, Stand)
	pair(t, 9, 8, 9, Split)
	pair(t, 9, 10, 11, Stand)
	pair(t, 10, 2, 11, Stand)
	pair(t, 11, 2, 11, Split)

	return t
}

func hard(t *Table, loTotal, hiTotal, loUp, hiUp int, a Action) {
	for total := loTotal; total <= hiTotal; total++ {
		for up := loUp; up <= hiUp; up++ {
			t.Set(Key{Kind: Hard, Value: total, Up: up}, a)
		}
	}
}

func soft(t *Table, loTotal, hiTotal, loUp, hiUp int, a Action) {
	for total := loTotal; total <= hiTotal; total++ {
		for up := loUp; up <= hiUp; up++ {
			t.Set(Key{Kind: Soft, Value: total, Up: up}, a)
		}
	}
}

func pair(t *Table, value, loUp, hiUp int, a Action) {
	for up := loUp; up <= hiUp; up++ {
		t.Set(Key{Kind: Pair, Value: value, Up: up}, a)
	}
}
