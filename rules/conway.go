package rules

/*
ApplyConwayRules applies the B3/S23 Game of Life rule to decide a cell's
next state from its current state and live-neighbor count.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
