package battleship

import "testing"

// Ships on rows 0, 2, 4, 6 and 8, all starting at column 0.
const rowFleetLayout = `
#####.....
..........
####......
..........
###.......
..........
###.......
..........
##........
..........
`

const mixedFleetLayout = `
#####.....
..........
#.....#...
#.....#...
#.....#...
#.........
..........
..###...##
..........
..........
`

func mustLayout(t *testing.T, layout string) Board {
	t.Helper()
	board, err := ParseLayout(layout)
	if err != nil {
		t.Fatalf("bad test layout: %v", err)
	}
	return board
}

// shipCells lists the ship cells of a layout in row-major order.
func shipCells(board Board) []int {
	cells := make([]int, 0, 17)
	for idx, c := range board {
		if c == CellShipUnknown {
			cells = append(cells, idx)
		}
	}
	return cells
}
