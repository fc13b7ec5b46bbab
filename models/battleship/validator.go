package battleship

import (
	cerr "github.com/AndyF-42/BattleshipOnline/internal/error"
)

// ValidatePlacement checks that the board holds exactly the fleet, every ship
// a straight run of two or more cells, with a one cell gap between ships in
// every direction including diagonals. A nil error accepts the board, any
// rejection is a cerr.ValidationErr.
func ValidatePlacement(board Board) error {
	var scratch [GridCells]bool
	for i := range board {
		scratch[i] = board[i] == CellShipUnknown || board[i] == CellHit
	}
	fleet := newRemainingFleet()

	// horizontal pass, row-major
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			idx := row*GridSize + col
			if !scratch[idx] {
				continue
			}

			length := consumeRun(&scratch, row, col, OrientationHorizontal)
			if length == 1 {
				// might be the top of a vertical ship
				scratch[idx] = true
				continue
			}

			ship := Ship{Start: idx, Length: length, Orientation: OrientationHorizontal}
			if err := claimShip(&board, fleet, ship); err != nil {
				return err
			}
		}
	}

	// vertical pass, column-major, over whatever the horizontal pass left
	for col := 0; col < GridSize; col++ {
		for row := 0; row < GridSize; row++ {
			idx := row*GridSize + col
			if !scratch[idx] {
				continue
			}

			length := consumeRun(&scratch, row, col, OrientationVertical)
			if length == 1 {
				return cerr.ErrInvalidShipLength(1)
			}

			ship := Ship{Start: idx, Length: length, Orientation: OrientationVertical}
			if err := claimShip(&board, fleet, ship); err != nil {
				return err
			}
		}
	}

	if missing, ok := fleet.firstMissing(); ok {
		return cerr.ErrMissingShipLength(missing)
	}
	return nil
}

func claimShip(board *Board, fleet *remainingFleet, ship Ship) error {
	if !isSeparated(board, ship) {
		return cerr.ErrShipsNotSeparated()
	}
	if !fleet.claim(ship.Length) {
		return cerr.ErrInvalidShipLength(ship.Length)
	}
	return nil
}

// consumeRun measures the run starting at (row, col) in one orientation and
// clears the traced cells from scratch. Tracing stops at the board edge.
func consumeRun(scratch *[GridCells]bool, row, col int, orientation uint8) int {
	length := 0
	for row < GridSize && col < GridSize && scratch[row*GridSize+col] {
		scratch[row*GridSize+col] = false
		length++
		if orientation == OrientationVertical {
			row++
		} else {
			col++
		}
	}
	return length
}

// isSeparated reports whether no other ship cell touches the ship, diagonals
// included. Off-board neighbours are skipped.
func isSeparated(board *Board, ship Ship) bool {
	for _, idx := range ship.Perimeter() {
		if board.IsShip(idx/GridSize, idx%GridSize) {
			return false
		}
	}
	return true
}
