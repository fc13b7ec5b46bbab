package battleship

import (
	cerr "github.com/AndyF-42/BattleshipOnline/internal/error"
)

// SunkShip is what sink detection hands back for rendering: the ship itself
// and the cells auto-revealed as misses around it.
type SunkShip struct {
	Ship     Ship  `json:"ship"`
	Revealed []int `json:"revealed,omitempty"`
}

// ResolveAttack fires at idx. Truth is the opponent's layout, tracking is the
// attacker's view of it and receives the Hit or Miss. Attacking a cell that
// is out of range or already resolved on tracking is an invalid move.
//
// Passing the same board as truth and tracking resolves a shot against one's
// own board, which is how the defender records incoming moves.
func ResolveAttack(truth, tracking *Board, idx int) (Cell, error) {
	if !IsValidIndex(idx) {
		return CellWater, cerr.ErrCellOutOfBounds(idx)
	}
	if tracking.IsResolved(idx) {
		return tracking[idx], cerr.ErrCellAlreadyResolved(idx)
	}

	if truth.IsShip(idx/GridSize, idx%GridSize) {
		tracking[idx] = CellHit
		return CellHit, nil
	}
	tracking[idx] = CellMiss
	return CellMiss, nil
}

// TraceShip derives the ship covering idx from the truth board. The longer of
// the horizontal and vertical runs through idx is the ship's orientation.
// ok is false when idx holds no ship.
func TraceShip(truth *Board, idx int) (ship Ship, ok bool, err error) {
	if !IsValidIndex(idx) {
		return Ship{}, false, cerr.ErrCellOutOfBounds(idx)
	}
	row, col := idx/GridSize, idx%GridSize
	if !truth.IsShip(row, col) {
		return Ship{}, false, nil
	}

	left, right := col, col
	for truth.IsShip(row, left-1) {
		left--
	}
	for truth.IsShip(row, right+1) {
		right++
	}
	top, bottom := row, row
	for truth.IsShip(top-1, col) {
		top--
	}
	for truth.IsShip(bottom+1, col) {
		bottom++
	}

	horizontal, vertical := right-left+1, bottom-top+1
	switch {
	case horizontal > vertical:
		return Ship{Start: row*GridSize + left, Length: horizontal, Orientation: OrientationHorizontal}, true, nil
	case vertical > horizontal:
		return Ship{Start: top*GridSize + col, Length: vertical, Orientation: OrientationVertical}, true, nil
	default:
		return Ship{}, false, cerr.ErrInconsistentShip(idx, horizontal, vertical)
	}
}

// SunkShipAt reports whether the ship covering idx is fully hit on tracking.
// Nothing is written.
func SunkShipAt(truth, tracking *Board, idx int) (Ship, bool, error) {
	ship, ok, err := TraceShip(truth, idx)
	if err != nil || !ok {
		return Ship{}, false, err
	}

	for _, cell := range ship.Cells() {
		if tracking[cell] != CellHit {
			return ship, false, nil
		}
	}
	return ship, true, nil
}

// DetectSunk is called after a Hit at idx. If that hit completed the ship,
// every unresolved non-ship cell around it is marked Miss on tracking. Ships
// never touch, so these cells are never ships.
func DetectSunk(truth, tracking *Board, idx int) (SunkShip, bool, error) {
	ship, sunk, err := SunkShipAt(truth, tracking, idx)
	if err != nil || !sunk {
		return SunkShip{}, false, err
	}

	result := SunkShip{Ship: ship}
	for _, cell := range ship.Perimeter() {
		if truth.IsShip(cell/GridSize, cell%GridSize) || tracking.IsResolved(cell) {
			continue
		}
		tracking[cell] = CellMiss
		result.Revealed = append(result.Revealed, cell)
	}
	return result, true, nil
}

// CountSunkShips counts the distinct truth ships whose every cell is Hit on
// tracking.
func CountSunkShips(truth, tracking *Board) int {
	sunk := 0
	for idx := 0; idx < GridCells; idx++ {
		ship, ok, err := SunkShipAt(truth, tracking, idx)
		if err != nil || !ok {
			continue
		}
		// count each ship once, at its start cell
		if ship.Start == idx {
			sunk++
		}
	}
	return sunk
}

func IsGameOver(sunkenShips int) bool {
	return sunkenShips >= FleetSize
}
