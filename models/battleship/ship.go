package battleship

const (
	OrientationHorizontal uint8 = iota
	OrientationVertical
)

// Ships to lose. A match ends once this many ships of one side are sunk.
const FleetSize = 5

// Fleet is the required multiset of ship lengths.
var Fleet = [FleetSize]int{5, 4, 3, 3, 2}

// Ship is never stored on a board. It is recomputed from the grid
// whenever validation or sink detection needs it.
type Ship struct {
	Start       int   `json:"start"`
	Length      int   `json:"length"`
	Orientation uint8 `json:"orientation"`
}

func (sh Ship) IsVertical() bool {
	return sh.Orientation == OrientationVertical
}

// Cells returns the linear indexes the ship covers, from its start.
func (sh Ship) Cells() []int {
	step := 1
	if sh.IsVertical() {
		step = GridSize
	}

	cells := make([]int, 0, sh.Length)
	for i := 0; i < sh.Length; i++ {
		cells = append(cells, sh.Start+i*step)
	}
	return cells
}

// Perimeter returns the on-board cells of the ring around the ship: both end
// caps, both long sides and the four corners, clipped at the board edge.
func (sh Ship) Perimeter() []int {
	row, col := sh.Start/GridSize, sh.Start%GridSize
	lastRow, lastCol := row, col+sh.Length-1
	if sh.IsVertical() {
		lastRow, lastCol = row+sh.Length-1, col
	}

	ring := make([]int, 0, 2*sh.Length+6)
	for r := row - 1; r <= lastRow+1; r++ {
		for c := col - 1; c <= lastCol+1; c++ {
			if r < 0 || r >= GridSize || c < 0 || c >= GridSize {
				continue
			}
			if r >= row && r <= lastRow && c >= col && c <= lastCol {
				continue
			}
			ring = append(ring, r*GridSize+c)
		}
	}
	return ring
}

// remainingFleet tracks which fleet lengths are still unclaimed.
type remainingFleet struct {
	lengths [FleetSize]int
	claimed [FleetSize]bool
}

func newRemainingFleet() *remainingFleet {
	return &remainingFleet{lengths: Fleet}
}

func (rf *remainingFleet) claim(length int) bool {
	for i, l := range rf.lengths {
		if !rf.claimed[i] && l == length {
			rf.claimed[i] = true
			return true
		}
	}
	return false
}

// firstMissing returns the first unclaimed length in fleet order.
func (rf *remainingFleet) firstMissing() (int, bool) {
	for i, l := range rf.lengths {
		if !rf.claimed[i] {
			return l, true
		}
	}
	return 0, false
}
