package battleship

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	cerr "github.com/AndyF-42/BattleshipOnline/internal/error"
)

const (
	GridSize  = 10
	GridCells = GridSize * GridSize
)

type Cell uint8

const (
	CellWater Cell = iota
	CellShipUnknown
	CellHit
	CellMiss
)

// Payload digits of the board exchange.
const (
	PayloadWater = '0'
	PayloadShip  = '1'
)

type Coordinates struct {
	Row uint8 `json:"row"`
	Col uint8 `json:"col"`
}

func NewCoordinates(idx int) Coordinates {
	return Coordinates{Row: uint8(idx / GridSize), Col: uint8(idx % GridSize)}
}

func (c Coordinates) Index() int {
	return int(c.Row)*GridSize + int(c.Col)
}

// String renders the coordinates as column letter plus row number, e.g. "C7".
func (c Coordinates) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.Col), c.Row)
}

// ParseCoordinates accepts either a linear index ("42") or a letter-number
// pair ("C4" is column C, row 4).
func ParseCoordinates(s string) (int, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return -1, fmt.Errorf("empty coordinates")
	}

	if n, err := strconv.Atoi(s); err == nil {
		if !IsValidIndex(n) {
			return -1, cerr.ErrCellOutOfBounds(n)
		}
		return n, nil
	}

	col := int(s[0] - 'A')
	row, err := strconv.Atoi(s[1:])
	if err != nil || col < 0 || col >= GridSize || row < 0 || row >= GridSize {
		return -1, fmt.Errorf("invalid coordinates: %q", s)
	}
	return row*GridSize + col, nil
}

func IsValidIndex(idx int) bool {
	return idx >= 0 && idx < GridCells
}

// Board is a 10x10 grid addressed by linear index row*10+col.
type Board [GridCells]Cell

// Creates a new all-water board
func NewBoard() Board {
	return Board{}
}

func (b *Board) At(row, col int) Cell {
	return b[row*GridSize+col]
}

// IsShip reports whether the cell holds a ship, hit or not.
func (b *Board) IsShip(row, col int) bool {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return false
	}
	c := b.At(row, col)
	return c == CellShipUnknown || c == CellHit
}

func (b *Board) IsResolved(idx int) bool {
	return b[idx] == CellHit || b[idx] == CellMiss
}

func (b *Board) Count(cell Cell) int {
	n := 0
	for _, c := range b {
		if c == cell {
			n++
		}
	}
	return n
}

// Encode produces the 100-digit board payload: 1 for ship cells, 0 otherwise.
func (b *Board) Encode() string {
	var sb strings.Builder
	sb.Grow(GridCells)
	for _, c := range b {
		if c == CellShipUnknown || c == CellHit {
			sb.WriteByte(PayloadShip)
		} else {
			sb.WriteByte(PayloadWater)
		}
	}
	return sb.String()
}

// DecodeBoard parses a board payload. Only the shape is checked here, the
// placement rules are not.
func DecodeBoard(payload string) (Board, error) {
	var board Board
	if len(payload) != GridCells {
		return board, cerr.ErrMalformedBoard(fmt.Sprintf("expected %d cells, got %d", GridCells, len(payload)))
	}

	for i := 0; i < GridCells; i++ {
		switch payload[i] {
		case PayloadWater:
			board[i] = CellWater
		case PayloadShip:
			board[i] = CellShipUnknown
		default:
			return board, cerr.ErrMalformedBoard(fmt.Sprintf("invalid digit %q at %d", payload[i], i))
		}
	}
	return board, nil
}

// ParseLayout reads a human-written layout: GridSize lines of GridSize
// characters where '#', 'S', 'X' or '1' mark a ship and anything else is water.
// Blank lines and lines starting with "//" are ignored.
func ParseLayout(text string) (Board, error) {
	var board Board
	row := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		line = strings.ReplaceAll(line, " ", "")
		if row >= GridSize {
			return board, fmt.Errorf("layout has more than %d rows", GridSize)
		}
		if len(line) != GridSize {
			return board, fmt.Errorf("layout row %d has %d cells, expected %d", row, len(line), GridSize)
		}

		for col := 0; col < GridSize; col++ {
			switch line[col] {
			case '#', 'S', 's', 'X', 'x', '1':
				board[row*GridSize+col] = CellShipUnknown
			}
		}
		row++
	}

	if row != GridSize {
		return board, fmt.Errorf("layout has %d rows, expected %d", row, GridSize)
	}
	return board, nil
}

func (b *Board) String() string {
	var buffer bytes.Buffer
	tabWriter := tabwriter.NewWriter(&buffer, 2, 0, 1, ' ', 0)

	fmt.Fprint(tabWriter, "\t")
	for col := 0; col < GridSize; col++ {
		fmt.Fprintf(tabWriter, "%c\t", 'A'+rune(col))
	}
	fmt.Fprint(tabWriter, "\n")

	for row := 0; row < GridSize; row++ {
		fmt.Fprintf(tabWriter, "%d\t", row)
		for col := 0; col < GridSize; col++ {
			switch b.At(row, col) {
			case CellShipUnknown:
				fmt.Fprint(tabWriter, "#\t")
			case CellHit:
				fmt.Fprint(tabWriter, "X\t")
			case CellMiss:
				fmt.Fprint(tabWriter, "o\t")
			default:
				fmt.Fprint(tabWriter, "~\t")
			}
		}
		fmt.Fprint(tabWriter, "\n")
	}
	tabWriter.Flush()
	return buffer.String()
}
