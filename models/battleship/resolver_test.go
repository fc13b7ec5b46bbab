package battleship

import (
	"errors"
	"sort"
	"testing"

	cerr "github.com/AndyF-42/BattleshipOnline/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAttack(t *testing.T) {
	truth := mustLayout(t, rowFleetLayout)

	testCases := []struct {
		Name           string
		Index          int
		ExpectedResult Cell
		ExpectedErr    error
	}{
		{Name: "Hit on ship cell", Index: 2, ExpectedResult: CellHit},
		{Name: "Miss on water", Index: 15, ExpectedResult: CellMiss},
		{Name: "Miss on last cell", Index: 99, ExpectedResult: CellMiss},
		{Name: "Negative index", Index: -1, ExpectedErr: cerr.ErrInvalidMove},
		{Name: "Index past the board", Index: 100, ExpectedErr: cerr.ErrInvalidMove},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			tracking := NewBoard()

			result, err := ResolveAttack(&truth, &tracking, testCase.Index)

			if testCase.ExpectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, testCase.ExpectedErr))
				assert.Equal(t, NewBoard(), tracking)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.ExpectedResult, result)
			assert.Equal(t, testCase.ExpectedResult, tracking[testCase.Index])
		})
	}
}

func TestResolveAttack_SameCellTwiceIsInvalidMove(t *testing.T) {
	truth := mustLayout(t, rowFleetLayout)
	tracking := NewBoard()

	for _, idx := range []int{0, 50} {
		first, err := ResolveAttack(&truth, &tracking, idx)
		require.NoError(t, err)

		second, err := ResolveAttack(&truth, &tracking, idx)
		require.Error(t, err)
		assert.True(t, IsInvalidMove(err))
		assert.Equal(t, first, second, "a rejected re-attack reports the recorded state")
		assert.Equal(t, first, tracking[idx])
	}
}

func TestDetectSunk_HorizontalShipInOpenWater(t *testing.T) {
	// given
	truth := NewBoard()
	for _, idx := range []int{43, 44, 45} {
		truth[idx] = CellShipUnknown
	}
	tracking := NewBoard()

	// when
	for _, idx := range []int{43, 44} {
		result, err := ResolveAttack(&truth, &tracking, idx)
		require.NoError(t, err)
		require.Equal(t, CellHit, result)

		_, sunk, err := DetectSunk(&truth, &tracking, idx)
		require.NoError(t, err)
		assert.False(t, sunk, "partially hit ship must not sink")
	}
	assert.Equal(t, 2, tracking.Count(CellHit))
	assert.Equal(t, 0, tracking.Count(CellMiss))

	_, err := ResolveAttack(&truth, &tracking, 45)
	require.NoError(t, err)
	sunkShip, sunk, err := DetectSunk(&truth, &tracking, 45)

	// then
	require.NoError(t, err)
	require.True(t, sunk)
	assert.Equal(t, Ship{Start: 43, Length: 3, Orientation: OrientationHorizontal}, sunkShip.Ship)

	expectedRing := []int{32, 33, 34, 35, 36, 42, 46, 52, 53, 54, 55, 56}
	revealed := append([]int(nil), sunkShip.Revealed...)
	sort.Ints(revealed)
	assert.Equal(t, expectedRing, revealed)
	for _, idx := range expectedRing {
		assert.Equal(t, CellMiss, tracking[idx], "cell %d", idx)
	}
	assert.Equal(t, 3, tracking.Count(CellHit))
	assert.Equal(t, len(expectedRing), tracking.Count(CellMiss))
}

func TestDetectSunk_VerticalShipInCorner(t *testing.T) {
	truth := NewBoard()
	for _, idx := range []int{59, 69, 79, 89, 99} {
		truth[idx] = CellShipUnknown
	}
	tracking := NewBoard()

	// an earlier miss inside the ring stays as it was
	_, err := ResolveAttack(&truth, &tracking, 78)
	require.NoError(t, err)

	var sunkShip SunkShip
	var sunk bool
	for _, idx := range []int{99, 59, 79, 69, 89} {
		_, err := ResolveAttack(&truth, &tracking, idx)
		require.NoError(t, err)
		sunkShip, sunk, err = DetectSunk(&truth, &tracking, idx)
		require.NoError(t, err)
	}

	require.True(t, sunk)
	assert.Equal(t, Ship{Start: 59, Length: 5, Orientation: OrientationVertical}, sunkShip.Ship)

	revealed := append([]int(nil), sunkShip.Revealed...)
	sort.Ints(revealed)
	assert.Equal(t, []int{48, 49, 58, 68, 88, 98}, revealed)
	assert.Equal(t, CellMiss, tracking[78])
}

func TestDetectSunk_RevealNeverTouchesOtherShips(t *testing.T) {
	truth := mustLayout(t, mixedFleetLayout)
	tracking := NewBoard()

	// sink the length 2 ship at row 7, columns 8 and 9
	for _, idx := range []int{78, 79} {
		_, err := ResolveAttack(&truth, &tracking, idx)
		require.NoError(t, err)
	}
	sunkShip, sunk, err := DetectSunk(&truth, &tracking, 79)
	require.NoError(t, err)
	require.True(t, sunk)

	for _, idx := range sunkShip.Revealed {
		assert.False(t, truth.IsShip(idx/GridSize, idx%GridSize), "revealed ship cell %d", idx)
	}
}

func TestDetectSunk_OnWaterIsNoShip(t *testing.T) {
	truth := mustLayout(t, rowFleetLayout)
	tracking := NewBoard()

	_, sunk, err := DetectSunk(&truth, &tracking, 10)
	require.NoError(t, err)
	assert.False(t, sunk)
}

func TestTraceShip_AmbiguousOrientation(t *testing.T) {
	truth := NewBoard()
	truth[55] = CellShipUnknown

	_, ok, err := TraceShip(&truth, 55)
	require.Error(t, err)
	assert.False(t, ok)

	// plus shape: three across and three down through the same cell
	for _, idx := range []int{45, 54, 56, 65} {
		truth[idx] = CellShipUnknown
	}
	_, _, err = TraceShip(&truth, 55)
	require.Error(t, err)
}

func TestSinkRevealAgreesWithExplicitAttack(t *testing.T) {
	truth := mustLayout(t, rowFleetLayout)
	tracking := NewBoard()

	var revealed []int
	for idx := 0; idx < 5; idx++ {
		_, err := ResolveAttack(&truth, &tracking, idx)
		require.NoError(t, err)
		sunkShip, sunk, err := DetectSunk(&truth, &tracking, idx)
		require.NoError(t, err)
		if sunk {
			revealed = sunkShip.Revealed
		}
	}
	require.NotEmpty(t, revealed)

	for _, idx := range revealed {
		fresh := NewBoard()
		result, err := ResolveAttack(&truth, &fresh, idx)
		require.NoError(t, err)
		assert.Equal(t, CellMiss, result)

		again, err := ResolveAttack(&truth, &tracking, idx)
		assert.True(t, IsInvalidMove(err))
		assert.Equal(t, result, again)
	}
}

func TestEndToEndRowZeroSink(t *testing.T) {
	truth := mustLayout(t, rowFleetLayout)
	require.NoError(t, ValidatePlacement(truth))
	tracking := NewBoard()

	for idx := 0; idx < 5; idx++ {
		result, err := ResolveAttack(&truth, &tracking, idx)
		require.NoError(t, err)
		assert.Equal(t, CellHit, result)

		sunkShip, sunk, err := DetectSunk(&truth, &tracking, idx)
		require.NoError(t, err)
		if idx < 4 {
			assert.False(t, sunk, "sunk after %d shots", idx+1)
			continue
		}

		require.True(t, sunk)
		assert.Equal(t, 5, sunkShip.Ship.Length)
		revealed := append([]int(nil), sunkShip.Revealed...)
		sort.Ints(revealed)
		assert.Equal(t, []int{5, 10, 11, 12, 13, 14, 15}, revealed)
	}
	assert.Equal(t, 1, CountSunkShips(&truth, &tracking))
}

func TestCountSunkShipsAndGameOver(t *testing.T) {
	truth := mustLayout(t, mixedFleetLayout)
	tracking := NewBoard()

	sunkCount := 0
	gameOvers := 0
	for _, idx := range shipCells(truth) {
		assert.False(t, IsGameOver(sunkCount))

		_, err := ResolveAttack(&truth, &tracking, idx)
		require.NoError(t, err)
		_, sunk, err := DetectSunk(&truth, &tracking, idx)
		require.NoError(t, err)
		if sunk {
			sunkCount++
		}
		assert.Equal(t, sunkCount, CountSunkShips(&truth, &tracking))
		if IsGameOver(sunkCount) {
			gameOvers++
		}
	}

	assert.Equal(t, FleetSize, sunkCount)
	assert.Equal(t, 1, gameOvers)
}
