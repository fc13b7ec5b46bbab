package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AndyF-42/BattleshipOnline/api"
	mb "github.com/AndyF-42/BattleshipOnline/models/battleship"
)

// Console is a line based Frontend on a reader and a writer, normally
// stdin and stdout.
type Console struct {
	scanner   *bufio.Scanner
	out       io.Writer
	boardFile string
}

func New(in io.Reader, out io.Writer, boardFile string) *Console {
	return &Console{
		scanner:   bufio.NewScanner(in),
		out:       out,
		boardFile: boardFile,
	}
}

func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

func (c *Console) OpponentJoined(name string) {
	if name == "" {
		name = "an unnamed opponent"
	}
	fmt.Fprintf(c.out, "Playing against %s\n", name)
}

// PlaceFleet reads the layout file once. After that, or without a file,
// the layout is typed in row by row.
func (c *Console) PlaceFleet() (mb.Board, error) {
	if c.boardFile != "" {
		path := c.boardFile
		c.boardFile = ""

		text, err := os.ReadFile(path)
		if err != nil {
			return mb.Board{}, err
		}
		board, err := mb.ParseLayout(string(text))
		if err == nil {
			return board, nil
		}
		fmt.Fprintf(c.out, "Layout file %s: %s\n", path, err)
	}

	for {
		fmt.Fprintln(c.out, "Place your fleet (5, 4, 3, 3, 2): 10 rows of '#' for ship and '.' for water")

		rows := make([]string, 0, mb.GridSize)
		for len(rows) < mb.GridSize {
			line, err := c.readLine(fmt.Sprintf("%d> ", len(rows)))
			if err != nil {
				return mb.Board{}, err
			}
			if line == "" {
				continue
			}
			rows = append(rows, line)
		}

		board, err := mb.ParseLayout(strings.Join(rows, "\n"))
		if err != nil {
			fmt.Fprintln(c.out, err)
			continue
		}
		return board, nil
	}
}

func (c *Console) PlacementRejected(err error) {
	fmt.Fprintf(c.out, "Placement rejected: %s\n", err)
}

func (c *Console) AwaitingPeer() {
	fmt.Fprintln(c.out, "Fleet ready, waiting for opponent...")
}

func (c *Console) ChooseTarget(tracking mb.Board) (int, error) {
	fmt.Fprintln(c.out, tracking.String())
	for {
		line, err := c.readLine("Target (e.g. C4): ")
		if err != nil {
			return -1, err
		}

		idx, err := mb.ParseCoordinates(line)
		if err != nil {
			fmt.Fprintln(c.out, err)
			continue
		}
		return idx, nil
	}
}

func (c *Console) MoveRejected(idx int, err error) {
	fmt.Fprintf(c.out, "Cannot fire there: %s\n", err)
}

func (c *Console) ShotResolved(report mb.ShotReport, tracking mb.Board) {
	fmt.Fprintf(c.out, "%s: %s\n", mb.NewCoordinates(report.Index), shotResult(report))
	if report.Sunk != nil {
		fmt.Fprintf(c.out, "You sank a ship of length %d (%d/%d)\n", report.Sunk.Ship.Length, report.Sunken, mb.FleetSize)
	}
}

func (c *Console) ShotReceived(report mb.ShotReport, own mb.Board) {
	fmt.Fprintf(c.out, "Opponent fired at %s: %s\n", mb.NewCoordinates(report.Index), shotResult(report))
	if report.Sunk != nil {
		fmt.Fprintf(c.out, "Your ship of length %d was sunk (%d/%d)\n", report.Sunk.Ship.Length, report.Sunken, mb.FleetSize)
	}
	fmt.Fprintln(c.out, own.String())
}

func (c *Console) MatchOver(won bool, scoreboard mb.Scoreboard) {
	if won {
		fmt.Fprintln(c.out, "You won!")
	} else {
		fmt.Fprintln(c.out, "You lost.")
	}
	fmt.Fprintf(c.out, "%s %d - %d %s\t(%d played)\n",
		scoreboard.LocalName, scoreboard.LocalWins, scoreboard.OpponentWins, scoreboard.OpponentName, scoreboard.MatchesPlayed)
}

func (c *Console) VoteRematch() (bool, error) {
	line, err := c.readLine("Rematch? [y/n]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (c *Console) RematchDecided(accepted bool) {
	if accepted {
		fmt.Fprintln(c.out, "Rematch!")
		return
	}
	fmt.Fprintln(c.out, "No rematch. Bye")
}

func shotResult(report mb.ShotReport) string {
	if report.IsHit() {
		return "hit"
	}
	return "miss"
}

var _ api.Frontend = (*Console)(nil)
