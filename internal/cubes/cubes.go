// Package cubes scores the cube-drawing game: each line records one game as
// rounds of colored cube counts drawn from a bag.
package cubes

import (
	"fmt"
	"strconv"
	"strings"
)

// Draw is the number of cubes of each color shown in one round.
type Draw struct {
	Red, Green, Blue int
}

// Fits reports whether d could come from a bag holding bag.
func (d Draw) Fits(bag Draw) bool {
	return d.Red <= bag.Red && d.Green <= bag.Green && d.Blue <= bag.Blue
}

// Power is the product of the three counts.
func (d Draw) Power() int { return d.Red * d.Green * d.Blue }

// Game is one parsed input line.
type Game struct {
	ID     int
	Rounds []Draw
}

// Bag is the load used by Part1.
var Bag = Draw{Red: 12, Green: 13, Blue: 14}

// Possible reports whether every round fits bag.
func (g Game) Possible(bag Draw) bool {
	for _, r := range g.Rounds {
		if !r.Fits(bag) {
			return false
		}
	}
	return true
}

// MinimumSet is the smallest bag that makes the game possible.
func (g Game) MinimumSet() Draw {
	var m Draw
	for _, r := range g.Rounds {
		m.Red = max(m.Red, r.Red)
		m.Green = max(m.Green, r.Green)
		m.Blue = max(m.Blue, r.Blue)
	}
	return m
}

// ParseGame reads "Game <id>: <n> <color>, ...; ...".
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("missing ':' in %q", line)
	}
	idText, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("missing \"Game\" prefix in %q", head)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return Game{}, fmt.Errorf("bad game id %q: %w", idText, err)
	}
	g := Game{ID: id}
	for _, round := range strings.Split(body, ";") {
		var d Draw
		for _, cube := range strings.Split(round, ",") {
			f := strings.Fields(cube)
			if len(f) != 2 {
				return Game{}, fmt.Errorf("game %d: want \"<amount> <color>\", got %q", id, strings.TrimSpace(cube))
			}
			n, err := strconv.Atoi(f[0])
			if err != nil || n < 0 {
				return Game{}, fmt.Errorf("game %d: bad amount %q", id, f[0])
			}
			// a color repeated within a round is separate draws; keep the largest
			switch f[1] {
			case "red":
				d.Red = max(d.Red, n)
			case "green":
				d.Green = max(d.Green, n)
			case "blue":
				d.Blue = max(d.Blue, n)
			default:
				return Game{}, fmt.Errorf("game %d: %q is an invalid color", id, f[1])
			}
		}
		g.Rounds = append(g.Rounds, d)
	}
	return g, nil
}

// ParseGames reads one game per non-empty line.
func ParseGames(input string) ([]Game, error) {
	var games []Game
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// Part1 sums the ids of games possible with Bag.
func Part1(input string) (string, error) {
	games, err := ParseGames(input)
	if err != nil {
		return "", err
	}
	sum := 0
	for _, g := range games {
		if g.Possible(Bag) {
			sum += g.ID
		}
	}
	return strconv.Itoa(sum), nil
}

// Part2 sums the power of each game's minimum set.
func Part2(input string) (string, error) {
	games, err := ParseGames(input)
	if err != nil {
		return "", err
	}
	sum := 0
	for _, g := range games {
		sum += g.MinimumSet().Power()
	}
	return strconv.Itoa(sum), nil
}
