package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/hypercube/internal/puzzle"
)

// parseMoves reads a comma-separated selector list such as "1, 5,27".
func parseMoves(s string) ([]puzzle.Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var seq []puzzle.Selector
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", f, err)
		}
		if n < 0 || n >= puzzle.Cubies {
			return nil, fmt.Errorf("move %d out of range [0, %d)", n, puzzle.Cubies)
		}
		seq = append(seq, puzzle.Selector(n))
	}
	return seq, nil
}

func formatMoves(seq []puzzle.Selector) string {
	parts := make([]string, len(seq))
	for i, s := range seq {
		parts[i] = strconv.Itoa(int(s))
	}
	return strings.Join(parts, ",")
}
