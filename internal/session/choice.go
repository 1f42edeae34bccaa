package session

import (
	"errors"
	"strconv"
	"strings"
)

// ChoiceKind classifies a menu selection typed by the user.
type ChoiceKind int

const (
	ChoiceIndex ChoiceKind = iota
	ChoiceNotANumber
	ChoiceOutOfRange
)

// Choice is the parsed form of a folder selection. Index is 0-based and only
// meaningful when Kind is ChoiceIndex.
type Choice struct {
	Kind  ChoiceKind
	Index int
}

// ParseChoice parses a 1-based base-10 selection against n candidates.
func ParseChoice(input string, n int) Choice {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Choice{Kind: ChoiceOutOfRange}
		}
		return Choice{Kind: ChoiceNotANumber}
	}
	if v < 1 || v > n {
		return Choice{Kind: ChoiceOutOfRange}
	}
	return Choice{Kind: ChoiceIndex, Index: v - 1}
}
