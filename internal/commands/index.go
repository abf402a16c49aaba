package commands

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode"
)

// ErrIndexRequired indicates fewer index arguments than the command needs.
var ErrIndexRequired = errors.New("task number required")

// ParseIndexes parses exactly n 1-based task numbers from args.
//
// Only the shape of each argument is checked here. Whether a number is
// within the current list is decided by the task list itself, which reports
// out-of-range numbers as a message rather than a usage error.
func ParseIndexes(args []string, n int) ([]int, error) {
	if len(args) < n {
		return nil, ErrIndexRequired
	}
	if len(args) > n {
		return nil, fmt.Errorf("unexpected argument: %s", args[n])
	}

	indexes := make([]int, n)
	for i, arg := range args {
		if !isAllDigits(arg) {
			return nil, fmt.Errorf("invalid task number: %s", arg)
		}
		num, err := strconv.Atoi(arg)
		if errors.Is(err, strconv.ErrRange) {
			// Too large for an int, so past the end of any list.
			num = math.MaxInt
		} else if err != nil {
			return nil, fmt.Errorf("invalid task number: %s", arg)
		}
		indexes[i] = num
	}
	return indexes, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
