package op

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode is the pipeline execution mode.
type Mode uint8

// Execution modes.
const (
	Train Mode = 1 << iota
	Eval
	Test
	Infer
)

var modeNames = []struct {
	mode Mode
	name string
}{
	{Train, "train"},
	{Eval, "eval"},
	{Test, "test"},
	{Infer, "infer"},
}

// String returns the mode name.
func (m Mode) String() string {
	for _, mn := range modeNames {
		if mn.mode == m {
			return mn.name
		}
	}
	return "unknown"
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	for _, mn := range modeNames {
		if mn.name == s {
			return mn.mode, nil
		}
	}
	return 0, errors.Errorf("unknown mode %q", s)
}

// ModeSet is a set of modes. The zero value means every mode.
type ModeSet uint8

// AllModes contains every mode.
const AllModes = ModeSet(Train | Eval | Test | Infer)

// NewModeSet returns the set holding modes.
func NewModeSet(modes ...Mode) ModeSet {
	var s ModeSet
	for _, m := range modes {
		s |= ModeSet(m)
	}
	return s
}

// Contains reports whether m is in the set.
func (s ModeSet) Contains(m Mode) bool {
	if s == 0 {
		return true
	}
	return s&ModeSet(m) != 0
}

// String lists the modes in the set, e.g. "train,eval".
func (s ModeSet) String() string {
	if s == 0 || s == AllModes {
		return "all"
	}
	var names []string
	for _, mn := range modeNames {
		if s&ModeSet(mn.mode) != 0 {
			names = append(names, mn.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseModes builds a ModeSet from mode names. A leading "!" excludes a
// mode; exclusions apply to the listed modes, or to every mode when only
// exclusions are given. No names yields the zero set (every mode).
//
//	ParseModes("train", "eval")  // train,eval
//	ParseModes("!infer")         // train,eval,test
func ParseModes(names ...string) (ModeSet, error) {
	var include, exclude ModeSet
	for _, name := range names {
		negate := strings.HasPrefix(name, "!")
		m, err := ParseMode(strings.TrimPrefix(name, "!"))
		if err != nil {
			return 0, err
		}
		if negate {
			exclude |= ModeSet(m)
		} else {
			include |= ModeSet(m)
		}
	}

	if include == 0 && exclude == 0 {
		return 0, nil
	}
	if include == 0 {
		include = AllModes
	}
	set := include &^ exclude
	if set == 0 {
		return 0, errors.Errorf("modes %v exclude every mode", names)
	}
	return set, nil
}
