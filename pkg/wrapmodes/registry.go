package wrapmodes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qsantos/impwrap/pkg/errors"
)

// WrapMode identifies a single wrap-mode strategy. Ordinal values follow
// registration order, which is part of the public contract: callers may
// resolve a mode by its number.
type WrapMode int

const (
	Grid WrapMode = iota
	Vertical
	HangingIndent
	VerticalHangingIndent
	VerticalGrid
	VerticalGridGrouped
	VerticalGridGroupedNoComma
	NOQA
)

// modeEntry ties a mode's canonical (upper-case) name to its formatter.
type modeEntry struct {
	name      string
	formatter Formatter
}

// registry lists every wrap mode in registration order. WrapMode ordinals
// index directly into this slice.
var registry = []modeEntry{
	{"GRID", grid},
	{"VERTICAL", vertical},
	{"HANGING_INDENT", hangingIndent},
	{"VERTICAL_HANGING_INDENT", verticalHangingIndent},
	{"VERTICAL_GRID", verticalGrid},
	{"VERTICAL_GRID_GROUPED", verticalGridGrouped},
	{"VERTICAL_GRID_GROUPED_NO_COMMA", verticalGridGroupedNoComma},
	{"NOQA", noqa},
}

// byName is derived once from the registry for case-insensitive lookups.
var byName = func() map[string]WrapMode {
	m := make(map[string]WrapMode, len(registry))
	for i, entry := range registry {
		m[entry.name] = WrapMode(i)
	}
	return m
}()

// FromString resolves a wrap-mode identifier: either an exact member name
// (upper-case, as registered) or a numeric ordinal. Anything else fails with
// errors.ErrUnknownWrapMode.
func FromString(value string) (WrapMode, error) {
	if mode, ok := byName[value]; ok {
		return mode, nil
	}
	if ordinal, err := strconv.Atoi(value); err == nil {
		if ordinal >= 0 && ordinal < len(registry) {
			return WrapMode(ordinal), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errors.ErrUnknownWrapMode, value)
}

// FormatterFromString returns the formatter registered under the given name,
// ignoring case. Unknown names fall back to grid: an unrecognized mode should
// degrade the layout, never abort the pipeline.
func FormatterFromString(name string) Formatter {
	if mode, ok := byName[strings.ToUpper(name)]; ok {
		return registry[mode].formatter
	}
	return grid
}

// Modes returns every wrap mode in registration order.
func Modes() []WrapMode {
	modes := make([]WrapMode, len(registry))
	for i := range registry {
		modes[i] = WrapMode(i)
	}
	return modes
}

// String returns the mode's canonical name.
func (m WrapMode) String() string {
	if m < 0 || int(m) >= len(registry) {
		return fmt.Sprintf("WrapMode(%d)", int(m))
	}
	return registry[m].name
}

// Format renders the statement described by iface under this wrap mode.
func (m WrapMode) Format(iface Interface) string {
	return registry[m].formatter(iface)
}
