package wrapmodes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qsantos/impwrap/pkg/errors"
)

func TestFromString(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name    string
		value   string
		want    WrapMode
		wantErr bool
	}{
		{"first mode by name", "GRID", Grid, false},
		{"first mode by ordinal", "0", Grid, false},
		{"last mode by name", "NOQA", NOQA, false},
		{"last mode by ordinal", "7", NOQA, false},
		{"longest member name", "VERTICAL_GRID_GROUPED_NO_COMMA", VerticalGridGroupedNoComma, false},
		{"middle ordinal", "3", VerticalHangingIndent, false},
		{"lower-case name is not a member", "grid", 0, true},
		{"ordinal past the end", "8", 0, true},
		{"negative ordinal", "-1", 0, true},
		{"unknown name", "banana", 0, true},
		{"empty value", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := FromString(tt.value)
			if tt.wantErr {
				req.Error(err, "FromString(%q)", tt.value)
				req.ErrorIs(err, errors.ErrUnknownWrapMode)
				return
			}
			req.NoError(err, "FromString(%q)", tt.value)
			req.Equal(tt.want, mode, "FromString(%q)", tt.value)
		})
	}
}

func TestFromStringNameAndOrdinalAgree(t *testing.T) {
	req := require.New(t)

	byNameMode, err := FromString("GRID")
	req.NoError(err)
	byOrdinalMode, err := FromString("0")
	req.NoError(err)
	req.Equal(byNameMode, byOrdinalMode)
}

func TestFormatterFromString(t *testing.T) {
	req := require.New(t)

	iface := testInterface()
	iface.Imports = []string{"b", "c", "d"}

	tests := []struct {
		name string
		mode string
		want WrapMode
	}{
		{"exact name", "VERTICAL", Vertical},
		{"lower-case name", "vertical", Vertical},
		{"mixed-case name", "VeRtIcAl_GrId", VerticalGrid},
		{"noqa", "noqa", NOQA},
		{"unknown name falls back to grid", "no_such_mode", Grid},
		{"empty name falls back to grid", "", Grid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := FormatterFromString(tt.mode)
			req.Equal(tt.want.Format(iface), formatter(iface), "FormatterFromString(%q)", tt.mode)
		})
	}
}

func TestModesOrder(t *testing.T) {
	req := require.New(t)

	want := []string{
		"GRID",
		"VERTICAL",
		"HANGING_INDENT",
		"VERTICAL_HANGING_INDENT",
		"VERTICAL_GRID",
		"VERTICAL_GRID_GROUPED",
		"VERTICAL_GRID_GROUPED_NO_COMMA",
		"NOQA",
	}

	modes := Modes()
	req.Len(modes, len(want))
	for i, mode := range modes {
		req.Equal(WrapMode(i), mode, "ordinal %d", i)
		req.Equal(want[i], mode.String(), "ordinal %d", i)
	}
}

func TestWrapModeString(t *testing.T) {
	req := require.New(t)

	req.Equal("GRID", Grid.String())
	req.Equal("NOQA", NOQA.String())
	req.Equal("WrapMode(42)", WrapMode(42).String())
	req.Equal("WrapMode(-1)", WrapMode(-1).String())
}
