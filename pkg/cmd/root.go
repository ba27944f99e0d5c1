package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qsantos/impwrap/pkg/errors"
	"github.com/qsantos/impwrap/pkg/version"
	"github.com/qsantos/impwrap/pkg/wrapmodes"
)

const (
	UseDescription   = "impwrap [flags] STATEMENT [IMPORT...]"
	ShortDescription = "Import wrapper - A tool to wrap long import statements"
	LongDescription  = `impwrap is a command-line tool that renders a list of import names into a
column-width-constrained multi-line statement.

STATEMENT is the literal statement head (e.g. "from x import ") and each
IMPORT is one import name to place after it. The layout is chosen with
--mode, either by name (e.g. VERTICAL_GRID) or by number; use --list-modes
to see every mode in registration order.

The output is printed to stdout as a single statement whose lines respect
--line-length, except in NOQA mode, which never reflows and instead attaches
a lint-suppression marker when the line is overlong.`
)

var (
	modeName       string
	lineLength     int
	indent         string
	whiteSpace     string
	commentPrefix  string
	commentTokens  []string
	trailingComma  bool
	removeComments bool
	listModes      bool
	showVersion    bool
	versionStr     string
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&modeName, "mode", "m", "GRID", "Wrap mode, by name or registration number (see --list-modes)")
	rootCmd.PersistentFlags().IntVarP(&lineLength, "line-length", "l", 79, "Maximum permitted column width of any output line")
	rootCmd.PersistentFlags().StringVar(&indent, "indent", "    ", "Indent string for block-style continuation lines")
	rootCmd.PersistentFlags().StringVar(&whiteSpace, "white-space", "", "Indent string aligning continuation content under the opening construct (defaults to the statement head's width plus one)")
	rootCmd.PersistentFlags().StringVar(&commentPrefix, "comment-prefix", "  #", "Literal text introducing a trailing comment")
	rootCmd.PersistentFlags().StringSliceVar(&commentTokens, "comment", []string{}, "Comma-separated trailing comments to attach to the statement")
	rootCmd.PersistentFlags().BoolVar(&trailingComma, "trailing-comma", false, "Append a trailing separator after the last import before closing")
	rootCmd.PersistentFlags().BoolVar(&removeComments, "remove-comments", false, "Drop comments instead of rendering them")
	rootCmd.PersistentFlags().BoolVar(&listModes, "list-modes", false, "List all wrap modes in registration order and exit")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// Listing modes or showing the version needs no statement argument
	if showVersion || listModes {
		return nil
	}
	if len(args) < 1 {
		return fmt.Errorf("%s", errors.ErrMsgMissingStatement)
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		fmt.Printf("Import Wrapper (impwrap) version %s\n", versionStr)
		fmt.Println(version.Get().String())
		return nil
	}

	// Handle mode listing
	if listModes {
		for _, mode := range wrapmodes.Modes() {
			fmt.Printf("%d\t%s\n", int(mode), mode)
		}
		return nil
	}

	if lineLength < 0 {
		return fmt.Errorf("%s: %d", errors.ErrMsgInvalidLineLength, lineLength)
	}

	mode, err := wrapmodes.FromString(strings.ToUpper(modeName))
	if err != nil {
		return err
	}

	statement := args[0]
	imports := args[1:]
	if whiteSpace == "" {
		// Align continuation lines one column past the statement head
		whiteSpace = strings.Repeat(" ", len(statement)+1)
	}

	output := mode.Format(wrapmodes.Interface{
		Statement:            statement,
		Imports:              imports,
		WhiteSpace:           whiteSpace,
		Indent:               indent,
		LineLength:           lineLength,
		Comments:             commentTokens,
		LineSeparator:        "\n",
		CommentPrefix:        commentPrefix,
		IncludeTrailingComma: trailingComma,
		RemoveComments:       removeComments,
	})
	fmt.Println(output)
	return nil
}

func Execute(version string) error {
	versionStr = version
	return rootCmd.Execute()
}
