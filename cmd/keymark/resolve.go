package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/dshills/keymark/internal/bookmark"
	"github.com/dshills/keymark/internal/document"
	"github.com/dshills/keymark/internal/marker"
)

var (
	resolveMarks []string
	resolveText  bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <file> --mark L:C-L:C[@kind] ...",
	Short: "Print the character range of each mark",
	Long: `Resolve each mark against the file and print one line per mark:

  <mark> <offset> <length>

Offsets count characters from the start of the file. Marks that do not
resolve are reported on stderr and make the command fail after every mark
has been tried.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringArrayVarP(&resolveMarks, "mark", "m", nil, "Mark to resolve (repeatable)")
	resolveCmd.Flags().BoolVar(&resolveText, "text", false, "Also print the marked text")
	_ = resolveCmd.MarkFlagRequired("mark")
}

// outputStyles holds the colours used for command output.
type outputStyles struct {
	mark *color.Color
	err  *color.Color
}

var termStyles = newOutputStyles()

func newOutputStyles() outputStyles {
	return outputStyles{
		mark: color.New(color.Bold),
		err:  color.New(color.FgRed),
	}
}

func setColor(disabled bool) {
	if disabled || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
}

func runResolve(cmd *cobra.Command, args []string) error {
	specs, err := parseMarks(resolveMarks)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	doc := document.New(string(data))
	markers := marker.NewService(doc)
	defer markers.Close()

	out := cmd.OutOrStdout()
	var result *multierror.Error

	for i, b := range bookmarks(filepath.Base(args[0]), specs, cfg.Traits()) {
		m, err := bookmark.CreateMarker[*marker.Marker](b, markers)
		if err != nil {
			logger.Warn("mark does not resolve", "mark", specs[i].Raw, "err", err)
			termStyles.err.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", specs[i].Raw, err)
			result = multierror.Append(result, fmt.Errorf("%s: %w", specs[i].Raw, err))
			continue
		}

		termStyles.mark.Fprint(out, specs[i].Raw)
		fmt.Fprintf(out, " %d %d", m.Offset(), m.Length())
		if resolveText {
			text, _ := doc.TextRange(m.Offset(), m.EndOffset())
			fmt.Fprintf(out, " %q", text)
		}
		fmt.Fprintln(out)
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%d of %d marks failed", len(result.Errors), len(specs))
	}
	return nil
}
