package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/foldiff/foldiff/internal/cache"
	"github.com/foldiff/foldiff/internal/config"
	"github.com/foldiff/foldiff/internal/engine"
	"github.com/foldiff/foldiff/internal/render"
	"github.com/foldiff/foldiff/internal/source"
)

// Shared pair flags
var (
	flagGit          string
	flagContext      int
	flagMinLines     int
	flagReveal       int
	flagMaxFileBytes int
	flagNoCache      bool
)

// diff-specific flags
var (
	flagWidth       int
	flagColor       string
	flagNoHighlight bool
	flagTheme       string
	flagOut         string
)

func addPairFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagGit, "git", "", "Diff against a git revision (rev) or range (old..new)")
	cmd.Flags().IntVar(&flagContext, "context", 0, "Unchanged lines kept around each change")
	cmd.Flags().IntVar(&flagMinLines, "min-lines", 0, "Minimum visible lines per unchanged block")
	cmd.Flags().IntVar(&flagReveal, "reveal", 0, "Lines revealed per expansion in interactive viewers")
	cmd.Flags().IntVar(&flagMaxFileBytes, "max-file-bytes", 0, "Maximum file size in bytes")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the rendered-output cache")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagContext > 0 {
		m["budget.contextLines"] = fmt.Sprintf("%d", flagContext)
	}
	if flagMinLines > 0 {
		m["budget.minimumLines"] = fmt.Sprintf("%d", flagMinLines)
	}
	if flagReveal > 0 {
		m["budget.revealLines"] = fmt.Sprintf("%d", flagReveal)
	}
	if flagMaxFileBytes > 0 {
		m["maxFileBytes"] = fmt.Sprintf("%d", flagMaxFileBytes)
	}
	if flagWidth > 0 {
		m["width"] = fmt.Sprintf("%d", flagWidth)
	}
	if flagColor != "" {
		m["color"] = flagColor
	}
	if flagNoHighlight {
		m["highlight"] = "false"
	}
	if flagTheme != "" {
		m["theme"] = flagTheme
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	return m
}

// loadPair resolves the two sides from positional args and the --git flag.
// With --git old..new one path argument names the file at both revisions;
// with --git rev the revision is diffed against the working tree copy.
// Without --git, two file paths are required.
func loadPair(args []string, cfg config.Config) (source.Pair, error) {
	opts := source.Options{MaxFileBytes: cfg.MaxFileBytes}
	if flagGit != "" {
		if len(args) != 1 {
			return source.Pair{}, fmt.Errorf("--git requires exactly one path argument")
		}
		if oldRev, newRev, ok := strings.Cut(flagGit, ".."); ok {
			newRev = strings.TrimPrefix(newRev, ".") // tolerate three-dot ranges
			return source.GitRange(oldRev, newRev, args[0], opts)
		}
		return source.GitFile(flagGit, args[0], opts)
	}
	if len(args) != 2 {
		return source.Pair{}, fmt.Errorf("two file paths required (or use --git)")
	}
	return source.Files(args[0], args[1], opts)
}

func colorEnabled(mode, outPath string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return outPath == "" &&
			(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
	}
}

func writeOut(s, outPath string) error {
	if outPath != "" {
		return os.WriteFile(outPath, []byte(s), 0o644)
	}
	_, err := fmt.Fprint(os.Stdout, s)
	return err
}

var diffCmd = &cobra.Command{
	Use:   "diff <old> <new>",
	Short: "Show a side-by-side diff with folded unchanged regions",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		pair, err := loadPair(args, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntime
			return nil
		}

		color := colorEnabled(cfg.Color, flagOut)
		fingerprint := fmt.Sprintf("render|%t|%t|%s|%d|%+v|%+v",
			color, cfg.Highlight, cfg.Theme, cfg.Width, cfg.Budget, cfg.Sizing)

		c, err := cache.New(cfg.Cache.Enabled && !flagNoCache, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntime
			return nil
		}
		key := cache.BuildCacheKey("diff", fingerprint, pair.OldText, pair.NewText)
		if entry, ok := c.Get(key); ok {
			if err := writeOut(entry.Output, flagOut); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
				exitCode = ExitRuntime
				return nil
			}
			if entry.Differences {
				exitCode = ExitDifferences
			}
			return nil
		}

		res := engine.Diff(pair.OldText, pair.NewText, cfg.Budget, cfg.Sizing)

		var buf bytes.Buffer
		err = render.SideBySide(&buf, res, cfg.Budget, cfg.Sizing.FallbackFloor, render.Options{
			Width:     cfg.Width,
			Color:     color,
			Highlight: cfg.Highlight,
			Theme:     cfg.Theme,
			Path:      pair.NewPath,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
			exitCode = ExitRuntime
			return nil
		}

		if err := writeOut(buf.String(), flagOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntime
			return nil
		}
		if err := c.Put(key, buf.String(), res.HasChanges()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache write failed: %v\n", err)
		}
		if res.HasChanges() {
			exitCode = ExitDifferences
		}
		return nil
	},
}

func init() {
	addPairFlags(diffCmd)
	diffCmd.Flags().IntVar(&flagWidth, "width", 0, "Output width in columns")
	diffCmd.Flags().StringVar(&flagColor, "color", "", "Color mode (auto, always, never)")
	diffCmd.Flags().BoolVar(&flagNoHighlight, "no-highlight", false, "Disable syntax highlighting")
	diffCmd.Flags().StringVar(&flagTheme, "theme", "", "Syntax highlighting theme")
	diffCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
}
