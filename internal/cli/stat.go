package cli

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/foldiff/foldiff/internal/cache"
	"github.com/foldiff/foldiff/internal/config"
	"github.com/foldiff/foldiff/internal/engine"
	"github.com/foldiff/foldiff/internal/output"
	"github.com/foldiff/foldiff/internal/source"
)

var flagFormat string

// maxConcurrency bounds the worker pool when stat processes several paths.
const maxConcurrency = 4

// loadPairs resolves every file pair named by the arguments. Without --git
// the two arguments form a single pair; with --git each argument is a path
// resolved against the revision (or range).
func loadPairs(args []string, cfg config.Config) ([]source.Pair, error) {
	if flagGit == "" {
		pair, err := loadPair(args, cfg)
		if err != nil {
			return nil, err
		}
		return []source.Pair{pair}, nil
	}
	pairs := make([]source.Pair, 0, len(args))
	for _, path := range args {
		pair, err := loadPair([]string{path}, cfg)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// statPair produces the formatted report for one pair, consulting the cache
// first. The bool reports whether the pair has differences.
func statPair(pair source.Pair, cfg config.Config, c *cache.Cache, writer output.Writer, loadMs int64) (string, bool, error) {
	fingerprint := fmt.Sprintf("%s|%+v|%+v", cfg.Format, cfg.Budget, cfg.Sizing)
	key := cache.BuildCacheKey("stat", fingerprint, pair.OldText, pair.NewText)
	if entry, ok := c.Get(key); ok {
		return entry.Output, entry.Differences, nil
	}

	diffStart := time.Now()
	res := engine.Diff(pair.OldText, pair.NewText, cfg.Budget, cfg.Sizing)
	diffMs := time.Since(diffStart).Milliseconds()

	report := engine.BuildReport(pair.OldPath, pair.NewPath, res, engine.Timing{
		TotalMs: loadMs + diffMs,
		LoadMs:  loadMs,
		DiffMs:  diffMs,
	})

	var buf bytes.Buffer
	if err := writer.Write(&buf, report); err != nil {
		return "", false, err
	}
	if err := c.Put(key, buf.String(), res.HasChanges()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cache write failed: %v\n", err)
	}
	return buf.String(), res.HasChanges(), nil
}

var statCmd = &cobra.Command{
	Use:   "stat <old> <new>",
	Short: "Summarize changed and folded regions without rendering lines",
	Long:  "Stat reports block counts, visible/hidden line totals, and projected metrics. With --git, several paths may be given and are processed concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		writer, err := output.GetWriter(cfg.Format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}

		start := time.Now()
		pairs, err := loadPairs(args, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntime
			return nil
		}
		loadMs := time.Since(start).Milliseconds()

		c, err := cache.New(cfg.Cache.Enabled && !flagNoCache, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntime
			return nil
		}

		type result struct {
			out     string
			changed bool
			err     error
		}
		results := make([]result, len(pairs))
		var wg sync.WaitGroup
		sem := make(chan struct{}, maxConcurrency)
		for i, pair := range pairs {
			wg.Add(1)
			go func(i int, pair source.Pair) {
				defer wg.Done()
				sem <- struct{}{}        // acquire
				defer func() { <-sem }() // release

				out, changed, err := statPair(pair, cfg, c, writer, loadMs)
				results[i] = result{out: out, changed: changed, err: err}
			}(i, pair)
		}
		wg.Wait()

		var combined bytes.Buffer
		anyChanged := false
		for i, r := range results {
			if r.err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s: %v\n", pairs[i].NewPath, r.err)
				exitCode = ExitRuntime
				return nil
			}
			combined.WriteString(r.out)
			anyChanged = anyChanged || r.changed
		}

		if err := writeOut(combined.String(), flagOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntime
			return nil
		}
		if anyChanged {
			exitCode = ExitDifferences
		}
		return nil
	},
}

func init() {
	addPairFlags(statCmd)
	statCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	statCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
}
