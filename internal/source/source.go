package source

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Options controls how file contents are loaded.
type Options struct {
	MaxFileBytes int
}

// Pair holds the two versions of a file to be diffed.
type Pair struct {
	OldPath string
	NewPath string
	OldText string
	NewText string
}

// Files loads both sides of the pair from the filesystem.
func Files(oldPath, newPath string, opts Options) (Pair, error) {
	oldText, err := readGuarded(oldPath, opts)
	if err != nil {
		return Pair{}, err
	}
	newText, err := readGuarded(newPath, opts)
	if err != nil {
		return Pair{}, err
	}
	return Pair{
		OldPath: oldPath,
		NewPath: newPath,
		OldText: oldText,
		NewText: newText,
	}, nil
}

// GitFile loads the file at a git revision as the old side and the working
// tree copy as the new side.
func GitFile(rev, path string, opts Options) (Pair, error) {
	oldText, err := gitShow(rev, path)
	if err != nil {
		return Pair{}, err
	}
	if err := checkText(rev+":"+path, oldText, opts); err != nil {
		return Pair{}, err
	}
	newText, err := readGuarded(path, opts)
	if err != nil {
		if os.IsNotExist(err) {
			// Deleted in the working tree.
			newText = ""
		} else {
			return Pair{}, err
		}
	}
	return Pair{
		OldPath: rev + ":" + path,
		NewPath: path,
		OldText: oldText,
		NewText: newText,
	}, nil
}

// GitRange loads the same path at two git revisions.
func GitRange(oldRev, newRev, path string, opts Options) (Pair, error) {
	oldText, err := gitShow(oldRev, path)
	if err != nil {
		return Pair{}, err
	}
	if err := checkText(oldRev+":"+path, oldText, opts); err != nil {
		return Pair{}, err
	}
	newText, err := gitShow(newRev, path)
	if err != nil {
		return Pair{}, err
	}
	if err := checkText(newRev+":"+path, newText, opts); err != nil {
		return Pair{}, err
	}
	return Pair{
		OldPath: oldRev + ":" + path,
		NewPath: newRev + ":" + path,
		OldText: oldText,
		NewText: newText,
	}, nil
}

func readGuarded(path string, opts Options) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	if opts.MaxFileBytes > 0 && info.Size() > int64(opts.MaxFileBytes) {
		return "", fmt.Errorf("%s exceeds max file size (%d > %d bytes)", path, info.Size(), opts.MaxFileBytes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if isBinary(data) {
		return "", fmt.Errorf("%s appears to be a binary file", path)
	}
	return string(data), nil
}

func checkText(name, text string, opts Options) error {
	if opts.MaxFileBytes > 0 && len(text) > opts.MaxFileBytes {
		return fmt.Errorf("%s exceeds max file size (%d > %d bytes)", name, len(text), opts.MaxFileBytes)
	}
	if isBinary([]byte(text)) {
		return fmt.Errorf("%s appears to be a binary file", name)
	}
	return nil
}

// isBinary reports whether data looks like binary content. Like git, it
// sniffs for a NUL byte in the first 8000 bytes.
func isBinary(data []byte) bool {
	if len(data) > 8000 {
		data = data[:8000]
	}
	return bytes.IndexByte(data, 0) >= 0
}

// gitShow returns the content of path at rev. A path that does not exist in
// rev yields empty content so that newly added or deleted files diff against
// an empty side.
func gitShow(rev, path string) (string, error) {
	cmd := exec.Command("git", "show", rev+":"+path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := stderr.String()
		if strings.Contains(msg, "exists on disk, but not in") ||
			strings.Contains(msg, "does not exist in") {
			return "", nil
		}
		if msg != "" {
			return "", fmt.Errorf("git show %s:%s: %s", rev, path, strings.TrimSpace(msg))
		}
		return "", fmt.Errorf("git show %s:%s: %w", rev, path, err)
	}
	return stdout.String(), nil
}
