package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/foldiff/foldiff/internal/engine"
	"github.com/foldiff/foldiff/internal/layout"
)

func sampleReport(t *testing.T) *engine.Report {
	t.Helper()
	oldText := "a\nb\nc\nd\ne\nf\ng\nh"
	newText := "a\nb\nc\nX\ne\nf\ng\nh"
	budget := layout.Budget{RevealLines: 20, MinimumLines: 2, ContextLines: 1}
	sizing := layout.Sizing{LineHeight: 20, PlaceholderBase: 40, RenderCap: 5000, FallbackFloor: 2}
	res := engine.Diff(oldText, newText, budget, sizing)
	return engine.BuildReport("old.txt", "new.txt", res, engine.Timing{TotalMs: 3, LoadMs: 1, DiffMs: 2})
}

func identicalReport(t *testing.T) *engine.Report {
	t.Helper()
	budget := layout.Budget{RevealLines: 20, MinimumLines: 2, ContextLines: 1}
	sizing := layout.Sizing{LineHeight: 20, FallbackFloor: 2}
	res := engine.Diff("same\n", "same\n", budget, sizing)
	return engine.BuildReport("a.txt", "a.txt", res, engine.Timing{})
}

func TestGetWriter(t *testing.T) {
	for _, format := range []string{"text", "json", "markdown"} {
		if _, err := GetWriter(format); err != nil {
			t.Errorf("GetWriter(%s): %v", format, err)
		}
	}
	if _, err := GetWriter("yaml"); err == nil {
		t.Error("GetWriter(yaml): expected error")
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, sampleReport(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"old.txt -> new.txt",
		"1 changed block(s)",
		"+1 -1 lines",
		"collapsed region(s)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestTextWriterIdentical(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, identicalReport(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "identical") {
		t.Errorf("identical files output:\n%s", buf.String())
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, sampleReport(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var decoded engine.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Old.Path != "old.txt" {
		t.Errorf("Old.Path = %q", decoded.Old.Path)
	}
	if decoded.Summary.ChangedBlocks != 1 {
		t.Errorf("ChangedBlocks = %d, want 1", decoded.Summary.ChangedBlocks)
	}
	if len(decoded.Blocks) == 0 {
		t.Error("Blocks should round-trip")
	}
}

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownWriter{}).Write(&buf, sampleReport(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"## Diff: `old.txt` → `new.txt`",
		"| Lines added | 1 |",
		"<details>",
		"| changed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownWriterIdentical(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownWriter{}).Write(&buf, identicalReport(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "identical") {
		t.Errorf("identical files output:\n%s", buf.String())
	}
}
