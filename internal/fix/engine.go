// Package fix applies the edits attached to diagnostics back to source files.
package fix

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"

	"lust/internal/diag"
	"lust/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines selection strategy for fixes.
type ApplyMode uint8

const (
	// ApplyModeOnce применяет первую по порядку правку.
	ApplyModeOnce ApplyMode = iota
	ApplyModeAll
)

// ApplyOptions configures how fixes are selected.
type ApplyOptions struct {
	Mode ApplyMode
	// DryRun считает новые буферы, но не пишет файлы.
	DryRun bool
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	Title       string
	Code        diag.Code
	Message     string
	PrimaryPath string
	EditCount   int
}

// SkippedFix captures a skipped fix with a reason.
type SkippedFix struct {
	Title  string
	Reason string
}

// FileChange summarises modifications performed on a file.
type FileChange struct {
	Path      string
	EditCount int
	Content   []byte // содержимое после правок
}

// ApplyResult aggregates applied fixes, skipped ones, and file changes.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply collects fixes from diagnostics, selects a subset according to opts, and applies them.
// Правки, пересекающиеся с уже принятыми, пропускаются с причиной в Skipped.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates := gatherCandidates(diagnostics)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)
	if opts.Mode == ApplyModeOnce {
		candidates = candidates[:1]
	}

	accepted := make(map[source.FileID][]diag.FixEdit)
	editCount := make(map[source.FileID]int)
	for _, cand := range candidates {
		if reason := checkCandidate(fs, cand.fix, accepted); reason != "" {
			result.Skipped = append(result.Skipped, SkippedFix{Title: cand.fix.Title, Reason: reason})
			continue
		}
		for _, e := range cand.fix.Edits {
			accepted[e.Span.File] = append(accepted[e.Span.File], e)
			editCount[e.Span.File]++
		}
		result.Applied = append(result.Applied, AppliedFix{
			Title:       cand.fix.Title,
			Code:        cand.diag.Code,
			Message:     cand.diag.Message,
			PrimaryPath: formatFilePath(fs, cand.diag.Primary.File),
			EditCount:   len(cand.fix.Edits),
		})
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}

	files := make([]source.FileID, 0, len(accepted))
	for id := range accepted {
		files = append(files, id)
	}
	slices.Sort(files)

	for _, id := range files {
		file := fs.Get(id)
		content := applyEdits(file.Content, accepted[id])
		if !opts.DryRun {
			mode := os.FileMode(0o644)
			if info, err := os.Stat(file.Path); err == nil {
				mode = info.Mode()
			}
			if err := os.WriteFile(file.Path, content, mode); err != nil {
				return result, fmt.Errorf("write %s: %w", file.Path, err)
			}
		}
		result.FileChanges = append(result.FileChanges, FileChange{
			Path:      file.FormatPath("relative", fs.BaseDir()),
			EditCount: editCount[id],
			Content:   content,
		})
	}
	return result, nil
}

func gatherCandidates(diagnostics []diag.Diagnostic) []candidate {
	var cands []candidate
	order := 0
	for _, d := range diagnostics {
		for _, f := range d.Fixes {
			if len(f.Edits) == 0 {
				continue
			}
			cands = append(cands, candidate{diag: d, fix: f, order: order})
			order++
		}
	}
	return cands
}

// sortCandidates: file, start, end, затем порядок появления.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].diag, candidates[j].diag
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		return candidates[i].order < candidates[j].order
	})
}

// checkCandidate возвращает причину отказа или "".
func checkCandidate(fs *source.FileSet, f diag.Fix, accepted map[source.FileID][]diag.FixEdit) string {
	for i, e := range f.Edits {
		if int(e.Span.File) >= fs.Len() {
			return "target file is unknown"
		}
		file := fs.Get(e.Span.File)
		if file.Flags&source.FileVirtual != 0 {
			return "target file is virtual"
		}
		if e.Span.End < e.Span.Start || int(e.Span.End) > len(file.Content) {
			return "edit span out of range"
		}
		for _, prev := range accepted[e.Span.File] {
			if spansConflict(prev, e) {
				return fmt.Sprintf("conflicts with previously applied edits in %s", file.FormatPath("auto", fs.BaseDir()))
			}
		}
		for _, other := range f.Edits[:i] {
			if other.Span.File == e.Span.File && spansConflict(other, e) {
				return "fix has overlapping edits"
			}
		}
	}
	return ""
}

// spansConflict reports whether two edits' spans overlap.
// Spans are half-open [Start, End). Two insertions never conflict, even at
// the same offset: they are applied in acceptance order.
func spansConflict(a, b diag.FixEdit) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart < aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart < bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

// applyEdits применяет непересекающиеся правки к копии content, с конца файла к началу,
// поэтому смещения исходного текста остаются валидными.
func applyEdits(content []byte, edits []diag.FixEdit) []byte {
	ordered := make([]int, len(edits))
	for i := range ordered {
		ordered[i] = i
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := edits[ordered[i]], edits[ordered[j]]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start > b.Span.Start
		}
		if a.Span.End != b.Span.End {
			return a.Span.End > b.Span.End
		}
		// вставки в одной точке: более поздняя идёт первой, чтобы итог сохранил порядок принятия
		return ordered[i] > ordered[j]
	})
	out := append([]byte(nil), content...)
	for _, idx := range ordered {
		e := edits[idx]
		suffix := append([]byte(nil), out[e.Span.End:]...)
		out = append(append(out[:e.Span.Start], e.NewText...), suffix...)
	}
	return out
}

func formatFilePath(fs *source.FileSet, fileID source.FileID) string {
	if int(fileID) >= fs.Len() {
		return ""
	}
	return fs.Get(fileID).FormatPath("auto", fs.BaseDir())
}
