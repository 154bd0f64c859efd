package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lust/internal/diag"
	"lust/internal/source"
)

type palette struct {
	err, warn, info, path, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.path, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			pal.path.Sprintf("%s:%d:%d", displayPath(fs, d.Primary.File, opts.PathMode), start.Line, start.Col),
			pal.severity(d.Severity).Sprint(d.Severity.String()),
			pal.severity(d.Severity).Sprint(d.Code.ID()),
			d.Message,
		)
		writeSnippet(w, fs, d.Primary, int(opts.Context), pal)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				ns, _ := fs.Resolve(n.Span)
				fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"),
					displayPath(fs, n.Span.File, opts.PathMode), ns.Line, ns.Col, n.Msg)
				writeSnippet(w, fs, n.Span, 0, pal)
			}
		}
		if opts.ShowFixes {
			for _, fx := range d.Fixes {
				fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("fix:"), fx.Title)
				for _, edit := range fx.Edits {
					preview, err := buildFixEditPreview(fs, edit)
					if err != nil {
						continue
					}
					for _, l := range preview.before {
						fmt.Fprintf(w, "    - %s\n", l)
					}
					for _, l := range preview.after {
						fmt.Fprintf(w, "    + %s\n", l)
					}
				}
			}
		}
	}
}

// writeSnippet печатает строку(и) с ошибкой и подчёркивание под span.
// Ширина считается в колонках терминала, а не в байтах.
func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, context int, pal palette) {
	file := fs.Get(sp.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(sp)
	first := max(int(start.Line)-context, 1)
	gutterWidth := len(fmt.Sprint(start.Line))

	for ln := first; ln <= int(start.Line); ln++ {
		fmt.Fprintf(w, " %s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), expandTabs(file.GetLine(uint32(ln))))
	}

	raw := file.GetLine(start.Line)
	startCol := min(int(start.Col)-1, len(raw))
	endCol := len(raw)
	if end.Line == start.Line {
		endCol = min(max(int(end.Col)-1, startCol), len(raw))
	}
	pad := runewidth.StringWidth(expandTabs(raw[:startCol]))
	width := runewidth.StringWidth(expandTabs(raw[startCol:endCol]))
	underline := "^"
	if width > 1 {
		underline += strings.Repeat("~", width-1)
	}
	fmt.Fprintf(w, " %s %s%s\n", pal.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), pal.caret.Sprint(underline))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	if f.Flags&source.FileVirtual != 0 {
		return f.Path
	}
	return f.FormatPath(mode.String(), fs.BaseDir())
}
