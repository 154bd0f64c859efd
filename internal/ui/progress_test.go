package ui

import (
	"strings"
	"testing"

	"lust/internal/driver"
)

func TestProgressModel_AppliesEvents(t *testing.T) {
	files := []string{"a.lust", "b.lust", "c.lust"}
	m := NewProgressModel("parsing", files, nil).(*progressModel)

	events := []driver.ProgressEvent{
		{Path: "a.lust", Status: driver.ProgressStart},
		{Path: "a.lust", Status: driver.ProgressDone},
		{Path: "b.lust", Status: driver.ProgressDone, Errored: true},
		{Path: "c.lust", Status: driver.ProgressDone, Cached: true},
		{Path: "unknown.lust", Status: driver.ProgressDone},
		// запоздалое событие не откатывает финальный статус
		{Path: "a.lust", Status: driver.ProgressStart},
	}
	for _, ev := range events {
		m.Update(eventMsg(ev))
	}

	want := []string{"ok", "error", "cached"}
	for i, w := range want {
		if m.items[i].status != w {
			t.Errorf("items[%d].status = %q, want %q", i, m.items[i].status, w)
		}
	}
	if m.finished != 3 || m.errored != 1 {
		t.Errorf("finished=%d errored=%d", m.finished, m.errored)
	}

	m.Update(doneMsg{})
	view := m.View()
	if !strings.Contains(view, "done: parsing (3/3, 1 with errors)") {
		t.Errorf("view header missing:\n%s", view)
	}
	for _, f := range files {
		if !strings.Contains(view, f) {
			t.Errorf("view lacks %s", f)
		}
	}
}

func TestProgressModel_EmptyView(t *testing.T) {
	m := NewProgressModel("x", nil, nil)
	if m.View() != "" {
		t.Fatal("empty model should render nothing")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"src/very/long/path.lust", 12, "...path.lust"},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
