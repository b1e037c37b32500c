// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/notes/notes.go
// Summary: Scratch notes with three pages and a focusable text area.
// Notes: While editing, the window captures input so desktop hotkeys stay
// quiet; Escape leaves edit mode.

package notes

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldesk/config"
	"github.com/framegrace/texeldesk/driver"
	"github.com/framegrace/texeldesk/registry"
)

const pageCount = 3

// Notes is the notes window content.
type Notes struct {
	pages    [pageCount][]string
	page     int
	editing  bool
	maxLines int

	onTabChange func(string)
}

// New creates notes content, reopening the last active page.
func New(props registry.Props, cfg config.Config) *Notes {
	n := &Notes{
		maxLines:    cfg.GetInt("notes", "max_lines", 200),
		onTabChange: props.OnTabChange,
	}
	if p, err := strconv.Atoi(props.Tab); err == nil && p >= 1 && p <= pageCount {
		n.page = p - 1
	}
	for i := range n.pages {
		n.pages[i] = []string{""}
	}
	return n
}

// Page returns the current page number, starting at 1.
func (n *Notes) Page() int { return n.page + 1 }

// Text returns the current page.
func (n *Notes) Text() string { return strings.Join(n.pages[n.page], "\n") }

// CapturesInput reports edit mode.
func (n *Notes) CapturesInput() bool { return n.editing }

// Click enters edit mode; a click on the tab row switches pages.
func (n *Notes) Click(x, y int) {
	if y == 0 {
		if p := x / 4; p < pageCount {
			n.setPage(p)
		}
		return
	}
	n.editing = true
}

func (n *Notes) setPage(p int) {
	if p == n.page {
		return
	}
	n.page = p
	if n.onTabChange != nil {
		n.onTabChange(strconv.Itoa(p + 1))
	}
}

// HandleKey edits the page in edit mode. Outside it, Enter starts editing and
// Tab flips pages.
func (n *Notes) HandleKey(ev *tcell.EventKey) bool {
	if !n.editing {
		switch ev.Key() {
		case tcell.KeyEnter:
			n.editing = true
		case tcell.KeyTab:
			n.setPage((n.page + 1) % pageCount)
		default:
			return false
		}
		return true
	}

	lines := n.pages[n.page]
	last := len(lines) - 1
	switch ev.Key() {
	case tcell.KeyEscape:
		n.editing = false
	case tcell.KeyEnter:
		if len(lines) < n.maxLines {
			lines = append(lines, "")
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if r := []rune(lines[last]); len(r) > 0 {
			lines[last] = string(r[:len(r)-1])
		} else if last > 0 {
			lines = lines[:last]
		}
	case tcell.KeyRune:
		lines[last] += string(ev.Rune())
	default:
		return false
	}
	n.pages[n.page] = lines
	return true
}

// HandlePaste appends pasted text to the current page.
func (n *Notes) HandlePaste(data []byte) {
	for i, part := range strings.Split(string(data), "\n") {
		lines := n.pages[n.page]
		if i > 0 {
			if len(lines) >= n.maxLines {
				return
			}
			lines = append(lines, "")
		}
		lines[len(lines)-1] += part
		n.pages[n.page] = lines
	}
}

// PreferredHeight fits the page plus the tab row.
func (n *Notes) PreferredHeight(width int) int {
	return len(n.pages[n.page]) + 2
}

// Draw renders the tab row and the visible tail of the page.
func (n *Notes) Draw(cv *driver.Canvas) {
	for p := 0; p < pageCount; p++ {
		style := cv.Style.Dim(true)
		if p == n.page {
			style = cv.Style.Reverse(true)
		}
		cv.Print(p*4, 0, " "+strconv.Itoa(p+1)+" ", style)
	}
	if n.editing {
		cv.Print(cv.Width()-6, 0, "[edit]", cv.Style.Bold(true))
	}

	lines := n.pages[n.page]
	rows := cv.Height() - 1
	start := max(0, len(lines)-rows)
	for i, line := range lines[start:] {
		cv.Print(0, i+1, line, cv.Style)
	}
	if n.editing && rows > 0 {
		row := len(lines) - start
		col := len([]rune(lines[len(lines)-1]))
		cv.SetCell(min(col, cv.Width()-1), row, '▏', cv.Style)
	}
}
