// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/mail/mail.go
// Summary: Mail window content driven by extra parameters.
// Notes: Opening mail again with new parameters (e.g. userId) retargets the
// open window instead of creating a second one.

package mail

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldesk/config"
	"github.com/framegrace/texeldesk/driver"
	"github.com/framegrace/texeldesk/registry"
)

var folders = []string{"inbox", "sent", "archive"}

// Message is one entry of the sample mailbox.
type Message struct {
	From    string
	Subject string
}

var sample = map[string][]Message{
	"inbox": {
		{From: "ops", Subject: "Nightly backup finished"},
		{From: "alice", Subject: "Lunch on Thursday?"},
		{From: "ci", Subject: "Build #812 passed"},
	},
	"sent": {
		{From: "me", Subject: "Re: Lunch on Thursday?"},
	},
}

// Mail shows a folder for the user selected through extra parameters.
type Mail struct {
	params   registry.Params
	folder   string
	selected int

	onTitle func(string)
	onTab   func(string)
}

// New creates mail content. The folder comes from the saved tab, then the
// "mailbox" parameter, then the configured default.
func New(props registry.Props, cfg config.Config) *Mail {
	m := &Mail{
		params:  props.ExtraParams.Clone(),
		folder:  cfg.GetString("mail", "mailbox", "inbox"),
		onTitle: props.OnTitleChange,
		onTab:   props.OnTabChange,
	}
	if box, ok := m.params["mailbox"].(string); ok && validFolder(box) {
		m.folder = box
	}
	if validFolder(props.Tab) {
		m.folder = props.Tab
	}
	m.retitle()
	return m
}

func validFolder(name string) bool {
	for _, f := range folders {
		if f == name {
			return true
		}
	}
	return false
}

// User returns the userId parameter formatted for display, or "".
func (m *Mail) User() string {
	v, ok := m.params["userId"]
	if !ok || v == nil {
		return ""
	}
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprint(v)
}

// Folder returns the folder on screen.
func (m *Mail) Folder() string { return m.folder }

func (m *Mail) retitle() {
	if m.onTitle == nil {
		return
	}
	title := "Mail"
	if user := m.User(); user != "" {
		title = fmt.Sprintf("Mail: user %s", user)
	}
	m.onTitle(title)
}

// UpdateParams applies parameters merged by a repeated open.
func (m *Mail) UpdateParams(params registry.Params) {
	m.params = params.Clone()
	if box, ok := params["mailbox"].(string); ok && validFolder(box) {
		m.setFolder(box)
	}
	m.retitle()
}

func (m *Mail) setFolder(name string) {
	if name == m.folder {
		return
	}
	m.folder = name
	m.selected = 0
	if m.onTab != nil {
		m.onTab(name)
	}
}

// HandleKey moves the selection and cycles folders with Tab.
func (m *Mail) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyTab:
		for i, f := range folders {
			if f == m.folder {
				m.setFolder(folders[(i+1)%len(folders)])
				break
			}
		}
	case tcell.KeyUp:
		if m.selected > 0 {
			m.selected--
		}
	case tcell.KeyDown:
		if m.selected < len(sample[m.folder])-1 {
			m.selected++
		}
	default:
		return false
	}
	return true
}

// Click selects a message row.
func (m *Mail) Click(x, y int) {
	if i := y - 2; i >= 0 && i < len(sample[m.folder]) {
		m.selected = i
	}
}

// PreferredHeight fits the header, the folder and its messages.
func (m *Mail) PreferredHeight(width int) int {
	return len(sample[m.folder]) + 3
}

// Draw renders the folder header, the parameter line and the message list.
func (m *Mail) Draw(cv *driver.Canvas) {
	header := fmt.Sprintf("[%s]", m.folder)
	cv.Print(0, 0, header, cv.Style.Bold(true))
	if extra := m.describeParams(); extra != "" {
		cv.Print(len(header)+1, 0, extra, cv.Style.Dim(true))
	}

	msgs := sample[m.folder]
	if len(msgs) == 0 {
		cv.PrintCentered(2, "(empty)", cv.Style.Dim(true))
		return
	}
	for i, msg := range msgs {
		style := cv.Style
		if i == m.selected {
			style = style.Reverse(true)
		}
		cv.Print(0, i+2, fmt.Sprintf("%-8s %s", msg.From, msg.Subject), style)
	}
}

// describeParams lists the extra parameters other than the folder, sorted.
func (m *Mail) describeParams() string {
	keys := make([]string, 0, len(m.params))
	for k := range m.params {
		if k != "mailbox" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s=%v", k, m.params[k])
	}
	return out
}
