// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-user-tags/internal/app"
	"github.com/MKhiriev/go-user-tags/internal/service"
	"github.com/MKhiriev/go-user-tags/models"
)

const (
	searchDelay     = 250 * time.Millisecond
	searchingStatus = app.MsgSearching
	noResultsStatus = app.MsgNoResults
	resultWidth     = 50
)

// SearchModel is the terminal type-ahead. Every keystroke bumps a sequence
// number and arms a debounce tick; only the tick and the results of the
// latest keystroke are applied.
type SearchModel struct {
	ctx     context.Context
	search  service.ClientSearchService
	listURL string
	copy    func(string) error

	input   textinput.Model
	term    string
	seq     int
	page    int
	more    bool
	loading bool

	results []models.SearchItem
	cursor  int
	status  string
	errMsg  string
}

// NewSearchModel creates a [SearchModel] that builds filter URLs from listURL.
func NewSearchModel(ctx context.Context, search service.ClientSearchService, listURL string) *SearchModel {
	input := textinput.New()
	input.Placeholder = "type a tag name"
	input.CharLimit = 200
	input.Width = 40
	input.Focus()

	return &SearchModel{
		ctx:     ctx,
		search:  search,
		listURL: listURL,
		copy:    clipboard.WriteAll,
		input:   input,
	}
}

// Init implements [tea.Model]. The first page of all terms is requested as
// soon as the screen opens.
func (m *SearchModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.schedule())
}

// Update implements [tea.Model].
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchTickMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.term = strings.TrimSpace(m.input.Value())
		return m, m.load(1, false)

	case searchResultMsg:
		m.applyResult(msg)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Copied " + msg.url
		return m, nil

	case tea.KeyMsg:
		switch {
		case keyMatches(msg, keys.up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case keyMatches(msg, keys.down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
				return m, nil
			}
			if m.more && !m.loading {
				return m, m.load(m.page+1, true)
			}
			return m, nil
		case keyMatches(msg, keys.enter):
			return m, m.choose()
		case keyMatches(msg, keys.esc):
			if m.input.Value() == "" {
				return m, nil
			}
			m.input.SetValue("")
			return m, m.schedule()
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.schedule())
	}
	return m, cmd
}

// View implements [tea.Model].
func (m *SearchModel) View() string {
	var b strings.Builder
	b.WriteString("Tag [")
	b.WriteString(m.input.View())
	b.WriteString("]\n\n")

	for i, item := range m.results {
		line := fitText(item.Text, resultWidth)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if m.more {
		b.WriteString(helpStyle.Render("  ↓ more"))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("USER TAGS", strings.TrimRight(b.String(), "\n"), "↑/↓: select │ enter: copy filter URL │ esc: clear")
}

// schedule arms the debounce tick of a new keystroke.
func (m *SearchModel) schedule() tea.Cmd {
	m.seq++
	seq := m.seq
	return tea.Tick(searchDelay, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq}
	})
}

func (m *SearchModel) load(page int, appendPage bool) tea.Cmd {
	m.loading = true
	if !appendPage {
		m.status = searchingStatus
		m.errMsg = ""
	}

	ctx, search := m.ctx, m.search
	seq := m.seq
	req := models.SearchRequest{Search: m.term, Page: page}

	return func() tea.Msg {
		result, err := search.Search(ctx, req)
		return searchResultMsg{seq: seq, page: page, append: appendPage, result: result, err: err}
	}
}

func (m *SearchModel) applyResult(msg searchResultMsg) {
	if msg.seq != m.seq {
		return
	}
	m.loading = false

	if msg.err != nil {
		m.more = false
		m.errMsg = humanizeError(msg.err)
		if !msg.append {
			m.results = nil
			m.cursor = 0
			m.status = noResultsStatus
		}
		return
	}

	m.page = msg.page
	m.more = msg.result.Pagination.More
	m.status = ""

	if msg.append {
		m.results = append(m.results, msg.result.Results...)
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return
	}

	m.results = msg.result.Results
	m.cursor = 0
	if len(m.results) == 0 {
		m.status = noResultsStatus
	}
}

func (m *SearchModel) choose() tea.Cmd {
	if m.cursor >= len(m.results) {
		return nil
	}

	item := m.results[m.cursor]
	search, listURL, copyFn := m.search, m.listURL, m.copy

	return func() tea.Msg {
		url, err := search.FilterURL(listURL, item.ID)
		if err != nil {
			return copiedMsg{err: err}
		}
		if err = copyFn(url); err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{url: url}
	}
}
