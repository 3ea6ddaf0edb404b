package faq

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/ezauto/internal/content"
)

func TestDisclosure_InitiallyClosed(t *testing.T) {
	d := NewDisclosure()
	for _, item := range content.Default().FAQs {
		if d.IsOpen(item.ID) {
			t.Errorf("%s should start closed", item.ID)
		}
	}
	if len(d.OpenIDs()) != 0 {
		t.Errorf("OpenIDs() = %v, want empty", d.OpenIDs())
	}
}

func TestDisclosure_Independent(t *testing.T) {
	d := NewDisclosure()
	d.Toggle("prior-experience")
	d.Toggle("scheduling")

	want := []string{"prior-experience", "scheduling"}
	if got := d.OpenIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("OpenIDs() = %v, want %v", got, want)
	}

	// Closing one leaves its sibling open
	d.Toggle("prior-experience")
	if d.IsOpen("prior-experience") {
		t.Error("prior-experience should be closed")
	}
	if !d.IsOpen("scheduling") {
		t.Error("scheduling should still be open")
	}
	if d.IsOpen("certificates") {
		t.Error("certificates was never toggled")
	}
}

func TestDisclosure_ToggleTwiceRestores(t *testing.T) {
	var d Disclosure
	d.Toggle("certificates")
	before := d.OpenIDs()

	d.Toggle("scheduling")
	d.Toggle("scheduling")

	if got := d.OpenIDs(); !reflect.DeepEqual(got, before) {
		t.Errorf("OpenIDs() = %v, want %v", got, before)
	}
}

func TestModel_KeyboardToggle(t *testing.T) {
	page := content.Default()
	m := New(page.FAQs, page.Trust)
	m.SetFocused(true)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.IsOpen(page.FAQs[1].ID) {
		t.Fatalf("expected %s open", page.FAQs[1].ID)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.IsOpen(page.FAQs[0].ID) || !m.IsOpen(page.FAQs[1].ID) {
		t.Errorf("expected both entries open, got %v", m.OpenIDs())
	}

	// Cursor stops at the ends
	for i := 0; i < 10; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.Cursor() != len(page.FAQs)-1 {
		t.Errorf("cursor = %d, want %d", m.Cursor(), len(page.FAQs)-1)
	}
}

func TestModel_ViewOmitsClosedAnswers(t *testing.T) {
	page := content.Default()
	m := New(page.FAQs, page.Trust)

	view := m.View()
	for _, item := range page.FAQs {
		if !strings.Contains(view, item.Question) {
			t.Errorf("view missing question %q", item.Question)
		}
	}
	if strings.Contains(view, "LTO licensing") {
		t.Error("closed answer should not be rendered")
	}

	m.Toggle("certificates")
	view = m.View()
	if !strings.Contains(view, "LTO licensing") {
		t.Error("open answer should be rendered")
	}
	if strings.Contains(view, "guided instruction") {
		t.Error("sibling answer should stay hidden")
	}
}

func TestModel_OpenAll(t *testing.T) {
	page := content.Default()
	m := New(page.FAQs, page.Trust)
	m.Toggle("certificates")
	m.OpenAll()
	if len(m.OpenIDs()) != len(page.FAQs) {
		t.Errorf("OpenIDs() = %v, want all %d", m.OpenIDs(), len(page.FAQs))
	}
}
