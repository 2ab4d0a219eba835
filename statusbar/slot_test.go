package statusbar

import (
	"sync"
	"testing"
)

// TestBarAdd verifies slot creation, ordering, and id deduplication.
func TestBarAdd(t *testing.T) {
	b := NewBar()
	first := b.Add("cpu", "cmd.cpu")
	second := b.Add("mem", "cmd.mem")

	if again := b.Add("cpu", "other"); again != first {
		t.Error("Add with existing id returned a new slot")
	}

	views := b.Views()
	if len(views) != 2 {
		t.Fatalf("len(Views()) = %d, want 2", len(views))
	}
	if views[0].ID != "cpu" || views[1].ID != "mem" {
		t.Errorf("view order = %q, %q; want cpu, mem", views[0].ID, views[1].ID)
	}
	if second.Command() != "cmd.mem" {
		t.Errorf("Command() = %q, want cmd.mem", second.Command())
	}
}

// TestSlotSetAndSnapshot verifies text/tooltip updates reach snapshots.
func TestSlotSetAndSnapshot(t *testing.T) {
	b := NewBar()
	s := b.Add("disk", "cmd.disk")

	s.Set("◧ 60.0%", "Mount: /\nUsed: 60 GB / 100 GB")
	v := s.Snapshot()

	if v.Text != "◧ 60.0%" {
		t.Errorf("Text = %q", v.Text)
	}
	if v.Tooltip != "Mount: /\nUsed: 60 GB / 100 GB" {
		t.Errorf("Tooltip = %q", v.Tooltip)
	}
	if !v.Visible {
		t.Error("new slot should be visible")
	}
}

// TestSlotHideShow verifies visibility toggling.
func TestSlotHideShow(t *testing.T) {
	b := NewBar()
	s := b.Add("resp", "cmd.resp")

	s.Hide()
	if s.Snapshot().Visible {
		t.Error("slot visible after Hide")
	}

	// Hidden slots still accept writes.
	s.SetText("⏱ 12.34ms")
	if got := s.Snapshot().Text; got != "⏱ 12.34ms" {
		t.Errorf("hidden slot text = %q", got)
	}

	s.Show()
	if !s.Snapshot().Visible {
		t.Error("slot hidden after Show")
	}
}

// TestSlotDispose verifies disposed slots reject writes and render empty.
func TestSlotDispose(t *testing.T) {
	b := NewBar()
	s := b.Add("cpu", "cmd.cpu")
	s.Set("⚙ 50.0%", "tooltip")

	b.Dispose()

	v := s.Snapshot()
	if v.Visible || v.Text != "" || v.Tooltip != "" {
		t.Errorf("disposed slot view = %+v, want empty hidden", v)
	}

	s.Set("late write", "late")
	if got := s.Snapshot().Text; got != "" {
		t.Errorf("write after dispose stuck: %q", got)
	}
}

// TestSlotConcurrentWrites exercises last-writer-wins under the race
// detector. No assertion on the final value beyond it being one of the
// written values.
func TestSlotConcurrentWrites(t *testing.T) {
	b := NewBar()
	s := b.Add("cpu", "cmd.cpu")

	var wg sync.WaitGroup
	values := []string{"⚙ 10.0%", "⚙ 20.0%", "⚙ 30.0%", "⚙ 40.0%"}
	for _, v := range values {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			s.Set(text, text)
		}(v)
	}
	wg.Wait()

	got := s.Snapshot().Text
	found := false
	for _, v := range values {
		if got == v {
			found = true
		}
	}
	if !found {
		t.Errorf("final text %q is not one of the written values", got)
	}
}
