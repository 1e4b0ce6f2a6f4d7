package scene

import (
	"testing"

	"github.com/gogpu/g3d"
)

func TestWorldStableIDs(t *testing.T) {
	w := NewWorld()
	a := w.AddEntity(NewRectangle(1, 1))
	first := w.Entity(a)
	for i := 0; i < 100; i++ {
		w.AddEntity(NewRectangle(1, 1))
	}
	if w.Entity(a) != first {
		t.Error("Entity(id) pointer changed after growth")
	}
	if w.Len() != 101 {
		t.Errorf("Len() = %d, want 101", w.Len())
	}
	if w.Entity(-1) != nil || w.Entity(500) != nil {
		t.Error("Entity(unknown id) should be nil")
	}
}

func TestWorldEntitiesOrder(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 3; i++ {
		e := NewRectangle(1, 1)
		e.SetPosition(g3d.V3(float32(i), 0, 0))
		w.AddEntity(e)
	}
	var got []float32
	for id, e := range w.Entities() {
		if int(id) != len(got) {
			t.Errorf("id = %d, want %d", id, len(got))
		}
		got = append(got, e.Position().X)
	}
	if len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Errorf("iteration order = %v, want [0 1 2]", got)
	}
}

func TestWorldFloatingTextInPlace(t *testing.T) {
	w := NewWorld()
	ft := w.AddFloatingText(NewFloatingText("A", g3d.V3(1, 2, 3)))
	ft.Content = "B"
	if got := w.FloatingTexts()[0].Content; got != "B" {
		t.Errorf("FloatingTexts()[0].Content = %q, want B", got)
	}
}
