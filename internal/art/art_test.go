package art

import (
	"strings"
	"testing"
)

func TestDragonTemplate(t *testing.T) {
	lines := strings.Split(Dragon, "\n")
	if len(lines) != TemplateLines {
		t.Fatalf("expected %d template lines, got %d", TemplateLines, len(lines))
	}
	if !strings.Contains(Dragon, Slot1Marker) {
		t.Errorf("template missing marker %s", Slot1Marker)
	}
	if !strings.Contains(Dragon, Slot2Marker) {
		t.Errorf("template missing marker %s", Slot2Marker)
	}
}

func TestMarkersAppearOnce(t *testing.T) {
	for _, marker := range []string{Slot1Marker, Slot2Marker} {
		if n := strings.Count(Dragon, marker); n != 1 {
			t.Errorf("marker %s appears %d times, want 1", marker, n)
		}
	}
}
