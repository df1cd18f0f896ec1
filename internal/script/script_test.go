package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "okazu.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeScript(t, `
side_dishes:
  - からあげ
  - コロッケ
pre_captions:
  - きょうのおかず
after_captions: []
`)

	sc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.SideDishes) != 2 || sc.SideDishes[0] != "からあげ" {
		t.Errorf("side dishes = %v", sc.SideDishes)
	}
	if len(sc.PreCaptions) != 1 || len(sc.AfterCaptions) != 0 {
		t.Errorf("captions = %v / %v", sc.PreCaptions, sc.AfterCaptions)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeScript(t, "side_dishes: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "okazu.yaml")
	if err := Save(path, Example()); err != nil {
		t.Fatal(err)
	}
	sc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := sc.Validate(); err != nil {
		t.Errorf("example script should validate: %v", err)
	}
	if len(sc.SideDishes) != len(Example().SideDishes) {
		t.Errorf("side dishes lost in round trip: %v", sc.SideDishes)
	}
}

func TestValidateEmpty(t *testing.T) {
	var sc Script
	if err := sc.Validate(); !errors.Is(err, ErrEmptyScript) {
		t.Errorf("got %v, want ErrEmptyScript", err)
	}
}
