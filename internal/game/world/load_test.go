package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const streetYAML = `
name: street
cell_size: 16
entry_point: [40, 88]
entry_message: "Mist hangs over the street."
walk_mask:
  - "##########"
  - "#........#"
  - "#........#"
  - "#........#"
  - "##########"
hotspots:
  - name: store door
    region: {x: 96, y: 16, w: 32, h: 48}
    walk_to: [112, 70]
    messages:
      look: "A battered wooden door."
      use_success: "You push the door open."
    target_room: store
    transition_verbs: [use]
  - name: mailbox
    region: {x: 16, y: 16, w: 16, h: 16}
    messages:
      use_success: "The mailbox creaks open."
    give_item: "Demo Tape"
    give_verbs: [use]
`

const storeYAML = `
name: store
cell_size: 16
entry_point: [32, 48]
entry_message: "Racks of dusty records."
walk_mask:
  - "........"
  - "........"
  - "........"
`

func writeRooms(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func TestLoadDir(t *testing.T) {
	dir := writeRooms(t, map[string]string{
		"street.yaml": streetYAML,
		"store.yaml":  storeYAML,
	})

	mgr, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}

	street, err := mgr.Get("street")
	if err != nil {
		t.Fatalf("street not loaded: %v", err)
	}
	if street.Grid.Width() != 10 || street.Grid.Height() != 5 {
		t.Errorf("expected 10x5 grid, got %dx%d", street.Grid.Width(), street.Grid.Height())
	}
	if street.EntryMessage == "" {
		t.Error("expected entry message")
	}
	if len(street.Hotspots) != 2 {
		t.Fatalf("expected 2 hotspots, got %d", len(street.Hotspots))
	}

	door := street.Hotspots[0]
	if door.Name != "store door" {
		t.Errorf("unexpected hotspot name %q", door.Name)
	}
	if !door.HasWalkTo {
		t.Error("expected explicit walk-to anchor")
	}
	if door.TargetRoom != "store" {
		t.Errorf("unexpected target room %q", door.TargetRoom)
	}
	if !door.TransitionVerbs.Has("use") {
		t.Error("expected use in transition verbs")
	}
	if text, ok := door.Message("use_success"); !ok || text == "" {
		t.Error("expected use_success message")
	}

	mailbox := street.Hotspots[1]
	if mailbox.GiveItem != "Demo Tape" {
		t.Errorf("unexpected give item %q", mailbox.GiveItem)
	}
	if mailbox.HasWalkTo {
		t.Error("mailbox should fall back to the bottom-center anchor")
	}
	anchor := mailbox.Anchor()
	if anchor.X != 24 || anchor.Y != 32 {
		t.Errorf("unexpected default anchor %v", anchor)
	}
}

func TestLoadDir_BadRoomRef(t *testing.T) {
	dir := writeRooms(t, map[string]string{
		"street.yaml": streetYAML, // references "store", which is missing
	})

	_, err := LoadDir(dir)
	if !errors.Is(err, ErrBadRoomRef) {
		t.Errorf("expected ErrBadRoomRef, got %v", err)
	}
}

func TestLoadRoomFile_NoWalkData(t *testing.T) {
	dir := writeRooms(t, map[string]string{
		"broken.yaml": "name: broken\ncell_size: 16\n",
	})

	_, err := LoadRoomFile(filepath.Join(dir, "broken.yaml"))
	if !errors.Is(err, ErrNoWalkData) {
		t.Errorf("expected ErrNoWalkData, got %v", err)
	}
}

func TestVerbSet_DefaultsToUse(t *testing.T) {
	set := VerbSet(nil)
	if !set.Has("use") {
		t.Error("empty trigger list should default to use")
	}
	if set.Has("look") {
		t.Error("default trigger set should only contain use")
	}
}
