package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                     { return g.id }
func (g *stubGame) Title() string                  { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) error { return nil }
func (g *stubGame) Render(*core.Screen)            {}
func (g *stubGame) State() core.GameState          { return core.GameState{} }
func (g *stubGame) Step(core.InputFrame, time.Duration) core.StepResult {
	return core.StepResult{}
}

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("Exists() = false after Register")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q, expected zz_stub", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = info.Title == "Stub zz_stub"
		}
	}
	if !found {
		t.Error("List() missing registered game or title")
	}

	if _, err := Create("missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(missing) error = %v, want ErrUnknownGame", err)
	}
	if title, ok := Title("zz_stub"); !ok || title != "Stub zz_stub" {
		t.Errorf("Title() = %q, %v", title, ok)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
