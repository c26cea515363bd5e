package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/torus-boards/internal/core"
	"github.com/vovakirdan/torus-boards/internal/topology"
)

type stubGame struct {
	cfg core.RuntimeConfig
}

func (s *stubGame) ID() string                   { return "stub" }
func (s *stubGame) Title() string                { return "Stub Game" }
func (s *stubGame) Reset(cfg core.RuntimeConfig) { s.cfg = cfg }
func (s *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: s.State()}
}
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState {
	return core.GameState{Mode: s.cfg.Mode}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub", func() Game { return &stubGame{} })

	if !Exists("stub") {
		t.Fatal("Exists(stub) = false after Register")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub" {
			found = true
			if info.Title != "Stub Game" {
				t.Errorf("title = %q, expected %q", info.Title, "Stub Game")
			}
		}
	}
	if !found {
		t.Error("List() does not include stub")
	}

	cfg := core.DefaultConfig()
	cfg.Mode = topology.Mirror
	g, err := Create("stub", cfg)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.State().Mode != topology.Mirror {
		t.Errorf("Create should reset the game with cfg, mode = %v", g.State().Mode)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game", core.DefaultConfig())
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(unknown) error = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func() Game { return &stubGame{} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup", func() Game { return &stubGame{} })
}

func TestListSorted(t *testing.T) {
	Register("zz-last", func() Game { return &stubGame{} })
	Register("aa-first", func() Game { return &stubGame{} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
