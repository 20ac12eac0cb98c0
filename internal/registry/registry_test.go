package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/kokaton/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                                         { return g.id }
func (g stubGame) Title() string                                      { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)                           {}
func (g stubGame) Step(core.InputFrame, core.Surface) core.StepResult { return core.StepResult{} }
func (g stubGame) State() core.GameState                              { return core.GameState{} }
func (g stubGame) PlayArea() core.Size                                { return core.Size{W: 1, H: 1} }
func (g stubGame) FrameRate() int                                     { return 50 }

func register(id string) {
	Register(id, func() Game { return stubGame{id: id} })
}

func TestRegisterAndCreate(t *testing.T) {
	register("test_b")
	register("test_a")

	if !Exists("test_a") || Exists("test_missing") {
		t.Fatal("Exists does not reflect registrations")
	}

	g, err := Create("test_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "test_a" {
		t.Errorf("ID() = %q", g.ID())
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test_") {
			ids = append(ids, info.ID+"="+info.Title)
		}
	}
	want := "test_a=Stub test_a,test_b=Stub test_b"
	if got := strings.Join(ids, ","); got != want {
		t.Errorf("List() = %s, want %s", got, want)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create of an unknown game succeeded")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register("test_dup")
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	register("test_dup")
}
