package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/coin-rush/internal/core"
)

type fakeGame struct {
	id, title string
	resets    int
}

func (g *fakeGame) ID() string { return g.id }
func (g *fakeGame) Title() string { return g.title }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen) {}
func (g *fakeGame) State() core.GameState { return core.GameState{} }

func register(id, title string) {
	Register(id, func() Game { return &fakeGame{id: id, title: title} })
}

func TestRegisterAndCreate(t *testing.T) {
	register("test-create", "Create Me")

	g, err := Create("test-create")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "test-create" || g.Title() != "Create Me" {
		t.Errorf("Create returned %q/%q", g.ID(), g.Title())
	}

	other, _ := Create("test-create")
	if other == g {
		t.Error("Create should return a new instance each time")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("test-missing")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(missing) error = %v, expected ErrUnknownGame", err)
	}
	if Exists("test-missing") {
		t.Error("Exists should be false for an unknown id")
	}
}

func TestLookupAndList(t *testing.T) {
	register("test-list-b", "B")
	register("test-list-a", "A")

	info, ok := Lookup("test-list-a")
	if !ok || info.Title != "A" {
		t.Errorf("Lookup = %+v, %v", info, ok)
	}

	var ids []string
	for _, g := range List() {
		ids = append(ids, g.ID)
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "test-list-a":
			ia = i
		case "test-list-b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() = %v, expected both ids sorted", ids)
	}
}

func TestRegisterPanics(t *testing.T) {
	register("test-dup", "Dup")

	tests := []struct {
		name string
		fn   func()
	}{
		{"duplicate", func() { register("test-dup", "Again") }},
		{"empty id", func() { register("", "Empty") }},
		{"nil factory", func() { Register("test-nil", nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()
			tt.fn()
		})
	}
}
