package engine

import "testing"

func TestEntityBuilder(t *testing.T) {
	world := NewWorld()

	e := world.NewEntity().
		With(MockComponent{Tag: "Position", Value: 1}).
		With(MockComponent{Tag: "Player", Value: 2}).
		With(MockComponent{Tag: "Position", Value: 3}).
		Build()

	if !world.HasComponents(e, "Position", "Player") {
		t.Fatal("Expected built entity to carry both components")
	}
	pos, _ := GetComponentAs[MockComponent](world, e, "Position")
	if pos.Value != 3 {
		t.Errorf("Expected last Position to win, got %d", pos.Value)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on second Build")
		}
	}()
	b := world.NewEntity()
	b.Build()
	b.Build()
}

func TestEntityBuilder_PanicWithAfterBuild(t *testing.T) {
	world := NewWorld()

	defer func() {
		if recover() == nil {
			t.Error("Expected panic when adding component to built entity")
		}
	}()

	builder := world.NewEntity()
	builder.Build()
	builder.With(MockComponent{Tag: "Player"})
}

func TestEntityBuilder_AllocatesOnBuild(t *testing.T) {
	world := NewWorld()

	builder := world.NewEntity().With(MockComponent{Tag: "Player"})
	if world.EntityCount() != 0 {
		t.Fatal("Expected no entity before Build")
	}
	other := world.CreateEntity()
	built := builder.Build()

	if built <= other {
		t.Errorf("Expected id %d allocated after %d", built, other)
	}
	if !world.HasEntity(built) {
		t.Error("Expected built entity to exist")
	}
}
