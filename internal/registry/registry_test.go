package registry

import "testing"

type testDef struct {
	Name  string
	Value int
}

func TestRegisterAndLookup(t *testing.T) {
	r := New[testDef]("test")
	r.Register("b", testDef{Name: "b", Value: 2})
	r.Register("a", testDef{Name: "a", Value: 1})

	def, ok := r.Lookup("a")
	if !ok {
		t.Fatal("Lookup(a) should succeed")
	}
	if def.Value != 1 {
		t.Errorf("Lookup(a).Value = %d, want 1", def.Value)
	}

	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}

	if !r.Exists("b") || r.Exists("c") {
		t.Error("Exists reported wrong membership")
	}

	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestNamesSorted(t *testing.T) {
	r := New[testDef]("test")
	for _, name := range []string{"delta", "alpha", "charlie", "bravo"} {
		r.Register(name, testDef{Name: name})
	}

	names := r.Names()
	want := []string{"alpha", "bravo", "charlie", "delta"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestInOrderKeepsRegistrationOrder(t *testing.T) {
	r := New[testDef]("test")
	for _, name := range []string{"delta", "alpha", "charlie"} {
		r.Register(name, testDef{Name: name})
	}

	defs := r.InOrder()
	want := []string{"delta", "alpha", "charlie"}
	for i := range want {
		if defs[i].Name != want[i] {
			t.Errorf("InOrder()[%d] = %s, want %s", i, defs[i].Name, want[i])
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := New[testDef]("test")
	r.Register("dup", testDef{})

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate name should panic")
		}
	}()
	r.Register("dup", testDef{})
}

func TestRegisterEmptyNamePanics(t *testing.T) {
	r := New[testDef]("test")

	defer func() {
		if recover() == nil {
			t.Error("registering an empty name should panic")
		}
	}()
	r.Register("", testDef{})
}
