package elements

import "testing"

func TestLoad(t *testing.T) {
	elems, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(elems) != 118 {
		t.Fatalf("expected 118 elements, got %d", len(elems))
	}

	// Ordered by atomic number, starting at hydrogen.
	if elems[0].Symbol != "H" || elems[0].Number != 1 {
		t.Errorf("first element = %+v, want H/1", elems[0])
	}
	for i := 1; i < len(elems); i++ {
		if elems[i].Number != elems[i-1].Number+1 {
			t.Errorf("element %d out of order: %+v after %+v", i, elems[i], elems[i-1])
		}
	}
}

func TestBySymbol(t *testing.T) {
	elems, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	fe, ok := BySymbol(elems, "Fe")
	if !ok {
		t.Fatal("Fe not found")
	}
	if fe.Number != 26 || fe.Name != "Iron" {
		t.Errorf("Fe = %+v", fe)
	}

	if _, ok := BySymbol(elems, "Xx"); ok {
		t.Error("Xx should not exist")
	}
}
