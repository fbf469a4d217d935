package transform

import "testing"

func TestVariableMapBasics(t *testing.T) {
	vm := NewVariableMap()

	if got := vm.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}

	vm.Set("a", "1")
	vm.SetIfAbsent("a", "2")
	if vm.Get("a") != "1" {
		t.Error("SetIfAbsent overwrote an existing value")
	}

	vm.Set("blank", "")
	vm.SetIfAbsent("blank", "filled")
	if vm.Get("blank") != "filled" {
		t.Error("SetIfAbsent should treat blank as absent")
	}

	vm.Merge(map[string]string{"b": "2", "c": "3"})
	if vm.Get("b") != "2" || vm.Get("c") != "3" {
		t.Errorf("Merge result: b=%q c=%q", vm.Get("b"), vm.Get("c"))
	}
}
