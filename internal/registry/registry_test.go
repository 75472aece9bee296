package registry

import (
	"errors"
	"testing"
)

func TestRegisterAndSource(t *testing.T) {
	Register("test-alpha", "Alpha", []byte("name: alpha"))
	defer unregister("test-alpha")

	if !Exists("test-alpha") {
		t.Fatal("registered skin should exist")
	}

	src, err := Source("test-alpha")
	if err != nil {
		t.Fatalf("Source() error: %v", err)
	}
	if string(src) != "name: alpha" {
		t.Errorf("Source() = %q", src)
	}
}

func TestSourceUnknownSkin(t *testing.T) {
	_, err := Source("no-such-skin")
	if !errors.Is(err, ErrUnknownSkin) {
		t.Errorf("Source() error = %v, expected ErrUnknownSkin", err)
	}
	if Exists("no-such-skin") {
		t.Error("unknown skin should not exist")
	}
}

func TestListIsSorted(t *testing.T) {
	Register("test-zulu", "Zulu", nil)
	Register("test-bravo", "Bravo", nil)
	defer unregister("test-zulu")
	defer unregister("test-bravo")

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}

	found := false
	for _, s := range list {
		if s.ID == "test-bravo" {
			found = s.Title == "Bravo"
		}
	}
	if !found {
		t.Errorf("List() missing test-bravo with its title: %v", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "Dup", nil)
	defer unregister("test-dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", "Dup again", nil)
}
