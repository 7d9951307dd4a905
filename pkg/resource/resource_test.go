package resource

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestTextAndBytes(t *testing.T) {
	Register("test", fstest.MapFS{
		"hello.txt": {Data: []byte("hello\n")},
		"blob.bin":  {Data: []byte{0x00, 0xff, 0x10}},
	})

	s, err := Text("test", "hello.txt")
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if s != "hello\n" {
		t.Errorf("Text = %q", s)
	}

	b, err := Bytes("test", "blob.bin")
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if len(b) != 3 || b[1] != 0xff {
		t.Errorf("Bytes = %v", b)
	}
}

func TestMissingResource(t *testing.T) {
	Register("sparse", fstest.MapFS{})

	_, err := Text("sparse", "nope.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestUnknownNamespace(t *testing.T) {
	_, err := Bytes("never-registered", "x")
	if !errors.Is(err, ErrNamespace) {
		t.Errorf("expected ErrNamespace, got %v", err)
	}
}
