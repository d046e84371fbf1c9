package blob

import (
	"context"
	"testing"
)

func TestMemoryStorePut(t *testing.T) {
	store := NewMemoryStore()

	url, err := store.Put(context.Background(), "exports/demo/html-1.html", []byte("<html></html>"), "text/html")
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if url != "memory://exports/demo/html-1.html" {
		t.Errorf("url = %q", url)
	}

	obj, ok := store.Get("exports/demo/html-1.html")
	if !ok {
		t.Fatal("object not stored")
	}
	if string(obj.Data) != "<html></html>" || obj.ContentType != "text/html" {
		t.Errorf("stored object = %+v", obj)
	}
}

func TestMemoryStoreCopiesData(t *testing.T) {
	store := NewMemoryStore()
	data := []byte("original")
	if _, err := store.Put(context.Background(), "k", data, "text/plain"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	data[0] = 'X'

	obj, _ := store.Get("k")
	if string(obj.Data) != "original" {
		t.Errorf("stored data aliases caller buffer: %q", obj.Data)
	}
}
