package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestRedisStorage(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := NewRedisStorage(context.Background(), mr.Addr(), "", 0)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })

	runStorageSuite(t, s)

	if !mr.Exists("counter") {
		t.Error("expected keys stored as plain redis strings")
	}
}
