package storage

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// runStorageSuite checks the contract every backend must honour. Keys are
// left behind on purpose; callers hand in a fresh or namespaced store.
func runStorageSuite(t *testing.T, s Storage) {
	ctx := context.Background()

	t.Run("get set delete", func(t *testing.T) {
		if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if err := s.Set(ctx, "k", []byte("v1")); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := s.Get(ctx, "k")
		if err != nil || string(got) != "v1" {
			t.Fatalf("expected v1, got %q (%v)", got, err)
		}
		if err := s.Delete(ctx, "k"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected key gone, got %v", err)
		}
	})

	t.Run("update aborts on error", func(t *testing.T) {
		_ = s.Set(ctx, "abort", []byte("keep"))

		boom := errors.New("boom")
		err := s.Update(ctx, "abort", func([]byte, bool) ([]byte, error) {
			return []byte("changed"), boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if got, _ := s.Get(ctx, "abort"); string(got) != "keep" {
			t.Errorf("value should be unchanged, got %q", got)
		}
	})

	t.Run("update nil deletes", func(t *testing.T) {
		_ = s.Set(ctx, "gone", []byte("v"))

		var sawFound bool
		err := s.Update(ctx, "gone", func(_ []byte, found bool) ([]byte, error) {
			sawFound = found
			return nil, nil
		})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if !sawFound {
			t.Error("existing key reported as absent")
		}
		if _, err := s.Get(ctx, "gone"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected key deleted, got %v", err)
		}
	})

	t.Run("update many", func(t *testing.T) {
		_ = s.Set(ctx, "pair-a", []byte("1"))
		_ = s.Set(ctx, "pair-c", []byte("drop"))

		err := s.UpdateMany(ctx, []string{"pair-a", "pair-b", "pair-c"}, func(cur [][]byte) ([][]byte, error) {
			if string(cur[0]) != "1" || cur[1] != nil || string(cur[2]) != "drop" {
				t.Errorf("unexpected current values %q", cur)
			}
			return [][]byte{[]byte("2"), []byte("new"), nil}, nil
		})
		if err != nil {
			t.Fatalf("UpdateMany: %v", err)
		}

		a, _ := s.Get(ctx, "pair-a")
		b, _ := s.Get(ctx, "pair-b")
		if string(a) != "2" || string(b) != "new" {
			t.Errorf("unexpected values a=%q b=%q", a, b)
		}
		if _, err := s.Get(ctx, "pair-c"); !errors.Is(err, ErrNotFound) {
			t.Errorf("pair-c should be deleted, got %v", err)
		}

		boom := errors.New("boom")
		err = s.UpdateMany(ctx, []string{"pair-a", "pair-b"}, func([][]byte) ([][]byte, error) {
			return [][]byte{[]byte("x"), []byte("x")}, boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		a, _ = s.Get(ctx, "pair-a")
		b, _ = s.Get(ctx, "pair-b")
		if string(a) != "2" || string(b) != "new" {
			t.Errorf("aborted update wrote a=%q b=%q", a, b)
		}

		if err := s.UpdateMany(ctx, []string{"pair-a", "pair-a"}, nil); !errors.Is(err, ErrBadKeys) {
			t.Errorf("duplicate keys: expected ErrBadKeys, got %v", err)
		}
		if err := s.UpdateMany(ctx, nil, nil); !errors.Is(err, ErrBadKeys) {
			t.Errorf("no keys: expected ErrBadKeys, got %v", err)
		}
	})

	t.Run("update pair json", func(t *testing.T) {
		type entry struct{ Cost int }

		left, log, err := UpdatePairJSON(ctx, s, "balance", 30, "spent", []entry{},
			func(bal *int, l *[]entry) error {
				*bal -= 20
				*l = append(*l, entry{Cost: 20})
				return nil
			})
		if err != nil {
			t.Fatal(err)
		}
		if left != 10 || len(log) != 1 {
			t.Fatalf("unexpected result %d %+v", left, log)
		}

		_, _, err = UpdatePairJSON(ctx, s, "balance", 30, "spent", []entry{},
			func(bal *int, l *[]entry) error {
				*l = append(*l, entry{Cost: 20})
				return errors.New("not enough")
			})
		if err == nil {
			t.Fatal("expected error")
		}

		bal, _ := GetJSON(ctx, s, "balance", 0)
		spent, _ := GetJSON(ctx, s, "spent", []entry{})
		if bal != 10 || len(spent) != 1 {
			t.Errorf("rejected update leaked: balance=%d spent=%+v", bal, spent)
		}
	})

	t.Run("concurrent counter", func(t *testing.T) {
		const n = 20
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for {
					_, err := UpdateJSON(ctx, s, "counter", 0, func(v *int) error {
						*v++
						return nil
					})
					if errors.Is(err, ErrConflict) {
						continue
					}
					if err != nil {
						t.Errorf("UpdateJSON: %v", err)
					}
					return
				}
			}()
		}
		wg.Wait()

		got, err := GetJSON(ctx, s, "counter", 0)
		if err != nil {
			t.Fatalf("GetJSON: %v", err)
		}
		if got != n {
			t.Errorf("expected %d, got %d", n, got)
		}
	})
}
