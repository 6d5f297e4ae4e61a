package rpncalc

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestStoreGetSet(t *testing.T) {
	s := NewStore(0)
	if s.Cap() != DefaultMaxVars {
		t.Errorf("want default capacity %d, got %d", DefaultMaxVars, s.Cap())
	}
	if _, err := s.Get("x"); !errors.Is(err, NotFound) {
		t.Errorf("get missing: want NotFound, got %v", err)
	}
	if err := s.Set("x", 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("X", 2); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("x", 3); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Errorf("want 2 variables, got %d", s.Len())
	}
	if v, err := s.Get("x"); err != nil || v != 3 {
		t.Errorf("x: want 3, got %v, %v", v, err)
	}
	if v, err := s.Get("X"); err != nil || v != 2 {
		t.Errorf("X: want 2, got %v, %v", v, err)
	}
}

func TestStoreFull(t *testing.T) {
	s := NewStore(2)
	if err := s.Set("a", 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("b", 2); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("c", 3); !errors.Is(err, NoFreeSpace) {
		t.Errorf("third variable: want NoFreeSpace, got %v", err)
	}
	// Updates never need a new slot.
	if err := s.Set("a", 4); err != nil {
		t.Errorf("update in full store: %v", err)
	}
	if _, err := s.Get("c"); !errors.Is(err, NotFound) {
		t.Errorf("rejected variable exists: %v", err)
	}
	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Reset left %d variables", s.Len())
	}
	if _, err := s.Get("a"); !errors.Is(err, NotFound) {
		t.Errorf("a after Reset: want NotFound, got %v", err)
	}
	if err := s.Set("c", 3); err != nil {
		t.Errorf("set after Reset: %v", err)
	}
}

func TestStoreNames(t *testing.T) {
	s := NewStore(0)
	for _, n := range []string{"zeta", "alpha", "Beta", "a1"} {
		if err := s.Set(n, 0); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"Beta", "a1", "alpha", "zeta"}
	got := s.Names()
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("want %v, got %v", want, got)
			break
		}
	}
}

func TestStoreConcurrent(t *testing.T) {
	s := NewStore(8)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := "v" + strconv.Itoa(i)
			for j := 0; j < 100; j++ {
				if err := s.Set(name, float64(j)); err != nil {
					t.Error(err)
					return
				}
				if _, err := s.Get(name); err != nil {
					t.Error(err)
					return
				}
				s.Names()
			}
		}(i)
	}
	wg.Wait()
	if s.Len() != 8 {
		t.Errorf("want 8 variables, got %d", s.Len())
	}
	for i := 0; i < 8; i++ {
		if v, err := s.Get("v" + strconv.Itoa(i)); err != nil || v != 99 {
			t.Errorf("v%d: want 99, got %v, %v", i, v, err)
		}
	}
}
