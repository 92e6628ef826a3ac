package store

import (
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	s := New("idle")
	if s == nil {
		t.Fatal("New() = nil")
	}
	if got := s.Current(); got != "idle" {
		t.Errorf("Current() = %q, want %q", got, "idle")
	}
}

func TestStatusStore_Set(t *testing.T) {
	s := New("idle")

	s.Set("processing")
	if got := s.Current(); got != "processing" {
		t.Errorf("Current() = %q, want %q", got, "processing")
	}

	// any value is a legal successor to any other
	s.Set("complete")
	s.Set("idle")
	if got := s.Current(); got != "idle" {
		t.Errorf("Current() = %q, want %q", got, "idle")
	}
}

func TestStatusStore_ConcurrentAccess(t *testing.T) {
	s := New("idle")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set("processing")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Current()
			}
		}()
	}
	wg.Wait()

	if got := s.Current(); got != "processing" {
		t.Errorf("Current() = %q, want %q", got, "processing")
	}
}
