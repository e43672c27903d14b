package status

import (
	"strings"
	"sync"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get(KeyTicks)
	b := r.Ints.Get(KeyTicks)
	if a != b {
		t.Fatal("Expected repeated Get to return the same pointer")
	}

	a.Add(3)
	if got := r.Int(KeyTicks); got != 3 {
		t.Errorf("Expected %s=3, got %d", KeyTicks, got)
	}

	if !r.Ints.Has(KeyTicks) {
		t.Error("Expected Has to report a requested key")
	}
	if r.Ints.Has("missing") {
		t.Error("Expected Has to be false for an unknown key")
	}
}

func TestRegistryStoreMax(t *testing.T) {
	r := NewRegistry()

	r.StoreMax(KeyBestScore, 30)
	r.StoreMax(KeyBestScore, 10)
	if got := r.Int(KeyBestScore); got != 30 {
		t.Errorf("Expected best score 30, got %d", got)
	}

	r.StoreMax(KeyBestScore, 50)
	if got := r.Int(KeyBestScore); got != 50 {
		t.Errorf("Expected best score 50, got %d", got)
	}
}

func TestRegistryStoreMaxConcurrent(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(v int64) {
			defer wg.Done()
			r.StoreMax(KeyBestScore, v)
		}(int64(i))
	}
	wg.Wait()

	if got := r.Int(KeyBestScore); got != 100 {
		t.Errorf("Expected best score 100, got %d", got)
	}
}

func TestRegistryString(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyFoodEaten).Store(2)
	r.Ints.Get(KeyDeathsWall).Store(1)
	r.Bools.Get(KeyMuted).Store(true)

	s := r.String()
	want := "game.deaths.wall=1 game.food_eaten=2 audio.muted=true"
	if s != want {
		t.Errorf("String() = %q, want %q", s, want)
	}

	if r.TotalCount() != 3 {
		t.Errorf("Expected 3 metrics, got %d", r.TotalCount())
	}
	if !strings.Contains(s, KeyFoodEaten) {
		t.Error("Expected output to contain food metric")
	}
}
