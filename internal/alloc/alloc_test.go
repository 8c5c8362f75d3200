package alloc

import (
	"errors"
	"testing"
)

func TestSystemNeverFails(t *testing.T) {
	var mem System
	for _, n := range []int{0, 1, 1 << 20} {
		if err := mem.Allocate(n); err != nil {
			t.Fatalf("system allocator refused %d slots: %v", n, err)
		}
		mem.Release(n)
	}
}

func TestCountingTracksLiveBuffers(t *testing.T) {
	mem := NewCounting()

	if err := mem.Allocate(4); err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	if err := mem.Allocate(8); err != nil {
		t.Fatalf("allocate failed: %v", err)
	}

	buffers, slots := mem.Live()
	if buffers != 2 || slots != 12 {
		t.Fatalf("expected 2 buffers / 12 slots live, got %d / %d", buffers, slots)
	}

	mem.Release(4)
	mem.Release(8)

	buffers, slots = mem.Live()
	if buffers != 0 || slots != 0 {
		t.Fatalf("expected everything released, got %d buffers / %d slots", buffers, slots)
	}
	if over := mem.OverReleases(); over != 0 {
		t.Fatalf("expected no over-releases, got %d", over)
	}
}

func TestCountingDetectsDoubleFree(t *testing.T) {
	mem := NewCounting()

	if err := mem.Allocate(1); err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	mem.Release(1)
	mem.Release(1)

	if over := mem.OverReleases(); over == 0 {
		t.Fatalf("expected double free to be recorded")
	}
}

func TestCountingRejectsNegativeSize(t *testing.T) {
	mem := NewCounting()
	if err := mem.Allocate(-1); err == nil {
		t.Fatalf("expected error for negative slot count")
	}
	if buffers, slots := mem.Live(); buffers != 0 || slots != 0 {
		t.Fatalf("rejected allocation must not count, got %d buffers / %d slots", buffers, slots)
	}
}

func TestFailingBudget(t *testing.T) {
	mem := NewFailing(2)

	if err := mem.Allocate(1); err != nil {
		t.Fatalf("first allocation should succeed: %v", err)
	}
	if err := mem.Allocate(1); err != nil {
		t.Fatalf("second allocation should succeed: %v", err)
	}

	err := mem.Allocate(1)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}

	// Releases of already-granted buffers must still be accepted.
	mem.Release(1)
	mem.Release(1)
}
