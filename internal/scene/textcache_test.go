package scene

import (
	"errors"
	"testing"
)

func TestTextCacheReusesEntries(t *testing.T) {
	calls := 0
	c, err := NewTextCache[int](4, func(s string) (TextEntry[int], error) {
		calls++
		return TextEntry[int]{Handle: calls, Width: len(s) * 7, Height: 13}, nil
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := c.Get("Total Nodes: 1000")
	b, _ := c.Get("Total Nodes: 1000")
	if a != b || calls != 1 {
		t.Fatalf("second lookup rasterized again: calls=%d a=%+v b=%+v", calls, a, b)
	}
	if a.Width != 17*7 || a.Height != 13 {
		t.Fatalf("size = %dx%d", a.Width, a.Height)
	}
	if c.Misses() != 1 {
		t.Fatalf("misses = %d, want 1", c.Misses())
	}
}

func TestTextCacheEvictsAndReleases(t *testing.T) {
	var released []int
	next := 0
	c, err := NewTextCache[int](2, func(string) (TextEntry[int], error) {
		next++
		return TextEntry[int]{Handle: next}, nil
	}, func(e TextEntry[int]) { released = append(released, e.Handle) })
	if err != nil {
		t.Fatal(err)
	}
	c.Get("a") // 1
	c.Get("b") // 2
	c.Get("a") // touch a, b is now oldest
	c.Get("c") // 3, evicts b
	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}
	if len(released) != 1 || released[0] != 2 {
		t.Fatalf("released %v, want [2]", released)
	}
	c.Purge()
	if len(released) != 3 || c.Len() != 0 {
		t.Fatalf("after purge released %v len %d", released, c.Len())
	}
}

func TestTextCacheRasterizeError(t *testing.T) {
	boom := errors.New("boom")
	c, err := NewTextCache[int](0, func(string) (TextEntry[int], error) {
		return TextEntry[int]{}, boom
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Get("x"); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapping boom", err)
	}
	if c.Len() != 0 {
		t.Fatalf("failed rasterization should not be cached")
	}
}
