package scene

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultTextCacheSize bounds how many rasterized strings stay resident.
const DefaultTextCacheSize = 256

// TextEntry is a rasterized string: a backend handle plus its pixel size.
type TextEntry[H any] struct {
	Handle H
	Width  int
	Height int
}

// RasterizeFunc turns a string into a backend handle.
type RasterizeFunc[H any] func(text string) (TextEntry[H], error)

// ReleaseFunc frees a backend handle when its entry leaves the cache.
type ReleaseFunc[H any] func(TextEntry[H])

// TextCache memoizes rasterized overlay strings, least recently used first out.
type TextCache[H any] struct {
	cache     *lru.Cache[string, TextEntry[H]]
	rasterize RasterizeFunc[H]
	misses    int
}

func NewTextCache[H any](size int, rasterize RasterizeFunc[H], release ReleaseFunc[H]) (*TextCache[H], error) {
	if size <= 0 {
		size = DefaultTextCacheSize
	}
	c, err := lru.NewWithEvict[string, TextEntry[H]](size, func(_ string, e TextEntry[H]) {
		if release != nil {
			release(e)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("text cache: %w", err)
	}
	return &TextCache[H]{cache: c, rasterize: rasterize}, nil
}

// Get returns the cached entry for text, rasterizing it on a miss.
func (c *TextCache[H]) Get(text string) (TextEntry[H], error) {
	if e, ok := c.cache.Get(text); ok {
		return e, nil
	}
	e, err := c.rasterize(text)
	if err != nil {
		return TextEntry[H]{}, fmt.Errorf("rasterize %q: %w", text, err)
	}
	c.misses++
	c.cache.Add(text, e)
	return e, nil
}

func (c *TextCache[H]) Len() int { return c.cache.Len() }

// Misses counts rasterizations performed so far.
func (c *TextCache[H]) Misses() int { return c.misses }

// Purge drops every entry, releasing each handle.
func (c *TextCache[H]) Purge() { c.cache.Purge() }
