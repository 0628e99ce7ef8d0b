// Package carousel holds the index arithmetic for the banner slider and the
// testimonial strip.
package carousel

import "time"

const (
	// SlideInterval is the banner auto-advance period.
	SlideInterval = 5 * time.Second
	// StripInterval is the testimonial auto-scroll period.
	StripInterval = 3 * time.Second
)

// Carousel is a wrap-around cursor over Len slides.
type Carousel struct {
	Len   int
	Index int
}

// New returns a carousel positioned at index, clamped into range.
func New(length, index int) Carousel {
	return Carousel{Len: length}.Select(index)
}

// Next advances one slide, wrapping to the first.
func (c Carousel) Next() Carousel {
	if c.Len <= 0 {
		return Carousel{}
	}
	c.Index = (c.Index + 1) % c.Len
	return c
}

// Previous steps back one slide, wrapping to the last.
func (c Carousel) Previous() Carousel {
	if c.Len <= 0 {
		return Carousel{}
	}
	c.Index = (c.Index - 1 + c.Len) % c.Len
	return c
}

// Select jumps to index. Out-of-range values wrap.
func (c Carousel) Select(index int) Carousel {
	if c.Len <= 0 {
		return Carousel{}
	}
	c.Index = ((index % c.Len) + c.Len) % c.Len
	return c
}

// AutoAdvance reports whether the slider should cycle on its own.
func (c Carousel) AutoAdvance() bool {
	return c.Len > 1
}

// Strip is the testimonial auto-scroll window: Offset is the first visible
// card.
type Strip struct {
	Len    int
	Offset int
}

// NewStrip returns a strip at offset, wrapped into range.
func NewStrip(length, offset int) Strip {
	c := New(length, offset)
	return Strip{Len: c.Len, Offset: c.Index}
}

// Advance scrolls one card, returning to the start after the last.
func (s Strip) Advance() Strip {
	c := Carousel{Len: s.Len, Index: s.Offset}.Next()
	return Strip{Len: c.Len, Offset: c.Index}
}

// Order returns card indexes starting at Offset and wrapping around.
func (s Strip) Order() []int {
	out := make([]int, 0, max(s.Len, 0))
	for i := 0; i < s.Len; i++ {
		out = append(out, (s.Offset+i)%s.Len)
	}
	return out
}

// Scrolls reports whether the strip has anything to scroll.
func (s Strip) Scrolls() bool {
	return s.Len > 1
}
