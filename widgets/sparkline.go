package widgets

import (
	"math"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
)

// Block characters for sparkline rendering (8 levels).
var sparkBlocks = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a 1-row graph of recent values using block characters.
type Sparkline struct {
	values []float64
	head   int
	count  int

	Color   vaxis.Color // defaults to cyan
	Stretch bool        // widen each value to fill the available width
}

// NewSparkline creates a Sparkline with the given ring buffer capacity.
func NewSparkline(capacity int) *Sparkline {
	return &Sparkline{
		values: make([]float64, capacity),
	}
}

// Push adds a value to the ring buffer.
func (sl *Sparkline) Push(v float64) {
	sl.values[sl.head] = v
	sl.head = (sl.head + 1) % len(sl.values)
	if sl.count < len(sl.values) {
		sl.count++
	}
}

// SetValues replaces the buffer contents with vals, keeping the newest
// values when vals exceeds the capacity.
func (sl *Sparkline) SetValues(vals []float64) {
	sl.head, sl.count = 0, 0
	for _, v := range vals {
		sl.Push(v)
	}
}

// Count returns the number of values currently stored.
func (sl *Sparkline) Count() int {
	return sl.count
}

// ordered returns the stored values in chronological order.
func (sl *Sparkline) ordered() []float64 {
	if sl.count == 0 {
		return nil
	}
	out := make([]float64, sl.count)
	start := (sl.head - sl.count + len(sl.values)) % len(sl.values)
	for i := 0; i < sl.count; i++ {
		out[i] = sl.values[(start+i)%len(sl.values)]
	}
	return out
}

// Draw renders the sparkline as a single row.
func (sl *Sparkline) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, 1, sl)

	vals := sl.ordered()
	if len(vals) == 0 {
		return s, nil
	}

	// Limit to available width
	width := int(ctx.Max.Width)
	if len(vals) > width {
		vals = vals[len(vals)-width:]
	}

	// Find min/max for scaling
	minV, maxV := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	color := sl.Color
	if color == 0 {
		color = vaxis.IndexColor(6) // cyan
	}
	span := 1
	if sl.Stretch {
		span = max(1, width/len(vals))
	}

	for i, v := range vals {
		level := 0
		if maxV > minV {
			level = int(math.Round((v - minV) / (maxV - minV) * 7))
			if level > 7 {
				level = 7
			}
		} else if maxV > 0 {
			level = 4 // flat non-zero line
		}

		ch := sparkBlocks[level]
		for _, c := range ctx.Characters(string(ch)) {
			for j := 0; j < span; j++ {
				s.WriteCell(uint16(i*span+j), 0, vaxis.Cell{
					Character: c,
					Style:     vaxis.Style{Foreground: color},
				})
			}
		}
	}

	return s, nil
}
