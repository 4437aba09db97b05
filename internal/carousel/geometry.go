package carousel

// Geometry is the explicit sizing input of a carousel. The view layer
// supplies it; the controller never measures rendered output.
type Geometry struct {
	CardWidth int
	Gap       int
	Count     int
	Viewport  int
}

func (g Geometry) sanitized() Geometry {
	g.CardWidth = max(g.CardWidth, 0)
	g.Gap = max(g.Gap, 0)
	g.Count = max(g.Count, 0)
	g.Viewport = max(g.Viewport, 0)
	return g
}

// TotalWidth is the scrollable width of all cards and the gaps between them.
func (g Geometry) TotalWidth() int {
	g = g.sanitized()
	if g.Count == 0 {
		return 0
	}
	return g.Count*g.CardWidth + (g.Count-1)*g.Gap
}

// MaxOffset is the largest valid scroll offset. It is zero when the cards
// fit in the viewport.
func (g Geometry) MaxOffset() int {
	return max(g.TotalWidth()-g.sanitized().Viewport, 0)
}

// Pitch is the distance between the leading edges of adjacent cards.
func (g Geometry) Pitch() int {
	g = g.sanitized()
	return g.CardWidth + g.Gap
}

// Layout derives the per-card spans.
func (g Geometry) Layout() CardLayout {
	g = g.sanitized()
	layout := make(CardLayout, g.Count)
	for i := range layout {
		layout[i] = Span{Start: i * g.Pitch(), Width: g.CardWidth}
	}
	return layout
}

// Span is one card's position along the scroll axis.
type Span struct {
	Start int
	Width int
}

// End is the offset just past the card.
func (s Span) End() int { return s.Start + s.Width }

// CardLayout is the ordered list of card spans.
type CardLayout []Span

// Anchor returns the index of the card whose leading edge is the last one at
// or before offset, i.e. the card the viewport is currently aligned to or
// partially past. It returns -1 for an empty layout.
func (l CardLayout) Anchor(offset int) int {
	if len(l) == 0 {
		return -1
	}
	idx := 0
	for i, s := range l {
		if s.Start > offset {
			break
		}
		idx = i
	}
	return idx
}

// SnapTarget returns the offset of the adjacent card's leading edge in dir,
// clamped to [0, maxOffset]. Moving backward from a partially scrolled card
// first realigns to that card.
func (l CardLayout) SnapTarget(offset int, dir Direction, maxOffset int) int {
	i := l.Anchor(offset)
	if i < 0 {
		return clamp(offset, 0, maxOffset)
	}
	switch dir {
	case Forward:
		if i+1 < len(l) {
			return clamp(l[i+1].Start, 0, maxOffset)
		}
		return maxOffset
	default:
		if l[i].Start < offset {
			return clamp(l[i].Start, 0, maxOffset)
		}
		if i == 0 {
			return 0
		}
		return clamp(l[i-1].Start, 0, maxOffset)
	}
}

// Visible returns the indexes of cards intersecting [offset, offset+viewport).
func (l CardLayout) Visible(offset, viewport int) []int {
	var out []int
	for i, s := range l {
		if s.End() > offset && s.Start < offset+viewport {
			out = append(out, i)
		}
	}
	return out
}
