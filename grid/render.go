package grid

import (
	"fmt"
	"strings"
)

// Render draws the grid row by row using fmt.Sprint for each value, with a
// newline after the last column of every row.
func (g *Grid[T]) Render(opts ...RenderOption) string {
	return g.RenderFunc(func(v T) string { return fmt.Sprint(v) }, opts...)
}

// RenderFunc is Render with a custom value formatter.
func (g *Grid[T]) RenderFunc(format func(T) string, opts ...RenderOption) string {
	var o renderOptions
	for _, fn := range opts {
		fn(&o)
	}

	var sb strings.Builder
	for _, c := range g.cells {
		if o.mark != nil && c.Pos == *o.mark {
			sb.WriteString(o.markChar)
		} else {
			sb.WriteString(format(c.Value))
		}
		if c.Pos.Col == g.cols-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// String implements fmt.Stringer via Render.
func (g *Grid[T]) String() string {
	return g.Render()
}
