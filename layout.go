package menu

import "fmt"

// positionWidgets runs the full layout pass: grid assignment, column width
// computation and widget placement. It is triggered lazily from Render when
// the widget set or any geometry-affecting state changed.
func (m *Menu) positionWidgets() error {
	if err := m.assignGrid(); err != nil {
		return err
	}

	for _, w := range m.widgets {
		if w.base().visible {
			w.render()
		}
	}

	m.computeColumnWidths()
	m.placeWidgets()
	return nil
}

// assignGrid computes (column, row, index) for every widget.
//
// Visible widgets receive dense ascending indices in insertion order.
// Non-floating widgets fill columns top to bottom, left to right, bounded by
// each column's row capacity. Floating widgets share the slot of the
// preceding non-floating widget and do not advance the fill. Hidden widgets
// get (-1,-1,-1) and are skipped entirely.
func (m *Menu) assignGrid() error {
	col, row := 0, 0
	lastCol, lastRow := 0, 0
	index := 0

	for _, w := range m.widgets {
		b := w.base()
		if !b.visible {
			b.setColRowIndex(-1, -1, -1)
			continue
		}

		if b.floatState {
			// Floating widgets overlap the slot of the preceding
			// non-floating widget and do not advance the fill.
			b.setColRowIndex(lastCol, lastRow, index)
			index++
			continue
		}

		if col >= m.columns {
			return fmt.Errorf("menu %q: widget %q exceeds %d columns: %w",
				m.title, b.id, m.columns, ErrCapacity)
		}
		b.setColRowIndex(col, row, index)
		lastCol, lastRow = col, row
		index++

		row++
		if r := m.rowsInColumn(col); r >= 0 && row >= r {
			col++
			row = 0
		}
	}

	m.usedColumns = col
	if row > 0 {
		m.usedColumns = col + 1
	}
	if m.usedColumns == 0 {
		m.usedColumns = 1
	}
	return nil
}

// computeColumnWidths sizes the used columns to fill the menu width. Columns
// past the last occupied one take no space.
//
// Each column starts at the widest widget it holds, floored by its minimum
// width and capped at its maximum. Surplus menu width grows unconstrained
// columns evenly, then columns still under their maximum. A deficit shrinks
// everything proportionally. Degenerate content (all zero) falls back to an
// even split.
func (m *Menu) computeColumnWidths() {
	n := m.usedColumns
	widths := make([]float32, n)

	for _, w := range m.widgets {
		b := w.base()
		if !b.visible || b.floatState || b.col < 0 || b.col >= n {
			continue
		}
		if ww := w.base().Width(); ww > widths[b.col] {
			widths[b.col] = ww
		}
	}
	for col := 0; col < n; col++ {
		if floor := m.minWidth(col); widths[col] < floor {
			widths[col] = floor
		}
		if ceil := m.maxWidth(col); ceil > 0 && widths[col] > ceil {
			widths[col] = ceil
		}
	}

	var total float32
	for _, w := range widths {
		total += w
	}

	switch {
	case total == 0:
		for col := range widths {
			widths[col] = m.width / float32(n)
		}
	case total < m.width:
		m.growColumns(widths, m.width-total)
	case total > m.width:
		m.shrinkColumns(widths, total)
	}

	m.columnWidths = widths
	m.columnPosX = make([]float32, n)
	var x float32
	for col := 0; col < n; col++ {
		m.columnPosX[col] = x
		x += widths[col]
	}
}

func (m *Menu) minWidth(col int) float32 {
	if col < len(m.colMinW) {
		return m.colMinW[col]
	}
	return 0
}

func (m *Menu) maxWidth(col int) float32 {
	if col < len(m.colMaxW) {
		return m.colMaxW[col]
	}
	return 0 // unconstrained
}

// growColumns distributes surplus width: evenly across unconstrained columns
// when any exist, otherwise into capped columns up to their headroom.
func (m *Menu) growColumns(widths []float32, leftover float32) {
	var unconstrained []int
	for col := range widths {
		if m.maxWidth(col) <= 0 {
			unconstrained = append(unconstrained, col)
		}
	}
	if len(unconstrained) > 0 {
		share := leftover / float32(len(unconstrained))
		for _, col := range unconstrained {
			widths[col] += share
		}
		return
	}

	for leftover > 0.5 {
		var open []int
		for col := range widths {
			if widths[col] < m.maxWidth(col) {
				open = append(open, col)
			}
		}
		if len(open) == 0 {
			return
		}
		share := leftover / float32(len(open))
		for _, col := range open {
			room := m.maxWidth(col) - widths[col]
			add := minf(share, room)
			widths[col] += add
			leftover -= add
		}
	}
}

// shrinkColumns resolves a width deficit by scaling every column down
// proportionally. Maximum widths were already applied by the caller, and
// shrinking only ever moves columns further below them.
func (m *Menu) shrinkColumns(widths []float32, total float32) {
	f := m.width / total
	for col := range widths {
		widths[col] *= f
	}
}

// placeWidgets assigns final positions from the computed grid.
func (m *Menu) placeWidgets() {
	n := m.usedColumns
	bodyTop := m.theme.TitleHeight + m.widgetOffset.Y

	colY := make([]float32, n)
	lastSlotY := make([]float32, n)
	for col := range colY {
		colY[col] = bodyTop
		lastSlotY[col] = bodyTop
	}

	if m.centerContent {
		if off := m.centerOffset(); off > 0 {
			for col := range colY {
				colY[col] += off
				lastSlotY[col] += off
			}
		}
	}

	for _, w := range m.widgets {
		b := w.base()
		if !b.visible || b.col < 0 || b.col >= n {
			continue
		}

		y := colY[b.col]
		if b.floatState {
			y = lastSlotY[b.col]
		}
		x := m.alignX(b, b.col)
		b.setPosition(x, y)

		if !b.floatState {
			lastSlotY[b.col] = colY[b.col]
			colY[b.col] += b.Height() + b.margin.Y
		}
	}
}

// centerOffset computes the vertical offset that centers the widget block,
// based on the tallest column.
func (m *Menu) centerOffset() float32 {
	var tallest float32
	colH := make([]float32, m.usedColumns)
	for _, w := range m.widgets {
		b := w.base()
		if !b.visible || b.floatState || b.col < 0 || b.col >= m.usedColumns {
			continue
		}
		colH[b.col] += b.Height() + b.margin.Y
		if colH[b.col] > tallest {
			tallest = colH[b.col]
		}
	}
	body := m.height - m.theme.TitleHeight
	return (body - tallest) / 2
}

// alignX resolves a widget's horizontal position within its column.
func (m *Menu) alignX(b *Base, col int) float32 {
	colX := m.columnPosX[col] + m.widgetOffset.X
	colW := m.columnWidths[col]
	w := b.Width()

	var x float32
	switch b.Alignment() {
	case AlignLeft:
		x = colX
	case AlignRight:
		x = colX + colW - w
	default:
		x = colX + (colW-w)/2
	}
	return x + b.margin.X
}
