package menu_test

import (
	"errors"
	"testing"

	"github.com/go-arcade/menu"
)

func newTestMenu(t *testing.T, opts ...menu.MenuOption) *menu.Menu {
	t.Helper()
	m, err := menu.NewMenu("TEST", 400, 300, opts...)
	if err != nil {
		t.Fatalf("NewMenu: %v", err)
	}
	return m
}

func addButton(t *testing.T, m *menu.Menu, title string, opts ...menu.Option) *menu.Button {
	t.Helper()
	b, err := m.AddButton(title, nil, opts...)
	if err != nil {
		t.Fatalf("AddButton(%q): %v", title, err)
	}
	return b
}

func TestGridAssignment(t *testing.T) {
	m := newTestMenu(t, menu.WithColumns(3, 2, 1, 2))

	widgets := []*menu.Button{
		addButton(t, m, "w0"),
		addButton(t, m, "w1"),
		addButton(t, m, "w2"),
		addButton(t, m, "w3"),
		addButton(t, m, "w4"),
	}
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := [][3]int{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 2},
		{2, 0, 3},
		{2, 1, 4},
	}
	for i, w := range widgets {
		col, row, idx := w.ColRowIndex()
		got := [3]int{col, row, idx}
		if got != want[i] {
			t.Errorf("widget %d: got (col,row,index) = %v, want %v", i, got, want[i])
		}
	}
}

func TestHiddenWidgetCoordinates(t *testing.T) {
	m := newTestMenu(t)
	a := addButton(t, m, "a")
	b := addButton(t, m, "b")
	c := addButton(t, m, "c")
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	b.Hide()
	if err := m.Render(); err != nil {
		t.Fatalf("Render after hide: %v", err)
	}

	if col, row, idx := b.ColRowIndex(); col != -1 || row != -1 || idx != -1 {
		t.Errorf("hidden widget: got (%d,%d,%d), want (-1,-1,-1)", col, row, idx)
	}

	// Remaining visible widgets keep dense ascending indices.
	if _, _, idx := a.ColRowIndex(); idx != 0 {
		t.Errorf("widget a index = %d, want 0", idx)
	}
	if _, _, idx := c.ColRowIndex(); idx != 1 {
		t.Errorf("widget c index = %d, want 1", idx)
	}

	b.Show()
	if err := m.Render(); err != nil {
		t.Fatalf("Render after show: %v", err)
	}
	if _, _, idx := b.ColRowIndex(); idx != 1 {
		t.Errorf("re-shown widget index = %d, want 1", idx)
	}
}

func TestFloatingWidgetSharesSlot(t *testing.T) {
	m := newTestMenu(t, menu.WithColumns(2, 2, 2))
	a := addButton(t, m, "a")
	f := addButton(t, m, "float", menu.WithFloat())
	b := addButton(t, m, "b")
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	aCol, aRow, _ := a.ColRowIndex()
	fCol, fRow, fIdx := f.ColRowIndex()
	if fCol != aCol || fRow != aRow {
		t.Errorf("floating widget at (%d,%d), want (%d,%d)", fCol, fRow, aCol, aRow)
	}
	if fIdx != 1 {
		t.Errorf("floating widget index = %d, want 1", fIdx)
	}

	// The floating widget consumed no slot, so b is the second slot.
	if col, row, _ := b.ColRowIndex(); col != 0 || row != 1 {
		t.Errorf("widget b at (%d,%d), want (0,1)", col, row)
	}
}

func TestFloatingWidgetExemptFromCapacity(t *testing.T) {
	m := newTestMenu(t, menu.WithColumns(1, 1))
	addButton(t, m, "a")

	if _, err := m.AddButton("overflow", nil); !errors.Is(err, menu.ErrCapacity) {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}
	if _, err := m.AddButton("float", nil, menu.WithFloat()); err != nil {
		t.Fatalf("floating add should not hit capacity: %v", err)
	}
}

func TestColumnWidthDistribution(t *testing.T) {
	// Default theme: CharWidth 8, FontScale 1, padding 4 per side.
	// "aa" is 2*8+8 = 24 wide, "aaaa" is 4*8+8 = 40 wide.
	m := newTestMenu(t, menu.WithColumns(2, 1, 1))
	left := addButton(t, m, "aa", menu.WithOpt(menu.OptAlign, menu.AlignLeft))
	right := addButton(t, m, "aaaa", menu.WithOpt(menu.OptAlign, menu.AlignLeft))
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// Content widths 24 + 40 = 64; leftover 336 splits evenly, so column 0
	// is 24 + 168 = 192 wide and column 1 starts at x=192.
	if x := left.Position().X; x != 0 {
		t.Errorf("left column start = %v, want 0", x)
	}
	if x := right.Position().X; x != 192 {
		t.Errorf("right column start = %v, want 192", x)
	}
}

func TestColumnMaxWidthRedistributes(t *testing.T) {
	// Column 0 capped at 100, column 1 unconstrained: all leftover flows to
	// column 1, so column 1 spans from 100 onwards.
	m := newTestMenu(t,
		menu.WithColumns(2, 1, 1),
		menu.WithColumnMinWidth(100),
		menu.WithColumnMaxWidth(100),
	)
	addButton(t, m, "aa")
	right := addButton(t, m, "bb", menu.WithOpt(menu.OptAlign, menu.AlignLeft))
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if x := right.Position().X; x != 100 {
		t.Errorf("second column start = %v, want 100", x)
	}
}

func TestColumnMinWidthFloor(t *testing.T) {
	m := newTestMenu(t, menu.WithColumns(2, 1, 1), menu.WithColumnMinWidth(120, 120))
	a := addButton(t, m, "x", menu.WithOpt(menu.OptAlign, menu.AlignRight))
	addButton(t, m, "y")
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// Both columns are occupied and floored at 120, leaving 160 leftover
	// split evenly: column 0 is 200 wide. "x" is 16 wide, right aligned
	// at 200-16.
	if x := a.Position().X; x != 184 {
		t.Errorf("right-aligned x = %v, want 184", x)
	}
}

func TestColumnMaxWidthCapsOnSurplus(t *testing.T) {
	// Column 0 holds content wider than its cap while the menu still has
	// leftover width. The cap must hold anyway: column 1 starts at x=100
	// and collects all the surplus.
	m := newTestMenu(t, menu.WithColumns(2, 1, 1), menu.WithColumnMaxWidth(100))
	addButton(t, m, "aaaaaaaaaaaaaaaaaaaa") // 20*8+8 = 168 wide
	right := addButton(t, m, "bb", menu.WithOpt(menu.OptAlign, menu.AlignLeft))
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if x := right.Position().X; x != 100 {
		t.Errorf("second column start = %v, want 100 (column 0 exceeded its max width)", x)
	}
}

func TestUnconstrainedColumnNeverExceedsMenuWidth(t *testing.T) {
	m, err := menu.NewMenu("T", 100, 300)
	if err != nil {
		t.Fatalf("NewMenu: %v", err)
	}
	b := addButton(t, m, "aaaaaaaaaaaaaaaaaaaa") // 168 wide, menu is 100
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// The single column shrinks to the menu width, so the oversized
	// centered widget overhangs symmetrically: x = (100-168)/2.
	if x := b.Position().X; x < -34.01 || x > -33.99 {
		t.Errorf("centered x = %v, want -34", x)
	}
}

func TestVerticalStacking(t *testing.T) {
	m := newTestMenu(t)
	a := addButton(t, m, "a")
	b := addButton(t, m, "b")
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	th := m.Theme()
	if y := a.Position().Y; y != th.TitleHeight {
		t.Errorf("first widget y = %v, want %v", y, th.TitleHeight)
	}
	wantB := th.TitleHeight + a.Height() + th.WidgetMargin.Y
	if y := b.Position().Y; y != wantB {
		t.Errorf("second widget y = %v, want %v", y, wantB)
	}
}

func TestVSpacerOccupiesHeight(t *testing.T) {
	m := newTestMenu(t)
	a := addButton(t, m, "a")
	sp, err := m.AddVSpacer(30)
	if err != nil {
		t.Fatalf("AddVSpacer: %v", err)
	}
	b := addButton(t, m, "b")
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	gap := b.Position().Y - a.Position().Y - a.Height()
	wantGap := sp.Height() + 2*m.Theme().WidgetMargin.Y
	if gap != wantGap {
		t.Errorf("gap between a and b = %v, want %v", gap, wantGap)
	}
	if sp.Selected() {
		t.Error("spacer must not be selectable")
	}
}

func TestCenterContent(t *testing.T) {
	m := newTestMenu(t, menu.WithCenterContent())
	a := addButton(t, m, "a")
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	th := m.Theme()
	block := a.Height() + th.WidgetMargin.Y
	want := th.TitleHeight + (300-th.TitleHeight-block)/2
	if y := a.Position().Y; y != want {
		t.Errorf("centered widget y = %v, want %v", y, want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	m := newTestMenu(t)
	addButton(t, m, "a")

	for i := 0; i < 3; i++ {
		if err := m.Render(); err != nil {
			t.Fatalf("Render %d: %v", i, err)
		}
	}
	if n := m.RenderCount(); n != 1 {
		t.Errorf("render count = %d, want 1 (layout must be lazy)", n)
	}

	addButton(t, m, "b")
	if err := m.Render(); err != nil {
		t.Fatalf("Render after add: %v", err)
	}
	if n := m.RenderCount(); n != 2 {
		t.Errorf("render count = %d, want 2 after mutation", n)
	}
}

func TestTranslateOffsetsPosition(t *testing.T) {
	m := newTestMenu(t)
	a := addButton(t, m, "a")
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	base := a.Position()

	a.Translate(5, -3)
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := a.Position()
	if got.X != base.X+5 || got.Y != base.Y-3 {
		t.Errorf("translated position = %v, want (%v,%v)", got, base.X+5, base.Y-3)
	}
}

func TestScalingWidgetRecomputesColumnWidths(t *testing.T) {
	m := newTestMenu(t, menu.WithColumns(2, 1, 1))
	a := addButton(t, m, "ab")
	b := addButton(t, m, "abcd")
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	baseW := a.Width()
	baseX := b.Position().X

	if err := a.Scale(2, 2); err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if err := m.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if w := a.Width(); w != baseW*2 {
		t.Errorf("scaled width = %v, want %v", w, baseW*2)
	}
	// The first column grows with its content, pushing the second column
	// (and the centered widget inside it) to the right.
	if x := b.Position().X; x <= baseX {
		t.Errorf("second column position = %v, want > %v", x, baseX)
	}
}
