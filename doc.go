/*
Package grid provides a virtualized, owner-drawn table widget with column
resizing, sorting, filtering and damage-tracked painting.

# Overview

A Grid displays rows of text cells under a bar of column labels. Rows live
in a Store; what the grid shows is a displayed index over that store, so
filtering and sorting never move rows. Only the rows that intersect the
viewport are painted, and only the areas invalidated since the last paint
are repainted.

A Grid is retained: the host creates it once, forwards input events to it
and calls Paint whenever the grid asks for it through Host.Invalidate.

# Quick Start

	g, err := grid.New(host, 800, 600, grid.WithLogger(logger.L))
	if err != nil {
	    return err
	}
	defer g.Close()

	g.AddColumn("Name", 120)
	g.AddColumn("State", 90)
	g.AddRow([]string{"Papadopoulos", "active"})
	g.SetColorRule("active", grid.RGB(0, 128, 0), 1)

	// Event loop
	g.HandleEvent(grid.PointerMove{X: x, Y: y})
	if g.NeedsPaint() {
	    g.Paint()
	}

# Hosts

A Host supplies the DPI scale, a paint Surface, cursor changes and the
selection notifications. Embed BaseHost to get no-op defaults:

	type myHost struct {
	    grid.BaseHost
	}

	func (h *myHost) Notify(n grid.Notification) {
	    if n.Kind == grid.RowSelected {
	        row, _ := n.Grid.SelectedRow()
	        fmt.Println(row)
	    }
	}

Hosts that also implement Clipboard get the selected row, tab separated,
when the user presses Ctrl+C.

# Interaction

	Move over a column border    Arm a resize (resize cursor)
	Drag an armed border         Resize the column
	Click a column label         Sort by the column, toggling direction
	Click a row                  Select it
	Click below the last row     Deselect
	Wheel / Shift+Wheel          Scroll rows / columns
	Up, Down                     Move the selection
	PageUp, PageDown, Home, End  Move the selection by a page or to an end
	Escape                       Deselect
	Ctrl+C                       Copy the selected row

Sorting clears the selection, since the selected slot would show a
different row afterwards.

# Mirroring

	history.Mirror(people)

A mirror shares the source's store: both grids show the same rows in the
same order, while selection, hover and scrolling stay per grid. Columns
are copied once. Calling Clear on a mirror detaches it and leaves the
source's rows alone.

# Surfaces

Paint records primitives into a DrawList and hands it to the Surface. The
DrawList carries both batched vertex data for GPU surfaces and a list of
Ops for cell-based surfaces such as a terminal.
*/
package grid
