package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/staffledger/grid"
)

// Placement computes a pane's rectangle, in framebuffer pixels, from the
// framebuffer size.
type Placement func(width, height int) grid.Rect

type pane struct {
	grid    *grid.Grid
	surface *Surface
	bounds  grid.Rect
	place   Placement
}

func (p *pane) local(x, y float32) (float32, float32) {
	return x - p.bounds.X, y - p.bounds.Y
}

// paneHost hands the surface a grid creates to its pane.
type paneHost struct {
	*Host
	pane *pane
}

func (p paneHost) NewSurface(width, height int) (grid.Surface, error) {
	s, err := p.dev.NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	p.pane.surface = s
	return s, nil
}

// Router lays grids out in one GLFW window and turns GLFW callbacks into
// grid events. Pointer events go to the pane under the pointer, or to the
// pane that received the press while a button is held. Keys go to the
// last pane clicked.
type Router struct {
	host   *Host
	window *glfw.Window
	panes  []*pane

	hover   *pane
	capture *pane
	focus   *pane

	fbWidth, fbHeight int
}

// NewRouter installs the input callbacks on the host window.
func NewRouter(host *Host) *Router {
	r := &Router{host: host, window: host.window}
	r.fbWidth, r.fbHeight = r.window.GetFramebufferSize()

	r.window.SetCursorPosCallback(r.cursorPosCallback)
	r.window.SetCursorEnterCallback(r.cursorEnterCallback)
	r.window.SetMouseButtonCallback(r.mouseButtonCallback)
	r.window.SetScrollCallback(r.scrollCallback)
	r.window.SetKeyCallback(r.keyCallback)
	r.window.SetFramebufferSizeCallback(r.framebufferSizeCallback)
	r.window.SetContentScaleCallback(r.contentScaleCallback)
	return r
}

// NewGrid creates a grid in a new pane placed by place.
func (r *Router) NewGrid(place Placement, opts ...grid.Option) (*grid.Grid, error) {
	p := &pane{place: place, bounds: place(r.fbWidth, r.fbHeight)}
	g, err := grid.New(paneHost{Host: r.host, pane: p}, int(p.bounds.W), int(p.bounds.H), opts...)
	if err != nil {
		return nil, fmt.Errorf("opengl: new grid: %w", err)
	}
	p.grid = g
	r.panes = append(r.panes, p)
	if r.focus == nil {
		r.focus = p
	}
	return g, nil
}

// Focus directs keyboard input to g.
func (r *Router) Focus(g *grid.Grid) {
	if p := r.paneOf(g); p != nil {
		r.focus = p
	}
}

// Paint repaints the dirty areas of every grid.
func (r *Router) Paint() error {
	for _, p := range r.panes {
		if !p.grid.NeedsPaint() {
			continue
		}
		if err := p.grid.Paint(); err != nil {
			return fmt.Errorf("opengl: paint %s: %w", p.grid.Name(), err)
		}
	}
	return nil
}

// Present blits every pane into the window framebuffer. The caller swaps
// buffers afterwards.
func (r *Router) Present() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(r.fbWidth), int32(r.fbHeight))
	gl.ClearColor(0.92, 0.92, 0.92, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	for _, p := range r.panes {
		if p.surface != nil {
			p.surface.Present(int(p.bounds.X), int(p.bounds.Y), r.fbHeight)
		}
	}
}

// Snapshot repaints g completely and reads back its pixels.
func (r *Router) Snapshot(g *grid.Grid) (*image.RGBA, error) {
	p := r.paneOf(g)
	if p == nil || p.surface == nil {
		return nil, fmt.Errorf("opengl: snapshot: %s is not routed", g.Name())
	}
	if err := g.PaintAll(); err != nil {
		return nil, fmt.Errorf("opengl: snapshot %s: %w", g.Name(), err)
	}
	return p.surface.Image(), nil
}

// Close closes every grid and releases its surface.
func (r *Router) Close() {
	for _, p := range r.panes {
		p.grid.Close()
	}
	r.panes = nil
	r.hover, r.capture, r.focus = nil, nil, nil
}

func (r *Router) paneOf(g *grid.Grid) *pane {
	for _, p := range r.panes {
		if p.grid == g {
			return p
		}
	}
	return nil
}

func (r *Router) paneAt(x, y float32) *pane {
	pt := grid.Vec2{X: x, Y: y}
	for _, p := range r.panes {
		if p.bounds.Contains(pt) {
			return p
		}
	}
	return nil
}

// toFramebuffer converts window coordinates to framebuffer pixels, which
// differ on high density displays.
func (r *Router) toFramebuffer(x, y float64) (float32, float32) {
	ww, wh := r.window.GetSize()
	if ww <= 0 || wh <= 0 {
		return float32(x), float32(y)
	}
	return float32(x * float64(r.fbWidth) / float64(ww)), float32(y * float64(r.fbHeight) / float64(wh))
}

func (r *Router) setHover(p *pane) {
	if p == r.hover {
		return
	}
	if r.hover != nil {
		r.hover.grid.HandleEvent(grid.PointerLeave{})
	}
	r.hover = p
}

func (r *Router) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	x, y := r.toFramebuffer(xpos, ypos)

	target := r.capture
	if target == nil {
		target = r.paneAt(x, y)
		r.setHover(target)
	}
	if target != nil {
		lx, ly := target.local(x, y)
		target.grid.HandleEvent(grid.PointerMove{X: lx, Y: ly})
	}
}

func (r *Router) cursorEnterCallback(w *glfw.Window, entered bool) {
	if !entered && r.capture == nil {
		r.setHover(nil)
	}
}

func (r *Router) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := glfwMouseButtonToGrid(button)
	if !ok {
		return
	}
	x, y := r.toFramebuffer(w.GetCursorPos())

	switch action {
	case glfw.Press:
		target := r.paneAt(x, y)
		if target == nil {
			return
		}
		r.capture, r.focus = target, target
		lx, ly := target.local(x, y)
		target.grid.HandleEvent(grid.PointerDown{X: lx, Y: ly, Button: b})

	case glfw.Release:
		target := r.capture
		r.capture = nil
		if target == nil {
			return
		}
		lx, ly := target.local(x, y)
		target.grid.HandleEvent(grid.PointerUp{X: lx, Y: ly, Button: b})
		r.setHover(r.paneAt(x, y))
	}
}

func (r *Router) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	if r.hover == nil {
		return
	}
	r.hover.grid.HandleEvent(grid.Wheel{
		DX:    float32(xoff),
		DY:    float32(yoff),
		Shift: w.GetKey(glfw.KeyLeftShift) == glfw.Press || w.GetKey(glfw.KeyRightShift) == glfw.Press,
	})
}

func (r *Router) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release || r.focus == nil {
		return
	}
	k := glfwKeyToGrid(key)
	if k == grid.KeyNone {
		return
	}
	r.focus.grid.HandleEvent(grid.KeyPress{Key: k, Mods: glfwModsToGrid(mods)})
}

func (r *Router) framebufferSizeCallback(w *glfw.Window, width, height int) {
	if width <= 0 || height <= 0 {
		// Minimized.
		return
	}
	r.fbWidth, r.fbHeight = width, height
	for _, p := range r.panes {
		p.bounds = p.place(width, height)
		p.grid.HandleEvent(grid.Resize{Width: int(p.bounds.W), Height: int(p.bounds.H)})
	}
}

func (r *Router) contentScaleCallback(w *glfw.Window, x, y float32) {
	if r.host.scale > 0 {
		return
	}
	for _, p := range r.panes {
		p.grid.HandleEvent(grid.DPIChanged{Scale: x})
	}
}

// glfwKeyToGrid maps GLFW keys to grid keys.
func glfwKeyToGrid(key glfw.Key) grid.Key {
	switch key {
	case glfw.KeyUp:
		return grid.KeyUp
	case glfw.KeyDown:
		return grid.KeyDown
	case glfw.KeyPageUp:
		return grid.KeyPageUp
	case glfw.KeyPageDown:
		return grid.KeyPageDown
	case glfw.KeyHome:
		return grid.KeyHome
	case glfw.KeyEnd:
		return grid.KeyEnd
	case glfw.KeyEscape:
		return grid.KeyEscape
	case glfw.KeyC:
		return grid.KeyC
	default:
		return grid.KeyNone
	}
}

func glfwModsToGrid(mods glfw.ModifierKey) grid.Modifier {
	var m grid.Modifier
	if mods&glfw.ModShift != 0 {
		m |= grid.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= grid.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= grid.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= grid.ModSuper
	}
	return m
}

// glfwMouseButtonToGrid maps GLFW mouse buttons to grid mouse buttons.
func glfwMouseButtonToGrid(button glfw.MouseButton) (grid.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return grid.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return grid.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return grid.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
