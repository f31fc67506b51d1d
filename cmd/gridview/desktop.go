package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	"github.com/staffledger/grid"
	"github.com/staffledger/grid/backend/opengl"
	"github.com/staffledger/grid/internal/logger"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Open the grids in a window",
	Long: `Open the four grids in one window: people and tickets on top, the
people mirror and the selected person's history below.`,
	Args: cobra.NoArgs,
	RunE: runDesktop,
}

// Gap between panes, in framebuffer pixels.
const paneGap = 8

// quadrant places a pane in one cell of a 2x2 layout.
func quadrant(col, row int) opengl.Placement {
	return func(width, height int) grid.Rect {
		w := max((width-3*paneGap)/2, 1)
		h := max((height-3*paneGap)/2, 1)
		return grid.Rect{
			X: float32(paneGap + col*(w+paneGap)),
			Y: float32(paneGap + row*(h+paneGap)),
			W: float32(w),
			H: float32(h),
		}
	}
}

var desktopLayout = map[string]opengl.Placement{
	viewPeople:  quadrant(0, 0),
	viewTickets: quadrant(1, 0),
	viewPersons: quadrant(0, 1),
	viewHistory: quadrant(1, 1),
}

// openWindow initializes GLFW and OpenGL. The caller terminates GLFW.
func openWindow(width, height int, title string, visible bool) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if !visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return window, nil
}

func runDesktop(cmd *cobra.Command, args []string) error {
	book, err := loadBook()
	if err != nil {
		return err
	}

	window, err := openWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, true)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	glfw.SwapInterval(1) // vsync

	dev, err := opengl.NewDevice()
	if err != nil {
		return fmt.Errorf("grid device: %w", err)
	}
	defer dev.Delete()

	ws := &workspace{}
	host := opengl.NewHost(window, dev,
		opengl.WithDPIScale(cfg.Grid.DPIScale),
		opengl.WithNotify(ws.notify),
		opengl.WithHostLogger(logger.L),
	)
	defer host.Destroy()

	router := opengl.NewRouter(host)
	defer router.Close()

	style := cfg.Style()
	err = ws.build(book, func(name string) (*grid.Grid, error) {
		return router.NewGrid(desktopLayout[name], append(gridOptions(style), grid.WithName(name))...)
	})
	if err != nil {
		return err
	}
	router.Focus(ws.people)

	// Paint only after input or a grid invalidation wakes the loop.
	for !window.ShouldClose() {
		if err := router.Paint(); err != nil {
			return err
		}
		router.Present()
		window.SwapBuffers()
		glfw.WaitEvents()
	}
	return nil
}
