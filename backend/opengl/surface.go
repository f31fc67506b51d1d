package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/staffledger/grid"
)

// Surface is an offscreen framebuffer that keeps a grid's pixels between
// paints. It implements grid.Surface.
type Surface struct {
	dev           *Device
	fbo, tex      uint32
	width, height int
	err           error // Allocation failure from the last Resize
}

// NewSurface allocates a framebuffer of the given size.
func (d *Device) NewSurface(width, height int) (*Surface, error) {
	s := &Surface{dev: d}
	if err := s.alloc(width, height); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Surface) alloc(width, height int) error {
	s.width, s.height = max(width, 1), max(height, 1)

	gl.GenTextures(1, &s.tex)
	gl.BindTexture(gl.TEXTURE_2D, s.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(s.width), int32(s.height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &s.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, s.fbo)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, s.tex, 0)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		s.free()
		return fmt.Errorf("opengl: framebuffer %dx%d incomplete: 0x%x", s.width, s.height, status)
	}

	gl.ClearColor(1, 1, 1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return nil
}

func (s *Surface) free() {
	if s.fbo != 0 {
		gl.DeleteFramebuffers(1, &s.fbo)
		s.fbo = 0
	}
	if s.tex != 0 {
		gl.DeleteTextures(1, &s.tex)
		s.tex = 0
	}
}

// Render paints dl into the framebuffer.
func (s *Surface) Render(dl *grid.DrawList) error {
	if s.err != nil {
		return s.err
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, s.fbo)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	s.dev.draw(dl, s.width, s.height)
	return nil
}

// FontTextureID returns the device font texture.
func (s *Surface) FontTextureID() uint32 {
	return s.dev.FontTextureID()
}

// Resize reallocates the framebuffer. The contents are lost; grids repaint
// everything after a resize.
func (s *Surface) Resize(width, height int) {
	if width == s.width && height == s.height && s.err == nil {
		return
	}
	s.free()
	s.err = s.alloc(width, height)
}

// Release frees the framebuffer.
func (s *Surface) Release() {
	s.free()
}

// Size returns the framebuffer size in pixels.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Present copies the surface into the default framebuffer with its top
// left corner at (x, y). targetHeight is the default framebuffer height.
func (s *Surface) Present(x, y, targetHeight int) {
	if s.fbo == 0 {
		return
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, s.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	bottom := int32(targetHeight - y - s.height)
	gl.BlitFramebuffer(
		0, 0, int32(s.width), int32(s.height),
		int32(x), bottom, int32(x+s.width), bottom+int32(s.height),
		gl.COLOR_BUFFER_BIT, gl.NEAREST,
	)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
}

// Image reads the framebuffer back, top row first.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, s.fbo)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	flipRows(img.Pix, s.width*4)
	return img
}

// flipRows reverses the row order of a packed pixel buffer. OpenGL reads
// bottom row first.
func flipRows(pix []byte, stride int) {
	tmp := make([]byte, stride)
	rows := len(pix) / stride
	for y := 0; y < rows/2; y++ {
		top := pix[y*stride : (y+1)*stride]
		bot := pix[(rows-1-y)*stride : (rows-y)*stride]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}
