// Package renderer presents software-rendered frames through OpenGL: the
// canvas is uploaded into one texture and drawn on a full-screen quad.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hypercube/internal/engine/shader"
	"github.com/Faultbox/hypercube/internal/logger"
	"github.com/Faultbox/hypercube/pkg/raster"
)

const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;

out vec2 uv;

void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
	uv = aUV;
}
`

const fragmentShaderSource = `
#version 410 core

in vec2 uv;
out vec4 FragColor;

uniform sampler2D uFrame;

void main() {
	FragColor = texture(uFrame, uv);
}
`

// Config holds renderer configuration.
type Config struct {
	// Frame size of the canvases that will be presented.
	Width  int
	Height int
	// Letterbox colour, red/green/blue/alpha in [0, 1].
	Clear [4]float32
}

// Renderer uploads canvases and draws them.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program
	texture uint32
	vao     uint32
	vbo     uint32

	viewport [4]int32
}

// New creates the renderer. Must be called AFTER the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Component("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(cfg.Clear[0], cfg.Clear[1], cfg.Clear[2], cfg.Clear[3])

	var err error
	r.program, err = shader.Compile(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program.Use()
	gl.Uniform1i(r.program.Uniform("uFrame"), 0)

	r.createTexture()
	r.createQuad()
	r.viewport = [4]int32{0, 0, int32(cfg.Width), int32(cfg.Height)}

	return r, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// SetViewport sets the drawable area the frame is scaled into.
func (r *Renderer) SetViewport(x, y, width, height int) {
	r.viewport = [4]int32{int32(x), int32(y), int32(width), int32(height)}
	r.log.Debug("viewport changed",
		zap.Int("x", x), zap.Int("y", y),
		zap.Int("width", width), zap.Int("height", height),
	)
}

// Present uploads the canvas and draws it into the viewport. The canvas must
// match the configured frame size.
func (r *Renderer) Present(c *raster.Canvas) error {
	if c.Width != r.config.Width || c.Height != r.config.Height {
		return fmt.Errorf("canvas %dx%d does not match frame %dx%d",
			c.Width, c.Height, r.config.Width, r.config.Height)
	}

	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Viewport(r.viewport[0], r.viewport[1], r.viewport[2], r.viewport[3])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	// Color is ABGR in a uint32, i.e. RGBA bytes in memory.
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(c.Width), int32(c.Height),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&c.Pix[0]))

	r.program.Use()
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	return nil
}

func (r *Renderer) createTexture() {
	gl.GenTextures(1, &r.texture)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(r.config.Width), int32(r.config.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
}

// createQuad builds a triangle strip covering clip space. Canvas row 0 is
// the top of the screen, so v runs downwards.
func (r *Renderer) createQuad() {
	vertices := []float32{
		// x, y, u, v
		-1, -1, 0, 1,
		1, -1, 1, 1,
		-1, 1, 0, 0,
		1, 1, 1, 0,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("frame quad created", zap.Uint32("vao", r.vao), zap.Uint32("vbo", r.vbo))
}
