// Package opengl provides an OpenGL 4.1 host backend for the listview
// package: a flat-color rectangle renderer and a GLFW viewport adapter.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Color is a normalized RGBA color.
type Color struct {
	R, G, B, A float32
}

// Renderer batches flat-color rectangles into a single VBO and draws
// them with an orthographic projection. One Flush per frame.
type Renderer struct {
	shader   uint32
	vao, vbo uint32
	projLoc  int32
	width    int
	height   int

	// Interleaved vertex data for the current frame:
	// 2 position floats + 4 color floats per vertex.
	verts []float32
}

const floatsPerVertex = 6

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    Color = aColor;
}
` + "\x00"

// Fragment shader source
const fragmentShaderSource = `
#version 410 core
in vec4 Color;

out vec4 FragColor;

void main() {
    FragColor = Color;
}
` + "\x00"

// NewRenderer creates a new OpenGL rectangle renderer.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
	}

	// Create shader program
	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))

	// Create VAO
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Create VBO
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(floatsPerVertex * 4)

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Color attribute
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	return r, nil
}

// Resize updates the viewport size used for the projection.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Rect queues a filled rectangle in screen coordinates (origin top-left,
// Y growing down). Rectangles accumulate until the next Flush.
func (r *Renderer) Rect(x, y, w, h float32, c Color) {
	x2, y2 := x+w, y+h
	r.verts = append(r.verts,
		x, y, c.R, c.G, c.B, c.A,
		x2, y, c.R, c.G, c.B, c.A,
		x2, y2, c.R, c.G, c.B, c.A,

		x, y, c.R, c.G, c.B, c.A,
		x2, y2, c.R, c.G, c.B, c.A,
		x, y2, c.R, c.G, c.B, c.A,
	)
}

// Flush uploads and draws the queued rectangles, then resets the batch.
func (r *Renderer) Flush() {
	if len(r.verts) == 0 {
		return
	}

	// Setup render state
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)

	gl.UseProgram(r.shader)

	// Set projection matrix (orthographic)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	// Bind VAO and upload data
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.verts)*4, gl.Ptr(r.verts), gl.STREAM_DRAW)

	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.verts)/floatsPerVertex))

	gl.BindVertexArray(0)

	r.verts = r.verts[:0]
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	// Compile vertex shader
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(vertexShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(vertexShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("vertex shader compilation failed: %s", string(log))
	}

	// Compile fragment shader
	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(fragmentShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(fragmentShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("fragment shader compilation failed: %s", string(log))
	}

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	// Cleanup shaders (they're linked into the program now)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
