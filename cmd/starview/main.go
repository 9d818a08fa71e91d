// Command starview shows a rotating star textured with the hyperbolic
// tiling of the Poincaré disk in an OpenGL window.
//
// Keys:
//
//	h / H  pinch the star inward / outward
//	a      toggle the animation (resuming restarts it)
//	r / R  raise / lower the tiling resolution by 100
//	t / T  nearest / linear texture filtering
//	q, Esc quit
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/poincare"
	"github.com/gogpu/poincare/star"
	"github.com/gogpu/poincare/texture"
	"github.com/gogpu/poincare/texture/gltexture"
)

const (
	windowWidth  = 600
	windowHeight = 600
	title        = "Poincare Star"

	initialResolution = 300
	resolutionStep    = 100
	minResolution     = 100

	pinchStep = 10
)

var (
	vertexShaderSource = `
		#version 410
		in vec2 pos;
		in vec2 uv;
		uniform mat4 mvp;
		out vec2 fragUV;
		void main() {
			gl_Position = mvp * vec4(pos, 0.0, 1.0);
			fragUV = uv;
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		in vec2 fragUV;
		uniform sampler2D tiling;
		out vec4 fragColour;
		void main() {
			fragColour = texture(tiling, fragUV);
		}
	` + "\x00"
)

// App owns every piece of viewer state: the window, the GL objects, the
// star geometry with its animation, and the tiling texture.
type App struct {
	window  *glfw.Window
	program uint32
	vao     uint32
	vbo     uint32
	mvpLoc  int32

	tiling     *poincare.Tiling
	tex        *gltexture.Resource
	resolution int

	star     *star.Star
	camera   star.Camera
	animator *star.Animator
}

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		poincare.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, title, nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalln("failed to initialize OpenGL:", err)
	}
	gltexture.Activate()

	fmt.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	app, err := newApp(window)
	if err != nil {
		log.Fatalln("failed to set up viewer:", err)
	}
	defer app.Close()

	app.run()
}

func newApp(window *glfw.Window) (*App, error) {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	gl.UseProgram(program)

	a := &App{
		window:     window,
		program:    program,
		mvpLoc:     gl.GetUniformLocation(program, gl.Str("mvp\x00")),
		tiling:     poincare.New(),
		tex:        gltexture.NewResource(),
		resolution: initialResolution,
		star:       star.NewStar(),
		camera:     star.NewCamera(),
		animator:   star.NewAnimator(),
	}

	gl.GenVertexArrays(1, &a.vao)
	gl.BindVertexArray(a.vao)

	gl.GenBuffers(1, &a.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, a.vbo)
	a.uploadStar()

	posAttrib := uint32(gl.GetAttribLocation(program, gl.Str("pos\x00")))
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))

	uvAttrib := uint32(gl.GetAttribLocation(program, gl.Str("uv\x00")))
	gl.EnableVertexAttribArray(uvAttrib)
	gl.VertexAttribPointer(uvAttrib, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))

	if err := a.regenerate(); err != nil {
		return nil, err
	}

	samplerLoc := gl.GetUniformLocation(program, gl.Str("tiling\x00"))
	gl.Uniform1i(samplerLoc, 0)

	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	window.SetCharCallback(a.handleChar)
	window.SetKeyCallback(a.handleKey)

	return a, nil
}

// uploadStar pushes the current fan geometry into the vertex buffer.
// Pinching rewrites the buffer, so it is marked dynamic.
func (a *App) uploadStar() {
	verts := a.star.Vertices()
	gl.BindBuffer(gl.ARRAY_BUFFER, a.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
}

// regenerate renders the tiling at the current resolution and replaces
// the texture contents wholesale.
func (a *App) regenerate() error {
	pm, err := a.tiling.Render(a.resolution, a.resolution)
	if err != nil {
		return err
	}
	return a.tex.Upload(pm)
}

// setResolution changes the tiling resolution, clamping at the floor,
// and re-uploads the texture.
func (a *App) setResolution(res int) {
	if res < minResolution {
		poincare.Logger().Warn("resolution clamped", "requested", res, "floor", minResolution)
		res = minResolution
	}
	if res == a.resolution {
		return
	}
	a.resolution = res
	if err := a.regenerate(); err != nil {
		log.Println("failed to regenerate tiling:", err)
	}
}

func (a *App) handleChar(_ *glfw.Window, char rune) {
	switch char {
	case 'h':
		a.star.Pinch(-pinchStep)
		a.uploadStar()
	case 'H':
		a.star.Pinch(pinchStep)
		a.uploadStar()
	case 'a':
		a.animator.Toggle(time.Now())
	case 'r':
		a.setResolution(a.resolution + resolutionStep)
	case 'R':
		a.setResolution(a.resolution - resolutionStep)
	case 't':
		if err := a.tex.SetFilter(texture.FilterNearest); err != nil {
			log.Println("failed to set filter:", err)
		}
	case 'T':
		if err := a.tex.SetFilter(texture.FilterLinear); err != nil {
			log.Println("failed to set filter:", err)
		}
	case 'q':
		a.window.SetShouldClose(true)
	}
}

func (a *App) handleKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		a.window.SetShouldClose(true)
	}
}

func (a *App) run() {
	lastFpsTime := glfw.GetTime()
	frameCount := 0

	for !a.window.ShouldClose() {
		frameCount++
		if now := glfw.GetTime(); now-lastFpsTime >= 1.0 {
			a.window.SetTitle(fmt.Sprintf("%s | FPS: %d", title, frameCount))
			frameCount = 0
			lastFpsTime = now
		}

		a.frame(time.Now())

		a.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (a *App) frame(now time.Time) {
	a.animator.Advance(now)

	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(a.program)

	mvp := a.camera.Projection().Mul4(a.camera.View()).Mul4(a.animator.Model())
	gl.UniformMatrix4fv(a.mvpLoc, 1, false, &mvp[0])

	if err := a.tex.Bind(0); err != nil {
		log.Println("failed to bind texture:", err)
		return
	}

	gl.BindVertexArray(a.vao)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, star.FanVertexCount)
}

// Close releases the GL objects the app owns. The window itself is torn
// down by glfw.Terminate.
func (a *App) Close() {
	_ = a.tex.Close()
	gl.DeleteBuffers(1, &a.vbo)
	gl.DeleteVertexArrays(1, &a.vao)
	gl.DeleteProgram(a.program)
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))

		return 0, fmt.Errorf("failed to link program: %v", infoLog)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))

		return 0, fmt.Errorf("failed to compile %v: %v", source, infoLog)
	}

	return shader, nil
}
