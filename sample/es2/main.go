//go:build !js

// Command es2 runs the sample scene on an OpenGL 2.1 / ES 2 context through
// goxjs.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/goxjs/gl"
	"github.com/goxjs/glfw"

	"github.com/nanolsn/rtui"
	"github.com/nanolsn/rtui/gles2"
	"github.com/nanolsn/rtui/sample/scene"
)

func init() {
	runtime.LockOSThread()
}

func key(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

func main() {
	configPath := flag.String("config", "", "sample TOML config (embedded defaults when empty)")
	flag.Parse()

	cfg, err := scene.LoadConfigFile(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Render.Debug {
		rtui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	err = glfw.Init(gl.ContextWatcher)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		panic(err)
	}
	window.SetKeyCallback(key)
	window.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	render, err := rtui.NewRender(gles2.New(), rtui.V2(fbWidth, fbHeight), cfg.Render)
	if err != nil {
		log.Fatal(err)
	}
	defer render.Delete()

	s, err := scene.New(render, cfg.Render.Background)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Delete()

	for !window.ShouldClose() {
		fbWidth, fbHeight := window.GetFramebufferSize()
		if err := render.Resize(rtui.V2(fbWidth, fbHeight)); err != nil {
			log.Fatal(err)
		}
		s.Frame(render)

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
