// Command core runs the sample scene on an OpenGL 3.3 core context.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/nanolsn/rtui"
	"github.com/nanolsn/rtui/glcore"
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

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

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

	f, err := glcore.New()
	if err != nil {
		log.Fatal(err)
	}
	defer f.Delete()
	rtui.Logger().Info("OpenGL " + f.Version())

	fbWidth, fbHeight := window.GetFramebufferSize()
	render, err := rtui.NewRender(f, rtui.V2(fbWidth, fbHeight), cfg.Render)
	if err != nil {
		log.Fatal(err)
	}
	defer render.Delete()

	s, err := scene.New(render, cfg.Render.Background)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Delete()

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if err := render.Resize(rtui.V2(width, height)); err != nil {
			log.Fatal(err)
		}
	})

	for !window.ShouldClose() {
		s.Frame(render)

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
