//go:build !nogpu

package rogue

import (
	"fmt"
	"time"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/rogue/font"
	"github.com/gogpu/rogue/internal/gpu"
	"github.com/gogpu/rogue/render"
)

// Run opens a window for cfg and drives a until its Tick returns Stop
// or the window closes. Configuration errors (nil app, bad size,
// unloadable font) are returned before the window opens; GPU
// construction happens on the first frame, and its failure ends the
// loop and is returned here.
func Run(cfg Config, a App) error {
	if a == nil {
		return ErrNilApp
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadSize, cfg.Width, cfg.Height)
	}

	atlas := font.Default()
	if cfg.Font != nil {
		loaded, err := font.Load(cfg.Font)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadFont, err)
		}
		atlas = loaded
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(true))

	var (
		backend *gpu.Backend
		surf    *render.Surface
		d       *driver
		runErr  error
	)
	fail := func(err error) {
		if runErr == nil {
			runErr = err
		}
		app.Quit()
	}

	// GPU setup is deferred to the first frame: the window's device
	// provider does not exist before the event loop starts.
	setup := func() error {
		provider := app.GPUContextProvider()
		format, err := surfaceFormat(provider)
		if err != nil {
			return err
		}
		b, err := gpu.New(atlas, providerOrNil(provider))
		if err != nil {
			return err
		}
		s, err := render.New(b, render.Descriptor{
			Format:      format,
			Width:       uint32(cfg.Width),
			Height:      uint32(cfg.Height),
			PresentMode: render.PresentModeFifo,
		})
		if err != nil {
			return err
		}
		backend, surf = b, s
		d = newDriver(a, s, atlas.CellWidth, atlas.CellHeight)
		return nil
	}

	app.OnDraw(func(dc *gogpu.Context) {
		if d == nil {
			if err := setup(); err != nil {
				fail(err)
				return
			}
		}
		backend.SetSurfaceTarget(dc.SurfaceView())
		sw, sh := dc.SurfaceSize()
		if sw < 0 || sh < 0 {
			return
		}
		cont, err := d.step(time.Now(), uint32(sw), uint32(sh))
		if err != nil {
			fail(err)
			return
		}
		if !cont {
			app.Quit()
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if d != nil {
			d.keyPress(uint32(key))
		}
	})

	app.OnClose(func() {
		if surf != nil {
			surf.Close()
		}
	})

	if err := app.Run(); err != nil {
		return err
	}
	return runErr
}

// surfaceFormat returns the texture format negotiated by the windowing
// provider. A live provider that reports no format is a fatal startup
// error; only the own-device path assumes a default.
func surfaceFormat(p gpucontext.DeviceProvider) (gputypes.TextureFormat, error) {
	if p == nil {
		return gputypes.TextureFormatBGRA8Unorm, nil
	}
	f := p.SurfaceFormat()
	if f == gputypes.TextureFormatUndefined {
		return f, render.ErrNoSurfaceFormat
	}
	return f, nil
}

// providerOrNil converts a typed nil provider into a plain nil so the
// backend falls back to opening its own device.
func providerOrNil(p gpucontext.DeviceProvider) any {
	if p == nil {
		return nil
	}
	return p
}
