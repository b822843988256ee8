// Command sdldemo opens a window, runs an event loop at a fixed frame rate
// and exits on Quit, Escape or after the configured run time.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/elliotmr/sdl"
	"github.com/elliotmr/sdl/event"
	"github.com/elliotmr/sdl/internal/config"
	"github.com/elliotmr/sdl/internal/logging"
	"github.com/elliotmr/sdl/sys"
	"github.com/elliotmr/sdl/timer"
	"github.com/elliotmr/sdl/video"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "sdldemo.toml", "TOML or YAML settings file")
	envPath := flag.String("env", ".env", "dotenv file with SDLDEMO_* overrides")
	flag.Parse()

	if err := config.LoadEnvFile(*envPath); err != nil {
		// no logger yet
		fmt.Fprintln(os.Stderr, "sdldemo:", err)
		os.Exit(1)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sdldemo:", err)
		os.Exit(1)
	}

	log, closeLog := logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		FilePath:    cfg.Logging.FilePath,
		Development: cfg.Logging.Development,
	})
	defer closeLog()

	if err := cfg.ExportHints(); err != nil {
		log.Fatal("could not export video hints", zap.Error(err))
	}
	if err := run(cfg, log, nil); err != nil {
		log.Error("demo failed", zap.Error(err))
		closeLog()
		os.Exit(1)
	}
}

type demo struct {
	cfg     *config.Config
	log     *zap.Logger
	vs      *video.Subsystem
	ts      *timer.Subsystem
	surface *video.Surface
}

// run drives the whole program against lib; nil selects the native library.
func run(cfg *config.Config, log *zap.Logger, lib sys.Library) error {
	opts := []sdl.Option{sdl.WithLogger(log)}
	if lib != nil {
		opts = append(opts, sdl.WithLibrary(lib))
	}
	ctx, err := sdl.Init(opts...)
	if err != nil {
		return errors.Wrap(err, "initializing sdl")
	}
	defer ctx.Quit()
	log.Info("sdl initialized")

	d := &demo{cfg: cfg, log: log}
	if d.vs, err = video.Init(ctx); err != nil {
		return errors.Wrap(err, "initializing video")
	}
	if d.ts, err = timer.Init(ctx); err != nil {
		return errors.Wrap(err, "initializing timer")
	}
	if err := d.open(cfg.Window.Width, cfg.Window.Height); err != nil {
		return err
	}
	defer func() { d.surface.Free() }()

	fps := timer.NewFPSManager(d.ts)
	if err := fps.SetFramerate(cfg.Run.Framerate); err != nil {
		return err
	}
	return d.loop(event.NewQueue(ctx), fps)
}

func (d *demo) open(width, height uint32) error {
	wb := d.vs.Window(d.cfg.Window.Title, width, height)
	if d.cfg.Window.Fullscreen {
		wb.Fullscreen()
	}
	if d.cfg.Window.Resizable {
		wb.Resizable()
	}
	if d.cfg.Window.Borderless {
		wb.Borderless()
	}
	if d.cfg.Window.DoubleBuf {
		wb.DoubleBuf()
	}
	s, err := wb.Build()
	if err != nil {
		return errors.Wrap(err, "opening window")
	}
	if d.surface != nil {
		d.surface.Free()
	}
	d.surface = s
	d.log.Info("window open", zap.Uint32("width", width), zap.Uint32("height", height))
	return nil
}

func (d *demo) loop(q *event.Queue, fps *timer.FPSManager) error {
	limit := time.Duration(d.cfg.Run.Seconds) * time.Second
	for {
		for {
			ev, ok, err := q.Poll()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			done, err := d.handle(ev)
			if err != nil || done {
				return err
			}
		}

		if err := d.surface.Flip(); err != nil {
			return err
		}
		if _, err := fps.Delay(); err != nil {
			return err
		}
		if limit > 0 {
			elapsed, err := d.ts.Elapsed()
			if err != nil {
				return err
			}
			if elapsed >= limit {
				d.log.Info("run time over", zap.Duration("elapsed", elapsed))
				return nil
			}
		}
	}
}

func (d *demo) handle(ev event.Event) (bool, error) {
	switch e := ev.(type) {
	case event.Quit:
		d.log.Info("quit requested")
		return true, nil
	case event.Keyboard:
		if e.Pressed() && e.Keysym.Sym == event.KeyEscape {
			d.log.Info("escape pressed")
			return true, nil
		}
	case event.Resize:
		if e.W > 0 && e.H > 0 && d.cfg.Window.Resizable {
			return false, d.open(uint32(e.W), uint32(e.H))
		}
	case event.Unknown:
		d.log.Debug("undecoded event", zap.Stringer("type", e.Type))
		return false, nil
	}
	d.log.Debug("event", zap.String("kind", fmt.Sprintf("%T", ev)), zap.Any("value", ev))
	return false, nil
}
