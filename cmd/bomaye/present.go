package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/lixenwraith/bomaye/audio"
	"github.com/lixenwraith/bomaye/config"
	"github.com/lixenwraith/bomaye/core"
	"github.com/lixenwraith/bomaye/engine"
	"github.com/lixenwraith/bomaye/event"
	"github.com/lixenwraith/bomaye/render"
	"github.com/lixenwraith/bomaye/sequence"
	"github.com/lixenwraith/bomaye/status"
	"github.com/lixenwraith/bomaye/vmath"
)

// errNoTerminal is returned when stdout cannot host the presentation surfaces
var errNoTerminal = errors.New("stdout is not a terminal")

func execPresent(ctx context.Context, opts presentOptions) error {
	cfg, err := loadConfig(opts.configPath, opts.seed)
	if err != nil {
		return err
	}
	if opts.audio {
		cfg.Audio.Enabled = true
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	logFile := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}
	setRunID(uuid.NewString())

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	core.SetCrashReset(screen.Fini)
	defer func() {
		core.SetCrashReset(nil)
		screen.Fini()
	}()

	p, err := newPresenter(screen, cfg, resolveName(opts.name, opts.url), opts.debug, opts.hold)
	if err != nil {
		return err
	}

	if cfg.Audio.Enabled {
		settings := audio.NewSettings(cfg.Audio)
		sm := audio.NewSoundManager(settings)
		if err := sm.Initialize(); err != nil {
			log.Printf("audio: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			p.router.Register(audio.NewCueHandler(sm, settings))
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return p.run(ctx)
}

// presenter owns one live run: the scheduler, the layers and the frame loop
type presenter struct {
	screen tcell.Screen
	cfg    config.Config
	hold   time.Duration

	sched  *engine.Scheduler
	queue  *event.EventQueue
	router *event.Router
	reg    *status.Registry
	orch   *render.RenderOrchestrator
	seq    *sequence.Sequencer

	events     chan tcell.Event
	finishedAt time.Duration
	quit       func()
}

// resolveSeed keeps a configured seed or picks one, so the run can be replayed from the log
func resolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	seed = uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = 1
	}
	return seed
}

func newPresenter(screen tcell.Screen, cfg config.Config, raw string, debug bool, hold time.Duration) (*presenter, error) {
	p := &presenter{
		screen:     screen,
		cfg:        cfg,
		hold:       hold,
		sched:      engine.NewScheduler(),
		reg:        status.NewRegistry(),
		events:     make(chan tcell.Event, 16),
		finishedAt: -1,
	}
	p.queue = event.NewEventQueue(p.sched)
	p.router = event.NewRouter(p.queue)
	p.router.Register(status.NewCollector(p.reg))
	p.router.Register(newLogHandler())

	scene := render.NewScene(p.sched, cfg, p.reg, debug)
	p.orch = render.NewRenderOrchestrator(screen)
	scene.Register(p.orch)

	seed := resolveSeed(cfg.Seed)
	log.Printf("seed %d, name %q", seed, raw)

	seq, err := sequence.New(cfg, p.sched, scene.Surfaces(),
		sequence.WithEvents(p.queue),
		sequence.WithNameInput(raw),
		sequence.WithRandom(vmath.NewFastRand(seed)),
	)
	if err != nil {
		return nil, err
	}
	p.seq = seq
	return p, nil
}

// run plays the sequence until ctx ends, a quit key is pressed or the hold after the
// last stage elapses
func (p *presenter) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	p.quit = cancel

	p.screen.HideCursor()
	p.screen.Clear()

	if err := p.seq.Start(); err != nil {
		return err
	}

	loop := engine.NewLoop(p.sched, engine.NewMonotonicTimeProvider(), p.cfg.Render.FrameInterval.Std(), p.frame)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer core.Recover()
		p.screen.ChannelEvents(p.events, ctx.Done())
		return nil
	})
	g.Go(func() error {
		defer core.Recover()
		return loop.Run(ctx)
	})

	err := g.Wait()
	log.Printf("stopped at %v after %d frames, stage %s", p.sched.Now(), loop.Frames(), p.seq.Stage())
	return err
}

// frame runs on the loop goroutine: input, event dispatch, drawing, exit check
func (p *presenter) frame(now time.Duration) {
	p.drainInput()
	p.router.DispatchAll()

	w, h := p.orch.Size()
	p.orch.RenderFrame(render.NewRenderContext(now, w, h, p.cfg.Render))

	if !p.seq.Finished() {
		return
	}
	if p.finishedAt < 0 {
		p.finishedAt = now
	}
	if p.hold > 0 && now-p.finishedAt >= p.hold {
		p.quit()
	}
}

func (p *presenter) drainInput() {
	for {
		select {
		case ev, ok := <-p.events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				p.orch.Resize(ev.Size())
			case *tcell.EventKey:
				if isQuitKey(ev) {
					p.quit()
				}
			}
		default:
			return
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return r == 'c' || r == 'C'
		}
		return r == 'q' || r == 'Q'
	}
	return false
}
