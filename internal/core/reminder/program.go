package reminder

import (
	"context"
	"errors"
	"log"
	"os"
	"sync/atomic"

	"timerapp/internal/core/model"
)

// ErrAlreadyRunning is returned when Run is called twice on one Program.
var ErrAlreadyRunning = errors.New("program already running")

// Renderer draws the widgets for a state.
type Renderer interface {
	Render(state model.State)
}

// Renderers draws the same state with several renderers, in order.
type Renderers []Renderer

// Render calls every renderer with state.
func (renderers Renderers) Render(state model.State) {
	for _, renderer := range renderers {
		if renderer != nil {
			renderer.Render(state)
		}
	}
}

// Notifier displays a desktop notification.
type Notifier interface {
	Show(notification Notification) error
}

// Options contains runtime options for Program.
type Options struct {
	QueueSize int
	// FailFast terminates the process when a notification cannot be shown.
	FailFast bool
	Logger   *log.Logger
	Exit     func(code int)
}

// Program is the run loop. It owns the state and applies messages one at a
// time on a single goroutine.
type Program struct {
	state    model.State
	queue    chan Message
	done     chan struct{}
	notifier Notifier
	renderer Renderer
	options  Options
	started  atomic.Bool
}

// NewProgram creates a run loop starting from initial.
func NewProgram(initial model.State, notifier Notifier, renderer Renderer, options Options) *Program {
	if options.QueueSize <= 0 {
		options.QueueSize = 256
	}
	if options.Logger == nil {
		options.Logger = log.Default()
	}
	if options.Exit == nil {
		options.Exit = os.Exit
	}

	return &Program{
		state:    initial,
		queue:    make(chan Message, options.QueueSize),
		done:     make(chan struct{}),
		notifier: notifier,
		renderer: renderer,
		options:  options,
	}
}

// Dispatch enqueues a widget-originated message. It returns without effect
// once Run has finished.
func (program *Program) Dispatch(msg Message) {
	select {
	case program.queue <- msg:
	case <-program.done:
	}
}

// Run renders the initial state, starts the sources and processes messages
// until ctx is done.
func (program *Program) Run(ctx context.Context, sources ...Source) error {
	if !program.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(program.done)

	producers := make(chan struct{})
	go func() {
		defer close(producers)
		Batch(sources).Run(ctx, program.queue)
	}()
	defer func() { <-producers }()

	program.render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-program.queue:
			program.step(msg)
		}
	}
}

// State returns the current state. Only call it after Run has returned.
func (program *Program) State() model.State {
	return program.state
}

func (program *Program) step(msg Message) {
	next, notification := Update(program.state, msg)
	program.state = next
	if notification != nil {
		program.notify(*notification)
	}
	program.render()
}

func (program *Program) notify(notification Notification) {
	if program.notifier == nil {
		return
	}
	err := program.notifier.Show(notification)
	if err == nil {
		return
	}
	if program.options.FailFast {
		program.options.Logger.Printf("unable to show notification: %v", err)
		program.options.Exit(1)
		return
	}
	program.options.Logger.Printf("show notification: %v", err)
}

func (program *Program) render() {
	if program.renderer != nil {
		program.renderer.Render(program.state)
	}
}
