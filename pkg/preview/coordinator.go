// Package preview loads whatever the selection cursor points at.
//
// Directory previews are listed synchronously. File previews read a bounded
// prefix on a goroutine and re-enter the UI loop through a queue function;
// a result is committed only if no newer selection happened meanwhile.
package preview

import (
	"context"

	"github.com/filetug/kupo/pkg/files"
	"github.com/filetug/kupo/pkg/fsutils"
	"github.com/filetug/kupo/pkg/klog"
	"github.com/sirupsen/logrus"
)

const DefaultMaxBytes = 1024

type Lister interface {
	List(ctx context.Context, dirPath string) (entries []files.Entry, readable bool)
}

type FileReader interface {
	ReadFile(ctx context.Context, path string, max int) ([]byte, error)
}

// QueueUpdate runs f on the UI event loop, like tview's QueueUpdateDraw.
type QueueUpdate func(f func())

type ReadyListener func(State)

type Coordinator struct {
	lister      Lister
	reader      FileReader
	queueUpdate QueueUpdate
	classifier  Classifier
	maxBytes    int
	log         logrus.FieldLogger

	generation uint64
	cancel     context.CancelFunc
	current    State
	listeners  []ReadyListener
}

type Option func(c *Coordinator)

func WithClassifier(classifier Classifier) Option {
	return func(c *Coordinator) {
		c.classifier = classifier
	}
}

func WithMaxBytes(maxBytes int) Option {
	return func(c *Coordinator) {
		c.maxBytes = maxBytes
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Coordinator) {
		c.log = log
	}
}

func NewCoordinator(lister Lister, reader FileReader, queueUpdate QueueUpdate, options ...Option) *Coordinator {
	c := &Coordinator{
		lister:      lister,
		reader:      reader,
		queueUpdate: queueUpdate,
		classifier:  ChromaClassifier{},
		maxBytes:    DefaultMaxBytes,
	}
	for _, option := range options {
		option(c)
	}
	if c.maxBytes <= 0 {
		c.maxBytes = DefaultMaxBytes
	}
	c.log = klog.OrDiscard(c.log)
	return c
}

// OnReady subscribes to committed previews.
func (c *Coordinator) OnReady(listener ReadyListener) {
	c.listeners = append(c.listeners, listener)
}

func (c *Coordinator) Current() State {
	return c.current
}

func (c *Coordinator) Generation() uint64 {
	return c.generation
}

// OnSelectionChanged starts previewing target, superseding any load in flight.
// It must be called from the UI loop.
func (c *Coordinator) OnSelectionChanged(target *files.Entry) {
	c.generation++
	generation := c.generation
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if target == nil {
		c.commit(State{Mode: ModeEmpty, Generation: generation})
		return
	}

	fullName := target.FullName()
	if target.IsDir() {
		entries, readable := c.lister.List(context.Background(), fullName)
		c.commit(State{
			Target:     fullName,
			Mode:       ModeDirectory,
			Generation: generation,
			Entries:    entries,
			Unreadable: !readable,
		})
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	name := target.Name
	go func() {
		result := c.loadText(ctx, generation, fullName, name)
		c.queueUpdate(func() {
			c.complete(result)
		})
	}()
}

// loadText runs off the UI loop and touches no coordinator state
// besides immutable configuration.
func (c *Coordinator) loadText(ctx context.Context, generation uint64, fullName, name string) State {
	result := State{
		Target:     fullName,
		Mode:       ModeEmpty,
		Generation: generation,
	}
	data, err := c.reader.ReadFile(ctx, fullName, c.maxBytes+1)
	if err != nil {
		result.Err = err
		return result
	}
	truncated := len(data) > c.maxBytes
	if truncated {
		data = data[:c.maxBytes]
	}
	text, err := fsutils.DecodeText(data, truncated)
	if err != nil {
		result.Err = err
		return result
	}
	result.Mode = ModeText
	result.Text = text
	result.Truncated = truncated
	if c.classifier != nil {
		result.Language, _ = c.classifier.Guess(name, text)
	}
	return result
}

func (c *Coordinator) complete(result State) {
	if result.Generation != c.generation {
		c.log.WithFields(logrus.Fields{
			"target":     result.Target,
			"generation": result.Generation,
			"latest":     c.generation,
		}).Debug("discarding superseded preview")
		return
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if result.Err != nil {
		c.log.WithFields(logrus.Fields{"target": result.Target, "error": result.Err}).Debug("preview failed")
	}
	c.commit(result)
}

func (c *Coordinator) commit(state State) {
	c.current = state
	for _, listener := range c.listeners {
		listener(state)
	}
}
