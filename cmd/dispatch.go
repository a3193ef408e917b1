//go:build !tinygo

package cmd

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Protocol: one JSON array of integers per line, see Command.Wire.
// Example: "[1,16,0,255,0]\n"

// Dispatcher serializes controller writes through a single goroutine so that
// Emit never blocks the event loop.
type Dispatcher struct {
	out   io.WriteCloser
	queue chan Command
	done  chan struct{}
	once  sync.Once

	mu      sync.Mutex
	closed  bool
	sent    int
	dropped int
	failed  int

	log *logrus.Entry
}

func NewDispatcher(out io.WriteCloser, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	d := &Dispatcher{
		out:   out,
		queue: make(chan Command, queueSize),
		done:  make(chan struct{}),
		log:   log.WithField("component", "dispatcher"),
	}

	// Goroutine to handle transport writes
	go d.run()
	return d
}

// Emit queues cmd for the controller. A full queue drops the command.
func (d *Dispatcher) Emit(cmd Command) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.dropped++
		return
	}
	select {
	case d.queue <- cmd:
	default:
		d.dropped++
		d.log.WithField("command", cmd.String()).Warn("Queue full, dropping command")
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for cmd := range d.queue {
		packet, err := cmd.Encode()
		if err != nil {
			d.mu.Lock()
			d.failed++
			d.mu.Unlock()
			d.log.WithError(err).WithField("command", cmd.String()).Error("Encode failed, dropping command")
			continue
		}
		packet = append(packet, '\n')

		if _, err := d.out.Write(packet); err != nil {
			d.mu.Lock()
			d.failed++
			d.mu.Unlock()
			d.log.WithError(err).WithField("command", cmd.String()).Warn("Transport write failed")
			continue
		}
		d.mu.Lock()
		d.sent++
		d.mu.Unlock()
	}
}

// Close drains queued commands and closes the transport.
func (d *Dispatcher) Close() error {
	var err error
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()

		<-d.done
		err = d.out.Close()

		d.mu.Lock()
		d.log.WithFields(logrus.Fields{
			"sent":    d.sent,
			"dropped": d.dropped,
			"failed":  d.failed,
		}).Info("Dispatcher closed")
		d.mu.Unlock()
	})
	return err
}

// Stats reports sent, dropped and failed command counts.
func (d *Dispatcher) Stats() (sent, dropped, failed int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sent, d.dropped, d.failed
}
