package dispatch

import (
	"log"

	"github.com/rmehra-dev/medstock-backend/pkg/mailer"
)

// Dispatcher delivers order mail off the request path through a bounded
// in-process queue. Delivery is at-most-once with no confirmation: a full
// queue drops the message and a failed send is only logged.
type Dispatcher struct {
	sender mailer.Sender
	queue  chan mailer.Message
	done   chan struct{}
}

// NewDispatcher starts the delivery worker.
func NewDispatcher(sender mailer.Sender, queueSize int) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan mailer.Message, queueSize),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	for msg := range d.queue {
		if err := d.sender.Send(msg); err != nil {
			log.Printf("order mail delivery failed: %v", err)
		}
	}
	close(d.done)
}

// Enqueue schedules a message for delivery. Returns false when the queue is
// full, in which case the message is dropped.
func (d *Dispatcher) Enqueue(msg mailer.Message) bool {
	select {
	case d.queue <- msg:
		return true
	default:
		return false
	}
}

// Close stops accepting messages and waits for the worker to drain the queue.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
