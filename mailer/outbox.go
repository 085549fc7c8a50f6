package mailer

import "log"

// Outbox decouples notification delivery from the request that triggered
// it. Enqueue never blocks and never fails the caller; delivery errors
// are logged and dropped.
type Outbox struct {
	sender Sender
	queue  chan message
	done   chan struct{}
}

type message struct {
	templateID string
	params     map[string]string
}

const outboxCapacity = 64

func NewOutbox(sender Sender) *Outbox {
	return &Outbox{
		sender: sender,
		queue:  make(chan message, outboxCapacity),
		done:   make(chan struct{}),
	}
}

// Start launches the background delivery worker
func (o *Outbox) Start() {
	go func() {
		defer close(o.done)
		for msg := range o.queue {
			if err := o.sender.Send(msg.templateID, msg.params); err != nil {
				log.Printf("outbox: send %s failed: %v", msg.templateID, err)
			}
		}
	}()
}

// Enqueue schedules a best-effort send. A full queue drops the message
// with a log line rather than stalling the request path.
func (o *Outbox) Enqueue(templateID string, params map[string]string) {
	select {
	case o.queue <- message{templateID: templateID, params: params}:
	default:
		log.Printf("outbox: queue full, dropping %s", templateID)
	}
}

// Close stops accepting messages and waits for the worker to drain
func (o *Outbox) Close() {
	close(o.queue)
	<-o.done
}
