package tracker

import (
	"context"
	"log"
	"time"

	"github.com/stigoleg/step-pet/internal/steps"
)

// Publisher periodically forwards the current step count to an emitter.
// Delivery is fire-and-forget: a missed tick is covered by the next one.
type Publisher struct {
	counter  *steps.Counter
	interval time.Duration
	emit     func(uint32)
	sleep    Sleeper

	warned bool
}

// NewPublisher builds a publisher; emit must not block for long.
func NewPublisher(counter *steps.Counter, interval time.Duration, emit func(uint32)) *Publisher {
	if interval <= 0 {
		interval = DefaultPublishInterval
	}
	if emit == nil {
		emit = func(uint32) {}
	}
	return &Publisher{
		counter:  counter,
		interval: interval,
		emit:     emit,
		sleep:    sleepContext,
	}
}

// Run publishes immediately and then every interval until ctx is done.
func (p *Publisher) Run(ctx context.Context) {
	for {
		p.publish()
		if err := p.sleep(ctx, p.interval); err != nil {
			return
		}
	}
}

func (p *Publisher) publish() {
	n, err := p.counter.CurrentSteps()
	if err != nil {
		if !p.warned {
			log.Printf("publisher: skipping updates: %v", err)
			p.warned = true
		}
		return
	}
	p.emit(n)
}
