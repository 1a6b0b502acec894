package pusher

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pusher buffers messages and hands them to PushLogic in batches, every PushInterval.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      func(...T) error
	PushInterval   time.Duration
	ErrorHandler   func(error)
	lock           sync.Mutex
	pushLock       sync.Mutex
	done           chan struct{}
	stopped        chan struct{}
	startOnce      sync.Once
	stopOnce       sync.Once
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { logx.Error(err) },
		PushInterval: time.Second,
		done:         make(chan struct{}),
		stopped:      make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

// PushAll sends the buffered messages. On failure they stay buffered for the next push.
func (p *Pusher[T]) PushAll() error {
	p.pushLock.Lock()
	defer p.pushLock.Unlock()

	p.lock.Lock()
	messages := p.MessagesBuffer
	p.MessagesBuffer = nil
	p.lock.Unlock()

	if len(messages) == 0 {
		return nil
	}

	if err := p.PushLogic(messages...); err != nil {
		p.lock.Lock()
		p.MessagesBuffer = append(messages, p.MessagesBuffer...)
		p.lock.Unlock()
		return err
	}

	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
}

// Len returns the number of buffered messages.
func (p *Pusher[T]) Len() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.MessagesBuffer)
}

func (p *Pusher[T]) Start() {
	p.startOnce.Do(func() {
		go func() {
			defer close(p.stopped)

			ticker := time.NewTicker(p.PushInterval)
			defer ticker.Stop()

			for {
				select {
				case <-p.done:
					return
				case <-ticker.C:
					if err := p.PushAll(); err != nil {
						p.ErrorHandler(err)
					}
				}
			}
		}()
	})
}

// Stop ends the push loop and flushes whatever is still buffered.
func (p *Pusher[T]) Stop() error {
	p.stopOnce.Do(func() {
		close(p.done)
	})

	started := true
	p.startOnce.Do(func() {
		started = false
		close(p.stopped)
	})
	if started {
		<-p.stopped
	}

	return p.PushAll()
}
