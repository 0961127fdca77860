// util/event_bus.go

package util

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	logger "github.com/stylino/storefront/logging"
)

const (
	EventUserBlocked     = "user.blocked"
	EventUserUnblocked   = "user.unblocked"
	EventUserRoleChanged = "user.role_changed"
	EventCategoryCreated = "category.created"
	EventProductCreated  = "product.created"
	EventProductUpdated  = "product.updated"
	EventSettingsUpdated = "settings.updated"
)

// Event represents an event in the system
type Event struct {
	Type    string
	Payload any
}

// EventHandler is a function that handles an event
type EventHandler func(context.Context, Event) error

// EventBus fans events out to subscribers, each handler on its own goroutine.
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
	errorChan   chan error
	inflight    sync.WaitGroup
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]EventHandler),
		errorChan:   make(chan error, 100),
	}
}

func (eb *EventBus) Subscribe(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[eventType] = append(eb.subscribers[eventType], handler)
}

// Publish returns immediately. Handler errors go to the error channel.
func (eb *EventBus) Publish(ctx context.Context, eventType string, payload any) {
	eb.mu.RLock()
	handlers := eb.subscribers[eventType]
	eb.mu.RUnlock()

	event := Event{Type: eventType, Payload: payload}
	// Handlers outlive the request that published the event.
	ctx = context.WithoutCancel(ctx)

	for _, handler := range handlers {
		eb.inflight.Add(1)
		go func(h EventHandler) {
			defer eb.inflight.Done()
			if err := h(ctx, event); err != nil {
				select {
				case eb.errorChan <- fmt.Errorf("event handler error (%s): %w", eventType, err):
				default:
					logger.Error("Error channel full, logging event handler error",
						zap.Error(err),
						zap.String("eventType", eventType))
				}
			}
		}(handler)
	}
}

// Start logs handler errors until ctx is done.
func (eb *EventBus) Start(ctx context.Context) {
	go eb.processErrors(ctx)
}

// Wait blocks until every published event has been handled.
func (eb *EventBus) Wait() {
	eb.inflight.Wait()
}

// Errors exposes handler failures to callers that do not call Start.
func (eb *EventBus) Errors() <-chan error {
	return eb.errorChan
}

func (eb *EventBus) processErrors(ctx context.Context) {
	for {
		select {
		case err := <-eb.errorChan:
			logger.Error("Event handler error", zap.Error(err))
		case <-ctx.Done():
			return
		}
	}
}
