package dispatch

import (
	"errors"
	"fmt"
	"sync"

	"custom-hats/core/metrics"

	"go.uber.org/zap"
)

// ErrDuplicateExtension is returned when an extension id is registered twice.
var ErrDuplicateExtension = errors.New("extension already registered")

type extension struct {
	id       string
	handlers []Handler
}

// Dispatcher is the process-wide registry of loaded extensions and their handlers.
type Dispatcher struct {
	mu         sync.RWMutex
	extensions []extension
	logger     *zap.Logger
}

// New creates an empty dispatcher.
func New(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

// Register loads an extension with its handlers. An extension may register no handlers at all,
// which still makes it visible to Loaded.
func (d *Dispatcher) Register(id string, handlers ...Handler) error {
	if id == "" {
		return errors.New("extension id is required")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, ext := range d.extensions {
		if ext.id == id {
			return fmt.Errorf("%s: %w", id, ErrDuplicateExtension)
		}
	}
	d.extensions = append(d.extensions, extension{id: id, handlers: append([]Handler(nil), handlers...)})
	d.logger.Debug("Extension registered", zap.String("extension", id), zap.Int("handlers", len(handlers)))
	return nil
}

// Unregister removes an extension. It reports whether the extension was loaded.
func (d *Dispatcher) Unregister(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, ext := range d.extensions {
		if ext.id == id {
			d.extensions = append(d.extensions[:i:i], d.extensions[i+1:]...)
			return true
		}
	}
	return false
}

// Loaded reports whether an extension with the given id is registered.
func (d *Dispatcher) Loaded(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, ext := range d.extensions {
		if ext.id == id {
			return true
		}
	}
	return false
}

// Extensions lists the registered extension ids in registration order.
func (d *Dispatcher) Extensions() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, len(d.extensions))
	for i, ext := range d.extensions {
		ids[i] = ext.id
	}
	return ids
}

// Broadcast invokes the first matching handler of every extension and returns how many
// handlers ran. Handler failures are joined into the returned error.
func (d *Dispatcher) Broadcast(event string, args ...any) (int, error) {
	d.mu.RLock()
	snapshot := make([]extension, len(d.extensions))
	copy(snapshot, d.extensions)
	d.mu.RUnlock()

	invoked := 0
	var errs []error
	for _, ext := range snapshot {
		h, ok := match(ext.handlers, event, args)
		if !ok {
			continue
		}

		d.logger.Debug("Calling handler",
			zap.String("event", event),
			zap.String("extension", ext.id),
			zap.Int("args", len(args)))

		invoked++
		metrics.Dispatches.WithLabelValues(event, ext.id).Inc()
		if err := invoke(h, args); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ext.id, err))
		}
	}

	return invoked, errors.Join(errs...)
}

func match(handlers []Handler, event string, args []any) (Handler, bool) {
	for _, h := range handlers {
		if h.Matches(event, args) {
			return h, true
		}
	}
	return Handler{}, false
}

func invoke(h Handler, args []any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler %s panicked: %v", h.Name, r)
		}
	}()
	return h.Fn(args...)
}
