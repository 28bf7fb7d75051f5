package notify

import (
	"io"
	"log/slog"
	"sync"
)

// Action is invoked once per matching observer during Publish. The
// observer passed in is the same reference that was registered with
// Subscribe; performing the category-specific call on it is the
// publisher's responsibility.
type Action func(observer any)

// Center routes published notifications to every observer registered
// for a category with a matching filter, in a many-to-many design that
// decouples publishers from observers within a single process.
//
// A Center holds non-owning references to observers: registering an
// observer does not keep it alive, and callers must Unsubscribe an
// observer before discarding it. Observers must be comparable values,
// typically pointers.
//
// All methods are safe for concurrent use. Publish invokes actions
// outside the center's lock, so an action may call Subscribe or
// Unsubscribe on the same Center without deadlocking.
//
// Example:
//
//	center := notify.New(notify.WithLogger(logger))
//
//	center.Subscribe(observer, "order.shipped", notify.String("eu-west"))
//
//	center.Publish("order.shipped", notify.String("eu-west"), func(observer any) {
//	    observer.(ShipmentObserver).ShipmentShipped(order)
//	})
type Center struct {
	mu     sync.RWMutex
	subs   map[string][]*subscription
	logger *slog.Logger
}

// Option configures a Center.
type Option func(*Center)

// WithLogger configures structured logging for center operations.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Center) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates an empty notification center.
//
// Example:
//
//	center := notify.New(
//	    notify.WithLogger(logger),
//	)
func New(opts ...Option) *Center {
	c := &Center{
		subs:   make(map[string][]*subscription),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

var (
	defaultCenter     *Center
	defaultCenterOnce sync.Once
)

// Default returns the process-wide Center, created lazily on first use.
// Construction happens exactly once; concurrent callers all receive the
// same instance.
func Default() *Center {
	defaultCenterOnce.Do(func() {
		defaultCenter = New()
	})
	return defaultCenter
}

// Subscribe registers observer for the given category. A nil filter
// subscribes to every notification published for the category.
//
// If the observer already holds a subscription for the category whose
// filter is redundant with the new one (either side nil, or the filters
// match), no new entry is added; the existing entry's filter is
// replaced with the one supplied here. Otherwise the subscription is
// appended, and delivery order follows registration order.
//
// Subscribe panics on a nil observer or an empty category: both signal
// a usage bug, not a recoverable condition.
func (c *Center) Subscribe(observer any, category string, filter Filter) {
	if observer == nil {
		panic("notify: Subscribe called with nil observer")
	}
	if category == "" {
		panic("notify: Subscribe called with empty category")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	sub := newSubscription(observer, filter)
	list := c.subs[category]

	if prev := sub.findRedundant(list); prev != nil {
		prev.filter = filter
		c.logger.Debug("subscription filter replaced",
			slog.String("category", category),
			slog.String("subscription_id", prev.id))
		return
	}

	c.subs[category] = append(list, sub)
	c.logger.Debug("observer subscribed",
		slog.String("category", category),
		slog.String("subscription_id", sub.id),
		slog.Bool("wildcard", filter == nil))
}

// Unsubscribe removes every subscription the observer holds for the
// category, regardless of filter. Unsubscribing an observer that was
// never registered, or a category that does not exist, is a no-op.
func (c *Center) Unsubscribe(observer any, category string) {
	if observer == nil {
		panic("notify: Unsubscribe called with nil observer")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	list, ok := c.subs[category]
	if !ok {
		return
	}

	kept := make([]*subscription, 0, len(list))
	for _, s := range list {
		if s.observer != observer {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(list) {
		return
	}

	// The category entry stays, possibly empty, so registration-time
	// list creation remains a one-way transition.
	c.subs[category] = kept
	c.logger.Debug("observer unsubscribed",
		slog.String("category", category),
		slog.Int("removed", len(list)-len(kept)))
}

// delivery captures the observer/filter pair of a subscription at
// publish time, so concurrent filter replacement cannot race with an
// in-flight iteration.
type delivery struct {
	observer any
	filter   Filter
}

// Publish synchronously invokes action for every subscription in the
// category whose filter matches: a subscription is delivered to when
// its filter is nil, the publish-time filter is nil, or the two match.
// Delivery order is registration order.
//
// A nil action drops the notification without error, and a category
// with no subscriptions is a no-op. Publish iterates over a snapshot
// of the subscription list taken before the first delivery: actions
// may freely call Subscribe or Unsubscribe on the same Center, and
// such calls never cause another observer to be skipped or delivered
// twice within the same Publish.
func (c *Center) Publish(category string, filter Filter, action Action) {
	if action == nil {
		return
	}

	c.mu.RLock()
	list := c.subs[category]
	snapshot := make([]delivery, len(list))
	for i, s := range list {
		snapshot[i] = delivery{observer: s.observer, filter: s.filter}
	}
	c.mu.RUnlock()

	if len(snapshot) == 0 {
		return
	}

	matched := 0
	for _, d := range snapshot {
		if d.filter == nil || filter == nil || d.filter.Matches(filter) {
			action(d.observer)
			matched++
		}
	}

	c.logger.Debug("notification published",
		slog.String("category", category),
		slog.Int("matched", matched),
		slog.Int("scanned", len(snapshot)))
}

// Len returns the number of subscriptions currently held for the
// category.
func (c *Center) Len(category string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.subs[category])
}

// Categories returns the names of all categories that have ever been
// subscribed to, including those whose subscription list is currently
// empty.
func (c *Center) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.subs) == 0 {
		return nil
	}

	categories := make([]string, 0, len(c.subs))
	for category := range c.subs {
		categories = append(categories, category)
	}
	return categories
}
