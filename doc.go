// Package notify provides an in-process publish/subscribe notification
// center: observers register interest in a named category together with
// an optional filter, and publishers broadcast an action to every
// registered observer whose filter matches. It implements a many-to-many
// decoupling between producers and consumers within a single process -
// no network, no persistence, no cross-process delivery.
//
// # Core Components
//
// Center maps category keys to ordered subscription lists and exposes
// Subscribe, Unsubscribe, and Publish. A process-wide Center is
// available through Default and the package-level forwarding functions.
//
// Filter is implemented by any value that can decide whether it matches
// another filter value. Built-in filters cover strings (String), ordered
// sequences (Strings), string-keyed sets (Values), and opaque identities
// (Identifier). A filter of one concrete type never matches a value of
// another, and a nil filter acts as a wildcard on both the subscribe and
// the publish side.
//
// CategoryOf, ObserveAs, ForgetAs, and PublishTo form a typed facade:
// category keys are derived from capability interfaces via reflection,
// and observer conformance is proven by the type system instead of being
// checked at runtime.
//
// Mailbox is an optional buffered queue that turns synchronous delivery
// into asynchronous handling without letting a slow consumer stall
// Publish.
//
// # Basic Usage
//
// Declare a capability interface, register observers, and publish:
//
//	import (
//		"github.com/dmitrymomot/notify"
//	)
//
//	type ShipmentObserver interface {
//		ShipmentShipped(orderID string)
//	}
//
//	func main() {
//		center := notify.New()
//
//		// warehouse only cares about its own region
//		notify.ObserveAs[ShipmentObserver](center, warehouse, notify.String("eu-west"))
//
//		// analytics wants everything
//		notify.ObserveAs[ShipmentObserver](center, analytics, nil)
//
//		notify.PublishTo[ShipmentObserver](center, notify.String("eu-west"), func(o ShipmentObserver) {
//			o.ShipmentShipped("order-42")
//		})
//	}
//
// The untyped API does the same with caller-supplied category strings:
//
//	center.Subscribe(warehouse, "order.shipped", notify.String("eu-west"))
//	center.Publish("order.shipped", notify.String("eu-west"), func(observer any) {
//		observer.(ShipmentObserver).ShipmentShipped("order-42")
//	})
//
// # Redundant Registration
//
// Re-subscribing the same observer to the same category with a filter
// that is redundant with the existing one (either side nil, or the
// filters match) does not add a second entry; it replaces the stored
// filter with the newly supplied one. At most one such subscription
// exists per observer and category.
//
// # Observer Lifetime
//
// The center holds non-owning references and must never be the reason
// an observer stays alive: callers are required to Unsubscribe an
// observer before discarding it. There is no automatic expiry of stale
// registrations; an entry left behind keeps the observer reachable
// until it is removed.
//
// # Thread Safety
//
// All Center methods are safe for concurrent use. Publish takes a
// snapshot of the subscription list before invoking any action and
// runs the actions outside the center's lock: actions may re-enter
// Subscribe and Unsubscribe on the same Center, and concurrent
// mutation never causes an observer to be skipped or delivered twice
// within one Publish call.
package notify
