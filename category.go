package notify

import "reflect"

// CategoryOf derives the category key for the capability type P, which
// is normally an interface describing the calls observers of the
// category must support. The key is the fully qualified type name, so
// equally named interfaces in different packages yield distinct
// categories.
func CategoryOf[P any]() string {
	t := reflect.TypeOf((*P)(nil)).Elem()

	if name := t.Name(); name != "" {
		if pkg := t.PkgPath(); pkg != "" {
			return pkg + "." + name
		}
		return name
	}

	return t.String()
}

// ObserveAs registers observer under the category derived from P.
// Conformance of the observer to the category's capability set is
// proven by the type system: a value that does not implement P does
// not compile.
//
// Example:
//
//	type ShipmentObserver interface {
//	    ShipmentShipped(order string)
//	}
//
//	notify.ObserveAs[ShipmentObserver](center, warehouse, nil)
func ObserveAs[P any](c *Center, observer P, filter Filter) {
	c.Subscribe(observer, CategoryOf[P](), filter)
}

// ForgetAs removes every subscription observer holds under the
// category derived from P.
func ForgetAs[P any](c *Center, observer P) {
	c.Unsubscribe(observer, CategoryOf[P]())
}

// PublishTo delivers action to every observer registered under the
// category derived from P whose filter matches. The action receives
// the observer already asserted to P, so the capability call needs no
// further casting. A nil action is a no-op.
//
// Example:
//
//	notify.PublishTo[ShipmentObserver](center, notify.String("eu-west"), func(o ShipmentObserver) {
//	    o.ShipmentShipped(order)
//	})
func PublishTo[P any](c *Center, filter Filter, action func(P)) {
	if action == nil {
		return
	}

	c.Publish(CategoryOf[P](), filter, func(observer any) {
		if o, ok := observer.(P); ok {
			action(o)
		}
	})
}
