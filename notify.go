package notify

// Subscribe registers observer for the category on the default Center.
// See Center.Subscribe.
func Subscribe(observer any, category string, filter Filter) {
	Default().Subscribe(observer, category, filter)
}

// Unsubscribe removes the observer's subscriptions for the category
// from the default Center. See Center.Unsubscribe.
func Unsubscribe(observer any, category string) {
	Default().Unsubscribe(observer, category)
}

// Publish delivers a notification through the default Center.
// See Center.Publish.
func Publish(category string, filter Filter, action Action) {
	Default().Publish(category, filter, action)
}
