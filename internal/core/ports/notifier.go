package ports

import "github.com/glamslot/booking/internal/core/domain"

// Notifier is the fire-and-forget toast channel. Implementations must not block.
type Notifier interface {
	Notify(n domain.Notification)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(n domain.Notification)

func (f NotifierFunc) Notify(n domain.Notification) { f(n) }
