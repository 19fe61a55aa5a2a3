package websocket

import (
	"github.com/yigit/forensicsite/internal/pkg/pagedata"
)

// Subscriber is a page whose change events can be observed.
type Subscriber interface {
	Subscribe(fn func(pagedata.Event)) func()
}

// Relay forwards page change events to the hub. The returned function detaches it.
func Relay(hub *Hub, pages ...Subscriber) func() {
	cancels := make([]func(), 0, len(pages))
	for _, page := range pages {
		cancels = append(cancels, page.Subscribe(func(ev pagedata.Event) {
			hub.BroadcastToRealm(&Message{
				Type:      TypeContent,
				Realm:     ev.Realm,
				Section:   ev.Section,
				Kind:      string(ev.Kind),
				Persisted: ev.Persisted,
				Timestamp: ev.At,
			})
		}))
	}
	return func() {
		for _, cancel := range cancels {
			cancel()
		}
	}
}
