package mq

import (
	"context"
	"encoding/json"
	"log"

	"keliva/models"
	"keliva/rdx"
)

const channel = "entity-events"

// Emit publishes an entity-change event to Redis. Failures are
// logged, never propagated: a dead broker must not block a request.
func Emit(eventName string, content models.Index) {
	content.Method = eventName

	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[mq] failed to marshal %s event: %v", eventName, err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("[mq] failed to publish %s event: %v", eventName, err)
	}
}

// StartWorker consumes entity-change events and drops cached views
// that the change invalidates (itinerary previews, blog listings).
func StartWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[mq] listening for entity events")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[mq] failed to parse event: %v", err)
			continue
		}

		switch event.EntityType {
		case "trip":
			for _, mode := range []string{"single", "multi"} {
				if err := rdx.RdxDel("itinerary:" + event.EntityId + ":" + mode); err != nil {
					log.Printf("[mq] cache invalidation failed for trip %s: %v", event.EntityId, err)
				}
			}
		case "blog":
			if err := rdx.RdxDel("blogs:list"); err != nil {
				log.Printf("[mq] cache invalidation failed for blog list: %v", err)
			}
		}
	}
}
