package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"forkful/rdx"
)

// Index describes a content change for downstream consumers (search
// indexing, the notify hub).
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id,omitempty"`
	ItemType   string `json:"item_type,omitempty"`
}

const channel = "forkful:events"

// Emit publishes an event to the redis events channel. Emission is
// best-effort: a failed publish is logged, never propagated to the caller.
func Emit(eventName string, content Index) {
	if rdx.Conn == nil {
		return
	}

	payload, err := json.Marshal(struct {
		Event string `json:"event"`
		Index
	}{eventName, content})
	if err != nil {
		log.Printf("[mq] marshal %s: %v", eventName, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdx.Conn.Publish(ctx, channel, payload).Err(); err != nil {
		log.Printf("[mq] publish %s: %v", eventName, err)
	}
}
