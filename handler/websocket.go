package handler

import (
	"context"
	"log"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/database"
	"pizzeria_kassa/helper"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

var (
	kitchenClients = make(map[*websocket.Conn]bool)
	mu             sync.Mutex
)

func broadcastKitchen(payload []byte) {
	mu.Lock()
	defer mu.Unlock()
	for conn := range kitchenClients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(kitchenClients, conn)
		}
	}
}

// StartKitchenHub relays order events to every connected kitchen board until
// ctx is cancelled. Without redis, events are delivered in-process.
func StartKitchenHub(ctx context.Context) {
	if helper.RedisClient == nil {
		helper.LocalOrderEvents = broadcastKitchen
		return
	}
	pubsub := helper.RedisClient.Subscribe(ctx, constants.ORDER_EVENTS_CHANNEL)
	go func() {
		defer pubsub.Close()
		channel := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-channel:
				if !ok {
					return
				}
				broadcastKitchen([]byte(msg.Payload))
			}
		}
	}()
	log.Printf("Kitchen hub subscribed to %s", constants.ORDER_EVENTS_CHANNEL)
}

// KitchenWebsocket sends the open orders once, then streams order events.
func KitchenWebsocket(c *websocket.Conn) {
	defer func() {
		mu.Lock()
		delete(kitchenClients, c)
		mu.Unlock()
		c.Close()
	}()

	open, err := helper.GetKitchenOrders(database.DB)
	if err != nil {
		log.Printf("kitchen snapshot: %v", err)
		mu.Lock()
		c.WriteJSON(map[string]interface{}{"type": "error", "message": constants.ERROR_INTERNAL_ERROR})
		mu.Unlock()
		return
	}

	mu.Lock()
	err = c.WriteJSON(map[string]interface{}{"type": "snapshot", "orders": open})
	if err == nil {
		kitchenClients[c] = true
	}
	mu.Unlock()
	if err != nil {
		return
	}

	// read until the board disconnects
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
