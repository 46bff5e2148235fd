package helper

import (
	"context"
	"encoding/json"
	"log"
	"pizzeria_kassa/constants"
	"pizzeria_kassa/model"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// LocalOrderEvents receives events directly when redis is not configured.
var LocalOrderEvents func(payload []byte)

// InitRedis connects the order event publisher. An empty addr disables publishing.
func InitRedis(addr string) {
	if addr == "" {
		log.Println("REDIS_ADDR not set, kitchen board events disabled")
		return
	}
	RedisClient = redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Printf("redis at %s not reachable yet: %v", addr, err)
	}
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}

func NewOrderEvent(eventType string, order *model.Order) model.OrderEvent {
	ev := model.OrderEvent{
		Type:          eventType,
		OrderID:       order.ID,
		ReceiptNumber: order.ReceiptNumber,
		Status:        order.Status,
		IsOnline:      order.IsOnline,
		At:            time.Now().Format(time.RFC3339),
	}
	if order.DeliveryTime != nil {
		ev.DeliveryTime = *order.DeliveryTime
	}
	return ev
}

// PublishOrderEvent sends an order event to the kitchen board channel. Failures are logged only.
func PublishOrderEvent(eventType string, order *model.Order) {
	if order == nil {
		return
	}
	payload, err := json.Marshal(NewOrderEvent(eventType, order))
	if err != nil {
		log.Printf("encode order event: %v", err)
		return
	}
	if RedisClient == nil {
		if LocalOrderEvents != nil {
			LocalOrderEvents(payload)
		}
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := RedisClient.Publish(ctx, constants.ORDER_EVENTS_CHANNEL, payload).Err(); err != nil {
		log.Printf("publish order event %d: %v", order.ID, err)
	}
}
