package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"ticket_server/config"
	"ticket_server/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

func getRedis() *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr: config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
		})
	})
	return redisClient
}

// PublishTripEvent fans a redemption outcome out to everyone watching the
// workday. Failures are logged; the redemption itself already committed.
func PublishTripEvent(workdayID string, result model.TripResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := getRedis().Publish(context.Background(), "workday:"+workdayID, payload).Err(); err != nil {
		log.Printf("failed to publish trip event for workday %s: %v", workdayID, err)
	}
}

type tripEventWriter interface {
	WriteMessage(messageType int, data []byte) error
}

// streamTripEvents forwards each published event to the watcher exactly once
// and stops on the first write failure.
func streamTripEvents(events <-chan *redis.Message, conn tripEventWriter) {
	for msg := range events {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}

// WorkdayLive streams redemption outcomes for one workday over websocket.
// Each connection holds its own subscription and only ever receives its own
// copy of an event.
func WorkdayLive(c *websocket.Conn) {
	workdayID := c.Params("id")
	defer c.Close()

	pubsub := getRedis().Subscribe(context.Background(), "workday:"+workdayID)
	defer pubsub.Close()

	streamTripEvents(pubsub.Channel(), c)
}
