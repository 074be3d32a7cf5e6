package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"laundry_os/config"
	"laundry_os/database"
	"laundry_os/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

const boardChannel = "board:orders"

// boardConn is the slice of *websocket.Conn the board needs; the fan-out
// tests swap in a fake.
type boardConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

var (
	redisClient *redis.Client
	redisOnce   sync.Once

	boardClients = make(map[boardConn]bool)
	boardMu      sync.Mutex
	fanoutOnce   sync.Once
)

func Redis() *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		})
	})
	return redisClient
}

// BroadcastBoard publishes an order's current state to the board channel so
// every connected processing board refreshes the card.
func BroadcastBoard(orderId uint) {
	var order model.Order
	if err := database.DB.Preload("Items").Preload("Customer").
		First(&order, orderId).Error; err != nil {
		log.Printf("board broadcast skipped, order %d: %v", orderId, err)
		return
	}

	payload, err := json.Marshal(order)
	if err != nil {
		log.Printf("board broadcast marshal failed: %v", err)
		return
	}

	if err := Redis().Publish(context.Background(), boardChannel, payload).Err(); err != nil {
		log.Printf("board broadcast publish failed: %v", err)
	}
}

// broadcastPayload writes one copy of the payload to every registered board
// connection. A connection whose write fails is closed and evicted.
func broadcastPayload(payload []byte) {
	boardMu.Lock()
	defer boardMu.Unlock()

	for conn := range boardClients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(boardClients, conn)
		}
	}
}

// startBoardFanout starts the single subscriber goroutine feeding all board
// connections. One subscription serves every client, however many connect.
func startBoardFanout() {
	fanoutOnce.Do(func() {
		pubsub := Redis().Subscribe(context.Background(), boardChannel)
		go func() {
			for msg := range pubsub.Channel() {
				broadcastPayload([]byte(msg.Payload))
			}
		}()
	})
}

// BoardWebsocket streams live order updates to a processing-board screen.
// Each connection gets the current in-progress orders once, then every
// published change via the shared fan-out.
func BoardWebsocket(c *websocket.Conn) {
	defer func() {
		boardMu.Lock()
		delete(boardClients, c)
		boardMu.Unlock()
		c.Close()
	}()

	startBoardFanout()

	var active []model.Order
	database.DB.Preload("Items").Preload("Customer").
		Where("status <> ?", model.StatusPickedUp).
		Order("created_at asc").
		Find(&active)

	// Snapshot and registration happen under the same lock so a broadcast
	// cannot interleave with the initial write.
	snapshot, err := json.Marshal(active)
	if err != nil {
		log.Printf("board snapshot marshal failed: %v", err)
		return
	}
	boardMu.Lock()
	if err := c.WriteMessage(websocket.TextMessage, snapshot); err != nil {
		boardMu.Unlock()
		return
	}
	boardClients[c] = true
	boardMu.Unlock()

	// Block until the client goes away; the fan-out goroutine owns writes.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
