package chatController

import (
	"log"
	"time"

	"skillup/models"
	"skillup/realtime"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"gorm.io/gorm"
)

// HistorySize is how many recent posts are replayed on connect
const HistorySize = 50

type Controller struct {
	db  *gorm.DB
	hub *realtime.Hub
}

func New(db *gorm.DB, hub *realtime.Hub) *Controller {
	return &Controller{db: db, hub: hub}
}

// Upgrade rejects plain HTTP requests on the websocket route
func (ct *Controller) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Chat handles one websocket client: replays recent history, then
// relays every inbound message to all connected clients while a
// background write persists it as a post.
func (ct *Controller) Chat() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		if err := ct.replayHistory(conn); err != nil {
			return
		}

		sub := ct.hub.Subscribe()
		defer ct.hub.Unsubscribe(sub)

		// Writer owns the connection's write side from here on
		go func() {
			for msg := range sub.Recv() {
				if err := conn.WriteJSON(msg); err != nil {
					return
				}
			}
		}()

		for {
			var msg realtime.Message
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			msg.SentAt = time.Now()

			// Fan-out first; persistence is best-effort and must not
			// delay delivery
			ct.hub.Publish(msg)
			go ct.persist(msg)
		}
	})
}

// replayHistory sends the most recent posts in chronological order
func (ct *Controller) replayHistory(conn *websocket.Conn) error {
	var recent []models.Post
	if err := ct.db.Order("created_at DESC").Limit(HistorySize).Find(&recent).Error; err != nil {
		log.Printf("Error fetching chat history: %v", err)
		return err
	}

	for i := len(recent) - 1; i >= 0; i-- {
		msg := realtime.Message{
			Author:  recent[i].Author,
			Content: recent[i].Content,
			SentAt:  recent[i].CreatedAt,
		}
		if err := conn.WriteJSON(msg); err != nil {
			return err
		}
	}
	return nil
}

func (ct *Controller) persist(msg realtime.Message) {
	post := models.Post{
		Author:  msg.Author,
		Content: msg.Content,
	}
	if err := ct.db.Create(&post).Error; err != nil {
		log.Printf("Error persisting chat message: %v", err)
	}
}
