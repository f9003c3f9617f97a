package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/utils"
)

// Event types pushed to connected dashboard clients.
const (
	EventOrderCreated       = "order_created"
	EventOrderUpdated       = "order_updated"
	EventPaymentCreated     = "payment_created"
	EventReservationCreated = "reservation_created"
	EventFeedbackCreated    = "feedback_created"
	EventDashboardUpdate    = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds the staff dashboard websocket connections and broadcasts
// domain events to all of them.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection with its session role.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient removes and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

func BroadcastOrderCreated(order models.Order) {
	broadcast(Message{Event: EventOrderCreated, Data: order})
}

func BroadcastOrderUpdated(order models.Order) {
	broadcast(Message{Event: EventOrderUpdated, Data: order})
}

func BroadcastPaymentCreated(payment models.Payment) {
	broadcast(Message{Event: EventPaymentCreated, Data: payment})
}

func BroadcastReservationCreated(reservation models.Reservation) {
	broadcast(Message{Event: EventReservationCreated, Data: reservation})
}

func BroadcastFeedbackCreated(feedback models.Feedback) {
	broadcast(Message{Event: EventFeedbackCreated, Data: feedback})
}

func BroadcastDashboardUpdate(data interface{}) {
	broadcast(Message{Event: EventDashboardUpdate, Data: data})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("error marshaling event: %v", err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("error sending event to client: %v", err)
		}
	}
}
