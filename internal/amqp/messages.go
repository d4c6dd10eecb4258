package amqp

import (
	"encoding/json"
	"time"
)

// SnapshotCommittedMessage announces that a new transaction snapshot was
// written. It carries aggregate figures only; the worker reads the full
// snapshot from the store.
type SnapshotCommittedMessage struct {
	Count       int       `json:"count"`
	TotalAmount int64     `json:"total_amount"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewSnapshotCommittedMessage(count int, totalAmount int64) *SnapshotCommittedMessage {
	return &SnapshotCommittedMessage{
		Count:       count,
		TotalAmount: totalAmount,
		Timestamp:   time.Now(),
	}
}

func (m *SnapshotCommittedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func SnapshotCommittedMessageFromJSON(data []byte) (*SnapshotCommittedMessage, error) {
	var msg SnapshotCommittedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
