package amqp

import (
	"testing"
	"time"
)

func TestNewSnapshotCommittedMessage(t *testing.T) {
	msg := NewSnapshotCommittedMessage(42, 1250000)

	if msg.Count != 42 {
		t.Errorf("Count = %d, want 42", msg.Count)
	}
	if msg.TotalAmount != 1250000 {
		t.Errorf("TotalAmount = %d, want 1250000", msg.TotalAmount)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Error("Timestamp should be recent")
	}
}

func TestSnapshotCommittedMessage_JSON(t *testing.T) {
	timestamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	msg := &SnapshotCommittedMessage{
		Count:       7,
		TotalAmount: 535000,
		Timestamp:   timestamp,
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := SnapshotCommittedMessageFromJSON(body)
	if err != nil {
		t.Fatalf("SnapshotCommittedMessageFromJSON() error = %v", err)
	}

	if parsed.Count != msg.Count {
		t.Errorf("Count = %d, want %d", parsed.Count, msg.Count)
	}
	if parsed.TotalAmount != msg.TotalAmount {
		t.Errorf("TotalAmount = %d, want %d", parsed.TotalAmount, msg.TotalAmount)
	}
	if !parsed.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", parsed.Timestamp, msg.Timestamp)
	}
}

func TestSnapshotCommittedMessage_InvalidJSON(t *testing.T) {
	if _, err := SnapshotCommittedMessageFromJSON([]byte(`{"count": "seven"}`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
