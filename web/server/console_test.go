package server

import (
	"testing"
	"time"
)

func receive(t *testing.T, messageChan chan ConsoleMessage) ConsoleMessage {
	t.Helper()
	select {
	case msg := <-messageChan:
		return msg
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Timeout waiting for console message")
		return ConsoleMessage{}
	}
}

func TestWebLogger_BasicLogging(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-render-123", messageChan)

	logger.Printf("%s\n", "Test log message")

	msg := receive(t, messageChan)
	if msg.Message != "Test log message" {
		t.Errorf("Expected message 'Test log message', got '%s'", msg.Message)
	}
	if msg.RenderID != "test-render-123" {
		t.Errorf("Expected render ID 'test-render-123', got '%s'", msg.RenderID)
	}
	if msg.Level != "info" {
		t.Errorf("Expected level 'info', got '%s'", msg.Level)
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
	}
}

func TestWebLogger_StripsProgressControlCharacters(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-render-progress", messageChan)

	logger.Printf("\rProgress: %.0f%%", 50.0)
	logger.Printf("\n")

	msg := receive(t, messageChan)
	if msg.Message != "Progress: 50%" {
		t.Errorf("Expected 'Progress: 50%%', got %q", msg.Message)
	}
	select {
	case extra := <-messageChan:
		t.Errorf("Blank line should be dropped, got %q", extra.Message)
	default:
	}
}

func TestWebLogger_Levels(t *testing.T) {
	testCases := []struct {
		message  string
		expected string
	}{
		{"Rendering 400x225", "info"},
		{"Warning: scene has no objects", "warning"},
		{"error loading scene", "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.message, func(t *testing.T) {
			messageChan := make(chan ConsoleMessage, 1)
			NewWebLogger("test-render-levels", messageChan).Printf("%s", tc.message)
			if msg := receive(t, messageChan); msg.Level != tc.expected {
				t.Errorf("Level for %q = %q, want %q", tc.message, msg.Level, tc.expected)
			}
		})
	}
}

func TestWebLogger_MultipleMessages(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-render-456", messageChan)

	messages := []string{"Message 1", "Message 2", "Message 3"}
	for _, msg := range messages {
		logger.Printf("%s\n", msg)
	}

	for i, expected := range messages {
		if msg := receive(t, messageChan); msg.Message != expected {
			t.Errorf("Message %d: expected '%s', got '%s'", i, expected, msg.Message)
		}
	}
}

func TestWebLogger_ChannelFull(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("test-render-789", messageChan)

	// The second and third messages must not block even though the channel is full
	logger.Printf("Message 1\n")
	logger.Printf("Message 2\n")
	logger.Printf("Message 3\n")

	if msg := receive(t, messageChan); msg.Message != "Message 1" {
		t.Errorf("Expected the first message to be kept, got %q", msg.Message)
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	logger := NewWebLogger("test-render-nil", nil)

	// This should not panic
	logger.Printf("Test message with nil channel\n")
}
