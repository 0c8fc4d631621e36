package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishSubscribe(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe("run-1")
	defer cancel()

	h.Publish("run-1", "hello")
	select {
	case msg := <-ch:
		assert.Equal(t, "hello", msg)
	case <-time.After(time.Second):
		t.Fatal("сообщение не пришло")
	}

	// чужой id не трогает подписчика
	h.Publish("run-2", "other")
	select {
	case msg := <-ch:
		t.Fatalf("неожиданное сообщение: %q", msg)
	default:
	}
}

func TestHubUnsubscribe(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe("run-1")
	cancel()

	h.Publish("run-1", "после отписки")
	select {
	case msg := <-ch:
		t.Fatalf("неожиданное сообщение: %q", msg)
	default:
	}
}

// забитый канал не блокирует Publish
func TestHubFullChannelDoesNotBlock(t *testing.T) {
	h := NewHub()

	_, cancel := h.Subscribe("run-1")
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			h.Publish("run-1", "msg")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish заблокировался на полном канале")
	}
}

func TestHubMultipleSubscribers(t *testing.T) {
	h := NewHub()

	ch1, cancel1 := h.Subscribe("run-1")
	defer cancel1()
	ch2, cancel2 := h.Subscribe("run-1")
	defer cancel2()

	h.Publish("run-1", "всем")
	for _, ch := range []chan string{ch1, ch2} {
		select {
		case msg := <-ch:
			require.Equal(t, "всем", msg)
		case <-time.After(time.Second):
			t.Fatal("сообщение не пришло")
		}
	}
}
