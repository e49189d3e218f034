package eventbus

import "testing"

func TestBusPublishSubscribe(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	bus.Publish("hello")
	if v := <-ch; v != "hello" {
		t.Fatalf("expected hello got %v", v)
	}
	bus.Unsubscribe(ch)
}

func TestBusDropsWhenSubscriberLags(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	// Overfill the buffer; publishes must not block.
	for i := 0; i < 100; i++ {
		bus.Publish(i)
	}
	if v := <-ch; v != 0 {
		t.Fatalf("expected first event got %v", v)
	}
}

func TestBusClose(t *testing.T) {
	bus := New()
	ch1 := bus.Subscribe()
	ch2 := bus.Subscribe()
	bus.Close()
	if _, ok := <-ch1; ok {
		t.Fatalf("expected ch1 closed")
	}
	if _, ok := <-ch2; ok {
		t.Fatalf("expected ch2 closed")
	}
	// Publishing after close is a no-op, not a panic.
	bus.Publish("late")
}

func TestBusSubscribeAfterClose(t *testing.T) {
	bus := New()
	bus.Close()
	ch := bus.Subscribe()
	if _, ok := <-ch; ok {
		t.Fatalf("expected closed channel from closed bus")
	}
}

func TestBusUnsubscribeAfterClose(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	bus.Close()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic on Unsubscribe after Close: %v", r)
		}
	}()
	bus.Unsubscribe(ch)
}
