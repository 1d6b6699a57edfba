package engine

import "testing"

func TestEventInvokeOrder(t *testing.T) {
	var e Event
	var order []int
	e.AddListener(func() { order = append(order, 1) })
	e.AddListener(func() { order = append(order, 2) })
	e.AddListener(nil)

	e.Invoke()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Unexpected call order %v", order)
	}
	if e.GetListenerCount() != 2 {
		t.Errorf("nil listener should be ignored, got %d listeners", e.GetListenerCount())
	}
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[int]
	sum := 0
	e.AddListener(func(v int) { sum += v })
	e.AddListener(func(v int) { sum += v * 10 })

	e.Invoke(2)
	if sum != 22 {
		t.Errorf("Expected 22, got %d", sum)
	}

	e.RemoveAllListeners()
	e.Invoke(5)
	if sum != 22 {
		t.Error("Listeners should not fire after RemoveAllListeners")
	}
}
