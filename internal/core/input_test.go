package core

import "testing"

func TestEventQueueDrainPreservesOrder(t *testing.T) {
	var q EventQueue
	q.Push(KeyDown(KeyAdd))
	q.Push(PointerMove(Pt(1, 2)))
	q.Push(Quit())

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}

	events := q.Drain()
	expected := []EventKind{EventKeyDown, EventPointerMove, EventQuit}
	for i, e := range events {
		if e.Kind != expected[i] {
			t.Errorf("event %d kind = %v, expected %v", i, e.Kind, expected[i])
		}
	}

	if q.Len() != 0 {
		t.Errorf("Len() after Drain = %d, expected 0", q.Len())
	}
	if q.Drain() != nil {
		t.Error("Drain on an empty queue should return nil")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event    Event
		expected string
	}{
		{Quit(), "Quit"},
		{KeyDown(KeyReset), "KeyDown(Reset)"},
		{PointerDown(ButtonPrimary, Pt(3, 4)), "PointerDown(Primary, 3, 4)"},
		{PointerMove(Pt(7, 8)), "PointerMove(7, 8)"},
		{Event{}, "None"},
	}
	for _, tc := range tests {
		if got := tc.event.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
