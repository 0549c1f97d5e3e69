package pfifo

import "testing"

func drainValues(l *list[string]) []string {
	var out []string
	for !l.empty() {
		out = append(out, l.removeTail().value)
	}
	return out
}

func TestListEqualPriorityFIFO(t *testing.T) {
	var l list[string]
	l.init()

	// A and C share priority 5, B sits below them.
	l.insert("A", 5)
	l.insert("B", 1)
	l.insert("C", 5)

	got := drainValues(&l)
	want := []string{"A", "C", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("removal order %v, want %v", got, want)
		}
	}
}

func TestListNegativeLIFO(t *testing.T) {
	var l list[string]
	l.init()

	l.insert("N1", -1)
	l.insert("N2", -1)

	if got := drainValues(&l); got[0] != "N2" || got[1] != "N1" {
		t.Fatalf("expected N2 before N1, got %v", got)
	}
}

func TestListScanStopsAtNegative(t *testing.T) {
	var l list[string]
	l.init()

	// The negative entry clusters at the tail; the later priority-5
	// insert must stop its scan there and land just before it, even
	// though 5 outranks everything else present.
	l.insert("low", 2)
	l.insert("urgent", -1)
	l.insert("high", 5)

	got := drainValues(&l)
	want := []string{"urgent", "high", "low"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("removal order %v, want %v", got, want)
		}
	}
}

func TestListEachHeadToTail(t *testing.T) {
	var l list[string]
	l.init()

	l.insert("A", 5)
	l.insert("B", 1)
	l.insert("C", 5)

	var prios []int
	l.each(func(prio int, _ string) { prios = append(prios, prio) })

	// Head to tail: least urgent first.
	want := []int{1, 5, 5}
	for i := range want {
		if prios[i] != want[i] {
			t.Fatalf("head-to-tail priorities %v, want %v", prios, want)
		}
	}
}

func TestListRemoveTailEmptyPanics(t *testing.T) {
	var l list[int]
	l.init()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on removeTail from empty list")
		}
	}()
	l.removeTail()
}
