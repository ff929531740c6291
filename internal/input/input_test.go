package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestActionsSet(t *testing.T) {
	var a Actions
	a.Set(ActionShoot, true)
	a.Set(ActionRotateRight, true)
	a.Set(Action(42), true)
	want := Actions{Shoot: true, RotateRight: true}
	if a != want {
		t.Fatalf("got %+v, want %+v", a, want)
	}
	a.Set(ActionShoot, false)
	if a.Shoot {
		t.Fatalf("shoot should be off")
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range []Action{ActionShoot, ActionBoost, ActionRotateLeft, ActionRotateRight} {
		got, err := ParseAction(a.String())
		if err != nil || got != a {
			t.Fatalf("ParseAction(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseAction("jump"); err == nil {
		t.Fatalf("expected error for unknown action")
	}
}

func TestKeyStateParsesArrowsAndLetters(t *testing.T) {
	now := time.Now()
	var st keyState
	st.apply([]byte("\x1b[A\x1b[D "), now)

	keys := st.held(now)
	if !keys.Up || !keys.Left || !keys.Space || keys.Right || keys.Quit {
		t.Fatalf("unexpected keys %+v", keys)
	}

	want := Actions{Shoot: true, Boost: true, RotateLeft: true}
	if got := keys.Actions(); got != want {
		t.Fatalf("actions = %+v, want %+v", got, want)
	}
}

func TestKeysReleaseAfterHoldDuration(t *testing.T) {
	now := time.Now()
	var st keyState
	st.apply([]byte("d"), now)
	if !st.held(now).Right {
		t.Fatalf("key should be held right after press")
	}
	if st.held(now.Add(keyHoldDuration)).Right {
		t.Fatalf("key should be released after the hold duration")
	}
}

func TestClosedStreamReportsQuit(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if ReadKeys(s).Quit {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected Quit once the reader is exhausted")
}

// endless never runs out of key presses.
type endless struct{}

func (endless) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'x'
	}
	return len(p), nil
}

func TestCloseReleasesReader(t *testing.T) {
	s := StartStream(bufio.NewReader(endless{}))
	time.Sleep(10 * time.Millisecond) // let the buffer fill up
	s.Close()
	s.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if ReadKeys(s).Quit {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("reader goroutine still delivering after Close")
}
