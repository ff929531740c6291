// Package input turns host input into the player's action state.
package input

import (
	"bufio"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses (and auto-repeat), never releases.
const keyHoldDuration = 120 * time.Millisecond

// Keys represents the current frame's terminal key state.
type Keys struct {
	Quit  bool
	Left  bool
	Right bool
	Up    bool
	Space bool
}

// Actions maps the held keys onto the player's intents.
func (k Keys) Actions() Actions {
	return Actions{
		Shoot:       k.Space,
		Boost:       k.Up,
		RotateLeft:  k.Left,
		RotateRight: k.Right,
	}
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	up    time.Time
	space time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch        chan byte
	done      chan struct{}
	closeOnce sync.Once
	state     keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r fails or, once Close is called, on its next byte.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:   make(chan byte, 128),
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Close stops delivering bytes. It is safe to call more than once.
func (s *Stream) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// ReadKeys drains all available bytes from the stream (non-blocking) and
// returns the keys held as of now. A closed stream reports Quit.
func ReadKeys(s *Stream) Keys {
	now := time.Now()
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.state.apply(buf, now)
	keys := s.state.held(now)
	if closed {
		keys.Quit = true
	}
	return keys
}

// apply parses the collected bytes and updates key state timestamps.
// Handles CSI escape sequences for the arrow keys.
func (st *keyState) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				st.up = now
				i += 2
				continue
			case 'C':
				st.right = now
				i += 2
				continue
			case 'D':
				st.left = now
				i += 2
				continue
			}
		}

		switch b {
		case 'q', 'Q', '\x03':
			st.quit = now
		case 'a', 'A', 'j', 'J':
			st.left = now
		case 'd', 'D', 'l', 'L':
			st.right = now
		case 'w', 'W', 'i', 'I':
			st.up = now
		case ' ':
			st.space = now
		}
	}
}

// held builds Keys from the state: keys are pressed if seen within the hold duration.
func (st *keyState) held(now time.Time) Keys {
	return Keys{
		Quit:  now.Sub(st.quit) < keyHoldDuration,
		Left:  now.Sub(st.left) < keyHoldDuration,
		Right: now.Sub(st.right) < keyHoldDuration,
		Up:    now.Sub(st.up) < keyHoldDuration,
		Space: now.Sub(st.space) < keyHoldDuration,
	}
}
