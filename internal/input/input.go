// Package input turns a raw terminal byte stream into per-frame key state.
//
// Terminals deliver key presses as discrete bytes with autorepeat, not
// up/down transitions, so each key records the time it was last seen and
// counts as held for a short window afterwards. That makes held keys and
// key combinations (rotate + thrust + fire) read as continuous state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key counts as held after its last byte.
const keyHoldDuration = 30 * time.Millisecond

// Keys is the decoded key state for one frame.
type Keys struct {
	Left   bool
	Right  bool
	Thrust bool
	Fire   bool
	Enter  bool
	Escape bool
	Quit   bool
}

type keyTimes struct {
	left   time.Time
	right  time.Time
	thrust time.Time
	fire   time.Time
	enter  time.Time
	escape time.Time
	quit   time.Time
}

// Stream delivers input bytes from a reader goroutine and tracks per-key
// last-seen times.
type Stream struct {
	ch     chan byte
	state  keyTimes
	closed bool
}

// Start spawns a goroutine reading bytes from r into the stream. The
// goroutine exits when r fails (session closed).
func Start(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all pending bytes without blocking and returns the key state
// for this frame.
func (s *Stream) Poll() Keys {
	now := time.Now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				// Reader gone (session closed): report quit from now on.
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI arrow sequences: ESC [ A/B/C/D.
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.thrust = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			case 'B':
				i += 2
				continue
			}
		}
		s.applyByte(b, now)
	}

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	return Keys{
		Left:   held(s.state.left),
		Right:  held(s.state.right),
		Thrust: held(s.state.thrust),
		Fire:   held(s.state.fire),
		Enter:  held(s.state.enter),
		Escape: held(s.state.escape),
		Quit:   held(s.state.quit) || s.closed,
	}
}

// Reset forgets all held keys, so a press on one screen does not leak into
// the next.
func (s *Stream) Reset() {
	s.state = keyTimes{}
}

func (s *Stream) applyByte(b byte, now time.Time) {
	switch b {
	case 'a', 'A', 'j', 'J':
		s.state.left = now
	case 'd', 'D', 'l', 'L':
		s.state.right = now
	case 'w', 'W', 'i', 'I':
		s.state.thrust = now
	case ' ':
		s.state.fire = now
	case '\n', '\r':
		s.state.enter = now
	case '\x1b':
		s.state.escape = now
	case 'q', 'Q', '\x03': // q or Ctrl-C
		s.state.quit = now
	}
}
