package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func pollUntil(t *testing.T, s *Stream, want func(Keys) bool) Keys {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for {
		keys := s.Poll()
		if want(keys) {
			return keys
		}
		if time.Now().After(deadline) {
			t.Fatalf("wanted key state never observed, last: %+v", keys)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestPollDecodesBufferedKeys(t *testing.T) {
	s := Start(bufio.NewReader(strings.NewReader("wa \x1b[C")))

	// All bytes land inside one hold window, so the combination reads as
	// simultaneously held keys.
	pollUntil(t, s, func(k Keys) bool {
		return k.Thrust && k.Left && k.Fire && k.Right
	})
}

func TestPollReportsQuitWhenReaderCloses(t *testing.T) {
	s := Start(bufio.NewReader(strings.NewReader("")))

	pollUntil(t, s, func(k Keys) bool { return k.Quit })
}

func TestResetClearsHeldKeysButNotClosure(t *testing.T) {
	s := Start(bufio.NewReader(strings.NewReader("w")))

	pollUntil(t, s, func(k Keys) bool { return k.Thrust })
	s.Reset()
	if keys := s.Poll(); keys.Thrust {
		t.Fatalf("thrust still held after Reset: %+v", keys)
	}

	// A reset must not forget that the session's reader is gone.
	pollUntil(t, s, func(k Keys) bool { return k.Quit })
}
