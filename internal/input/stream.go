package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered held after its last byte.
// Terminals never report key release, so release is inferred once the key
// stops auto-repeating.
const keyHoldDuration = 120 * time.Millisecond

// Stream delivers terminal input bytes via a channel and converts them into
// key events.
type Stream struct {
	ch       chan byte
	keys     Keys
	lastSeen [numKeys]time.Time
	hold     time.Duration
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
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

func newStream() *Stream {
	return &Stream{
		ch:   make(chan byte, 128),
		hold: keyHoldDuration,
	}
}

// Poll drains all available bytes (non-blocking) and returns the frame input.
// A closed input reports Quit.
func (s *Stream) Poll(now time.Time) Frame {
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

	s.feed(buf, now)
	if closed {
		s.keys.Press(KeyQuit)
	}
	return s.keys.Frame()
}

// Reset releases all keys, e.g. after a restart so a held key does not
// carry over.
func (s *Stream) Reset() {
	s.keys.Reset()
	clear(s.lastSeen[:])
}

// feed applies raw bytes received at now and releases keys whose hold
// window has expired.
func (s *Stream) feed(buf []byte, now time.Time) {
	for _, key := range ParseKeys(buf) {
		s.keys.Press(key)
		s.lastSeen[key] = now
	}
	for key := Key(0); key < numKeys; key++ {
		if s.keys.Held(key) && now.Sub(s.lastSeen[key]) >= s.hold {
			s.keys.Release(key)
		}
	}
}

// ParseKeys maps terminal bytes, including arrow key escape sequences, to
// keys. Unbound bytes are dropped.
func ParseKeys(buf []byte) []Key {
	var keys []Key
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				keys = append(keys, KeyJump)
				i += 2
				continue
			case 'C': // Right arrow
				keys = append(keys, KeyRight)
				i += 2
				continue
			case 'D': // Left arrow
				keys = append(keys, KeyLeft)
				i += 2
				continue
			case 'B': // Down arrow, unbound
				i += 2
				continue
			}
		}

		if key, ok := byteKey(b); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

func byteKey(b byte) (Key, bool) {
	switch b {
	case 'a', 'A', 'h', 'H':
		return KeyLeft, true
	case 'd', 'D', 'l', 'L':
		return KeyRight, true
	case ' ', 'w', 'W', 'k', 'K':
		return KeyJump, true
	case 'r', 'R':
		return KeyRestart, true
	case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
		return KeyQuit, true
	}
	return 0, false
}
