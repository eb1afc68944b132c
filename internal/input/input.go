// Package input turns key press and release events into per-frame input.
package input

// Key is a game action bound to one or more physical keys.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
	KeyRestart
	KeyQuit
	numKeys
)

// String returns the action name.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyJump:
		return "jump"
	case KeyRestart:
		return "restart"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Frame is the input for one update. Left and Right are level state;
// Jump, Restart and Quit are true only on the frame the key went down.
type Frame struct {
	Left    bool
	Right   bool
	Jump    bool
	Restart bool
	Quit    bool
}

// Keys tracks held keys and pending presses between frames.
type Keys struct {
	held    [numKeys]bool
	pressed [numKeys]bool
}

// Press records a key going down. Repeats while held are ignored.
func (k *Keys) Press(key Key) {
	if key < 0 || key >= numKeys {
		return
	}
	if !k.held[key] {
		k.pressed[key] = true
	}
	k.held[key] = true
}

// Release records a key going up.
func (k *Keys) Release(key Key) {
	if key < 0 || key >= numKeys {
		return
	}
	k.held[key] = false
}

// Held reports whether key is currently down.
func (k *Keys) Held(key Key) bool {
	if key < 0 || key >= numKeys {
		return false
	}
	return k.held[key]
}

// Frame returns the input for the next update and consumes pending presses.
func (k *Keys) Frame() Frame {
	f := Frame{
		Left:    k.held[KeyLeft],
		Right:   k.held[KeyRight],
		Jump:    k.pressed[KeyJump],
		Restart: k.pressed[KeyRestart],
		Quit:    k.pressed[KeyQuit],
	}
	clear(k.pressed[:])
	return f
}

// Reset releases every key and drops pending presses.
func (k *Keys) Reset() {
	clear(k.held[:])
	clear(k.pressed[:])
}
