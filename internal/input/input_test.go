package input

import (
	"slices"
	"testing"
	"time"
)

func TestKeysEdgeAndLevel(t *testing.T) {
	var k Keys

	k.Press(KeyLeft)
	k.Press(KeyJump)
	f := k.Frame()
	if !f.Left || !f.Jump {
		t.Fatalf("expected left held and jump pressed, got %+v", f)
	}

	// Jump is still held but must not fire again.
	f = k.Frame()
	if !f.Left || f.Jump {
		t.Fatalf("expected only left on second frame, got %+v", f)
	}

	// Auto-repeat while held is not a new press.
	k.Press(KeyJump)
	if f = k.Frame(); f.Jump {
		t.Error("repeat press while held fired jump")
	}

	k.Release(KeyJump)
	k.Press(KeyJump)
	if f = k.Frame(); !f.Jump {
		t.Error("press after release did not fire jump")
	}

	k.Release(KeyLeft)
	if f = k.Frame(); f.Left {
		t.Error("left still held after release")
	}
}

func TestKeysPressAndReleaseSameFrame(t *testing.T) {
	var k Keys
	k.Press(KeyRestart)
	k.Release(KeyRestart)
	if f := k.Frame(); !f.Restart {
		t.Error("tap within one frame was lost")
	}
}

func TestKeysReset(t *testing.T) {
	var k Keys
	k.Press(KeyRight)
	k.Press(KeyQuit)
	k.Reset()
	if f := k.Frame(); f != (Frame{}) {
		t.Errorf("expected empty frame after reset, got %+v", f)
	}
}

func TestKeysIgnoresOutOfRange(t *testing.T) {
	var k Keys
	k.Press(Key(-1))
	k.Press(numKeys)
	k.Release(numKeys)
	if k.Held(numKeys) {
		t.Error("out of range key reported held")
	}
}

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Key
	}{
		{"arrows", "\x1b[D\x1b[C\x1b[A", []Key{KeyLeft, KeyRight, KeyJump}},
		{"down arrow unbound", "\x1b[B", nil},
		{"letters", "adr q", []Key{KeyLeft, KeyRight, KeyRestart, KeyJump, KeyQuit}},
		{"vim keys", "hlk", []Key{KeyLeft, KeyRight, KeyJump}},
		{"ctrl-c", "\x03", []Key{KeyQuit}},
		{"unbound", "xyz", nil},
		{"bare escape", "\x1b", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseKeys([]byte(tt.in)); !slices.Equal(got, tt.want) {
				t.Errorf("ParseKeys(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStreamHoldWindow(t *testing.T) {
	s := newStream()
	start := time.Unix(0, 0)

	s.feed([]byte("a"), start)
	f := s.keys.Frame()
	if !f.Left {
		t.Fatal("expected left held after byte")
	}

	s.feed(nil, start.Add(keyHoldDuration/2))
	if f = s.keys.Frame(); !f.Left {
		t.Error("left released inside hold window")
	}

	s.feed(nil, start.Add(keyHoldDuration))
	if f = s.keys.Frame(); f.Left {
		t.Error("left still held after hold window")
	}
}

func TestStreamPollClosedInputQuits(t *testing.T) {
	s := newStream()
	s.ch <- ' '
	close(s.ch)

	f := s.Poll(time.Unix(0, 0))
	if !f.Jump {
		t.Error("expected jump from buffered byte")
	}
	if !f.Quit {
		t.Error("expected quit on closed input")
	}
}
