// internal/input/state.go
package input

import "go-grid-defense/pkg/gridmap"

// Button is a pointer button, numbered the way browsers and ebiten number them.
type Button int

const (
	ButtonPrimary   Button = 0
	ButtonMiddle    Button = 1
	ButtonSecondary Button = 2

	buttonCount = 3
)

// Key is a lower-case key name ("space", "escape", "1", ...).
type Key string

const (
	KeySpace  Key = "space"
	KeyEscape Key = "escape"
	KeyEnter  Key = "enter"
	KeyDelete Key = "delete"
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeyLeft   Key = "left"
	KeyRight  Key = "right"
	KeyW      Key = "w"
	KeyA      Key = "a"
	KeyS      Key = "s"
	KeyD      Key = "d"
	KeyF      Key = "f"
	KeyP      Key = "p"
	KeyN      Key = "n"
	Key1      Key = "1"
	Key2      Key = "2"
	Key3      Key = "3"
)

// State is the input snapshot for one frame. It is passed explicitly to every
// consumer; there is no global input singleton.
type State struct {
	CursorX, CursorY int
	WheelY           float64

	world    gridmap.Vec3
	hasWorld bool

	down     [buttonCount]bool
	pressed  [buttonCount]bool
	released [buttonCount]bool

	keysDown    map[Key]bool
	keysPressed map[Key]bool
}

func NewState() *State {
	return &State{
		keysDown:    make(map[Key]bool),
		keysPressed: make(map[Key]bool),
	}
}

// BeginFrame clears the per-frame edges (just pressed/released, wheel) while
// keeping held buttons and keys.
func (s *State) BeginFrame() {
	s.pressed = [buttonCount]bool{}
	s.released = [buttonCount]bool{}
	for k := range s.keysPressed {
		delete(s.keysPressed, k)
	}
	s.WheelY = 0
}

// EndFrame is BeginFrame under the name used at the end of a tick.
func (s *State) EndFrame() {
	s.BeginFrame()
}

// SetCursor moves the screen cursor.
func (s *State) SetCursor(x, y int) {
	s.CursorX, s.CursorY = x, y
}

// SetWorldPosition records where the cursor hits the ground.
func (s *State) SetWorldPosition(p gridmap.Vec3) {
	s.world = p
	s.hasWorld = true
}

// ClearWorldPosition marks the cursor as off the ground.
func (s *State) ClearWorldPosition() {
	s.world = gridmap.Vec3{}
	s.hasWorld = false
}

// WorldPosition returns the ground point under the cursor, if there is one.
func (s *State) WorldPosition() (gridmap.Vec3, bool) {
	return s.world, s.hasWorld
}

func validButton(b Button) bool {
	return b >= 0 && b < buttonCount
}

// Press marks a button as held and just pressed.
func (s *State) Press(b Button) {
	if !validButton(b) {
		return
	}
	if !s.down[b] {
		s.pressed[b] = true
	}
	s.down[b] = true
}

// Release lets go of a button.
func (s *State) Release(b Button) {
	if !validButton(b) {
		return
	}
	if s.down[b] {
		s.released[b] = true
	}
	s.down[b] = false
}

// SetButton records the raw state of a button for this frame.
func (s *State) SetButton(b Button, down, justPressed, justReleased bool) {
	if !validButton(b) {
		return
	}
	s.down[b] = down
	s.pressed[b] = justPressed
	s.released[b] = justReleased
}

// IsDown reports whether the button is held.
func (s *State) IsDown(b Button) bool {
	return validButton(b) && s.down[b]
}

// JustPressed reports whether the button went down this frame.
func (s *State) JustPressed(b Button) bool {
	return validButton(b) && s.pressed[b]
}

// JustReleased reports whether the button went up this frame.
func (s *State) JustReleased(b Button) bool {
	return validButton(b) && s.released[b]
}

// PressKey marks a key as held and just pressed.
func (s *State) PressKey(k Key) {
	if !s.keysDown[k] {
		s.keysPressed[k] = true
	}
	s.keysDown[k] = true
}

// ReleaseKey lets go of a key.
func (s *State) ReleaseKey(k Key) {
	delete(s.keysDown, k)
}

// SetKey records the raw state of a key for this frame.
func (s *State) SetKey(k Key, down, justPressed bool) {
	if down {
		s.keysDown[k] = true
	} else {
		delete(s.keysDown, k)
	}
	if justPressed {
		s.keysPressed[k] = true
	}
}

// KeyDown reports whether the key is held.
func (s *State) KeyDown(k Key) bool {
	return s.keysDown[k]
}

// KeyJustPressed reports whether the key went down this frame.
func (s *State) KeyJustPressed(k Key) bool {
	return s.keysPressed[k]
}

// Reset forgets everything, as when the window loses focus.
func (s *State) Reset() {
	*s = *NewState()
}
