package terminal

import "fmt"

// keyToName maps Key constants to canonical string names
var keyToName = map[Key]string{
	KeyChar:      "char",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyHome:  "home",
	KeyEnd:   "end",
}

// KeyName returns the canonical string name for a Key constant
// Returns empty string for KeyNone
func KeyName(k Key) string {
	return keyToName[k]
}

func (k Key) String() string {
	if name := KeyName(k); name != "" {
		return name
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

func (e Event) String() string {
	if e.Key != KeyChar {
		return e.Key.String()
	}
	if e.Char >= 0x20 && e.Char < 0x7f {
		return fmt.Sprintf("char %q (%d)", e.Char, e.Char)
	}
	return fmt.Sprintf("char 0x%02x (%d)", e.Char, e.Char)
}
