// @focus: #sys { io } #input { keys }
package terminal

// Key represents a decoded logical keystroke
type Key uint8

const (
	KeyNone Key = iota
	KeyChar     // Literal byte (check Event.Char)

	// Control keys
	KeyEnter
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

// Event is a single decoded keystroke
type Event struct {
	Key  Key
	Char byte // For KeyChar
}

// Control bytes recognised outside escape sequences
const (
	byteBackspace = 0x08
	byteLineFeed  = 0x0a
	byteEscape    = 0x1b
	byteDelete    = 0x7f
)

// bracketedKeys maps the final byte of ESC [ X to its key
var bracketedKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyDelete,
}

// tildeKeys maps the parameter byte of ESC [ N ~ to its key
var tildeKeys = map[byte]Key{
	'3': KeyDelete,
	'4': KeyEnd,
}
