package dump

// Class is the display category of a byte
type Class int

const (
	// Null is 0x00.
	Null Class = iota
	// Control is 0x01-0x1F and 0x7F.
	Control
	// Printable is space through tilde.
	Printable
	// Other is everything above 0x7F.
	Other
)

func (c Class) String() string {
	switch c {
	case Null:
		return "null"
	case Control:
		return "control"
	case Printable:
		return "printable"
	default:
		return "other"
	}
}

// Classify returns the class of b.
func Classify(b byte) Class {
	switch {
	case b == 0x00:
		return Null
	case b <= 0x1F || b == 0x7F:
		return Control
	case b <= 0x7E:
		return Printable
	default:
		return Other
	}
}

// Style returns the style cells of this class are painted with.
func (c Class) Style() Style {
	switch c {
	case Null:
		return StyleNull
	case Control:
		return StyleControl
	case Printable:
		return StylePrintable
	default:
		return StyleOther
	}
}
