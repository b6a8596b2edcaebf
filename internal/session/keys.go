package session

// Key names a special keystroke with a fixed escape or control byte
// sequence.
type Key int

const (
	KeyArrowUp Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEnter
	KeyInterrupt
)

var keyBytes = map[Key][]byte{
	KeyArrowUp:    []byte("\x1b[A"),
	KeyArrowDown:  []byte("\x1b[B"),
	KeyArrowLeft:  []byte("\x1b[D"),
	KeyArrowRight: []byte("\x1b[C"),
	KeyEnter:      []byte("\n"),
	KeyInterrupt:  {0x03},
}

var keyNames = map[Key]string{
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyEnter:      "Enter",
	KeyInterrupt:  "Interrupt",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKey resolves a key by name. The second return reports whether the
// name is known.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// SpecialInput is either a literal byte sequence or a named key. It is
// delivered verbatim, bypassing line framing, so it can reach a running
// foreground program.
type SpecialInput struct {
	raw   []byte
	key   Key
	isKey bool
}

// RawBytes wraps literal bytes for delivery.
func RawBytes(b []byte) SpecialInput {
	return SpecialInput{raw: b}
}

// KeyPress wraps a named key for delivery.
func KeyPress(k Key) SpecialInput {
	return SpecialInput{key: k, isKey: true}
}

// Bytes resolves the byte sequence to write. Unknown keys and empty raw
// input are usage errors.
func (si SpecialInput) Bytes() ([]byte, error) {
	if si.isKey {
		b, ok := keyBytes[si.key]
		if !ok {
			return nil, workflowErrorf("unknown key %d", int(si.key))
		}
		return b, nil
	}
	if len(si.raw) == 0 {
		return nil, workflowErrorf("empty raw input")
	}
	return si.raw, nil
}
