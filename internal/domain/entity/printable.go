package entity

// Printable is implemented by every entity that can render itself as
// fixed-width receipt lines for an 80mm (48 column) thermal printer.
// Rendering never fails once the entity has been constructed.
type Printable interface {
	Print48() []string
}
