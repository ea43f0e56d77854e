package layout

import "fmt"

// Resource identifies a bounded per-frame collection.
type Resource uint8

const (
	ResourceElements  Resource = iota // element store
	ResourceOpenStack                 // open-element stack depth
	ResourceFloating                  // floating roots
	ResourceArena                     // frame arena bytes
	ResourceLines                     // wrapped text lines
	ResourceWords                     // measured words
	ResourceCommands                  // render commands
)

// String returns the resource name.
func (r Resource) String() string {
	switch r {
	case ResourceElements:
		return "elements"
	case ResourceOpenStack:
		return "open-element stack"
	case ResourceFloating:
		return "floating roots"
	case ResourceArena:
		return "frame arena"
	case ResourceLines:
		return "wrapped lines"
	case ResourceWords:
		return "measured words"
	case ResourceCommands:
		return "render commands"
	default:
		return "unknown"
	}
}

// CapacityError reports that a bounded per-frame collection is full.
// The declaration that triggered it was dropped; the caller may continue
// declaring and end the frame, accepting a visually incomplete result.
type CapacityError struct {
	Resource Resource
	Limit    int
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("layout: out of capacity for %s (limit %d)", e.Resource, e.Limit)
}
