package sorting

// Option is one server-side listing order
type Option struct {
	Label string
	Field string
	Order string
}

// State holds sorting state
type State struct {
	Current int // index into the service's options
}
