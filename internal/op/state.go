package op

// State is the context a caller passes to every Forward call. Ops read it
// and never retain it.
type State struct {
	Mode   Mode
	Epoch  int
	Step   int
	Warmup bool
}
