package qnoise

/*
Channel is a stochastic error source attached to a circuit location.
Sample draws one realization of the error for the given qubits; an empty
result means no error was injected this time. Sample must not modify the
channel, so a configured channel can be shared across shots as long as
each shot brings its own RNG.
*/
type Channel interface {
	Sample(qubits []int, rng RNG) ([]Op, error)
}

// Placer is implemented by channels that record where their errors go.
type Placer interface {
	ErrorsAfter() bool
}

// Combiner is implemented by channels that allow fusing their error into
// the operation they decorate.
type Combiner interface {
	CombinesError() bool
}
