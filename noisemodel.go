package qnoise

import (
	"fmt"

	"github.com/theapemachine/errnie"
)

/*
NoiseModel maps gate names to the channels that decorate them. It is built
once, before any shot runs, and is read-only afterwards. The zero value
is an empty model ready for AddChannel.
*/
type NoiseModel struct {
	channels map[string]Channel
}

func NewNoiseModel() *NoiseModel {
	return &NoiseModel{
		channels: make(map[string]Channel),
	}
}

// AddChannel attaches ch to every op named name, replacing any previous
// channel for that name.
func (nm *NoiseModel) AddChannel(name string, ch Channel) {
	errnie.Info("NoiseModel.AddChannel - name %v, channel %T", name, ch)
	if nm.channels == nil {
		nm.channels = make(map[string]Channel)
	}
	nm.channels[name] = ch
}

// Channel returns the channel registered for name.
func (nm *NoiseModel) Channel(name string) (Channel, bool) {
	ch, ok := nm.channels[name]
	return ch, ok
}

/*
Sample produces one noisy trajectory of circuit. Ops without a channel
pass through unchanged. The input slice is not modified.
*/
func (nm *NoiseModel) Sample(circuit []Op, rng RNG) ([]Op, error) {
	out := make([]Op, 0, len(circuit))

	for i, op := range circuit {
		ch, ok := nm.channels[op.Name]
		if !ok {
			out = append(out, op)
			continue
		}

		noisy, err := Insert(op, ch, rng)
		if err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i, op.Name, err)
		}
		out = append(out, noisy...)
	}

	return out, nil
}

/*
Insert samples ch on op's qubits and splices the result around op.
Placement defaults to after op unless ch is a Placer saying otherwise.
When ch is a Combiner with combining enabled, and the error is a single
matrix op on exactly op's qubits while op itself carries one matrix of
the same size, the two are fused into a single matrix op.
*/
func Insert(op Op, ch Channel, rng RNG) ([]Op, error) {
	noise, err := ch.Sample(op.Qubits, rng)
	if err != nil {
		return nil, err
	}
	if len(noise) == 0 {
		return []Op{op}, nil
	}

	after := true
	if p, ok := ch.(Placer); ok {
		after = p.ErrorsAfter()
	}

	if c, ok := ch.(Combiner); ok && c.CombinesError() {
		if fused, ok := fuse(op, noise, after); ok {
			return []Op{fused}, nil
		}
	}

	out := make([]Op, 0, len(noise)+1)
	if after {
		out = append(out, op)
		out = append(out, noise...)
	} else {
		out = append(out, noise...)
		out = append(out, op)
	}
	return out, nil
}

// fuse multiplies the error into op. Applying op then E is E·op; applying
// E then op is op·E.
func fuse(op Op, noise []Op, after bool) (Op, bool) {
	if len(noise) != 1 || len(op.Mats) != 1 {
		return Op{}, false
	}

	e := noise[0]
	if e.Name != OpMatrix || len(e.Mats) != 1 || !op.SameQubits(e) {
		return Op{}, false
	}

	var (
		mat Matrix
		err error
	)
	if after {
		mat, err = e.Mats[0].Mul(op.Mats[0])
	} else {
		mat, err = op.Mats[0].Mul(e.Mats[0])
	}
	if err != nil {
		return Op{}, false
	}

	return NewMatrixOp(mat, op.Qubits), true
}
