package qnoise

import (
	"github.com/theapemachine/errnie"
)

/*
UnitaryError is a mixed-unitary error channel. With probability p_i it
applies unitary U_i to the target qubits, and with the remaining
probability 1 - sum(p) it applies nothing.

Configure it once while building the noise model, then only call Sample.
Reconfiguring while another goroutine samples is a race.
*/
type UnitaryError struct {
	// Index 0 is the no-error outcome.
	probabilities *Distribution

	// unitaries[i] goes with outcome i+1.
	unitaries []Matrix

	errorsAfterOp bool
	combineError  bool
	tolerance     float64
}

// NewUnitaryError returns an unconfigured channel using cfg's defaults.
// A nil cfg means NewConfig().
func NewUnitaryError(cfg *Config) *UnitaryError {
	if cfg == nil {
		cfg = NewConfig()
	}

	errnie.Info(
		"NewUnitaryError - errorsAfter %v, combineError %v, tolerance %v",
		cfg.ErrorsAfter,
		cfg.CombineError,
		cfg.UnitaryTolerance,
	)

	return &UnitaryError{
		errorsAfterOp: cfg.ErrorsAfter,
		combineError:  cfg.CombineError,
		tolerance:     cfg.UnitaryTolerance,
	}
}

/*
NewUnitaryErrorFrom builds a fully configured channel in one step.
*/
func NewUnitaryErrorFrom(probs []float64, mats []Matrix, cfg *Config) (*UnitaryError, error) {
	ue := NewUnitaryError(cfg)
	if err := ue.Configure(probs, mats); err != nil {
		return nil, err
	}
	return ue, nil
}

/*
SetProbabilities replaces the outcome distribution. On any error the
previous distribution is kept. If unitaries are already set, the vector
length must match their count.
*/
func (ue *UnitaryError) SetProbabilities(probs []float64) error {
	dist, err := NewDistribution(probs)
	if err != nil {
		return err
	}

	if ue.unitaries != nil && dist.Outcomes() != len(ue.unitaries) {
		return configErrorf(
			"%d probabilities for %d unitaries", dist.Outcomes(), len(ue.unitaries),
		)
	}

	ue.probabilities = dist

	errnie.Info(
		"UnitaryError.SetProbabilities - probs %v, identity %v",
		probs,
		dist.Identity(),
	)

	return nil
}

/*
SetUnitaries replaces the error matrices. Every matrix must be square,
finite, of one shared dimension, and unitary within the configured
tolerance. If probabilities are already set, the count must match. On
any error the previous matrices are kept.
*/
func (ue *UnitaryError) SetUnitaries(mats []Matrix) error {
	unitaries, err := ue.checkUnitaries(mats)
	if err != nil {
		return err
	}

	if ue.probabilities != nil && ue.probabilities.Outcomes() != len(unitaries) {
		return configErrorf(
			"%d unitaries for %d probabilities", len(unitaries), ue.probabilities.Outcomes(),
		)
	}

	ue.unitaries = unitaries

	errnie.Info("UnitaryError.SetUnitaries - count %v", len(unitaries))

	return nil
}

/*
Configure replaces probabilities and unitaries together. Use it when the
number of outcomes changes, since the individual setters reject a count
that disagrees with the other half of the current configuration.
*/
func (ue *UnitaryError) Configure(probs []float64, mats []Matrix) error {
	dist, err := NewDistribution(probs)
	if err != nil {
		return err
	}

	unitaries, err := ue.checkUnitaries(mats)
	if err != nil {
		return err
	}

	if dist.Outcomes() != len(unitaries) {
		return configErrorf("%d probabilities for %d unitaries", dist.Outcomes(), len(unitaries))
	}

	ue.probabilities = dist
	ue.unitaries = unitaries

	errnie.Info(
		"UnitaryError.Configure - probs %v, identity %v, unitaries %v",
		probs,
		dist.Identity(),
		len(unitaries),
	)

	return nil
}

func (ue *UnitaryError) checkUnitaries(mats []Matrix) ([]Matrix, error) {
	unitaries := make([]Matrix, len(mats))

	for i, m := range mats {
		if m.Dim() == 0 {
			return nil, configErrorf("unitary %d is empty", i)
		}
		if m.Dim() != mats[0].Dim() {
			return nil, configErrorf(
				"unitary %d has dimension %d, want %d", i, m.Dim(), mats[0].Dim(),
			)
		}
		if !m.isFinite() {
			return nil, configErrorf("unitary %d has NaN or Inf entries", i)
		}
		if ue.tolerance > 0 && !m.IsUnitary(ue.tolerance) {
			return nil, configErrorf("matrix %d is not unitary", i)
		}
		unitaries[i] = m.Clone()
	}

	return unitaries, nil
}

// SetErrorsAfter places sampled errors after the original operation.
func (ue *UnitaryError) SetErrorsAfter() {
	ue.errorsAfterOp = true
}

// SetErrorsBefore places sampled errors before the original operation.
func (ue *UnitaryError) SetErrorsBefore() {
	ue.errorsAfterOp = false
}

// CombineError sets whether a sampled error may be fused into the
// original operation when both act on the same qubits.
func (ue *UnitaryError) CombineError(val bool) {
	ue.combineError = val
}

func (ue *UnitaryError) ErrorsAfter() bool {
	return ue.errorsAfterOp
}

func (ue *UnitaryError) CombinesError() bool {
	return ue.combineError
}

// Probabilities returns the non-identity probabilities, or nil when unset.
func (ue *UnitaryError) Probabilities() []float64 {
	if ue.probabilities == nil {
		return nil
	}
	return ue.probabilities.Probabilities()
}

// IdentityProbability returns 1 - sum(probabilities); 1 when unset.
func (ue *UnitaryError) IdentityProbability() float64 {
	if ue.probabilities == nil {
		return 1
	}
	return ue.probabilities.Identity()
}

// Unitaries returns copies of the configured matrices.
func (ue *UnitaryError) Unitaries() []Matrix {
	out := make([]Matrix, len(ue.unitaries))
	for i, m := range ue.unitaries {
		out[i] = m.Clone()
	}
	return out
}

// Configured reports whether every non-identity outcome has a matrix.
func (ue *UnitaryError) Configured() bool {
	if ue.probabilities == nil {
		return false
	}
	return ue.probabilities.Outcomes() == len(ue.unitaries)
}

/*
Sample draws one outcome. The identity outcome returns a nil slice without
allocating. Any other outcome returns a single matrix op on qubits, in
the order given, carrying its own copy of the matrix. An outcome with no
matrix behind it is ErrConsistency.

A matrix whose dimension is not 2^len(qubits) is also ErrConsistency.
This is stricter than simulators that hand any stored matrix back with
the qubits unchanged, as is the default unitarity check in SetUnitaries.

An unconfigured channel has only the identity outcome.
*/
func (ue *UnitaryError) Sample(qubits []int, rng RNG) ([]Op, error) {
	if ue.probabilities == nil {
		return nil, nil
	}

	r := ue.probabilities.Sample(rng)
	if r == 0 {
		return nil, nil
	}

	if r > len(ue.unitaries) {
		return nil, consistencyErrorf(
			"outcome %d drawn but only %d unitaries are set", r, len(ue.unitaries),
		)
	}

	mat := ue.unitaries[r-1]
	if len(qubits) >= 31 || mat.Dim() != 1<<len(qubits) {
		return nil, consistencyErrorf(
			"unitary %d has dimension %d, cannot act on %d qubits", r-1, mat.Dim(), len(qubits),
		)
	}

	return []Op{NewMatrixOp(mat.Clone(), qubits)}, nil
}
