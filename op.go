package qnoise

// OpMatrix tags an operation that applies its matrix to its qubits.
const OpMatrix = "mat"

/*
Op is a single instruction in a trajectory: a gate name, the qubits it
acts on, and any matrices it carries. Ops are treated as values; nothing
in this package mutates one after it has been handed out.
*/
type Op struct {
	Name   string
	Qubits []int
	Mats   []Matrix
}

/*
NewMatrixOp builds a matrix-application op. The qubit slice is copied so
the op never aliases the caller's buffer.
*/
func NewMatrixOp(mat Matrix, qubits []int) Op {
	qs := make([]int, len(qubits))
	copy(qs, qubits)

	return Op{
		Name:   OpMatrix,
		Qubits: qs,
		Mats:   []Matrix{mat},
	}
}

// SameQubits is true when both ops act on the same qubits in the same order.
func (op Op) SameQubits(other Op) bool {
	if len(op.Qubits) != len(other.Qubits) {
		return false
	}
	for i, q := range op.Qubits {
		if other.Qubits[i] != q {
			return false
		}
	}
	return true
}
