// File: qrydion/generic.go
// Role: GenericDevice — explicit gate tables keyed by qubit tuples.
// Determinism:
//   - TwoQubitEdges returns pairs sorted by (A, B).
//   - Multi-qubit keys are canonicalized to sorted qubit lists.

package qrydion

import (
	"fmt"
	"sort"
)

// MultiQubitTime is one multi-qubit gate-table entry: the sorted qubit group
// and its execution time in seconds.
type MultiQubitTime struct {
	Qubits []int
	Time   float64
}

// GenericDevice is the universal fallback device representation: explicit
// per-arity gate tables with no geometry, no layouts, and no symbolic phase
// relations. Any device variant converts into it via Generic().
//
// Two- and three-qubit tables are keyed by ordered tuples; devices whose
// availability is order-insensitive export every ordering. Multi-qubit
// entries are keyed by the sorted qubit group.
type GenericDevice struct {
	numberQubits int
	single       map[string]map[int]float64
	two          map[string]map[[2]int]float64
	three        map[string]map[[3]int]float64
	multi        map[string][]MultiQubitTime
}

// NewGenericDevice creates an empty GenericDevice for numberQubits qubits.
// Complexity: O(1).
func NewGenericDevice(numberQubits int) *GenericDevice {
	return &GenericDevice{
		numberQubits: numberQubits,
		single:       make(map[string]map[int]float64),
		two:          make(map[string]map[[2]int]float64),
		three:        make(map[string]map[[3]int]float64),
		multi:        make(map[string][]MultiQubitTime),
	}
}

// NumberQubits reports the qubit count the tables were sized for.
func (d *GenericDevice) NumberQubits() int { return d.numberQubits }

// checkRange validates every qubit index against the device range.
func (d *GenericDevice) checkRange(qubits ...int) error {
	for _, q := range qubits {
		if q < 0 || q >= d.numberQubits {
			return fmt.Errorf("%w: qubit %d, device has %d", ErrQubitOutOfRange, q, d.numberQubits)
		}
	}

	return nil
}

// SetSingleQubitGateTime records gate as available on qubit with the given
// execution time. Overwrites any previous entry.
func (d *GenericDevice) SetSingleQubitGateTime(gate string, qubit int, time float64) error {
	if err := d.checkRange(qubit); err != nil {
		return err
	}
	table, ok := d.single[gate]
	if !ok {
		table = make(map[int]float64)
		d.single[gate] = table
	}
	table[qubit] = time

	return nil
}

// SetTwoQubitGateTime records gate as available on the ordered control/target
// pair. Overwrites any previous entry.
func (d *GenericDevice) SetTwoQubitGateTime(gate string, control, target int, time float64) error {
	if err := d.checkRange(control, target); err != nil {
		return err
	}
	table, ok := d.two[gate]
	if !ok {
		table = make(map[[2]int]float64)
		d.two[gate] = table
	}
	table[[2]int{control, target}] = time

	return nil
}

// SetThreeQubitGateTime records gate as available on the ordered
// control0/control1/target triple. Overwrites any previous entry.
func (d *GenericDevice) SetThreeQubitGateTime(gate string, control0, control1, target int, time float64) error {
	if err := d.checkRange(control0, control1, target); err != nil {
		return err
	}
	table, ok := d.three[gate]
	if !ok {
		table = make(map[[3]int]float64)
		d.three[gate] = table
	}
	table[[3]int{control0, control1, target}] = time

	return nil
}

// SetMultiQubitGateTime records gate as available on the qubit group.
// The group is canonicalized to sorted order; an entry with the same group
// is overwritten.
func (d *GenericDevice) SetMultiQubitGateTime(gate string, qubits []int, time float64) error {
	if err := d.checkRange(qubits...); err != nil {
		return err
	}
	key := sortedCopy(qubits)
	entries := d.multi[gate]
	for i := range entries {
		if equalInts(entries[i].Qubits, key) {
			entries[i].Time = time

			return nil
		}
	}
	d.multi[gate] = append(entries, MultiQubitTime{Qubits: key, Time: time})

	return nil
}

// SingleQubitGateTime resolves gate on qubit. Miss means unavailable.
func (d *GenericDevice) SingleQubitGateTime(gate string, qubit int) (float64, bool) {
	t, ok := d.single[gate][qubit]

	return t, ok
}

// TwoQubitGateTime resolves gate on the ordered control/target pair.
func (d *GenericDevice) TwoQubitGateTime(gate string, control, target int) (float64, bool) {
	t, ok := d.two[gate][[2]int{control, target}]

	return t, ok
}

// ThreeQubitGateTime resolves gate on the ordered triple.
func (d *GenericDevice) ThreeQubitGateTime(gate string, control0, control1, target int) (float64, bool) {
	t, ok := d.three[gate][[3]int{control0, control1, target}]

	return t, ok
}

// MultiQubitGateTime resolves gate on the qubit group, insensitive to the
// order of qubits.
func (d *GenericDevice) MultiQubitGateTime(gate string, qubits []int) (float64, bool) {
	key := sortedCopy(qubits)
	for _, entry := range d.multi[gate] {
		if equalInts(entry.Qubits, key) {
			return entry.Time, true
		}
	}

	return 0, false
}

// TwoQubitEdges exports every unordered qubit pair covered by at least one
// two-qubit gate entry in either direction, sorted by (A, B).
// Complexity: O(T log T) over T table entries.
func (d *GenericDevice) TwoQubitEdges() []Edge {
	seen := make(map[Edge]struct{})
	for _, table := range d.two {
		for pair := range table {
			a, b := pair[0], pair[1]
			if a == b {
				continue
			}
			if a > b {
				a, b = b, a
			}
			seen[Edge{A: a, B: b}] = struct{}{}
		}
	}
	edges := make([]Edge, 0, len(seen))
	for e := range seen {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}

		return edges[i].B < edges[j].B
	})

	return edges
}

// Generic returns a deep copy of the device: a GenericDevice is already its
// own explicit form.
func (d *GenericDevice) Generic() (*GenericDevice, error) {
	return d.Clone(), nil
}

// ChangeDevice always fails: generic tables carry no layouts or mappings to
// change.
func (d *GenericDevice) ChangeDevice(name string, _ []byte) error {
	return fmt.Errorf("generic device: %q: %w", name, ErrUnsupportedOperation)
}

// Clone returns a fully independent deep copy: mutating the clone never
// affects the original, including nested tables.
// Complexity: O(total table entries).
func (d *GenericDevice) Clone() *GenericDevice {
	clone := NewGenericDevice(d.numberQubits)
	for gate, table := range d.single {
		inner := make(map[int]float64, len(table))
		for q, t := range table {
			inner[q] = t
		}
		clone.single[gate] = inner
	}
	for gate, table := range d.two {
		inner := make(map[[2]int]float64, len(table))
		for k, t := range table {
			inner[k] = t
		}
		clone.two[gate] = inner
	}
	for gate, table := range d.three {
		inner := make(map[[3]int]float64, len(table))
		for k, t := range table {
			inner[k] = t
		}
		clone.three[gate] = inner
	}
	for gate, entries := range d.multi {
		copied := make([]MultiQubitTime, len(entries))
		for i, entry := range entries {
			copied[i] = MultiQubitTime{Qubits: sortedCopy(entry.Qubits), Time: entry.Time}
		}
		clone.multi[gate] = copied
	}

	return clone
}

// sortedCopy returns an independent ascending copy of qubits.
func sortedCopy(qubits []int) []int {
	out := make([]int, len(qubits))
	copy(out, qubits)
	sort.Ints(out)

	return out
}

// equalInts reports element-wise equality of two int slices.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
