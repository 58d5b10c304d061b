// File: qrydion/serialize.go
// Role: wire form of GenericDevice for gob and JSON.
// Maps keyed by tuples do not survive JSON, so the wire form flattens every
// table into sorted entry lists. Emission order is fully deterministic:
// gates ascending, then qubit tuples ascending.

package qrydion

import (
	"sort"

	"github.com/katalvlaran/qryddev/codec"
)

const genericKind = "generic"

type singleEntry struct {
	Gate  string  `json:"gate"`
	Qubit int     `json:"qubit"`
	Time  float64 `json:"time"`
}

type twoEntry struct {
	Gate    string  `json:"gate"`
	Control int     `json:"control"`
	Target  int     `json:"target"`
	Time    float64 `json:"time"`
}

type threeEntry struct {
	Gate     string  `json:"gate"`
	Control0 int     `json:"control_0"`
	Control1 int     `json:"control_1"`
	Target   int     `json:"target"`
	Time     float64 `json:"time"`
}

type multiEntry struct {
	Gate   string  `json:"gate"`
	Qubits []int   `json:"qubits"`
	Time   float64 `json:"time"`
}

type genericWire struct {
	NumberQubits int           `json:"number_qubits"`
	Single       []singleEntry `json:"single_qubit_gates"`
	Two          []twoEntry    `json:"two_qubit_gates"`
	Three        []threeEntry  `json:"three_qubit_gates"`
	Multi        []multiEntry  `json:"multi_qubit_gates"`
}

func (d *GenericDevice) wire() genericWire {
	w := genericWire{NumberQubits: d.numberQubits}
	for gate, table := range d.single {
		for q, t := range table {
			w.Single = append(w.Single, singleEntry{Gate: gate, Qubit: q, Time: t})
		}
	}
	sort.Slice(w.Single, func(i, j int) bool {
		if w.Single[i].Gate != w.Single[j].Gate {
			return w.Single[i].Gate < w.Single[j].Gate
		}

		return w.Single[i].Qubit < w.Single[j].Qubit
	})
	for gate, table := range d.two {
		for pair, t := range table {
			w.Two = append(w.Two, twoEntry{Gate: gate, Control: pair[0], Target: pair[1], Time: t})
		}
	}
	sort.Slice(w.Two, func(i, j int) bool {
		a, b := w.Two[i], w.Two[j]
		if a.Gate != b.Gate {
			return a.Gate < b.Gate
		}
		if a.Control != b.Control {
			return a.Control < b.Control
		}

		return a.Target < b.Target
	})
	for gate, table := range d.three {
		for triple, t := range table {
			w.Three = append(w.Three, threeEntry{
				Gate: gate, Control0: triple[0], Control1: triple[1], Target: triple[2], Time: t,
			})
		}
	}
	sort.Slice(w.Three, func(i, j int) bool {
		a, b := w.Three[i], w.Three[j]
		if a.Gate != b.Gate {
			return a.Gate < b.Gate
		}
		if a.Control0 != b.Control0 {
			return a.Control0 < b.Control0
		}
		if a.Control1 != b.Control1 {
			return a.Control1 < b.Control1
		}

		return a.Target < b.Target
	})
	for gate, entries := range d.multi {
		for _, entry := range entries {
			w.Multi = append(w.Multi, multiEntry{Gate: gate, Qubits: sortedCopy(entry.Qubits), Time: entry.Time})
		}
	}
	sort.Slice(w.Multi, func(i, j int) bool {
		a, b := w.Multi[i], w.Multi[j]
		if a.Gate != b.Gate {
			return a.Gate < b.Gate
		}

		return lessInts(a.Qubits, b.Qubits)
	})

	return w
}

func (d *GenericDevice) fromWire(w genericWire) error {
	restored := NewGenericDevice(w.NumberQubits)
	for _, e := range w.Single {
		if err := restored.SetSingleQubitGateTime(e.Gate, e.Qubit, e.Time); err != nil {
			return err
		}
	}
	for _, e := range w.Two {
		if err := restored.SetTwoQubitGateTime(e.Gate, e.Control, e.Target, e.Time); err != nil {
			return err
		}
	}
	for _, e := range w.Three {
		if err := restored.SetThreeQubitGateTime(e.Gate, e.Control0, e.Control1, e.Target, e.Time); err != nil {
			return err
		}
	}
	for _, e := range w.Multi {
		if err := restored.SetMultiQubitGateTime(e.Gate, e.Qubits, e.Time); err != nil {
			return err
		}
	}
	*d = *restored

	return nil
}

// MarshalBinary encodes the device into the gob envelope tagged "generic".
func (d *GenericDevice) MarshalBinary() ([]byte, error) {
	return codec.EncodeBinaryKind(genericKind, d.wire())
}

// UnmarshalBinary decodes a gob envelope produced by MarshalBinary,
// rejecting payloads tagged for another device kind.
func (d *GenericDevice) UnmarshalBinary(data []byte) error {
	var w genericWire
	if err := codec.DecodeBinaryKind(data, genericKind, &w); err != nil {
		return err
	}

	return d.fromWire(w)
}

// MarshalJSON encodes the device into the JSON envelope tagged "generic".
func (d *GenericDevice) MarshalJSON() ([]byte, error) {
	return codec.EncodeJSONKind(genericKind, d.wire())
}

// UnmarshalJSON decodes a JSON envelope produced by MarshalJSON.
func (d *GenericDevice) UnmarshalJSON(data []byte) error {
	var w genericWire
	if err := codec.DecodeJSONKind(data, genericKind, &w); err != nil {
		return err
	}

	return d.fromWire(w)
}

// lessInts orders int slices lexicographically, shorter first on ties.
func lessInts(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
