// File: tweezer/layout.go
// Role: the per-layout gate tables and their lookup helpers.
// Tables are keyed by tweezer positions, not qubits; the device resolves
// qubits through its global map before consulting them.

package tweezer

import (
	"sort"
)

// multiTime is one multi-qubit table entry: a sorted tweezer group and its
// gate time.
type multiTime struct {
	tweezers []int
	time     float64
}

// layoutInfo holds the gate-time tables and the allowed shifts of one named
// layout.
type layoutInfo struct {
	single map[string]map[int]float64
	two    map[string]map[[2]int]float64
	three  map[string]map[[3]int]float64
	multi  map[string][]multiTime
	shifts map[int][][]int
}

func newLayoutInfo() *layoutInfo {
	return &layoutInfo{
		single: make(map[string]map[int]float64),
		two:    make(map[string]map[[2]int]float64),
		three:  make(map[string]map[[3]int]float64),
		multi:  make(map[string][]multiTime),
		shifts: make(map[int][][]int),
	}
}

// setSingle records time for gate at tweezer, overwriting a previous entry.
func (l *layoutInfo) setSingle(gate string, tweezer int, time float64) {
	table, ok := l.single[gate]
	if !ok {
		table = make(map[int]float64)
		l.single[gate] = table
	}
	table[tweezer] = time
}

func (l *layoutInfo) setTwo(gate string, tweezer0, tweezer1 int, time float64) {
	table, ok := l.two[gate]
	if !ok {
		table = make(map[[2]int]float64)
		l.two[gate] = table
	}
	table[[2]int{tweezer0, tweezer1}] = time
}

func (l *layoutInfo) setThree(gate string, tweezer0, tweezer1, tweezer2 int, time float64) {
	table, ok := l.three[gate]
	if !ok {
		table = make(map[[3]int]float64)
		l.three[gate] = table
	}
	table[[3]int{tweezer0, tweezer1, tweezer2}] = time
}

// setMulti records time for gate on the tweezer group. The group is stored
// sorted, so any permutation of the same tweezers names the same entry.
func (l *layoutInfo) setMulti(gate string, tweezers []int, time float64) {
	group := sortedInts(tweezers)
	entries := l.multi[gate]
	for i := range entries {
		if equalInts(entries[i].tweezers, group) {
			entries[i].time = time

			return
		}
	}
	l.multi[gate] = append(entries, multiTime{tweezers: group, time: time})
}

func (l *layoutInfo) getSingle(gate string, tweezer int) (float64, bool) {
	time, ok := l.single[gate][tweezer]

	return time, ok
}

// getTwo answers for both orders of the pair: an entry set for (a, b) also
// resolves a (b, a) query.
func (l *layoutInfo) getTwo(gate string, tweezer0, tweezer1 int) (float64, bool) {
	table, ok := l.two[gate]
	if !ok {
		return 0, false
	}
	if time, ok := table[[2]int{tweezer0, tweezer1}]; ok {
		return time, true
	}
	time, ok := table[[2]int{tweezer1, tweezer0}]

	return time, ok
}

func (l *layoutInfo) getThree(gate string, tweezer0, tweezer1, tweezer2 int) (float64, bool) {
	time, ok := l.three[gate][[3]int{tweezer0, tweezer1, tweezer2}]

	return time, ok
}

func (l *layoutInfo) getMulti(gate string, tweezers []int) (float64, bool) {
	group := sortedInts(tweezers)
	for _, entry := range l.multi[gate] {
		if equalInts(entry.tweezers, group) {
			return entry.time, true
		}
	}

	return 0, false
}

// hasTweezer reports whether any gate table of the layout mentions tweezer.
func (l *layoutInfo) hasTweezer(tweezer int) bool {
	for _, table := range l.single {
		if _, ok := table[tweezer]; ok {
			return true
		}
	}
	for _, table := range l.two {
		for pair := range table {
			if pair[0] == tweezer || pair[1] == tweezer {
				return true
			}
		}
	}
	for _, table := range l.three {
		for triple := range table {
			if triple[0] == tweezer || triple[1] == tweezer || triple[2] == tweezer {
				return true
			}
		}
	}
	for _, entries := range l.multi {
		for _, entry := range entries {
			for _, tw := range entry.tweezers {
				if tw == tweezer {
					return true
				}
			}
		}
	}

	return false
}

// maxTweezer reports the highest tweezer index any gate table mentions,
// false when every table is empty.
func (l *layoutInfo) maxTweezer() (int, bool) {
	max, found := 0, false
	grow := func(tweezer int) {
		if !found || tweezer > max {
			max, found = tweezer, true
		}
	}
	for _, table := range l.single {
		for tweezer := range table {
			grow(tweezer)
		}
	}
	for _, table := range l.two {
		for pair := range table {
			grow(pair[0])
			grow(pair[1])
		}
	}
	for _, table := range l.three {
		for triple := range table {
			grow(triple[0])
			grow(triple[1])
			grow(triple[2])
		}
	}
	for _, entries := range l.multi {
		for _, entry := range entries {
			for _, tw := range entry.tweezers {
				grow(tw)
			}
		}
	}

	return max, found
}

// clone deep-copies the layout info.
func (l *layoutInfo) clone() *layoutInfo {
	out := newLayoutInfo()
	for gate, table := range l.single {
		copied := make(map[int]float64, len(table))
		for tweezer, time := range table {
			copied[tweezer] = time
		}
		out.single[gate] = copied
	}
	for gate, table := range l.two {
		copied := make(map[[2]int]float64, len(table))
		for pair, time := range table {
			copied[pair] = time
		}
		out.two[gate] = copied
	}
	for gate, table := range l.three {
		copied := make(map[[3]int]float64, len(table))
		for triple, time := range table {
			copied[triple] = time
		}
		out.three[gate] = copied
	}
	for gate, entries := range l.multi {
		copied := make([]multiTime, len(entries))
		for i, entry := range entries {
			copied[i] = multiTime{tweezers: append([]int(nil), entry.tweezers...), time: entry.time}
		}
		out.multi[gate] = copied
	}
	for tweezer, paths := range l.shifts {
		out.shifts[tweezer] = copyPaths(paths)
	}

	return out
}

// copyPaths deep-copies a list of shift paths.
func copyPaths(paths [][]int) [][]int {
	out := make([][]int, len(paths))
	for i, path := range paths {
		out[i] = append([]int(nil), path...)
	}

	return out
}

// sortedInts returns an ascending copy of values.
func sortedInts(values []int) []int {
	out := append([]int(nil), values...)
	sort.Ints(out)

	return out
}

// equalInts reports element-wise equality.
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
