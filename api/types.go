// File: api/types.go
package api

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Routing defaults the compiler backend expects with every job. They match
// the values the web API documents for the SABRE pass.
const (
	runFormat                  = "qoqo"
	fusionMaxQubits            = 4
	extendedSetSize            = 5
	extendedSetWeight          = 0.5
	reverseTraversalIterations = 3
)

// CloudDevice is the device capability surface a job posting needs: the
// cloud backend identifier and the simulator seed. Both API device variants
// satisfy it.
type CloudDevice interface {
	QRydBackend() string
	Seed() int
}

// RunData is the request body of a job posting. Build it with NewRunData and
// adjust fields before posting; zero values of the routing fields are
// meaningful to the compiler, so hand-built values should start from
// NewRunData rather than a struct literal.
type RunData struct {
	// Format names the program serialization; always "qoqo".
	Format string `json:"format"`
	// Backend selects the cloud device executing the job.
	Backend string `json:"backend"`
	// Dev routes the job to the development deployment.
	Dev bool `json:"dev"`
	// FusionMaxQubits caps the simulator's gate fusion width.
	FusionMaxQubits int `json:"fusion_max_qubits"`
	// SeedSimulator seeds the simulator; nil leaves the seed to the server.
	SeedSimulator *int `json:"seed_simulator"`
	// SeedCompiler seeds the compiler; nil leaves the seed to the server.
	SeedCompiler *int `json:"seed_compiler"`
	// UseExtendedSet enables the extended set in SABRE routing.
	UseExtendedSet bool `json:"use_extended_set"`
	// UseReverseTraversal optimizes the initial qubit mapping with
	// back-and-forth SABRE runs.
	UseReverseTraversal bool `json:"use_reverse_traversal"`
	// ReverseTraversalIterations is the number of back-and-forth runs.
	ReverseTraversalIterations int `json:"reverse_traversal_iterations"`
	// ExtendedSetSize is the size of the extended set.
	ExtendedSetSize int `json:"extended_set_size"`
	// ExtendedSetWeight is the weight given to the extended set.
	ExtendedSetWeight float64 `json:"extended_set_weight"`
	// Program is the serialized quantum program, passed through verbatim.
	Program json.RawMessage `json:"program"`
}

// NewRunData builds the job body for program on device, carrying the
// device's backend identifier and seed plus the documented routing defaults.
func NewRunData(device CloudDevice, program json.RawMessage) RunData {
	seed := device.Seed()

	return RunData{
		Format:                     runFormat,
		Backend:                    device.QRydBackend(),
		FusionMaxQubits:            fusionMaxQubits,
		SeedSimulator:              &seed,
		UseExtendedSet:             true,
		UseReverseTraversal:        true,
		ReverseTraversalIterations: reverseTraversalIterations,
		ExtendedSetSize:            extendedSetSize,
		ExtendedSetWeight:          extendedSetWeight,
		Program:                    program,
	}
}

// JobStatus is the response body of a job's status endpoint.
type JobStatus struct {
	// Status is the job state, e.g. "pending" or "completed".
	Status string `json:"status"`
	// Msg carries the server's detail message, if any.
	Msg string `json:"msg"`
}

// ResultCounts maps hex-encoded measurement outcomes ("0x3") to the number
// of shots that produced them. Bit i of the little-endian byte form of a key
// is the readout of qubit i.
type ResultCounts map[string]uint64

// ResultData wraps the counts in the nesting the result endpoint uses.
type ResultData struct {
	Counts ResultCounts `json:"counts"`
}

// JobResult is the response body of a finished job's result endpoint.
type JobResult struct {
	Data                     ResultData `json:"data"`
	TimeTaken                float64    `json:"time_taken"`
	Noise                    string     `json:"noise"`
	Method                   string     `json:"method"`
	Device                   string     `json:"device"`
	NumQubits                int        `json:"num_qubits"`
	NumClbits                int        `json:"num_clbits"`
	FusionMaxQubits          int        `json:"fusion_max_qubits"`
	FusionAvgQubits          float64    `json:"fusion_avg_qubits"`
	FusionGeneratedGates     int        `json:"fusion_generated_gates"`
	ExecutedSingleQubitGates int        `json:"executed_single_qubit_gates"`
	ExecutedTwoQubitGates    int        `json:"executed_two_qubit_gates"`
	CompilationTime          float64    `json:"compilation_time"`
}

// Shots expands the counts into one readout per shot, each a bit vector of
// length numQubits with the readout of qubit i at index i. Outcomes are
// emitted in lexicographic key order so the expansion is deterministic;
// outcome bits beyond numQubits are dropped.
func (rc ResultCounts) Shots(numQubits int) ([][]bool, error) {
	keys := make([]string, 0, len(rc))
	for key := range rc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var shots [][]bool
	for _, key := range keys {
		bits, err := decodeOutcome(key, numQubits)
		if err != nil {
			return nil, err
		}
		for n := uint64(0); n < rc[key]; n++ {
			shots = append(shots, append([]bool(nil), bits...))
		}
	}

	return shots, nil
}

// decodeOutcome parses one "0x..." outcome key into its first numQubits
// bits, little-endian within the byte sequence.
func decodeOutcome(key string, numQubits int) ([]bool, error) {
	digits, ok := strings.CutPrefix(key, "0x")
	if !ok {
		return nil, fmt.Errorf("%w: outcome %q lacks the 0x prefix", ErrCounts, key)
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: outcome %q: %v", ErrCounts, key, err)
	}

	bits := make([]bool, numQubits)
	for i := range bits {
		if i/8 < len(raw) {
			bits[i] = raw[i/8]>>(i%8)&1 == 1
		}
	}

	return bits, nil
}
