// File: apidevice/serialize.go
// Role: wire forms of the cloud devices for gob and JSON. The devices are
// pure configuration, so the wire form is just the constructor arguments.

package apidevice

import "github.com/katalvlaran/qryddev/codec"

const (
	squareKind     = "api_square"
	triangularKind = "api_triangular"
)

type squareWire struct {
	Seed                         int    `json:"seed"`
	ControlledZPhaseRelation     string `json:"controlled_z_phase_relation"`
	ControlledPhasePhaseRelation string `json:"controlled_phase_phase_relation"`
}

type triangularWire struct {
	Seed                         int    `json:"seed"`
	ControlledZPhaseRelation     string `json:"controlled_z_phase_relation"`
	ControlledPhasePhaseRelation string `json:"controlled_phase_phase_relation"`
	AllowCCZ                     bool   `json:"allow_ccz_gate"`
	AllowCCP                     bool   `json:"allow_ccp_gate"`
}

// MarshalBinary encodes the device into the gob envelope tagged "api_square".
func (d *SquareDevice) MarshalBinary() ([]byte, error) {
	return codec.EncodeBinaryKind(squareKind, squareWire{
		Seed:                         d.seed,
		ControlledZPhaseRelation:     d.czRelation,
		ControlledPhasePhaseRelation: d.cpRelation,
	})
}

// UnmarshalBinary decodes a gob envelope produced by MarshalBinary.
func (d *SquareDevice) UnmarshalBinary(data []byte) error {
	var w squareWire
	if err := codec.DecodeBinaryKind(data, squareKind, &w); err != nil {
		return err
	}
	*d = *NewSquare(w.Seed, w.ControlledZPhaseRelation, w.ControlledPhasePhaseRelation)

	return nil
}

// MarshalJSON encodes the device into the JSON envelope tagged "api_square".
func (d *SquareDevice) MarshalJSON() ([]byte, error) {
	return codec.EncodeJSONKind(squareKind, squareWire{
		Seed:                         d.seed,
		ControlledZPhaseRelation:     d.czRelation,
		ControlledPhasePhaseRelation: d.cpRelation,
	})
}

// UnmarshalJSON decodes a JSON envelope produced by MarshalJSON.
func (d *SquareDevice) UnmarshalJSON(data []byte) error {
	var w squareWire
	if err := codec.DecodeJSONKind(data, squareKind, &w); err != nil {
		return err
	}
	*d = *NewSquare(w.Seed, w.ControlledZPhaseRelation, w.ControlledPhasePhaseRelation)

	return nil
}

// MarshalBinary encodes the device into the gob envelope tagged
// "api_triangular".
func (d *TriangularDevice) MarshalBinary() ([]byte, error) {
	return codec.EncodeBinaryKind(triangularKind, triangularWire{
		Seed:                         d.seed,
		ControlledZPhaseRelation:     d.czRelation,
		ControlledPhasePhaseRelation: d.cpRelation,
		AllowCCZ:                     d.allowCCZ,
		AllowCCP:                     d.allowCCP,
	})
}

// UnmarshalBinary decodes a gob envelope produced by MarshalBinary.
func (d *TriangularDevice) UnmarshalBinary(data []byte) error {
	var w triangularWire
	if err := codec.DecodeBinaryKind(data, triangularKind, &w); err != nil {
		return err
	}
	*d = *NewTriangular(w.Seed, w.ControlledZPhaseRelation, w.ControlledPhasePhaseRelation, w.AllowCCZ, w.AllowCCP)

	return nil
}

// MarshalJSON encodes the device into the JSON envelope tagged
// "api_triangular".
func (d *TriangularDevice) MarshalJSON() ([]byte, error) {
	return codec.EncodeJSONKind(triangularKind, triangularWire{
		Seed:                         d.seed,
		ControlledZPhaseRelation:     d.czRelation,
		ControlledPhasePhaseRelation: d.cpRelation,
		AllowCCZ:                     d.allowCCZ,
		AllowCCP:                     d.allowCCP,
	})
}

// UnmarshalJSON decodes a JSON envelope produced by MarshalJSON.
func (d *TriangularDevice) UnmarshalJSON(data []byte) error {
	var w triangularWire
	if err := codec.DecodeJSONKind(data, triangularKind, &w); err != nil {
		return err
	}
	*d = *NewTriangular(w.Seed, w.ControlledZPhaseRelation, w.ControlledPhasePhaseRelation, w.AllowCCZ, w.AllowCCP)

	return nil
}
