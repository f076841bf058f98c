package pixicoord

import (
	"encoding/binary"
	"encoding/json"
	"math"
)

// Each component is stored as a big-endian IEEE-754 double.
const (
	ComponentSize = 8
	EncodedSize   = 3 * ComponentSize
)

func encodeComponents(a float64, b float64, c float64) []byte {
	v := make([]byte, EncodedSize)
	binary.BigEndian.PutUint64(v[0:], math.Float64bits(a))
	binary.BigEndian.PutUint64(v[ComponentSize:], math.Float64bits(b))
	binary.BigEndian.PutUint64(v[2*ComponentSize:], math.Float64bits(c))
	return v
}

func decodeComponents(v []byte) (float64, float64, float64, error) {
	if len(v) != EncodedSize {
		return 0, 0, 0, ErrEncodedSize
	}
	a := math.Float64frombits(binary.BigEndian.Uint64(v[0:]))
	b := math.Float64frombits(binary.BigEndian.Uint64(v[ComponentSize:]))
	c := math.Float64frombits(binary.BigEndian.Uint64(v[2*ComponentSize:]))
	return a, b, c, nil
}

func (c Cartesian) MarshalBinary() ([]byte, error) {
	return encodeComponents(c.x, c.y, c.z), nil
}

func (c *Cartesian) UnmarshalBinary(data []byte) error {
	x, y, z, err := decodeComponents(data)
	if err != nil {
		return err
	}
	*c, err = NewCartesian(x, y, z)
	return err
}

func (s Spherical) MarshalBinary() ([]byte, error) {
	return encodeComponents(s.rho, s.theta, s.phi), nil
}

// Decoded values go through NewSpherical, so out of range data is rejected and the
// receiver is left untouched.
func (s *Spherical) UnmarshalBinary(data []byte) error {
	rho, theta, phi, err := decodeComponents(data)
	if err != nil {
		return err
	}
	decoded, err := NewSpherical(rho, theta, phi)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

type cartesianJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type sphericalJSON struct {
	Rho   float64 `json:"rho"`
	Theta float64 `json:"theta"`
	Phi   float64 `json:"phi"`
}

func (c Cartesian) MarshalJSON() ([]byte, error) {
	return json.Marshal(cartesianJSON{c.x, c.y, c.z})
}

func (c *Cartesian) UnmarshalJSON(b []byte) error {
	var raw cartesianJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	decoded, err := NewCartesian(raw.X, raw.Y, raw.Z)
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}

func (s Spherical) MarshalJSON() ([]byte, error) {
	return json.Marshal(sphericalJSON{s.rho, s.theta, s.phi})
}

func (s *Spherical) UnmarshalJSON(b []byte) error {
	var raw sphericalJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	decoded, err := NewSpherical(raw.Rho, raw.Theta, raw.Phi)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}
