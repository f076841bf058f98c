package pixicoord

import (
	"errors"
	"fmt"
)

var (
	ErrEncodedSize = errors.New("encoded coordinate must be exactly 24 bytes")
)

// Returned when a coordinate component falls outside of the range allowed by its
// representation.
type ComponentOutOfBoundsError struct {
	Component string
	Value     float64
}

func NewComponentOutOfBoundsError(component string, value float64) ComponentOutOfBoundsError {
	return ComponentOutOfBoundsError{
		Component: component,
		Value:     value,
	}
}

func (c ComponentOutOfBoundsError) Error() string {
	return fmt.Sprintf("%s = %v is out of bounds", c.Component, c.Value)
}

type LocationNotSupportedError struct {
	Projection string
	Location   Location
}

func NewLocationNotSupportedError(projection string, location Location) *LocationNotSupportedError {
	return &LocationNotSupportedError{
		Projection: projection,
		Location:   location,
	}
}

func (l LocationNotSupportedError) Error() string {
	return fmt.Sprintf("location %v not supported by projection %s", l.Location, l.Projection)
}

type LocationOutOfBoundsError struct {
	Location Location
}

func NewLocationOutOfBoundsError(location Location) LocationOutOfBoundsError {
	return LocationOutOfBoundsError{Location: location}
}

func (l LocationOutOfBoundsError) Error() string {
	return fmt.Sprintf("location %v was out of bounds", l.Location)
}

type UnknownIndexerError struct {
	Name string
}

func NewUnknownIndexerError(name string) UnknownIndexerError {
	return UnknownIndexerError{Name: name}
}

func (u UnknownIndexerError) Error() string {
	return fmt.Sprintf("unknown indexer '%s'", u.Name)
}
