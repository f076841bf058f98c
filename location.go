package pixicoord

// Anything that can be resolved to a pixel by a LocationIndexer. Cartesian and
// Spherical coordinates are locations too.
type Location interface{}

type IndexLocation int

type RingLocation int

type NestLocation int

type UniqueLocation int

type GridLocation struct {
	X int
	Y int
}

// A direction on the unit sphere, in radians.
type GeographicLocation struct {
	Latitude  float64
	Longitude float64
}

type ProjectedLocation struct {
	X float64
	Y float64
}
