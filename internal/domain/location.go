package domain

// Location is a named point on earth. Coordinates are kept as the decimal
// text produced by the geocoder so the exact values are reused verbatim in
// later weather lookups instead of round-tripping through floats.
type Location struct {
	Name string `json:"name"`
	Lat  string `json:"lat"`
	Lon  string `json:"lon"`
}
