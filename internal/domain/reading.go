package domain

// Reading holds one snapshot of current conditions for a location. Rain and
// Snow are zero when the provider response omits their sections; every other
// field comes straight from the provider.
type Reading struct {
	Temperature float64 `json:"temperature" yaml:"temperature"`
	FeelsLike   float64 `json:"feels_like" yaml:"feels_like"`
	Pressure    float64 `json:"pressure" yaml:"pressure"`
	Humidity    float64 `json:"humidity" yaml:"humidity"`
	TempMin     float64 `json:"temp_min" yaml:"temp_min"`
	TempMax     float64 `json:"temp_max" yaml:"temp_max"`
	WindSpeed   float64 `json:"wind_speed" yaml:"wind_speed"`
	Cloudiness  float64 `json:"cloudiness" yaml:"cloudiness"`
	Rain        float64 `json:"rain" yaml:"rain"`
	Snow        float64 `json:"snow" yaml:"snow"`
}

// ReadingField pairs a display label with its value.
type ReadingField struct {
	Label string
	Value float64
}

// Fields returns labeled values in display order. The order is fixed and
// intentional; it is what the terminal renders top to bottom.
func (r Reading) Fields() []ReadingField {
	return []ReadingField{
		{Label: "Temperature", Value: r.Temperature},
		{Label: "Feels Like", Value: r.FeelsLike},
		{Label: "Pressure", Value: r.Pressure},
		{Label: "Humidity", Value: r.Humidity},
		{Label: "Min Temperature", Value: r.TempMin},
		{Label: "Max Temperature", Value: r.TempMax},
		{Label: "Wind Speed", Value: r.WindSpeed},
		{Label: "Cloudiness", Value: r.Cloudiness},
		{Label: "Rain", Value: r.Rain},
		{Label: "Snow", Value: r.Snow},
	}
}
