// Package geo resolves source country names to map coordinates for the
// dashboard's event layer.
package geo

// Lookup maps a country name to a representative coordinate pair.
type Lookup interface {
	Coordinates(country string) (lat, lng float64)
}

// InMemory is a static country table. Countries outside the table resolve
// to (0, 0), which the map client renders at the null island marker rather
// than dropping the event.
type InMemory struct {
	table map[string]coordinate
}

type coordinate struct {
	lat float64
	lng float64
}

// NewInMemory builds the default lookup table keyed by the country names
// the event upstream reports in its sourcecountry field.
func NewInMemory() *InMemory {
	return &InMemory{
		table: map[string]coordinate{
			"United States":  {lat: 37.0902, lng: -95.7129},
			"Canada":         {lat: 56.1304, lng: -106.3468},
			"United Kingdom": {lat: 55.3781, lng: -3.4360},
			"Germany":        {lat: 51.1657, lng: 10.4515},
			"France":         {lat: 46.2276, lng: 2.2137},
			"Japan":          {lat: 36.2048, lng: 138.2529},
			"China":          {lat: 35.8617, lng: 104.1954},
			"India":          {lat: 20.5937, lng: 78.9629},
			"Brazil":         {lat: -14.2350, lng: -51.9253},
			"Australia":      {lat: -25.2744, lng: 133.7751},
			"Russia":         {lat: 61.5240, lng: 105.3188},
			"South Africa":   {lat: -30.5595, lng: 22.9375},
		},
	}
}

func (l *InMemory) Coordinates(country string) (float64, float64) {
	c, ok := l.table[country]
	if !ok {
		return 0, 0
	}
	return c.lat, c.lng
}
