package geo

import "testing"

func TestInMemoryCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		country string
		wantLat float64
		wantLng float64
	}{
		{
			name:    "known country",
			country: "United States",
			wantLat: 37.0902,
			wantLng: -95.7129,
		},
		{
			name:    "known country southern hemisphere",
			country: "Brazil",
			wantLat: -14.2350,
			wantLng: -51.9253,
		},
		{
			name:    "unknown country resolves to origin",
			country: "Atlantis",
			wantLat: 0,
			wantLng: 0,
		},
		{
			name:    "empty country resolves to origin",
			country: "",
			wantLat: 0,
			wantLng: 0,
		},
		{
			name:    "lookup is case sensitive",
			country: "united states",
			wantLat: 0,
			wantLng: 0,
		},
	}

	lookup := NewInMemory()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lng := lookup.Coordinates(tt.country)
			if lat != tt.wantLat || lng != tt.wantLng {
				t.Errorf("Coordinates(%q) = (%v, %v), want (%v, %v)", tt.country, lat, lng, tt.wantLat, tt.wantLng)
			}
		})
	}
}
