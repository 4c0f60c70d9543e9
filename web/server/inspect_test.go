package server

import (
	"encoding/json"
	"math"
	"net/http/httptest"
	"testing"
)

func TestHandleInspect(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantObject  string
		wantAlpha   float64
		wantColor   [3]float64
		minDistance float64
		maxDistance float64
	}{
		{
			name:        "Pixel on the sphere",
			query:       "scene=demo&x=296&y=299",
			wantObject:  "sphere",
			wantAlpha:   0.5,
			wantColor:   [3]float64{1, 0.3, 0.3},
			minDistance: 3,
			maxDistance: 4,
		},
		{
			name:        "Pixel on the box",
			query:       "scene=demo&x=518&y=301",
			wantObject:  "box",
			wantAlpha:   0.65,
			wantColor:   [3]float64{0.3, 0.3, 1},
			minDistance: 3,
			maxDistance: 4,
		},
		{
			name:        "Center pixel reaches the floor",
			query:       "scene=demo&x=400&y=300",
			wantObject:  "plane",
			wantAlpha:   1,
			wantColor:   [3]float64{0.3, 0.3, 0.3},
			minDistance: 5,
			maxDistance: 7,
		},
	}

	s := NewServer(8080)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/inspect?"+tt.query, nil)
			rec := httptest.NewRecorder()

			s.handleInspect(rec, req)

			if rec.Code != 200 {
				t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
			}

			var resp InspectResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("Unexpected error decoding response: %v", err)
			}

			if !resp.Hit {
				t.Fatal("Expected a hit, got a miss")
			}
			if resp.Object != tt.wantObject {
				t.Errorf("Expected object %q, got %q", tt.wantObject, resp.Object)
			}
			if resp.Alpha != tt.wantAlpha {
				t.Errorf("Expected alpha %v, got %v", tt.wantAlpha, resp.Alpha)
			}
			for i := 0; i < 3; i++ {
				if math.Abs(resp.Color[i]-tt.wantColor[i]) > 1e-9 {
					t.Errorf("Expected color %v, got %v", tt.wantColor, resp.Color)
					break
				}
			}
			if resp.Distance < tt.minDistance || resp.Distance > tt.maxDistance {
				t.Errorf("Expected distance between %v and %v, got %v",
					tt.minDistance, tt.maxDistance, resp.Distance)
			}
		})
	}
}

func TestHandleInspect_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "Unknown scene", query: "scene=nonexistent&x=0&y=0"},
		{name: "Pixel outside the image", query: "scene=demo&x=800&y=0"},
		{name: "Negative pixel", query: "scene=demo&x=-1&y=0"},
	}

	s := NewServer(8080)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/inspect?"+tt.query, nil)
			rec := httptest.NewRecorder()

			s.handleInspect(rec, req)

			if rec.Code != 400 {
				t.Fatalf("Expected status 400, got %d", rec.Code)
			}
		})
	}
}
