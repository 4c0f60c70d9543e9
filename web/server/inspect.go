package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/glasscast/glasscast/pkg/geometry"
	"github.com/glasscast/glasscast/pkg/renderer"
	"github.com/glasscast/glasscast/pkg/scene"
)

// InspectResponse describes the first surface behind a pixel
type InspectResponse struct {
	Hit      bool       `json:"hit"`
	Object   string     `json:"object"` // "sphere", "box" or "plane"; empty on miss
	Point    [3]float64 `json:"point"`
	Normal   [3]float64 `json:"normal"`
	Color    [3]float64 `json:"color"`
	Alpha    float64    `json:"alpha"`
	Distance float64    `json:"distance"`
}

// handleInspect casts a single ray through the requested pixel and reports
// the first surface it meets, before any transparency compositing
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	query := r.URL.Query()
	name := query.Get("scene")
	if name == "" {
		name = "demo"
	}

	sc, err := scene.ByName(name)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	width, err := parseIntParam(query, "width", sc.Width, minDimension, maxDimension)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := parseIntParam(query, "height", sc.Height, minDimension, maxDimension)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	x, err := parseIntParam(query, "x", 0, 0, width-1)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", 0, 0, height-1)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	camera := renderer.NewCamera(sc.Camera, width, height)
	ray := camera.RayAt(x, y)

	response := InspectResponse{}

	// Same nearest-surface rule as the tracer: strict ordering, earlier
	// scene objects win ties.
	var nearest geometry.Hit
	var nearestObject scene.Object
	for _, obj := range sc.Objects {
		if hit, ok := obj.Hit(ray); ok && (nearestObject == nil || hit.T < nearest.T) {
			nearest = hit
			nearestObject = obj
		}
	}

	switch {
	case nearestObject != nil:
		response = inspectHit(nearest, objectName(nearestObject))
	case sc.Plane != nil:
		if hit, ok := sc.Plane.Hit(ray); ok {
			response = inspectHit(hit, "plane")
		}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func inspectHit(hit geometry.Hit, object string) InspectResponse {
	return InspectResponse{
		Hit:      true,
		Object:   object,
		Point:    [3]float64{hit.Point.X(), hit.Point.Y(), hit.Point.Z()},
		Normal:   [3]float64{hit.Normal.X(), hit.Normal.Y(), hit.Normal.Z()},
		Color:    [3]float64{hit.Color.X(), hit.Color.Y(), hit.Color.Z()},
		Alpha:    hit.Alpha,
		Distance: hit.T,
	}
}

// objectName reports the concrete geometry behind the scene object
func objectName(obj scene.Object) string {
	switch obj.(type) {
	case *geometry.Sphere:
		return "sphere"
	case *geometry.Box:
		return "box"
	default:
		return fmt.Sprintf("%T", obj)
	}
}
