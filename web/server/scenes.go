package server

import (
	"encoding/json"
	"net/http"

	"github.com/glasscast/glasscast/pkg/renderer"
	"github.com/glasscast/glasscast/pkg/scene"
)

// handleScenes lists the available scenes, or returns the defaults and
// request limits for one scene when a name is given
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	name := r.URL.Query().Get("scene")
	if name == "" {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(scene.List())
		return
	}

	sc, err := scene.ByName(name)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := map[string]interface{}{
		"scene": name,
		"defaults": map[string]interface{}{
			"width":    sc.Width,
			"height":   sc.Height,
			"tileSize": renderer.DefaultConfig().TileSize,
		},
		"limits": map[string]interface{}{
			"width": map[string]int{
				"min": minDimension,
				"max": maxDimension,
			},
			"height": map[string]int{
				"min": minDimension,
				"max": maxDimension,
			},
			"workers": map[string]int{
				"min": 1,
				"max": maxWorkers,
			},
		},
		"objects":  len(sc.Objects),
		"hasLight": sc.Light != nil,
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
