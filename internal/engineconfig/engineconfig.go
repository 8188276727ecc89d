package engineconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ViewPrefsPath is the default path of the viewer preferences, relative to the process working directory.
const ViewPrefsPath = "config/view.json"

// ViewPrefs holds viewer-only preferences (background, camera control, debug overlays). Persisted
// across runs. Gizmo geometry is configured separately (see gizmo.Def).
type ViewPrefs struct {
	Background          string `json:"background"`
	AllowsCameraControl bool   `json:"allows_camera_control"`
	ShowsStatistics     bool   `json:"shows_statistics"`
	ShowBoundingBoxes   bool   `json:"show_bounding_boxes"`
	ShowWireframe       bool   `json:"show_wireframe"`
	ShowCameras         bool   `json:"show_cameras"`
	TargetFPS           int    `json:"target_fps,omitempty"`
}

// Default returns the debugging setup: gray background, orbit camera, statistics and all debug
// overlays on.
func Default() ViewPrefs {
	return ViewPrefs{
		Background:          "gray",
		AllowsCameraControl: true,
		ShowsStatistics:     true,
		ShowBoundingBoxes:   true,
		ShowWireframe:       true,
		ShowCameras:         true,
		TargetFPS:           60,
	}
}

// Load reads view preferences from path. A missing file yields Default() and no error; a file
// that cannot be read or parsed yields Default() together with the error. Load never creates
// a file. Fields absent from the file keep their defaults.
func Load(path string) (ViewPrefs, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("view prefs: %w", err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("view prefs %s: %w", path, err)
	}
	return p, nil
}

// Save writes view preferences to path, creating the parent directory if needed.
func Save(path string, p ViewPrefs) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
