package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// motionEventDoc, eventExitDoc, logicExitDoc, and phyEffDoc mirror the JSON
// shape internal/action/catalog.EntryDocument accepts at runtime. This tool
// decodes the same documents independently rather than importing the main
// module's package, matching the teacher's effectsgen tool, which likewise
// never imports the server module it generates code for — each tool is its
// own module with its own go.mod.
type motionEventDoc struct {
	Event  string `json:"event"`
	Motion string `json:"motion"`
}

type eventExitDoc struct {
	motionEventDoc
	Next string `json:"next"`
}

type logicExitDoc struct {
	Kind   string  `json:"kind"`
	Anim   string  `json:"anim,omitempty"`
	After  float64 `json:"after,omitempty"`
	Motion string  `json:"motion,omitempty"`
	Next   string  `json:"next"`
}

type phyEffDoc struct {
	XVelocity     float64 `json:"xVelocity,omitempty"`
	XAcceleration float64 `json:"xAcceleration,omitempty"`
	YVelocity     float64 `json:"yVelocity,omitempty"`
	YAcceleration float64 `json:"yAcceleration,omitempty"`
}

type entryDoc struct {
	Name           string               `json:"name"`
	Priority       int                  `json:"priority,omitempty"`
	SwitchRelation map[string]bool      `json:"switchRelation,omitempty"`
	EventEnter     []motionEventDoc     `json:"eventEnter,omitempty"`
	EventExit      []eventExitDoc       `json:"eventExit,omitempty"`
	LogicExit      []logicExitDoc       `json:"logicExit,omitempty"`
	AnimFirst      string               `json:"animFirst"`
	AnimNext       map[string]string    `json:"animNext,omitempty"`
	AnimPhysics    map[string]phyEffDoc `json:"animPhysics,omitempty"`

	sourceFile string
}

func loadCatalogFile(path string) ([]entryDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("actiongen: read %s: %w", path, err)
	}
	entries, err := decodeCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("actiongen: parse %s: %w", path, err)
	}
	for i := range entries {
		entries[i].sourceFile = path
	}
	return entries, nil
}

func decodeCatalog(data []byte) ([]entryDoc, error) {
	var docs []entryDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func listCatalogFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("actiongen: read catalog dir %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		paths = append(paths, dir+string(os.PathSeparator)+e.Name())
	}
	sort.Strings(paths)
	return paths, nil
}
