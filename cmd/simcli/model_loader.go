package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/modelio"
)

func loadModel(path string) (*domain.Model, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return modelio.LoadJSON(path)
	case ".yaml", ".yml", "":
		return modelio.LoadYAML(path)
	default:
		return nil, fmt.Errorf("simcli: unrecognized model file extension %q", filepath.Ext(path))
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
