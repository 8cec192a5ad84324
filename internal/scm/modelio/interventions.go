package modelio

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInterventions parses the CLI's --set node=value,node2=value2 flag
// syntax into the map propagation.Propagate and sensitivity.Analyze
// expect.
func ParseInterventions(raw string) (map[string]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	out := make(map[string]float64)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("modelio: malformed intervention %q, want node=value", pair)
		}
		id := strings.TrimSpace(kv[0])
		v, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("modelio: intervention %q: %w", pair, err)
		}
		out[id] = v
	}
	return out, nil
}
