package venues

import (
	"fmt"
	"os"

	"github.com/Black-Room-Studios/livevibe-server/internal/models"
	"gopkg.in/yaml.v3"
)

// Registry is the process-lifetime list of venues, in scoring order.
type Registry []models.Venue

// defaultRegistry covers downtown Ventura. Used when no venue file is
// configured.
var defaultRegistry = Registry{
	{ID: "saloon", Name: "The Saloon", Lat: 34.280234, Lng: -119.294682},
	{ID: "topa-topa", Name: "Topa Topa Brewing Co.", Lat: 34.279488, Lng: -119.295141},
	{ID: "winchesters", Name: "Winchesters Grill & Saloon", Lat: 34.280871, Lng: -119.293964},
	{ID: "bombays", Name: "Bombay Bar & Grill", Lat: 34.279107, Lng: -119.293556},
}

// LoadRegistry reads venues from a YAML file, or returns the built-in
// registry when path is empty.
func LoadRegistry(path string) (Registry, error) {
	if path == "" {
		return defaultRegistry, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read venues file: %w", err)
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse venues file: %w", err)
	}
	return reg, nil
}
