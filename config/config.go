// Package config loads routing scenarios from YAML files: engine tuning,
// environment geometry, and the route requests to run. The CLI is the main
// consumer; tests use it for reproducible fixtures.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wireroute/core"
	"wireroute/routing"
	"wireroute/wire"
)

// Scenario is the YAML schema for a batch routing run.
type Scenario struct {
	// Engine tuning; zero values fall back to engine defaults.
	GridResolutionFt float64 `yaml:"grid_resolution_ft"`
	SearchMarginFt   float64 `yaml:"search_margin_ft"`
	LaborRatePerFt   float64 `yaml:"labor_rate_per_ft"`

	Endpoints []Endpoint   `yaml:"endpoints"`
	Obstacles []Obstacle   `yaml:"obstacles"`
	Conduits  []Conduit    `yaml:"conduits"`
	Requests  []RouteQuery `yaml:"requests"`
}

// Endpoint names a device or panel location.
type Endpoint struct {
	ID string  `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// Obstacle is an axis-aligned rectangle in the floor plan.
type Obstacle struct {
	ID       string  `yaml:"id"`
	MinX     float64 `yaml:"min_x"`
	MinY     float64 `yaml:"min_y"`
	MaxX     float64 `yaml:"max_x"`
	MaxY     float64 `yaml:"max_y"`
	Height   float64 `yaml:"height"`
	Category string  `yaml:"category"`
}

// Conduit is an installed raceway. ID may be omitted; the engine assigns one.
type Conduit struct {
	ID            string  `yaml:"id"`
	StartX        float64 `yaml:"start_x"`
	StartY        float64 `yaml:"start_y"`
	EndX          float64 `yaml:"end_x"`
	EndY          float64 `yaml:"end_y"`
	DiameterIn    float64 `yaml:"diameter_in"`
	Material      string  `yaml:"material"`
	UsedFillArea  float64 `yaml:"used_fill_area"`
	InstalledCost float64 `yaml:"installed_cost"`
}

// RouteQuery is one route request to run.
type RouteQuery struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Wire string `yaml:"wire"`
	Mode string `yaml:"mode"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("config: parsing scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks identifiers, wire types, and modes before any engine work.
func (s *Scenario) Validate() error {
	known := make(map[string]bool, len(s.Endpoints))
	for i, ep := range s.Endpoints {
		if ep.ID == "" {
			return fmt.Errorf("config: endpoint %d has no id", i)
		}
		known[ep.ID] = true
	}
	for i, q := range s.Requests {
		if !known[q.From] {
			return fmt.Errorf("config: request %d references unknown endpoint %q", i, q.From)
		}
		if !known[q.To] {
			return fmt.Errorf("config: request %d references unknown endpoint %q", i, q.To)
		}
		if _, err := wire.Parse(q.Wire); err != nil {
			return fmt.Errorf("config: request %d: %w", i, err)
		}
		if _, ok := core.ParseRoutingMode(q.Mode); !ok {
			return fmt.Errorf("config: request %d has unknown routing mode %q", i, q.Mode)
		}
	}
	return nil
}

// EngineOptions translates scenario tuning into engine options.
func (s *Scenario) EngineOptions() []routing.Option {
	var opts []routing.Option
	if s.GridResolutionFt > 0 {
		opts = append(opts, routing.WithGridResolution(s.GridResolutionFt))
	}
	if s.SearchMarginFt > 0 {
		opts = append(opts, routing.WithSearchMargin(s.SearchMarginFt))
	}
	if s.LaborRatePerFt > 0 {
		opts = append(opts, routing.WithLaborRate(s.LaborRatePerFt))
	}
	return opts
}

// Apply registers the scenario's geometry and endpoints on an engine.
func (s *Scenario) Apply(engine *routing.Engine) {
	for _, ep := range s.Endpoints {
		engine.SetEndpoint(ep.ID, core.Point{X: ep.X, Y: ep.Y})
	}
	for _, o := range s.Obstacles {
		engine.AddObstacle(core.Obstacle{
			ID:       o.ID,
			Min:      core.Point{X: o.MinX, Y: o.MinY},
			Max:      core.Point{X: o.MaxX, Y: o.MaxY},
			Height:   o.Height,
			Category: o.Category,
		})
	}
	for _, c := range s.Conduits {
		engine.AddConduit(core.ConduitRun{
			ID:            c.ID,
			Start:         core.Point{X: c.StartX, Y: c.StartY},
			End:           core.Point{X: c.EndX, Y: c.EndY},
			Diameter:      c.DiameterIn,
			Material:      c.Material,
			UsedFillArea:  c.UsedFillArea,
			InstalledCost: c.InstalledCost,
		})
	}
}

// Run executes every request against the engine and collects the results.
func (s *Scenario) Run(engine *routing.Engine) ([]routing.Result, error) {
	results := make([]routing.Result, 0, len(s.Requests))
	for _, q := range s.Requests {
		wt, err := wire.Parse(q.Wire)
		if err != nil {
			return nil, err
		}
		mode, _ := core.ParseRoutingMode(q.Mode)
		result, err := engine.Route(q.From, q.To, wt, mode)
		if err != nil {
			return nil, fmt.Errorf("routing %s -> %s: %w", q.From, q.To, err)
		}
		results = append(results, result)
	}
	return results, nil
}
