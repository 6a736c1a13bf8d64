package config

import (
	"fmt"
	"os"

	"gonavquery/logger"
	"gonavquery/navmesh"

	"gopkg.in/yaml.v3"
)

// Config is the engine configuration loaded from YAML. Zero-value fields
// fall back to the defaults below, so a partial file is fine.
type Config struct {
	PoolSize           int32         `yaml:"poolSize"`
	CheckNavMeshBottom float32       `yaml:"checkNavMeshBottom"`
	CheckNavMeshTop    float32       `yaml:"checkNavMeshTop"`
	DrawNavMesh        bool          `yaml:"drawNavMesh"`
	PathFind           PathFind      `yaml:"pathFind"`
	Log                logger.Config `yaml:"log"`
}

// PathFind carries the default per-query budgets and reserved knobs.
type PathFind struct {
	MaxIterations         int32   `yaml:"maxIterations"`
	MaxNodes              int32   `yaml:"maxNodes"`
	MaxDistance           float32 `yaml:"maxDistance"`
	StraightPathTolerance float32 `yaml:"straightPathTolerance"`
	OptimizePath          bool    `yaml:"optimizePath"`
	AreaFlags             uint32  `yaml:"areaFlags"`
	ExcludedAreaFlags     uint32  `yaml:"excludedAreaFlags"`
	Timeout               float32 `yaml:"timeout"`
}

func Default() *Config {
	opts := navmesh.DefaultPathFindOptions()
	return &Config{
		PoolSize:           navmesh.POOL_SIZE,
		CheckNavMeshBottom: navmesh.DEFAULT_CHECK_BOTTOM,
		CheckNavMeshTop:    navmesh.DEFAULT_CHECK_TOP,
		PathFind: PathFind{
			MaxIterations:         opts.MaxIterations,
			MaxNodes:              opts.MaxNodes,
			MaxDistance:           opts.MaxDistance,
			StraightPathTolerance: opts.StraightPathTolerance,
			OptimizePath:          opts.OptimizePath,
			AreaFlags:             opts.AreaFlags,
			ExcludedAreaFlags:     opts.ExcludedAreaFlags,
			Timeout:               opts.Timeout,
		},
		Log: logger.DefaultConfig(),
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// PathFindOptions converts the configured defaults into the engine's
// options struct.
func (c *Config) PathFindOptions() navmesh.PathFindOptions {
	return navmesh.PathFindOptions{
		MaxIterations:         c.PathFind.MaxIterations,
		MaxNodes:              c.PathFind.MaxNodes,
		MaxDistance:           c.PathFind.MaxDistance,
		StraightPathTolerance: c.PathFind.StraightPathTolerance,
		OptimizePath:          c.PathFind.OptimizePath,
		AreaFlags:             c.PathFind.AreaFlags,
		ExcludedAreaFlags:     c.PathFind.ExcludedAreaFlags,
		Timeout:               c.PathFind.Timeout,
	}
}
