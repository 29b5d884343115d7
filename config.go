package main

import (
	"gopkg.in/gcfg.v1"

	"github.com/jvreeland/particlebox/sim"
)

// ExampleConfigFile documents every host setting with its default.
const ExampleConfigFile = `[Window]
Width = 800
Height = 800
Title = particlebox

[Sim]
# Number of particles, laid out on a 100-wide grid at (100,100).
Count = 500
# Shared particle radius in pixels.
Radius = 10
# Constant acceleration in pixels per second squared.
GravityX = 10
GravityY = 400
# Fraction of tangential speed removed across a contact, 0 to 1.
Friction = 0
# Fraction of normal speed preserved across a bounce.
Elasticity = 0.8
# Desired simulation step rate in Hz.
TargetRate = 60
# Prune pair tests with the spatial tree.
UseIndex = true
# Seed for the particle color noise field.
Seed = 1`

// hostConfig is the gcfg-style configuration for the host. Every value
// has a default, so the binary runs without a file.
type hostConfig struct {
	Window struct {
		Width  int
		Height int
		Title  string
	}
	Sim struct {
		Count      int
		Radius     float64
		GravityX   float64
		GravityY   float64
		Friction   float64
		Elasticity float64
		TargetRate float64
		UseIndex   bool
		Seed       int64
	}
}

func defaultConfig() hostConfig {
	var cfg hostConfig
	cfg.Window.Width = 800
	cfg.Window.Height = 800
	cfg.Window.Title = "particlebox"

	def := sim.DefaultConfig()
	cfg.Sim.Count = def.Count
	cfg.Sim.Radius = def.Radius
	cfg.Sim.GravityX = def.Gravity.X
	cfg.Sim.GravityY = def.Gravity.Y
	cfg.Sim.Friction = def.Friction
	cfg.Sim.Elasticity = def.Elasticity
	cfg.Sim.TargetRate = def.TargetRate
	cfg.Sim.UseIndex = def.UseIndex
	cfg.Sim.Seed = def.Seed
	return cfg
}

// loadConfig returns the defaults overlaid with the given file, if any.
func loadConfig(path string) (hostConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if err := gcfg.ReadFileInto(&cfg, path); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c hostConfig) simConfig() sim.Config {
	return sim.Config{
		Count:      c.Sim.Count,
		Radius:     c.Sim.Radius,
		Gravity:    sim.Vec2{X: c.Sim.GravityX, Y: c.Sim.GravityY},
		Friction:   c.Sim.Friction,
		Elasticity: c.Sim.Elasticity,
		TargetRate: c.Sim.TargetRate,
		UseIndex:   c.Sim.UseIndex,
		Seed:       c.Sim.Seed,
	}
}
