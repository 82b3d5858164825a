package config

import "fmt"

// Variant is a named preset reproducing one of the successive versions of
// the game. Apply overrides only the fields that differ between versions.
type Variant struct {
	ID          string
	Title       string
	Description string
	Apply       func(cfg *Config)
}

// DefaultVariant is used when no variant is requested.
const DefaultVariant = "rounds"

var variants = []Variant{
	{
		ID:          "paddle",
		Title:       "Paddle",
		Description: "Ball and paddle only, sharp steering",
		Apply: func(cfg *Config) {
			cfg.Bricks.Rows = 0
			cfg.Bricks.ResetOffsetRows = 0
			cfg.Physics.Steering = 0.35
		},
	},
	{
		ID:          "bricks",
		Title:       "Bricks",
		Description: "Brick wall without a gap, medium steering",
		Apply: func(cfg *Config) {
			cfg.Bricks.ResetOffsetRows = 0
			cfg.Bricks.Rows = 10
			cfg.Physics.Steering = 0.3
		},
	},
	{
		ID:          "rounds",
		Title:       "Rounds",
		Description: "Brick wall below an empty gap, new round on clear",
		Apply:       func(*Config) {},
	},
}

// Variants returns all presets in release order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// LookupVariant returns the preset with the given ID.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// ApplyVariant modifies the config based on a variant preset.
// An empty id selects DefaultVariant.
func ApplyVariant(cfg *Config, id string) error {
	if id == "" {
		id = DefaultVariant
	}
	v, ok := LookupVariant(id)
	if !ok {
		return fmt.Errorf("config: unknown variant %q", id)
	}
	v.Apply(cfg)
	return nil
}
