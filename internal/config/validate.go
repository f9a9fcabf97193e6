package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Game.validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	return nil
}

func (g *GameConfig) validate() error {
	if g.CaptureReward <= 0 {
		return fmt.Errorf("capture_reward must be > 0 (got %d)", g.CaptureReward)
	}
	if g.ResolveReward <= g.CaptureReward {
		return fmt.Errorf("resolve_reward must exceed capture_reward (got %d <= %d)", g.ResolveReward, g.CaptureReward)
	}
	if g.CriticalReward < g.ResolveReward {
		return fmt.Errorf("critical_reward must be >= resolve_reward (got %d < %d)", g.CriticalReward, g.ResolveReward)
	}
	if g.CriticalChance < 0 || g.CriticalChance >= 1 {
		return fmt.Errorf("critical_chance must be within [0,1) (got %v)", g.CriticalChance)
	}
	if g.MaxActiveItems <= 0 {
		return fmt.Errorf("max_active_items must be > 0 (got %d)", g.MaxActiveItems)
	}
	if g.MaxContentLen <= 0 {
		return fmt.Errorf("max_content_len must be > 0 (got %d)", g.MaxContentLen)
	}
	return nil
}
