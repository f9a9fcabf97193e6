package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"

game:
  capture_reward: 10
  resolve_reward: 50
  critical_reward: 100
  critical_chance: 0.2

log:
  level: "debug"
  format: "text"
`

func TestLoad_FromEnvDefaults(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want default 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("server.read_timeout = %v, want 10s", cfg.Server.ReadTimeout)
	}
	if cfg.Game.CaptureReward != 10 || cfg.Game.ResolveReward != 50 || cfg.Game.CriticalReward != 100 {
		t.Errorf("game rewards = %d/%d/%d, want 10/50/100",
			cfg.Game.CaptureReward, cfg.Game.ResolveReward, cfg.Game.CriticalReward)
	}
	if cfg.Game.CriticalChance != 0.2 {
		t.Errorf("game.critical_chance = %v, want 0.2", cfg.Game.CriticalChance)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want json", cfg.Log.Format)
	}
}

func TestLoad_FromYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("GAME_RESOLVE_REWARD", "75")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Game.ResolveReward != 75 {
		t.Errorf("game.resolve_reward = %d, want env override 75", cfg.Game.ResolveReward)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded with missing explicit CONFIG_PATH")
	}
}

func TestValidate_GameRules(t *testing.T) {
	base := func() *Config {
		return &Config{
			Auth: AuthConfig{JWTSecret: "this-is-a-very-long-jwt-secret-for-testing-32+"},
			Game: GameConfig{
				CaptureReward:  10,
				ResolveReward:  50,
				CriticalReward: 100,
				CriticalChance: 0.2,
				MaxActiveItems: 500,
				MaxContentLen:  500,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"short jwt secret", func(c *Config) { c.Auth.JWTSecret = "short" }, true},
		{"resolve not above capture", func(c *Config) { c.Game.ResolveReward = 10 }, true},
		{"critical below resolve", func(c *Config) { c.Game.CriticalReward = 40 }, true},
		{"chance of one", func(c *Config) { c.Game.CriticalChance = 1 }, true},
		{"negative chance", func(c *Config) { c.Game.CriticalChance = -0.1 }, true},
		{"zero capture reward", func(c *Config) { c.Game.CaptureReward = 0 }, true},
		{"zero max items", func(c *Config) { c.Game.MaxActiveItems = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
