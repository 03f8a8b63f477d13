package app

import (
	"context"
	"fmt"

	"cipherlab/internal/profile"
)

// App bundles the dependencies shared by the CLI commands.
type App struct {
	Profiles *profile.Registry
	Profile  string
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	name := cfg.Profile
	if name == "" {
		name = profile.English().Name
	}
	return &App{
		Profiles: profile.NewRegistry(cfg.ProfileDir),
		Profile:  name,
	}
}

// Reference resolves the active reference profile.
func (a *App) Reference(ctx context.Context) (profile.Profile, error) {
	p, err := a.Profiles.Load(ctx, a.Profile)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("load reference profile: %w", err)
	}
	return p, nil
}
