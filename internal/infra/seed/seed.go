// Package seed provides initial users and tags for a fresh store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nydiokar/Gary/internal/domain"
)

// Data is the seed file shape.
type Data struct {
	Users []User   `yaml:"users"`
	Tags  []string `yaml:"tags"`
}

// User is one seeded user.
type User struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// Default returns the built-in seed data.
func Default() *Data {
	return &Data{
		Users: []User{
			{ID: "user1", Name: "Manager", Role: "manager"},
			{ID: "user2", Name: "Expert", Role: "expert"},
			{ID: "user3", Name: "Gary", Role: "user"},
			{ID: "user4", Name: "Lary", Role: "user"},
		},
		Tags: []string{"urgent", "review", "bug", "feature"},
	}
}

// Load reads seed data from a YAML file. An empty path or a missing file
// yields the built-in defaults.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}

	var d Data
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return &d, nil
}

// Apply inserts the seed users and tags into the store. Existing rows are
// left alone, so Apply is safe to run on an already-seeded store.
func Apply(ctx context.Context, store domain.Store, clock domain.Clock, d *Data) error {
	return store.WithTx(ctx, func(tx domain.Tx) error {
		now := clock.Now()
		for _, u := range d.Users {
			role, err := domain.ParseRole(u.Role)
			if err != nil {
				return fmt.Errorf("seed user %q: %w", u.ID, err)
			}
			existing, err := tx.Users().Get(u.ID)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}
			if err := tx.Users().Create(&domain.User{
				ID:        u.ID,
				Name:      u.Name,
				Role:      role,
				CreatedAt: now,
			}); err != nil {
				return fmt.Errorf("seed user %q: %w", u.ID, err)
			}
		}
		for _, name := range d.Tags {
			existing, err := tx.Tags().GetByName(name)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}
			if _, err := tx.Tags().Create(name); err != nil {
				return fmt.Errorf("seed tag %q: %w", name, err)
			}
		}
		return nil
	})
}
