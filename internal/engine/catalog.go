package engine

import (
	"context"
	_ "embed"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type ToolDef struct {
	Zone           Zone   `yaml:"-"`
	Icon           string `yaml:"icon"`
	Title          string `yaml:"title"`
	Description    string `yaml:"description"`
	Category       string `yaml:"category"`
	AutismSpecific bool   `yaml:"autism_specific"`
}

// CategoryDef describes a group of tools, such as sensory or movement.
type CategoryDef struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

type catalog struct {
	categories []CategoryDef
	tools      map[Zone][]ToolDef
}

var loadCatalog = sync.OnceValues(func() (*catalog, error) {
	return parseCatalog(catalogYAML)
})

func parseCatalog(data []byte) (*catalog, error) {
	var raw struct {
		Categories []CategoryDef         `yaml:"categories"`
		Zones      map[string][]ToolDef `yaml:"zones"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse tool catalog: %w", err)
	}

	known := make(map[string]bool, len(raw.Categories))
	for i, c := range raw.Categories {
		if strings.TrimSpace(c.Key) == "" || strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("tool catalog: category #%d needs a key and a name", i+1)
		}
		if known[c.Key] {
			return nil, fmt.Errorf("tool catalog: duplicate category %q", c.Key)
		}
		known[c.Key] = true
	}

	out := &catalog{categories: raw.Categories, tools: make(map[Zone][]ToolDef, len(raw.Zones))}
	for name, tools := range raw.Zones {
		z, err := ParseZone(name)
		if err != nil {
			return nil, fmt.Errorf("tool catalog: %w", err)
		}
		for i := range tools {
			if strings.TrimSpace(tools[i].Title) == "" {
				return nil, fmt.Errorf("tool catalog: %s tool #%d has no title", z, i+1)
			}
			if !known[tools[i].Category] {
				return nil, fmt.Errorf("tool catalog: %s tool %q has unknown category %q", z, tools[i].Title, tools[i].Category)
			}
			tools[i].Zone = z
		}
		out.tools[z] = tools
	}
	return out, nil
}

func builtinCatalog() *catalog {
	c, err := loadCatalog()
	if err != nil {
		// The catalog is compiled in; a parse failure is a build defect.
		panic(err)
	}
	return c
}

// Categories returns the tool categories in display order.
func Categories() []CategoryDef {
	return slices.Clone(builtinCatalog().categories)
}

// FindCategory looks a category up by key, ignoring case.
func FindCategory(key string) *CategoryDef {
	k := strings.TrimSpace(key)
	for _, c := range builtinCatalog().categories {
		if strings.EqualFold(c.Key, k) {
			return &c
		}
	}
	return nil
}

// ToolsForZone returns the suggested tools for z, or nil for an unknown zone.
func ToolsForZone(z Zone) []ToolDef {
	return slices.Clone(builtinCatalog().tools[z])
}

// AllTools returns every tool, zone by zone in display order.
func AllTools() []ToolDef {
	var out []ToolDef
	for _, z := range Zones() {
		out = append(out, builtinCatalog().tools[z]...)
	}
	return out
}

// FindTool looks a tool up by title, ignoring case. Titles shared across
// zones resolve to the first zone in display order.
func FindTool(title string) *ToolDef {
	t := strings.TrimSpace(title)
	for _, def := range AllTools() {
		if strings.EqualFold(def.Title, t) {
			d := def
			return &d
		}
	}
	return nil
}

func ToolsByCategory(category string) []ToolDef {
	var out []ToolDef
	for _, def := range AllTools() {
		if strings.EqualFold(def.Category, category) {
			out = append(out, def)
		}
	}
	return out
}

// AutismSpecificTools returns the tools designed around autistic sensory and
// routine needs, zone by zone.
func AutismSpecificTools() []ToolDef {
	var out []ToolDef
	for _, def := range AllTools() {
		if def.AutismSpecific {
			out = append(out, def)
		}
	}
	return out
}

// RandomToolForZone picks one tool for z using r, or nil if z has none.
func RandomToolForZone(z Zone, r *rand.Rand) *ToolDef {
	tools := ToolsForZone(z)
	if len(tools) == 0 {
		return nil
	}
	d := tools[r.IntN(len(tools))]
	return &d
}

// ToolsForUser returns the tools for z without the user's blocked tools,
// favorites first and otherwise in catalog order.
func ToolsForUser(z Zone, u *UserData) []ToolDef {
	tools := ToolsForZone(z)
	if u == nil {
		return tools
	}
	out := tools[:0]
	for _, t := range tools {
		if !ContainsTitle(u.BlockedTools, t.Title) {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b ToolDef) int {
		fa, fb := ContainsTitle(u.FavoriteTools, a.Title), ContainsTitle(u.FavoriteTools, b.Title)
		switch {
		case fa && !fb:
			return -1
		case fb && !fa:
			return 1
		default:
			return 0
		}
	})
	return out
}

// ToggleFavoriteTool adds title to the favorites, or removes it if present,
// and persists. It reports whether the tool is now a favorite.
func (s *Service) ToggleFavoriteTool(ctx context.Context, title string, u *UserData) (*UserData, bool, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return u, false, err
	}
	if err := requireUserData(u); err != nil {
		return u, false, err
	}

	updated := u.Clone()
	idx := slices.IndexFunc(updated.FavoriteTools, func(f string) bool { return strings.EqualFold(f, t) })
	favorite := idx < 0
	if favorite {
		updated.FavoriteTools = append(updated.FavoriteTools, t)
	} else {
		updated.FavoriteTools = slices.Delete(updated.FavoriteTools, idx, idx+1)
	}

	if err := s.SaveUserData(ctx, updated); err != nil {
		return u, false, err
	}
	return updated, favorite, nil
}

// ContainsTitle reports whether list holds title, ignoring case.
func ContainsTitle(list []string, title string) bool {
	return slices.ContainsFunc(list, func(s string) bool { return strings.EqualFold(s, title) })
}
