package mapping

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed profiles/*.yaml
var embeddedProfiles embed.FS

// Registry holds loaded profiles.
type Registry struct {
	profiles map[string]*Profile
}

// NewRegistry creates a registry with the embedded profiles loaded.
func NewRegistry() (*Registry, error) {
	r := &Registry{profiles: make(map[string]*Profile)}

	entries, err := embeddedProfiles.ReadDir("profiles")
	if err != nil {
		return r, nil
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		data, err := embeddedProfiles.ReadFile("profiles/" + entry.Name())
		if err != nil {
			continue
		}
		profile, err := parseProfile(data)
		if err != nil {
			continue
		}
		if profile.Name == "" {
			profile.Name = strings.TrimSuffix(entry.Name(), ".yaml")
		}
		r.profiles[profile.Name] = profile
	}
	return r, nil
}

// LoadProfile loads a profile from a YAML file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}
	return parseProfile(data)
}

func parseProfile(data []byte) (*Profile, error) {
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile YAML: %w", err)
	}
	return &profile, nil
}

// Get retrieves a profile by name.
func (r *Registry) Get(name string) (*Profile, bool) {
	p, ok := r.profiles[name]
	return p, ok
}

// Register adds a profile, replacing any existing one with the same name.
func (r *Registry) Register(profile *Profile) {
	r.profiles[profile.Name] = profile
}

// List returns registered profile names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
