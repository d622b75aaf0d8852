package roster

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// yamlRosterFile is the top-level YAML structure for roster manifests.
type yamlRosterFile struct {
	Roster []yamlParticipant `yaml:"roster"`
}

// yamlParticipant is the YAML representation of one roster entry.
type yamlParticipant struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

// LoadFromFile reads and validates a roster manifest.
//
// Precondition: path must point to a valid YAML roster file.
// Postcondition: Returns at most MaxEntries participants or a non-nil error.
func LoadFromFile(path string) ([]Participant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file %s: %w", path, err)
	}
	parts, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("roster file %s: %w", path, err)
	}
	return parts, nil
}

// LoadFromBytes parses a roster manifest from YAML bytes. Entries without an
// ID are assigned a fresh UUID; entries without a name inherit their ID.
// Entries beyond MaxEntries are silently dropped.
//
// Precondition: data must be valid YAML conforming to the roster schema.
// Postcondition: Every returned participant has a non-empty unique ID and a
// non-empty name; len(result) <= MaxEntries.
func LoadFromBytes(data []byte) ([]Participant, error) {
	var file yamlRosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing roster YAML: %w", err)
	}

	seen := make(map[string]bool, len(file.Roster))
	parts := make([]Participant, 0, len(file.Roster))
	for i, yp := range file.Roster {
		id := strings.TrimSpace(yp.ID)
		if id == "" {
			id = uuid.New().String()
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate roster id %q at entry %d", id, i)
		}
		seen[id] = true

		name := strings.TrimSpace(yp.Name)
		if name == "" {
			name = id
		}
		parts = append(parts, Participant{ID: id, Name: name, ImageRef: yp.Image})
	}
	return Cap(parts), nil
}

// WriteFile marshals parts as a roster manifest at path.
//
// Precondition: path must be writable.
// Postcondition: The written file round-trips through LoadFromFile.
func WriteFile(path string, parts []Participant) error {
	file := yamlRosterFile{Roster: make([]yamlParticipant, len(parts))}
	for i, p := range parts {
		file.Roster[i] = yamlParticipant{ID: p.ID, Name: p.Name, Image: p.ImageRef}
	}
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshalling roster: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing roster file %s: %w", path, err)
	}
	return nil
}
