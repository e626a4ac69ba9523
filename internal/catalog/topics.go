package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed topics.yaml
var defaultTopics []byte

// Topic is a hand-curated entry that is not derived from a crawled page.
// Field order matches the catalog layout; unset URLs are left out.
type Topic struct {
	Name           string `yaml:"name" json:"name"`
	Summary        string `yaml:"summary,omitempty" json:"summary,omitempty"`
	MDNURI         string `yaml:"mdnUri,omitempty" json:"mdnUri,omitempty"`
	W3CURI         string `yaml:"w3cUri,omitempty" json:"w3cUri,omitempty"`
	WebPlatformURI string `yaml:"webPlatformUri,omitempty" json:"webPlatformUri,omitempty"`
}

// DefaultTopics returns the built-in topic table.
func DefaultTopics() ([]Topic, error) {
	return ParseTopics(defaultTopics)
}

// LoadTopics reads a topic table from path, or the built-in one when path is empty.
func LoadTopics(path string) ([]Topic, error) {
	if path == "" {
		return DefaultTopics()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topics: %w", err)
	}
	return ParseTopics(b)
}

// ParseTopics decodes a YAML list of topics. Every topic needs a name.
func ParseTopics(b []byte) ([]Topic, error) {
	var topics []Topic
	if err := yaml.Unmarshal(b, &topics); err != nil {
		return nil, fmt.Errorf("decode topics: %w", err)
	}
	for i, t := range topics {
		if t.Name == "" {
			return nil, fmt.Errorf("topic %d has no name", i)
		}
	}
	return topics, nil
}
