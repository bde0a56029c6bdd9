package session

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedCard is one entry of a seed deck file.
type SeedCard struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type seedFile struct {
	Cards []SeedCard `yaml:"cards"`
}

// LoadSeedFile reads a YAML seed deck of the form
//
//	cards:
//	  - question: "2+2?"
//	    answer: "4"
func LoadSeedFile(path string) ([]SeedCard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a YAML seed deck.
func ParseSeed(data []byte) ([]SeedCard, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed deck: %w", err)
	}
	return f.Cards, nil
}

// Seed appends the cards in order and returns how many were added.
func (s *Session) Seed(ctx context.Context, cards []SeedCard) int {
	for _, c := range cards {
		s.Append(ctx, c.Question, c.Answer)
	}
	return len(cards)
}
