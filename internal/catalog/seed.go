package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/hasthaat/storefront/internal/domain"
)

//go:embed seed.json
var seedData []byte

// Seed holds the catalog records shipped with the binary
type Seed struct {
	Categories []domain.Category `json:"categories"`
	Artisans   []domain.Artisan  `json:"artisans"`
	Products   []domain.Product  `json:"products"`
}

// LoadSeed parses the embedded catalog seed
func LoadSeed() (*Seed, error) {
	var seed Seed
	if err := json.Unmarshal(seedData, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed: %w", err)
	}
	return &seed, nil
}
