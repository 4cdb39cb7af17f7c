package units

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	//go:embed data/prep.yaml
	prepData []byte

	prepOnce  sync.Once
	prepWords PrepWords
	prepErr   error
)

// PrepWords lists preparation states ("chopped") and the adverbs that may
// precede them ("finely").
type PrepWords struct {
	States  []string `yaml:"states"`
	Adverbs []string `yaml:"adverbs"`
}

// Prep returns the embedded preparation word lists.
func Prep() (PrepWords, error) {
	prepOnce.Do(func() {
		if err := yaml.Unmarshal(prepData, &prepWords); err != nil {
			prepErr = fmt.Errorf("failed to load embedded prep words: %w", err)
		}
	})
	return PrepWords{
		States:  append([]string(nil), prepWords.States...),
		Adverbs: append([]string(nil), prepWords.Adverbs...),
	}, prepErr
}
