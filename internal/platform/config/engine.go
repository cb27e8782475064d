package config

import (
	"math/rand"

	"github.com/louisbranch/netrun/internal/core/random"
	"github.com/louisbranch/netrun/internal/netrun/difficulty"
	"github.com/louisbranch/netrun/internal/netrun/generator"
	"github.com/louisbranch/netrun/internal/platform/i18n"
	"golang.org/x/text/language"
)

// Engine holds the generation settings shared by the commands.
type Engine struct {
	// Seed pins the random source; zero draws a fresh seed.
	Seed       int64  `env:"NETRUN_SEED"`
	Difficulty string `env:"NETRUN_DIFFICULTY" envDefault:"standard"`
	// Depth of zero draws one from the difficulty's range.
	Depth      int    `env:"NETRUN_DEPTH"`
	Branching  bool   `env:"NETRUN_BRANCHING"  envDefault:"true"`
	Guarantees bool   `env:"NETRUN_GUARANTEES" envDefault:"true"`
	Locale     string `env:"NETRUN_LOCALE"     envDefault:"en"`
}

// Storage holds the snapshot store location.
type Storage struct {
	DBPath string `env:"NETRUN_DB_PATH" envDefault:"data/netrun.db"`
}

// Tag resolves the configured locale to a supported language.
func (e Engine) Tag() language.Tag {
	return i18n.ResolveTag(e.Locale)
}

// GeneratorOptions validates the settings and converts them for the
// generator.
func (e Engine) GeneratorOptions() (generator.Options, error) {
	name, err := difficulty.Parse(e.Difficulty)
	if err != nil {
		return generator.Options{}, err
	}
	return generator.Options{
		Difficulty: name,
		Depth:      e.Depth,
		Branching:  e.Branching,
		Guarantees: e.Guarantees,
		Locale:     e.Tag(),
	}, nil
}

// Source returns the random source for the configured seed along with the
// seed in use, so a live run can be replayed.
func (e Engine) Source() (*rand.Rand, int64, error) {
	if e.Seed != 0 {
		return random.New(e.Seed), e.Seed, nil
	}
	return random.NewLive()
}
