// Package fiscal holds the statutory rate card: tax slabs, deduction limits,
// surcharge bands and cess for the supported fiscal year. The card is data,
// not code — it is parsed from an embedded YAML document once per invocation
// and never mutated afterwards.
package fiscal

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed ratecard.yaml
var rateCardYAML []byte

// Slab is one progressive bracket. A nil UpTo marks the unbounded top
// bracket; Rate is a fraction in [0, 1] applied to income inside the bracket.
type Slab struct {
	UpTo *float64 `yaml:"up_to"`
	Rate float64  `yaml:"rate"`
}

// Regime describes one of the two statutory computation schemes.
type Regime struct {
	Name              string  `yaml:"name"`
	StandardDeduction float64 `yaml:"standard_deduction"`
	RebateLimit       float64 `yaml:"rebate_limit"`
	SurchargeCap      float64 `yaml:"surcharge_cap"`
	Slabs             []Slab  `yaml:"slabs"`
}

// RateCard is the full statutory configuration for one fiscal year.
type RateCard struct {
	FiscalYear      string  `yaml:"fiscal_year"`
	CessRate        float64 `yaml:"cess_rate"`
	BasicPayRatio   float64 `yaml:"basic_pay_ratio"`
	HRAMetroRate    float64 `yaml:"hra_metro_rate"`
	HRANonMetroRate float64 `yaml:"hra_non_metro_rate"`
	PFRate          float64 `yaml:"pf_rate"`
	Section80CLimit float64 `yaml:"section_80c_limit"`
	Section80DLimit float64 `yaml:"section_80d_limit"`
	SurchargeBands  []Slab  `yaml:"surcharge_bands"`
	OldRegime       Regime  `yaml:"old_regime"`
	NewRegime       Regime  `yaml:"new_regime"`
}

// Load parses and validates the embedded rate card.
func Load() (*RateCard, error) {
	card := &RateCard{}
	if err := yaml.Unmarshal(rateCardYAML, card); err != nil {
		return nil, fmt.Errorf("failed to parse rate card: %w", err)
	}
	if err := card.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rate card: %w", err)
	}
	return card, nil
}

// Validate checks the structural invariants of the card: every fraction in
// [0, 1], positive limits, and slab tables that ascend strictly and end in an
// unbounded bracket.
func (c *RateCard) Validate() error {
	fractions := map[string]float64{
		"cess_rate":          c.CessRate,
		"basic_pay_ratio":    c.BasicPayRatio,
		"hra_metro_rate":     c.HRAMetroRate,
		"hra_non_metro_rate": c.HRANonMetroRate,
		"pf_rate":            c.PFRate,
	}
	for name, v := range fractions {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %v", name, v)
		}
	}
	if c.Section80CLimit < 0 || c.Section80DLimit < 0 {
		return fmt.Errorf("deduction limits must be non-negative")
	}
	if err := validateSlabs("surcharge_bands", c.SurchargeBands); err != nil {
		return err
	}
	for _, regime := range []*Regime{&c.OldRegime, &c.NewRegime} {
		if regime.Name == "" {
			return fmt.Errorf("regime name must not be empty")
		}
		if regime.StandardDeduction < 0 || regime.RebateLimit < 0 {
			return fmt.Errorf("%s: deduction and rebate limits must be non-negative", regime.Name)
		}
		if regime.SurchargeCap < 0 || regime.SurchargeCap > 1 {
			return fmt.Errorf("%s: surcharge_cap must be in [0, 1]", regime.Name)
		}
		if err := validateSlabs(regime.Name, regime.Slabs); err != nil {
			return err
		}
	}
	return nil
}

func validateSlabs(name string, slabs []Slab) error {
	if len(slabs) == 0 {
		return fmt.Errorf("%s: slab table is empty", name)
	}
	prev := 0.0
	for i, s := range slabs {
		if s.Rate < 0 || s.Rate > 1 {
			return fmt.Errorf("%s: slab %d rate must be in [0, 1], got %v", name, i, s.Rate)
		}
		if s.UpTo == nil {
			if i != len(slabs)-1 {
				return fmt.Errorf("%s: slab %d is unbounded but not last", name, i)
			}
			return nil
		}
		if *s.UpTo <= prev {
			return fmt.Errorf("%s: slab %d upper bound %v does not ascend", name, i, *s.UpTo)
		}
		prev = *s.UpTo
	}
	return fmt.Errorf("%s: last slab must be unbounded", name)
}
