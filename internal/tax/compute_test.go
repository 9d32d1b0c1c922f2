package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxcalc/internal/fiscal"
)

func fp(v float64) *float64 { return &v }

func breakdowns(t *testing.T, in Input) (Breakdown, Breakdown) {
	t.Helper()
	card := loadCard(t)
	ctx, err := NewSalaryContext(card, in)
	require.NoError(t, err)
	return ComputeOldRegime(card, ctx), ComputeNewRegime(card, ctx)
}

func TestSlabTax(t *testing.T) {
	card := loadCard(t)

	tests := []struct {
		name    string
		slabs   []fiscal.Slab
		taxable float64
		want    float64
	}{
		{name: "old regime zero bracket", slabs: card.OldRegime.Slabs, taxable: 200000, want: 0},
		{name: "old regime first boundary", slabs: card.OldRegime.Slabs, taxable: 250000, want: 0},
		{name: "old regime second slab", slabs: card.OldRegime.Slabs, taxable: 500000, want: 12500},
		{name: "old regime mid slab", slabs: card.OldRegime.Slabs, taxable: 650000, want: 42500},
		{name: "old regime top slab", slabs: card.OldRegime.Slabs, taxable: 1500000, want: 262500},
		{name: "new regime below threshold", slabs: card.NewRegime.Slabs, taxable: 400000, want: 0},
		{name: "new regime second slab", slabs: card.NewRegime.Slabs, taxable: 800000, want: 20000},
		{name: "new regime fourth slab", slabs: card.NewRegime.Slabs, taxable: 1400000, want: 90000},
		{name: "new regime top slab", slabs: card.NewRegime.Slabs, taxable: 3000000, want: 480000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, slabTax(tt.slabs, tt.taxable), 1e-6)
		})
	}
}

func TestSurcharge(t *testing.T) {
	bands := []fiscal.Slab{
		{UpTo: fp(5000000), Rate: 0},
		{UpTo: fp(10000000), Rate: 0.10},
		{UpTo: fp(20000000), Rate: 0.15},
		{UpTo: fp(50000000), Rate: 0.25},
		{Rate: 0.37},
	}

	tests := []struct {
		name    string
		cap     float64
		taxable float64
		baseTax float64
		want    float64
	}{
		{name: "below first threshold", cap: 0.37, taxable: 4000000, baseTax: 100000, want: 0},
		{name: "at first threshold", cap: 0.37, taxable: 5000000, baseTax: 100000, want: 0},
		{name: "ten percent band", cap: 0.37, taxable: 6000000, baseTax: 100000, want: 10000},
		{name: "fifteen percent band", cap: 0.37, taxable: 15000000, baseTax: 100000, want: 15000},
		{name: "twenty-five percent band", cap: 0.37, taxable: 30000000, baseTax: 100000, want: 25000},
		{name: "top band uncapped", cap: 0.37, taxable: 60000000, baseTax: 100000, want: 37000},
		{name: "top band capped", cap: 0.25, taxable: 60000000, baseTax: 100000, want: 25000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, surcharge(bands, tt.cap, tt.taxable, tt.baseTax), 1e-6)
		})
	}
}

func TestComputeMidIncomeMetroNoPF(t *testing.T) {
	old, latest := breakdowns(t, Input{Gross: 1000000, Metro: true})

	// Old regime: gross 10L less HRA 2.5L, 80D 50k, standard deduction 50k.
	assert.InDelta(t, 250000, old.HRAExemption, 1e-6)
	assert.InDelta(t, 0, old.Deduction80C, 1e-6)
	assert.InDelta(t, 50000, old.Deduction80D, 1e-6)
	assert.InDelta(t, 50000, old.StandardDeduction, 1e-6)
	assert.InDelta(t, 0, old.EmployerPFExclusion, 1e-6)
	assert.InDelta(t, 350000, old.TotalDeductions, 1e-6)
	assert.InDelta(t, 650000, old.TaxableIncome, 1e-6)
	assert.InDelta(t, 42500, old.BaseTax, 1e-6)
	assert.InDelta(t, 0, old.Surcharge, 1e-6)
	assert.InDelta(t, 1700, old.Cess, 1e-6)
	assert.InDelta(t, 44200, old.TotalTax, 1e-6)
	assert.InDelta(t, 955800, old.InHandAnnual, 1e-6)
	assert.InDelta(t, 79650, old.MonthlyInHand, 1e-6)
	assert.InDelta(t, 0, old.MonthlyPF, 1e-6)

	// New regime: only its standard deduction applies, and the result sits
	// below the rebate limit, so no tax at all.
	assert.InDelta(t, 75000, latest.TotalDeductions, 1e-6)
	assert.InDelta(t, 925000, latest.TaxableIncome, 1e-6)
	assert.InDelta(t, 0, latest.TotalTax, 1e-6)
	assert.InDelta(t, 1000000, latest.InHandAnnual, 1e-6)
}

func TestComputeBelowOldRebateThreshold(t *testing.T) {
	for _, metro := range []bool{true, false} {
		old, _ := breakdowns(t, Input{Gross: 500000, Metro: metro})
		assert.Zero(t, old.BaseTax)
		assert.Zero(t, old.TotalTax)
		assert.InDelta(t, 500000, old.InHandAnnual, 1e-6)
	}
}

func TestComputeHighIncomeMetroWithPF(t *testing.T) {
	old, latest := breakdowns(t, Input{Gross: 2400000, Metro: true, IncludePF: true})

	// Old regime: HRA 6L, 80C caps at the employee PF 1.44L, 80D 50k,
	// standard deduction 50k, employer PF 1.44L excluded.
	assert.InDelta(t, 600000, old.HRAExemption, 1e-3)
	assert.InDelta(t, 144000, old.Deduction80C, 1e-3)
	assert.InDelta(t, 144000, old.EmployerPFExclusion, 1e-3)
	assert.InDelta(t, 988000, old.TotalDeductions, 1e-3)
	assert.InDelta(t, 1412000, old.TaxableIncome, 1e-3)
	assert.InDelta(t, 236100, old.BaseTax, 1e-3)
	assert.InDelta(t, 9444, old.Cess, 1e-3)
	assert.InDelta(t, 245544, old.TotalTax, 1e-3)
	assert.InDelta(t, 1866456, old.InHandAnnual, 1e-3)
	assert.InDelta(t, 24000, old.MonthlyPF, 1e-3)

	// New regime: standard deduction 75k plus the employer PF exclusion.
	assert.InDelta(t, 219000, latest.TotalDeductions, 1e-3)
	assert.InDelta(t, 2181000, latest.TaxableIncome, 1e-3)
	assert.InDelta(t, 245250, latest.BaseTax, 1e-3)
	assert.InDelta(t, 9810, latest.Cess, 1e-3)
	assert.InDelta(t, 255060, latest.TotalTax, 1e-3)
	assert.InDelta(t, 1856940, latest.InHandAnnual, 1e-3)

	// PF plus the deduction-rich old regime beats the new one here.
	assert.Greater(t, old.InHandAnnual, latest.InHandAnnual)
}

func TestComputeSurchargeCapDiffersByRegime(t *testing.T) {
	old, latest := breakdowns(t, Input{Gross: 120000000})

	require.Greater(t, old.TaxableIncome, 50000000.0)
	require.Greater(t, latest.TaxableIncome, 50000000.0)
	assert.InDelta(t, 0.37, old.Surcharge/old.BaseTax, 1e-9)
	assert.InDelta(t, 0.25, latest.Surcharge/latest.BaseTax, 1e-9)
}

func TestComputeInvariants(t *testing.T) {
	grosses := []float64{
		1, 1000, 100000, 250000, 400000, 500000, 650000, 800000,
		1000000, 1250000, 1500000, 2400000, 5000000, 5100000,
		10000000, 20000001, 50000000, 120000000,
	}

	for _, gross := range grosses {
		for _, metro := range []bool{false, true} {
			for _, pf := range []bool{false, true} {
				old, latest := breakdowns(t, Input{Gross: gross, Metro: metro, IncludePF: pf})
				for _, b := range []Breakdown{old, latest} {
					assert.GreaterOrEqual(t, b.TaxableIncome, 0.0, "taxable income, gross=%v regime=%s", gross, b.Regime)
					assert.GreaterOrEqual(t, b.BaseTax, 0.0, "base tax, gross=%v regime=%s", gross, b.Regime)
					assert.GreaterOrEqual(t, b.Surcharge, 0.0, "surcharge, gross=%v regime=%s", gross, b.Regime)
					assert.GreaterOrEqual(t, b.TotalTax, 0.0, "total tax, gross=%v regime=%s", gross, b.Regime)
					assert.LessOrEqual(t, b.InHandAnnual, b.Gross, "in-hand, gross=%v regime=%s", gross, b.Regime)
				}
			}
		}
	}
}

func TestComputeNewRegimeIgnoresMetro(t *testing.T) {
	for _, gross := range []float64{300000, 1000000, 2400000, 30000000} {
		for _, pf := range []bool{false, true} {
			_, metro := breakdowns(t, Input{Gross: gross, Metro: true, IncludePF: pf})
			_, nonMetro := breakdowns(t, Input{Gross: gross, Metro: false, IncludePF: pf})
			assert.Equal(t, metro, nonMetro, "gross=%v pf=%v", gross, pf)
		}
	}
}

func TestComputeTaxMonotoneInGross(t *testing.T) {
	for _, metro := range []bool{false, true} {
		for _, pf := range []bool{false, true} {
			prevOld, prevNew := -1.0, -1.0
			for gross := 100000.0; gross <= 60000000; gross += 137000 {
				old, latest := breakdowns(t, Input{Gross: gross, Metro: metro, IncludePF: pf})
				assert.GreaterOrEqual(t, old.TotalTax, prevOld, "old regime, gross=%v", gross)
				assert.GreaterOrEqual(t, latest.TotalTax, prevNew, "new regime, gross=%v", gross)
				prevOld, prevNew = old.TotalTax, latest.TotalTax
			}
		}
	}
}
