package tax

import (
	"math"

	"taxcalc/internal/fiscal"
)

const monthsPerYear = 12

// Breakdown is the computed result for a single regime. Immutable once
// produced; one per regime per invocation.
type Breakdown struct {
	Regime string
	Gross  float64

	HRAExemption        float64
	Deduction80C        float64
	Deduction80D        float64
	StandardDeduction   float64
	EmployerPFExclusion float64
	TotalDeductions     float64

	TaxableIncome float64
	BaseTax       float64
	Surcharge     float64
	Cess          float64
	TotalTax      float64

	InHandAnnual  float64
	MonthlyInHand float64
	MonthlyPF     float64
	MonthlyTotal  float64
}

// ComputeOldRegime produces the old-regime breakdown. Deductions are the
// regime's standard deduction, Section 80C (the employee PF contribution
// capped at the statutory limit), Section 80D assumed at its cap, the HRA
// exemption estimate, and the employer PF exclusion. Taxable income never
// goes below zero, and income at or below the rebate limit owes no tax.
func ComputeOldRegime(card *fiscal.RateCard, ctx *SalaryContext) Breakdown {
	b := Breakdown{Regime: card.OldRegime.Name, Gross: ctx.Gross}
	b.HRAExemption = ctx.HRA
	b.Deduction80C = math.Min(ctx.EmployeePF, card.Section80CLimit)
	b.Deduction80D = card.Section80DLimit
	b.StandardDeduction = card.OldRegime.StandardDeduction
	b.EmployerPFExclusion = ctx.EmployerPF
	b.TotalDeductions = b.HRAExemption + b.Deduction80C + b.Deduction80D +
		b.StandardDeduction + b.EmployerPFExclusion
	b.TaxableIncome = math.Max(0, ctx.Gross-b.TotalDeductions)

	assess(card, &card.OldRegime, ctx, &b)
	return b
}

// ComputeNewRegime produces the new-regime breakdown. Only the new regime's
// standard deduction and the employer PF exclusion reduce taxable income;
// the metro flag has no effect.
func ComputeNewRegime(card *fiscal.RateCard, ctx *SalaryContext) Breakdown {
	b := Breakdown{Regime: card.NewRegime.Name, Gross: ctx.Gross}
	b.StandardDeduction = card.NewRegime.StandardDeduction
	b.EmployerPFExclusion = ctx.EmployerPF
	b.TotalDeductions = b.StandardDeduction + b.EmployerPFExclusion
	b.TaxableIncome = math.Max(0, ctx.Gross-b.TotalDeductions)

	assess(card, &card.NewRegime, ctx, &b)
	return b
}

// assess runs the shared tail of both calculators: rebate check, slab tax,
// surcharge, cess, and the in-hand figures. PF is withheld, not paid out, so
// both PF legs come off the in-hand salary.
func assess(card *fiscal.RateCard, regime *fiscal.Regime, ctx *SalaryContext, b *Breakdown) {
	if b.TaxableIncome > regime.RebateLimit {
		b.BaseTax = slabTax(regime.Slabs, b.TaxableIncome)
		b.Surcharge = surcharge(card.SurchargeBands, regime.SurchargeCap, b.TaxableIncome, b.BaseTax)
	}
	b.Cess = (b.BaseTax + b.Surcharge) * card.CessRate
	b.TotalTax = b.BaseTax + b.Surcharge + b.Cess

	b.InHandAnnual = ctx.Gross - ctx.TotalPF - b.TotalTax
	b.MonthlyInHand = b.InHandAnnual / monthsPerYear
	b.MonthlyPF = ctx.TotalPF / monthsPerYear
	b.MonthlyTotal = b.MonthlyInHand + b.MonthlyPF
}

// slabTax applies a progressive slab table: each bracket taxes only the
// income that falls inside it.
func slabTax(slabs []fiscal.Slab, taxable float64) float64 {
	var tax, lower float64
	for _, s := range slabs {
		upper := taxable
		if s.UpTo != nil && *s.UpTo < taxable {
			upper = *s.UpTo
		}
		if upper > lower {
			tax += (upper - lower) * s.Rate
		}
		if s.UpTo == nil || taxable <= *s.UpTo {
			break
		}
		lower = *s.UpTo
	}
	return tax
}

// surcharge levies the band rate for the taxable income on the base tax,
// capped at the regime's maximum rate. Marginal relief near band thresholds
// is not modelled.
func surcharge(bands []fiscal.Slab, capRate float64, taxable, baseTax float64) float64 {
	var rate float64
	for _, band := range bands {
		if band.UpTo == nil || taxable <= *band.UpTo {
			rate = band.Rate
			break
		}
	}
	if rate > capRate {
		rate = capRate
	}
	return baseTax * rate
}
