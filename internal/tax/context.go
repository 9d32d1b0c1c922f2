package tax

import "taxcalc/internal/fiscal"

// SalaryContext carries the input together with the salary components
// derived from it: basic pay, HRA, and the two provident fund legs. Both
// regime calculators consume the same context.
type SalaryContext struct {
	Input

	Basic      float64
	HRA        float64
	EmployeePF float64
	EmployerPF float64
	TotalPF    float64
}

// NewSalaryContext validates the input and derives the salary components
// from the rate card. Basic pay is a fixed ratio of gross; HRA is a
// metro-dependent fraction of basic; the PF legs are each the PF rate of
// basic and are zero unless PF is part of the CTC.
func NewSalaryContext(card *fiscal.RateCard, in Input) (*SalaryContext, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ctx := &SalaryContext{Input: in}
	ctx.Basic = in.Gross * card.BasicPayRatio

	hraRate := card.HRANonMetroRate
	if in.Metro {
		hraRate = card.HRAMetroRate
	}
	ctx.HRA = ctx.Basic * hraRate

	if in.IncludePF {
		ctx.EmployeePF = ctx.Basic * card.PFRate
		ctx.EmployerPF = ctx.Basic * card.PFRate
	}
	ctx.TotalPF = ctx.EmployeePF + ctx.EmployerPF
	return ctx, nil
}
