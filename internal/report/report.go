// Package report renders the plain-text comparison of the two regime
// breakdowns. Rendering has no side effects; the caller decides where the
// text goes.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"taxcalc/internal/tax"
)

// Incomes above this get a note suggesting professional tax planning.
const advisoryThreshold = 10000000

const rowFormat = "%-28s |%18s |%18s\n"

var separator = strings.Repeat("-", 68)

// Render produces the full comparison report for one invocation.
func Render(fiscalYear string, old, latest tax.Breakdown) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "--- Salary & Tax Comparison (FY %s) ---\n\n", fiscalYear)
	row(&sb, "", old.Regime, latest.Regime)
	line(&sb)
	moneyRow(&sb, "Gross Annual Salary:", old.Gross, latest.Gross)
	line(&sb)

	row(&sb, "Exemptions & Deductions", "", "")
	moneyRow(&sb, "  HRA Exemption", old.HRAExemption, latest.HRAExemption)
	moneyRow(&sb, "  Section 80C Deduction", old.Deduction80C, latest.Deduction80C)
	moneyRow(&sb, "  Section 80D Deduction", old.Deduction80D, latest.Deduction80D)
	moneyRow(&sb, "  Standard Deduction", old.StandardDeduction, latest.StandardDeduction)
	moneyRow(&sb, "  Employer PF Exclusion", old.EmployerPFExclusion, latest.EmployerPFExclusion)
	moneyRow(&sb, "Total Deductions:", old.TotalDeductions, latest.TotalDeductions)
	line(&sb)

	moneyRow(&sb, "Taxable Income:", old.TaxableIncome, latest.TaxableIncome)
	line(&sb)

	row(&sb, "Tax Calculation", "", "")
	moneyRow(&sb, "  Income Tax", old.BaseTax, latest.BaseTax)
	moneyRow(&sb, "  Surcharge", old.Surcharge, latest.Surcharge)
	moneyRow(&sb, "  Health & Edu Cess", old.Cess, latest.Cess)
	moneyRow(&sb, "Total Annual Tax:", old.TotalTax, latest.TotalTax)
	line(&sb)

	moneyRow(&sb, "Net Annual Income:", old.Gross-old.TotalTax, latest.Gross-latest.TotalTax)
	moneyRow(&sb, "Monthly In-Hand:", old.MonthlyInHand, latest.MonthlyInHand)
	moneyRow(&sb, "Monthly PF Contribution:", old.MonthlyPF, latest.MonthlyPF)
	moneyRow(&sb, "Monthly Total:", old.MonthlyTotal, latest.MonthlyTotal)

	sb.WriteString("\n")
	sb.WriteString(verdict(old, latest))
	sb.WriteString("\n")

	if old.Gross > advisoryThreshold {
		sb.WriteString("\nNOTE: Your income is high. Consider consulting a chartered accountant for detailed tax planning.\n")
	}
	sb.WriteString("\n--- End of Report ---\n")
	return sb.String()
}

// verdict names the regime with the higher take-home pay and the yearly
// difference between the two.
func verdict(old, latest tax.Breakdown) string {
	diff := latest.InHandAnnual - old.InHandAnnual
	switch {
	case diff > 0:
		return fmt.Sprintf("The %s yields the higher take-home pay, by %s per year.", latest.Regime, money(diff))
	case diff < 0:
		return fmt.Sprintf("The %s yields the higher take-home pay, by %s per year.", old.Regime, money(-diff))
	default:
		return "Both regimes yield the same take-home pay."
	}
}

func row(sb *strings.Builder, label, left, right string) {
	fmt.Fprintf(sb, rowFormat, label, left, right)
}

func moneyRow(sb *strings.Builder, label string, left, right float64) {
	row(sb, label, money(left), money(right))
}

func line(sb *strings.Builder) {
	sb.WriteString(separator)
	sb.WriteString("\n")
}

// money rounds to whole currency units and groups thousands with commas.
func money(v float64) string {
	s := strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
