// Package advisor provides templated financial advice from a built-in
// knowledge base. It answers in place of the remote AI service whenever
// that service is unreachable.
package advisor

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats amounts with grouped thousands, like the
// toLocaleString output the templates were written for.
var printer = message.NewPrinter(language.English)

// Advisor answers questions from the knowledge base.
type Advisor struct {
	matcher Matcher
}

// New returns an Advisor using the built-in knowledge base with the
// documented first-match-wins prefix matching.
func New() *Advisor {
	return &Advisor{matcher: NewPrefixMatcher(KnowledgeBase)}
}

// NewWithMatcher returns an Advisor with a custom matching strategy.
func NewWithMatcher(matcher Matcher) *Advisor {
	return &Advisor{matcher: matcher}
}

// Respond answers a question from the knowledge base, personalized with the
// given context. The bool return reports whether any template matched;
// callers are expected to fall back to Summary when it is false.
//
// Matching is deterministic: the same question and context always produce
// the same answer.
func (a *Advisor) Respond(question string, ctx Context) (string, bool) {
	template, ok := a.matcher.Match(question)
	if !ok {
		return "", false
	}

	replacer := strings.NewReplacer(
		"{income}", formatAmount(ctx.Income),
		"{expense}", formatAmount(ctx.Expense),
		"{savings}", formatAmount(ctx.savings()),
		"{budget}", formatAmount(ctx.suggestedBudget()),
		"{emergency}", formatAmount(ctx.emergencyFund()),
		"{sip}", formatAmount(ctx.sip()),
		"{savingsRate}", formatSavingsRate(ctx),
		"{healthStatus}", ctx.healthStatus(),
		"{topCategory}", ctx.TopCategory,
	)

	return replacer.Replace(template.Answer), true
}

// Summary is the generic data summary used when no template matches the
// question.
func Summary(ctx Context) string {
	return printer.Sprintf(
		"📊 Based on your financial data:\n\n💰 Total Income: ₹%s\n💸 Total Expense: ₹%s\n💵 Net Balance: ₹%s\n\n💡 Quick Tips:\n• Aim to save at least 20%% of your income\n• Track all expenses to identify spending patterns\n• Create an emergency fund covering 3-6 months expenses\n• Review and optimize your budget monthly\n\n⚠️ Note: AI service is offline. Try asking specific questions like:\n• How much should I save?\n• How do I create a budget?\n• How can I reduce expenses?",
		formatAmount(ctx.Income), formatAmount(ctx.Expense), formatAmount(ctx.Income.Sub(ctx.Expense)),
	)
}

// formatAmount renders an amount with grouped thousands. Fractions are
// dropped, the templates present whole currency amounts.
func formatAmount(d decimal.Decimal) string {
	return printer.Sprintf("%d", d.Round(0).IntPart())
}

// formatSavingsRate renders the savings rate with one decimal. Without
// income there is no rate, the templates then show a bare 0.
func formatSavingsRate(ctx Context) string {
	if !ctx.Income.IsPositive() {
		return "0"
	}

	return ctx.savingsRate().StringFixed(1)
}
