package ocr

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// DefaultCategory is used when no match rule applies to the receipt text.
const DefaultCategory = "other"

var (
	// First number on the receipt, optionally preceded by a currency sign.
	amountPattern = regexp.MustCompile(`\$?(\d+\.?\d*)`)

	// First M/D/Y date on the receipt.
	datePattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{2,4})`)
)

// ScanResult is the structured data guessed from a receipt.
type ScanResult struct {
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
}

// Extract applies the amount and date heuristics to the recognized text and
// categorizes the receipt with the given match rules. Without a matching
// rule the category falls back to DefaultCategory; a missing or unparseable
// date falls back to today.
func Extract(text string, rules []models.MatchRule) ScanResult {
	result := ScanResult{
		Amount:      decimal.Zero,
		Category:    Categorize(text, rules),
		Description: "Receipt scan",
		Date:        truncateToDay(time.Now().In(time.UTC)),
	}

	if m := amountPattern.FindStringSubmatch(text); m != nil {
		if amount, err := decimal.NewFromString(m[1]); err == nil {
			result.Amount = amount
		}
	}

	if m := datePattern.FindStringSubmatch(text); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])

		if year < 100 {
			year += 2000
		}

		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			result.Date = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		}
	}

	return result
}

// Categorize returns the category of the first match rule whose glob
// pattern matches the receipt text, or DefaultCategory. Matching is case
// insensitive; the rules must already be in application order.
func Categorize(text string, rules []models.MatchRule) string {
	lower := strings.ToLower(text)

	for _, rule := range rules {
		if glob.Glob(strings.ToLower(rule.Match), lower) {
			return rule.Category
		}
	}

	return DefaultCategory
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
