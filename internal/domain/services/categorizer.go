package services

import (
	"strings"

	"tcshield-lab/internal/domain/models"
)

// Categorize assigns a category to a finding from its phrase and description.
// The rules form an ordered decision list over lowercased keyword tests; the
// first matching group wins and "legal" is the fallback, so every input maps
// to exactly one category.
func Categorize(phrase, description string) models.Category {
	p := strings.ToLower(phrase)
	d := strings.ToLower(description)

	// Data and privacy
	if strings.Contains(p, "data") || strings.Contains(p, "information") ||
		strings.Contains(p, "privacy") || strings.Contains(d, "personal data") {
		switch {
		case strings.Contains(p, "share") || strings.Contains(p, "sold") || strings.Contains(d, "shared"):
			return models.CategorySharing
		case strings.Contains(p, "track") || strings.Contains(p, "monitor") || strings.Contains(d, "monitor"):
			return models.CategoryTracking
		case strings.Contains(p, "cookie") || strings.Contains(d, "cookie"):
			return models.CategoryCookies
		default:
			return models.CategoryDataCollection
		}
	}

	// Legal and liability
	if strings.Contains(p, "liable") || strings.Contains(p, "waive") ||
		strings.Contains(p, "rights") || strings.Contains(d, "legal") {
		switch {
		case strings.Contains(p, "terminat") || strings.Contains(d, "terminat"):
			return models.CategoryTermination
		case strings.Contains(p, "dispute") || strings.Contains(d, "dispute"):
			return models.CategoryDispute
		case strings.Contains(p, "liable") || strings.Contains(d, "liability"):
			return models.CategoryLiability
		default:
			return models.CategoryLegal
		}
	}

	// Financial and commercial
	if strings.Contains(p, "payment") || strings.Contains(p, "pay") ||
		strings.Contains(p, "fee") || strings.Contains(p, "cost") ||
		strings.Contains(d, "money") || strings.Contains(d, "payment") {
		switch {
		case strings.Contains(p, "subscription") || strings.Contains(d, "subscription"):
			return models.CategorySubscription
		case strings.Contains(p, "fee") || strings.Contains(d, "fee"):
			return models.CategoryFees
		default:
			return models.CategoryPayment
		}
	}

	// Content and usage
	if strings.Contains(p, "content") || strings.Contains(p, "material") || strings.Contains(d, "content") {
		return models.CategoryContent
	}

	if strings.Contains(p, "use") || strings.Contains(p, "usage") || strings.Contains(d, "usage") {
		return models.CategoryUsage
	}

	if strings.Contains(p, "modif") || strings.Contains(p, "change") ||
		strings.Contains(d, "modif") || strings.Contains(d, "change") {
		return models.CategoryModification
	}

	return models.CategoryLegal
}
