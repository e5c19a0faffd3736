package services

import (
	"testing"

	"tcshield-lab/internal/domain/models"
)

func TestCategorize(t *testing.T) {
	cases := []struct {
		name        string
		phrase      string
		description string
		want        models.Category
	}{
		{
			name:   "data sharing",
			phrase: "we may share your data",
			want:   models.CategorySharing,
		},
		{
			name:   "data sold",
			phrase: "data may be sold",
			want:   models.CategorySharing,
		},
		{
			name:   "data monitoring",
			phrase: "we monitor your data",
			want:   models.CategoryTracking,
		},
		{
			name:   "data cookies",
			phrase: "data and cookie usage",
			want:   models.CategoryCookies,
		},
		{
			name:   "plain collection",
			phrase: "we may collect personal information",
			want:   models.CategoryDataCollection,
		},
		{
			name:        "description drives data group",
			phrase:      "xyz clause",
			description: "personal data is shared with partners",
			want:        models.CategorySharing,
		},
		{
			name:   "termination",
			phrase: "you waive termination rights",
			want:   models.CategoryTermination,
		},
		{
			name:   "dispute",
			phrase: "you waive dispute rights",
			want:   models.CategoryDispute,
		},
		{
			name:   "liability",
			phrase: "we are not liable",
			want:   models.CategoryLiability,
		},
		{
			name:   "generic legal waiver",
			phrase: "you waive any rights",
			want:   models.CategoryLegal,
		},
		{
			name:   "subscription",
			phrase: "subscription payment terms",
			want:   models.CategorySubscription,
		},
		{
			name:   "fees",
			phrase: "additional fees may apply",
			want:   models.CategoryFees,
		},
		{
			name:   "plain payment",
			phrase: "payment is required upfront",
			want:   models.CategoryPayment,
		},
		{
			name:   "content ownership",
			phrase: "we own any content you submit",
			want:   models.CategoryContent,
		},
		{
			name:   "usage",
			phrase: "acceptable use restrictions",
			want:   models.CategoryUsage,
		},
		{
			name:   "modification",
			phrase: "we may modify the service",
			want:   models.CategoryModification,
		},
		{
			name:   "fallback",
			phrase: "arbitration required for everything",
			want:   models.CategoryLegal,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Categorize(tc.phrase, tc.description)
			if got != tc.want {
				t.Errorf("Categorize(%q, %q) = %s, want %s", tc.phrase, tc.description, got, tc.want)
			}
		})
	}
}

func TestCategorizeOrderMatters(t *testing.T) {
	// A phrase hitting both the data group and the financial group lands in
	// the data group, which is evaluated first.
	got := Categorize("data about your payment", "")
	if got != models.CategoryDataCollection {
		t.Errorf("got %s, want %s for a phrase spanning two groups", got, models.CategoryDataCollection)
	}
}

func TestCategorizeEveryDefaultEntry(t *testing.T) {
	// Every catalogue entry must land in some category; the fallback makes
	// the function total, this guards against panics and empty categories.
	DefaultLexicon().Walk(func(_ models.Severity, entry models.PhraseEntry) {
		got := Categorize(entry.Phrase, entry.Description)
		if got == "" {
			t.Errorf("phrase %q mapped to empty category", entry.Phrase)
		}
	})
}
