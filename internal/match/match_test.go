package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Person", "Persons", 1},
		{"ABC", "abc", 3},
		{"naïve", "naive", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a))
		})
	}
}

func TestFold(t *testing.T) {
	tests := map[string]string{
		"BillingAccount":  "billingaccount",
		"billing-account": "billingaccount",
		"billing_account": "billingaccount",
		"Billing Account": "billingaccount",
		"":                "",
	}

	for in, want := range tests {
		assert.Equal(t, want, Fold(in), in)
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("billing-account", "BillingAccount"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 0.75, Similarity("abcd", "abce"), 1e-9)
	assert.Less(t, Similarity("Person", "BillSummary"), DefaultThreshold)
}

func TestSuggest(t *testing.T) {
	known := []string{"BillingAccount", "MobileSubscription", "RecurringTopups"}

	got, ok := Suggest("BilingAccount", known, DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "BillingAccount", got)

	_, ok = Suggest("Person", known, DefaultThreshold)
	assert.False(t, ok)

	_, ok = Suggest("BillingAccount", []string{"BillingAccount"}, DefaultThreshold)
	assert.False(t, ok, "exact matches are not suggestions")

	_, ok = Suggest("x", nil, DefaultThreshold)
	assert.False(t, ok)
}

func TestRankIsStable(t *testing.T) {
	ranked := Rank("ab", []string{"ac", "aa", "ab"})

	assert.Equal(t, []Suggestion{
		{Name: "ab", Score: 1},
		{Name: "aa", Score: 0.5},
		{Name: "ac", Score: 0.5},
	}, ranked)
}
