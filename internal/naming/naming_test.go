package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"topupId", "TopupId"},
		{"id", "Id"},
		{"Name", "Name"},
		{"x", "X"},
		{"topup-id", "Topup-id"},
		{"topup id", "Topup id"},
		{"éclair", "Éclair"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Capitalize(tt.input))
		})
	}
}

func TestAccessors(t *testing.T) {
	assert.Equal(t, "getTopupId", Getter("topupId"))
	assert.Equal(t, "setTopupId", Setter("topupId"))
}

func TestLowerCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"MobileSubscription", "mobileSubscription"},
		{"BillingAccount", "billingAccount"},
		{"AddOns", "addOns"},
		{"Person", "person"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, LowerCamel(tt.input))
		})
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "billing-account", Sanitize("billing-account"))
	assert.Equal(t, "usersid", Sanitize("users/{id}"))
	assert.Equal(t, "", Sanitize("/{}"))
}

func TestAPIName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "DefaultApi"},
		{"default", "DefaultApi"},
		{"billing-account", "BillingAccountApi"},
		{"mobile_subscription", "MobileSubscriptionApi"},
		{"{}", "DefaultApi"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, APIName(tt.input))
		})
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Account API", "account"},
		{"  Account Management Api ", "accountManagement"},
		{"Subscriptions", "subscriptions"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Title(tt.input))
		})
	}
}
