// Package match suggests the closest known name for a misspelled one.
//
// Names are folded (case and word separators ignored) and compared by
// normalized edit distance, so "billing-account", "BillingAccount" and
// "billing_account" are the same name.
package match
