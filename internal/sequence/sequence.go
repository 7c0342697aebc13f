// Package sequence allocates the human-readable document codes printed on
// customer-facing paperwork: customer numbers, article numbers, work order
// numbers and invoice numbers. Codes are unique and strictly increasing
// within their scope; most classes scope per calendar year, article numbers
// run on a single global counter.
package sequence

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Class identifies a document code family.
type Class string

const (
	ClassCustomer  Class = "CUSTOMER"
	ClassMaterial  Class = "MATERIAL"
	ClassWorkOrder Class = "WORKORDER"
	ClassInvoice   Class = "INVOICE"
)

// GlobalScope is the scope key for classes that are not year-scoped.
const GlobalScope = "GLOBAL"

type classFormat struct {
	prefix     string
	width      int
	yearScoped bool
}

var formats = map[Class]classFormat{
	ClassCustomer:  {prefix: "KL", width: 4, yearScoped: true},
	ClassMaterial:  {prefix: "ART", width: 6, yearScoped: false},
	ClassWorkOrder: {prefix: "WB", width: 4, yearScoped: true},
	ClassInvoice:   {prefix: "F", width: 4, yearScoped: true},
}

// ScopeFor returns the scope key a code allocated at the given time belongs
// to: the calendar year for year-scoped classes, GlobalScope otherwise.
func ScopeFor(class Class, at time.Time) string {
	f, ok := formats[class]
	if !ok || !f.yearScoped {
		return GlobalScope
	}
	return strconv.Itoa(at.Year())
}

// Format renders the nth code of a scope, e.g. Format(ClassWorkOrder,
// "2026", 7) -> "WB-2026-0007" and Format(ClassMaterial, GlobalScope, 12)
// -> "ART-000012".
func Format(class Class, scope string, n int64) string {
	f := formats[class]
	if f.yearScoped {
		return fmt.Sprintf("%s-%s-%0*d", f.prefix, scope, f.width, n)
	}
	return fmt.Sprintf("%s-%0*d", f.prefix, f.width, n)
}

// ParseSuffix extracts the numeric suffix from a code of the given class and
// scope. It returns an error when the code does not match the expected
// prefix, so callers can fall back to restarting the scope at its first
// value instead of failing the create.
func ParseSuffix(class Class, scope, code string) (int64, error) {
	f, ok := formats[class]
	if !ok {
		return 0, fmt.Errorf("sequence: unknown class %q", class)
	}
	want := f.prefix + "-"
	if f.yearScoped {
		want += scope + "-"
	}
	if !strings.HasPrefix(code, want) {
		return 0, fmt.Errorf("sequence: code %q does not match scope %s/%s", code, class, scope)
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(code, want), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("sequence: code %q has invalid suffix: %w", code, err)
	}
	return n, nil
}

// SeedValue derives a counter seed from the highest existing code of a
// scope. Unparsable legacy codes seed at zero so the scope restarts at its
// first value rather than aborting.
func SeedValue(class Class, scope, latestCode string) int64 {
	if latestCode == "" {
		return 0
	}
	n, err := ParseSuffix(class, scope, latestCode)
	if err != nil {
		return 0
	}
	return n
}
