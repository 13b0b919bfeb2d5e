// Package rules aggregates the built-in rule set.
package rules

import (
	"github.com/rubylint/rubylint/internal/rule"
	"github.com/rubylint/rubylint/internal/rules/debugger"
	"github.com/rubylint/rubylint/internal/rules/finalnewline"
	"github.com/rubylint/rubylint/internal/rules/hardtabs"
	"github.com/rubylint/rubylint/internal/rules/linelength"
	"github.com/rubylint/rubylint/internal/rules/methodname"
	"github.com/rubylint/rubylint/internal/rules/orderedgems"
	"github.com/rubylint/rubylint/internal/rules/semicolon"
	"github.com/rubylint/rubylint/internal/rules/trailingwhitespace"
)

// Builtin returns the built-in rules in their fixed registration order.
// The order is part of the output contract: diagnostics sharing a location
// are reported in this order. Rules are constructed explicitly here rather
// than self-registering at package load so the sequence never depends on
// import order.
func Builtin() []rule.Rule {
	return []rule.Rule{
		&trailingwhitespace.Rule{},
		&hardtabs.Rule{},
		&finalnewline.Rule{},
		&orderedgems.Rule{},
		&semicolon.Rule{},
		&debugger.Rule{},
		&methodname.Rule{},
		&linelength.Rule{},
	}
}
