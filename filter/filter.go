// Package filter compiles expr expressions that narrow down catalog
// items on the client side, e.g. `Price < 50 && contains(Title, "usb")`.
// It backs the CLI's --filter flag; the API clients themselves never
// filter.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/affiliatekit/amazonapi/amazon"
)

// ItemFilter is a compiled filter expression.
type ItemFilter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable item filter.
func Compile(expression string) (*ItemFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // item properties are dynamic
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter %q: %w", expression, err)
	}

	return &ItemFilter{expression: expression, program: program}, nil
}

// Expression returns the source expression.
func (f *ItemFilter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one item.
func (f *ItemFilter) Match(item amazon.Item) (bool, error) {
	env := itemEnv(item)
	for name, fn := range helperFunctions() {
		env[name] = fn
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter against %s: %w", item.ASIN, err)
	}
	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q did not evaluate to a boolean", f.expression)
	}
	return matched, nil
}

// Apply returns the items the filter accepts, in input order.
func (f *ItemFilter) Apply(items []amazon.Item) ([]amazon.Item, error) {
	out := make([]amazon.Item, 0, len(items))
	for _, item := range items {
		ok, err := f.Match(item)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, item)
		}
	}
	return out, nil
}

// itemEnv flattens the fields most useful in filter expressions.
// Absent values become zero values so expressions stay total.
func itemEnv(item amazon.Item) map[string]any {
	env := map[string]any{
		"ASIN":          item.ASIN,
		"Title":         "",
		"Brand":         "",
		"DetailPageURL": "",
		"Price":         0.0,
		"Currency":      "",
		"IsPrime":       false,
		"Features":      []string{},
	}

	if item.DetailPageURL != nil {
		env["DetailPageURL"] = *item.DetailPageURL
	}
	if info := item.ItemInfo; info != nil {
		if info.Title != nil && info.Title.DisplayValue != nil {
			env["Title"] = *info.Title.DisplayValue
		}
		if info.ByLineInfo != nil && info.ByLineInfo.Brand != nil && info.ByLineInfo.Brand.DisplayValue != nil {
			env["Brand"] = *info.ByLineInfo.Brand.DisplayValue
		}
		if info.Features != nil {
			env["Features"] = info.Features.DisplayValues
		}
	}
	if item.Offers != nil && len(item.Offers.Listings) > 0 {
		listing := item.Offers.Listings[0]
		if listing.Price != nil {
			if listing.Price.Amount != nil {
				env["Price"] = *listing.Price.Amount
			}
			if listing.Price.Currency != nil {
				env["Currency"] = *listing.Price.Currency
			}
		}
		if listing.DeliveryInfo != nil && listing.DeliveryInfo.IsPrimeEligible != nil {
			env["IsPrime"] = *listing.DeliveryInfo.IsPrimeEligible
		}
	}
	return env
}

// helperFunctions are the static helpers available inside expressions.
func helperFunctions() map[string]any {
	return map[string]any{
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
