package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

const amount = `(?:\s*\([^)\n]*\))?\**\s*[:\-–=]?\s*\**\s*\$\s*([\d,]+(?:\.\d{1,2})?)`

// money builds a currency-anchored rule: a label prefix followed by "$<number>".
func money(name, prefix string) Rule {
	return Rule{Name: name, Pattern: regexp.MustCompile(`(?i)` + prefix + amount), Accept: isAmount}
}

var totalCascade = Cascade{Field: "pricing.total", Rules: []Rule{
	money("pricing.total-order", `\btotal\s+order(?:\s+(?:cost|price|amount|value))?`),
	money("pricing.total-grand", `\bgrand\s+total`),
	money("pricing.total-labeled", `\b(?:order\s+)?total(?:\s+(?:cost|price|investment|amount))?`),
}}

var quantityCascade = Cascade{Field: "pricing.quantity", Rules: []Rule{
	{
		Name:    "pricing.quantity-labeled",
		Pattern: regexp.MustCompile(`(?i)\b(?:total\s+|order\s+)?(?:quantity|qty)\**(?:\s*:|\s+[-–])\s*\**\s*([\d,]+)`),
		Accept:  isPositiveInt,
	},
	{
		Name:    "pricing.quantity-for",
		Pattern: regexp.MustCompile(`(?i)\bfor\s+([\d,]+)\s*(?:pieces|pcs|units|caps|hats)\b`),
		Accept:  isPositiveInt,
	},
	{
		Name:    "pricing.quantity-pieces",
		Pattern: regexp.MustCompile(`(?i)\b([\d,]+)\s*(?:pieces|pcs|units|caps|hats)\b`),
		Accept:  isPositiveInt,
	},
}}

var baseCostCascade = Cascade{Field: "pricing.baseCost", Rules: []Rule{
	money("pricing.baseCost-labeled", `\b(?:base|blank)\s+(?:cap\s+|hat\s+|product\s+)?(?:costs?|price)`),
	money("pricing.baseCost-product", `\b(?:product|cap|hat)\s+costs?`),
}}

var customizationCostCascade = Cascade{Field: "pricing.customizationCost", Rules: []Rule{
	money("pricing.customizationCost-labeled", `\b(?:logos?|customi[sz]ation|decoration)\s+(?:setup\s+)?(?:costs?|total|price|charges?)`),
	money("pricing.customizationCost-method", `\b(?:embroidery|print(?:ing)?|patch(?:es)?)\s+(?:costs?|total)`),
}}

var deliveryCostCascade = Cascade{Field: "delivery.cost", Rules: []Rule{
	money("delivery.cost-labeled", `\b(?:delivery|shipping|freight)(?:\s+(?:costs?|fees?|charges?))?`),
	{
		Name:    "delivery.cost-free",
		Pattern: regexp.MustCompile(`(?i)\bfree\s+(?:delivery|shipping)\b`),
		Value:   constant("0"),
	},
}}

var moldChargeCascade = Cascade{Field: "customization.moldCharge", Rules: []Rule{
	money("customization.moldCharge-labeled", `\bmold\s+(?:charges?|fees?|costs?)`),
}}

func parseAmount(v string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(v), ",", ""), 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return f, true
}

func parseQuantity(v string) (int, bool) {
	n, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(v), ",", ""))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func isAmount(v string) bool {
	_, ok := parseAmount(v)
	return ok
}

func isPositiveInt(v string) bool {
	_, ok := parseQuantity(v)
	return ok
}
