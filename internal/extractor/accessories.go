package extractor

import (
	"regexp"
	"strings"

	"capquote/internal/domain/entities"
)

var (
	accessoriesStart = regexp.MustCompile(`(?im)^[\s#*\-•]*(?:accessories|add[\s-]?ons|extras|packaging\s+(?:options|extras))\**(?:[ \t]*:\**[ \t]*([^\n\r]*)|[ \t]*)$`)
	accessoriesEnd   = regexp.MustCompile(`(?im)(?:\n[ \t]*\n|^[\s#*\-•]*(?:delivery|shipping|pricing|price\s+breakdown|cost\s+breakdown|total|logos?|customi[sz]ation|style|lead\s+time|summary|notes?|quantity|mold)\b)`)

	accessoryLineItem = regexp.MustCompile(`(?im)^[\s*\-•]*([A-Za-z][A-Za-z0-9 /\-]*?)\s*(?::|\s[-–]|\sx)\s*([\d,]+)\s*(?:pieces|pcs|units)\b`)
	accessoryBullet   = regexp.MustCompile(`(?m)^[ \t]*[*\-•][ \t]+([A-Za-z][A-Za-z /\-]*?)[ \t]*$`)
)

// accessoryKeywords is the fallback used when the text has no accessories section.
var accessoryKeywords = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"Hang Tag", regexp.MustCompile(`(?i)\bhang[\s-]?tags?\b`)},
	{"Sticker", regexp.MustCompile(`(?i)\bstickers?\b`)},
	{"Inside Label", regexp.MustCompile(`(?i)\binside\s+(?:labels?|tags?)\b`)},
	{"B-Tape Print", regexp.MustCompile(`(?i)\bb[\s-]?tape(?:\s+print(?:ing|ed)?)?\b`)},
}

// accessorySection returns the text between the accessories marker and the
// next known section marker, plus whatever followed the marker on its line.
func accessorySection(text string) (body, inline string, ok bool) {
	loc := accessoriesStart.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", "", false
	}
	if loc[2] >= 0 {
		inline = text[loc[2]:loc[3]]
	}
	rest := text[loc[1]:]
	if end := accessoriesEnd.FindStringIndex(rest); end != nil {
		rest = rest[:end[0]]
	}
	return rest, inline, true
}

func (e *Extractor) extractAccessories(text string, res *Result) []entities.AccessoryEntry {
	var out []entities.AccessoryEntry
	seen := map[string]bool{}
	add := func(rule, name string, qty int) {
		if reason := e.filter.Check(name); reason != "" || !hasLetter(name) {
			if reason == "" {
				reason = "validator"
			}
			res.reject("accessory", rule, name, reason)
			return
		}
		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, entities.AccessoryEntry{Name: name, Quantity: qty})
		res.note("accessory", rule, name)
	}

	body, inline, ok := accessorySection(text)
	if ok {
		for _, part := range strings.Split(inline, ",") {
			if part = clean(part); part != "" && !strings.EqualFold(part, "none") {
				add("accessory-inline", part, 0)
			}
		}
		for _, m := range accessoryLineItem.FindAllStringSubmatch(body, -1) {
			qty, _ := parseQuantity(m[2])
			add("accessory-line-item", clean(m[1]), qty)
		}
		for _, m := range accessoryBullet.FindAllStringSubmatch(body, -1) {
			add("accessory-bullet", clean(m[1]), 0)
		}
		return out
	}

	for _, kw := range accessoryKeywords {
		if kw.pattern.MatchString(text) {
			add("accessory-keyword", kw.name, 0)
		}
	}
	return out
}
