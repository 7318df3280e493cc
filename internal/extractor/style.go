package extractor

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	bullet = `^[\s*\-•#>]*`
	// article lets a line-start label open a sentence ("The color is navy").
	article = `(?:(?:the|your|its)\s+)?`

	fabricWords = `suede\s+cotton|cotton\s+twill|chino\s+twill|brushed\s+cotton|air\s+mesh|trucker\s+mesh|` +
		`laser[\s-]+cut|performance\s+polyester|polyester|acrylic|nylon|denim|corduroy|canvas|suede|wool|` +
		`duck\s+camo|camo|mesh|cotton|twill`

	colorWords = `heather\s+gr[ae]y|royal\s+blue|navy\s+blue|light\s+blue|sky\s+blue|forest\s+green|` +
		`kelly\s+green|dark\s+green|burnt\s+orange|black|white|navy|red|blue|gr[ae]y|charcoal|khaki|tan|` +
		`olive|green|orange|yellow|gold|pink|purple|maroon|burgundy|brown|beige|cream|silver`
)

// labeled returns the label-anchored rules of a field: the sentence form
// ("the closure is a snapback.") then the line form ("Closure: Snapback").
// The sentence form may run across line breaks; the capture filter rejects
// those captures and the line form takes over.
//
// Labels that also end other fields' labels ("Stitching Color", "Logo Size")
// must be anchored at line start.
func labeled(field, labels string, lineStart bool) []Rule {
	prefix := `\b`
	if lineStart {
		prefix = bullet + article
	}
	sentence := `(?im)` + prefix + `(?:` + labels + `)\**(?:\s*:|\s+[-–]|\s+(?:is|will\s+be)(?:\s+an?\b)?)\s*\**\s*([^.;|]+)`
	line := `(?im)` + prefix + `(?:` + labels + `)\**(?:\s*:|\s+[-–])\s*\**\s*([^\n\r|]+?)\s*$`
	return []Rule{
		{Name: field + "-sentence", Pattern: regexp.MustCompile(sentence), Accept: hasLetter},
		{Name: field + "-line", Pattern: regexp.MustCompile(line), Accept: hasLetter},
	}
}

func keyword(name, pattern string) Rule {
	return Rule{Name: name, Pattern: regexp.MustCompile(pattern)}
}

func cascade(field string, groups ...[]Rule) Cascade {
	c := Cascade{Field: field}
	for _, g := range groups {
		c.Rules = append(c.Rules, g...)
	}
	return c
}

var sizeCascade = cascade("size",
	labeled("size", `(?:cap\s+|hat\s+)?size`, true),
	[]Rule{
		keyword("size-combo", `(?i)\b(s/m|m/l|l/xl|xs/s)\b`),
		keyword("size-phrase", `(?i)\b(youth|adult|small|medium|large|x-?large|xl|one[\s-]size(?:[\s-]fits[\s-](?:all|most))?)\s+(?:size|sized|fit)\b`),
		keyword("size-osfa", `(?i)\b(one[\s-]size[\s-]fits[\s-](?:all|most)|osfa)\b`),
	},
)

var colorCascade = cascade("color",
	labeled("color", `(?:cap\s+|hat\s+)?(?:colou?rs?|colou?rway|colou?r\s+scheme)`, true),
	[]Rule{
		keyword("color-combo", `(?i)\b((?:`+colorWords+`)(?:\s*/\s*(?:`+colorWords+`))+)\b`),
		keyword("color-product", `(?i)\b(`+colorWords+`)\s+(?:caps?|hats?|colou?r)\b`),
		keyword("color-in", `(?i)\bin\s+(`+colorWords+`)\b`),
	},
)

var profileCascade = cascade("profile",
	labeled("profile", `(?:cap\s+)?profile`, true),
	[]Rule{
		keyword("profile-keyword", `(?i)\b(high|mid|medium|low)[\s-]+(?:profile|crown)\b`),
	},
)

var billShapeCascade = cascade("billShape",
	labeled("billShape", `(?:bill|visor|brim)(?:\s+shape)?`, true),
	[]Rule{
		keyword("billShape-combo", `(?i)\b(slight(?:ly)?[\s-]+curved|pre[\s-]?curved)\s+(?:bill|visor|brim)\b`),
		keyword("billShape-keyword", `(?i)\b(curved|flat|straight)\s+(?:bill|visor|brim)\b`),
	},
)

var structureCascade = cascade("structure",
	labeled("structure", `structure|construction`, false),
	[]Rule{
		keyword("structure-keyword", `(?i)\b(unstructured|semi[\s-]structured|structured|foam[\s-]+front)\b`),
	},
)

// A combination anywhere in the text beats a labeled single fabric.
var fabricCascade = cascade("fabric",
	[]Rule{{
		Name:    "fabric-combo",
		Pattern: regexp.MustCompile(`(?i)\b(` + fabricWords + `)\s*(?:/|\+|&|\band\b|\bwith\b)\s*(` + fabricWords + `)\b`),
		Value:   joinGroups("/"),
	}},
	labeled("fabric", `fabric|material|fabrication`, false),
	[]Rule{
		keyword("fabric-single", `(?i)\b(`+fabricWords+`)\b`),
	},
)

var closureCascade = cascade("closure",
	labeled("closure", `closure(?:\s+type)?|strap`, false),
	[]Rule{
		keyword("closure-combo", `(?i)\b(plastic\s+snap(?:back)?|metal\s+(?:buckle|slide)|leather\s+strap(?:\s+with\s+(?:metal|brass)\s+buckle)?|hook\s*(?:and|&)\s*loop)\b`),
		keyword("closure-keyword", `(?i)\b(snapback|fitted|flexfit|stretch[\s-]fit|velcro|strapback|buckle|elastic)\b`),
	},
)

var stitchingCascade = cascade("stitching",
	labeled("stitching", `stitch(?:ing)?(?:\s+colou?r)?`, false),
	[]Rule{
		keyword("stitching-keyword", `(?i)\b(matching|contrast(?:ing)?|tonal)\s+stitch(?:ing|es)?\b`),
	},
)

var deliveryMethodCascade = cascade("delivery.method",
	withAccept(labeled("delivery.method", `delivery(?:\s+(?:method|option|type))?|shipping(?:\s+(?:method|option))?`, false), isWordy),
	[]Rule{
		keyword("delivery.method-keyword", `(?i)\b((?:regular|standard|priority|express|rush|economy|sea|ocean|air|ground)\s+(?:delivery|shipping|freight))\b`),
	},
)

var leadTimeCascade = cascade("delivery.leadTime",
	[]Rule{
		{
			Name:    "delivery.leadTime-labeled",
			Pattern: regexp.MustCompile(`(?i)\b(?:lead|delivery|production|turnaround)\s+time\**(?:\s*:|\s+[-–]|\s+(?:is|of))\s*\**\s*(?:approximately\s+|about\s+|around\s+)?([^\n\r.;|]+)`),
			Accept:  hasDigit,
		},
		keyword("delivery.leadTime-range", `(?i)\b(\d+\s*(?:-|–|to)\s*\d+\s*(?:business\s+|working\s+)?(?:days|weeks))\b`),
		keyword("delivery.leadTime-single", `(?i)\b(\d+\s*(?:business\s+|working\s+)?(?:days|weeks))\b`),
	},
)

func withAccept(rules []Rule, accept func(string) bool) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		r.Accept = accept
		out[i] = r
	}
	return out
}

// isWordy accepts names such as "Priority Delivery" and refuses durations or amounts.
func isWordy(v string) bool {
	return hasLetter(v) && !hasDigit(v)
}

func hasLetter(v string) bool {
	for _, r := range v {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func hasDigit(v string) bool {
	return strings.IndexFunc(v, unicode.IsDigit) >= 0
}

// splitColors breaks "Black/White & Red" into its parts.
var colorSeparators = regexp.MustCompile(`(?i)\s*(?:/|,|&|\band\b|\+)\s*`)

func splitColors(v string) []string {
	var out []string
	for _, p := range colorSeparators.Split(v, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
