package extractor

import (
	"regexp"
	"sort"
	"strings"

	"capquote/internal/domain/entities"
)

type token[T any] struct {
	value      T
	start, end int
}

type locationPattern struct {
	location entities.LogoLocation
	pattern  *regexp.Regexp
}

type methodPattern struct {
	method  entities.LogoMethod
	pattern *regexp.Regexp
}

// Bill placements precede the panel words; 3D precedes flat embroidery, and
// bare "embroidery" falls back to flat.
var locationPatterns = []locationPattern{
	{entities.LogoLocationUpperBill, regexp.MustCompile(`(?i)\b(?:upper\s+bill|top\s+of\s+(?:the\s+)?(?:bill|visor|brim)|bill\s+top)\b`)},
	{entities.LogoLocationUnderBill, regexp.MustCompile(`(?i)\b(?:under[\s-]?bill|under\s+(?:the\s+)?(?:bill|visor|brim)|underside\s+of\s+(?:the\s+)?(?:bill|visor|brim))\b`)},
	{entities.LogoLocationFront, regexp.MustCompile(`(?i)\bfront(?:\s+(?:panel|center|logo))?\b`)},
	{entities.LogoLocationBack, regexp.MustCompile(`(?i)\b(?:back(?:\s+(?:panel|arch|center|logo))?|rear)\b`)},
	{entities.LogoLocationLeft, regexp.MustCompile(`(?i)\bleft(?:\s+(?:side|panel))?\b`)},
	{entities.LogoLocationRight, regexp.MustCompile(`(?i)\bright(?:\s+(?:side|panel))?\b`)},
}

var methodPatterns = []methodPattern{
	{entities.LogoMethod3DEmbroidery, regexp.MustCompile(`(?i)\b(?:3d(?:\s+puff)?|puff)[\s-]*embroider(?:y|ed)\b`)},
	{entities.LogoMethodFlatEmbroidery, regexp.MustCompile(`(?i)\b(?:flat\s+)?embroider(?:y|ed)\b`)},
	{entities.LogoMethodScreenPrint, regexp.MustCompile(`(?i)\bscreen[\s-]*print(?:ed|ing)?\b`)},
	{entities.LogoMethodSublimation, regexp.MustCompile(`(?i)\b(?:sublimat(?:ion|ed)|dye[\s-]sub)\b`)},
	{entities.LogoMethodLeatherPatch, regexp.MustCompile(`(?i)\bleather\s+patch(?:es)?\b`)},
	{entities.LogoMethodRubberPatch, regexp.MustCompile(`(?i)\b(?:rubber|pvc|silicone)\s+patch(?:es)?\b`)},
}

var (
	logoSizePattern  = regexp.MustCompile(`(?i)\b(small|medium|large)\b`)
	fragmentSplitter = regexp.MustCompile(`\r?\n|;|\.\s+|•`)
	onLocationGlue   = regexp.MustCompile(`(?i)^(?:\s+logos?)?\s+(?:on|at|for)\s+(?:the\s+)?$`)
	lineItemSplit    = regexp.MustCompile(`:|\s[-–]\s`)
	locationFiller   = regexp.MustCompile(`(?i)^(?:[\s,&/*\-•#>]+|\b(?:and|the|logos?|placement|position)\b)*$`)
)

// logoBinder is one entry of the logo cascade. It returns the entries it
// could bind from a single fragment.
type logoBinder struct {
	name string
	bind func(fragment string) []entities.LogoEntry
}

var logoCascade = []logoBinder{
	{name: "logo-line-item", bind: bindLineItem},
	{name: "logo-on-location", bind: bindOnLocation},
	{name: "logo-nearest", bind: bindNearest},
}

// bindLineItem handles "Front: Large 3D Embroidery" and "Left and Right - Small Flat Embroidery".
func bindLineItem(fragment string) []entities.LogoEntry {
	loc := lineItemSplit.FindStringIndex(fragment)
	if loc == nil {
		return nil
	}
	head, tail := fragment[:loc[0]], fragment[loc[1]:]
	if !locationHead(head) {
		return nil
	}
	locations := findLocations(head)
	methods := findMethods(tail)
	if len(methods) == 0 {
		return nil
	}
	size := nearestSize(tail, methods[0].start)
	out := make([]entities.LogoEntry, 0, len(locations))
	for _, l := range locations {
		out = append(out, entities.LogoEntry{Location: l.value, Method: methods[0].value, Size: size})
	}
	return out
}

// locationHead reports whether head names placements and nothing else, as in
// "Left and Right" or "- Front Logo".
func locationHead(head string) bool {
	rest, found := head, false
	for _, lp := range locationPatterns {
		if lp.pattern.MatchString(rest) {
			found = true
			rest = lp.pattern.ReplaceAllString(rest, " ")
		}
	}
	return found && locationFiller.MatchString(rest)
}

// logoScope drops a "<remark>:" lead-in that is neither a placement nor a
// method, so "let me get that right: ..." does not place a logo on the right.
func logoScope(fragment string) string {
	loc := lineItemSplit.FindStringIndex(fragment)
	if loc == nil {
		return fragment
	}
	head := fragment[:loc[0]]
	if locationHead(head) || len(findMethods(head)) > 0 {
		return fragment
	}
	return fragment[loc[1]:]
}

// bindOnLocation handles "3D embroidery on the front".
func bindOnLocation(fragment string) []entities.LogoEntry {
	locations := findLocations(fragment)
	methods := findMethods(fragment)
	var out []entities.LogoEntry
	for _, m := range methods {
		for _, l := range locations {
			if l.start < m.end || !onLocationGlue.MatchString(fragment[m.end:l.start]) {
				continue
			}
			out = append(out, entities.LogoEntry{Location: l.value, Method: m.value, Size: nearestSize(fragment, m.start)})
			break
		}
	}
	return out
}

// bindNearest pairs every location of the fragment with the closest method.
func bindNearest(fragment string) []entities.LogoEntry {
	locations := findLocations(fragment)
	methods := findMethods(fragment)
	if len(locations) == 0 || len(methods) == 0 {
		return nil
	}
	out := make([]entities.LogoEntry, 0, len(locations))
	for _, l := range locations {
		best := methods[0]
		for _, m := range methods[1:] {
			if distance(l, m) < distance(l, best) {
				best = m
			}
		}
		out = append(out, entities.LogoEntry{Location: l.value, Method: best.value, Size: nearestSize(fragment, best.start)})
	}
	return out
}

// extractLogos runs the logo cascade fragment by fragment. When nothing can
// be bound but a method is named anywhere, a single Front entry is returned.
func (e *Extractor) extractLogos(text string, res *Result) []entities.LogoEntry {
	var out []entities.LogoEntry
	seen := map[entities.LogoKey]bool{}
	for _, fragment := range fragmentSplitter.Split(text, -1) {
		fragment = logoScope(fragment)
		if strings.TrimSpace(fragment) == "" {
			continue
		}
		for _, b := range logoCascade {
			entries := b.bind(fragment)
			if len(entries) == 0 {
				continue
			}
			for _, le := range entries {
				if seen[le.Key()] {
					continue
				}
				seen[le.Key()] = true
				out = append(out, le)
				res.note("logo", b.name, string(le.Location)+"/"+string(le.Method)+"/"+string(le.Size))
			}
			break
		}
	}
	if len(out) > 0 {
		return out
	}

	methods := findMethods(text)
	if len(methods) == 0 {
		return nil
	}
	// findMethods sorts by position; the fallback wants cascade order.
	fallback := methods[0].value
	for _, mp := range methodPatterns {
		if containsMethod(methods, mp.method) {
			fallback = mp.method
			break
		}
	}
	le := entities.LogoEntry{Location: entities.LogoLocationFront, Method: fallback, Size: entities.LogoSizeMedium}
	res.LogoFallback = true
	res.note("logo", "logo-global-fallback", string(le.Location)+"/"+string(le.Method)+"/"+string(le.Size))
	return []entities.LogoEntry{le}
}

func findLocations(s string) []token[entities.LogoLocation] {
	var out []token[entities.LogoLocation]
	var claimed [][]int
	for _, lp := range locationPatterns {
		for _, idx := range lp.pattern.FindAllStringIndex(s, -1) {
			if overlaps(claimed, idx) {
				continue
			}
			claimed = append(claimed, idx)
			if !containsLocation(out, lp.location) {
				out = append(out, token[entities.LogoLocation]{value: lp.location, start: idx[0], end: idx[1]})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].start < out[j].start })
	return out
}

func findMethods(s string) []token[entities.LogoMethod] {
	var out []token[entities.LogoMethod]
	var claimed [][]int
	for _, mp := range methodPatterns {
		for _, idx := range mp.pattern.FindAllStringIndex(s, -1) {
			if overlaps(claimed, idx) {
				continue
			}
			claimed = append(claimed, idx)
			out = append(out, token[entities.LogoMethod]{value: mp.method, start: idx[0], end: idx[1]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].start < out[j].start })
	return out
}

// nearestSize picks the size word closest to pos, defaulting to Medium.
func nearestSize(s string, pos int) entities.LogoSize {
	size := entities.LogoSizeMedium
	best := -1
	for _, idx := range logoSizePattern.FindAllStringSubmatchIndex(s, -1) {
		d := idx[0] - pos
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			best = d
			size = entities.LogoSize(titleWord(s[idx[2]:idx[3]]))
		}
	}
	return size
}

func overlaps(claimed [][]int, idx []int) bool {
	for _, c := range claimed {
		if idx[0] < c[1] && c[0] < idx[1] {
			return true
		}
	}
	return false
}

func distance[A, B any](a token[A], b token[B]) int {
	d := a.start - b.start
	if d < 0 {
		return -d
	}
	return d
}

func containsLocation(ts []token[entities.LogoLocation], l entities.LogoLocation) bool {
	for _, t := range ts {
		if t.value == l {
			return true
		}
	}
	return false
}

func containsMethod(ts []token[entities.LogoMethod], m entities.LogoMethod) bool {
	for _, t := range ts {
		if t.value == m {
			return true
		}
	}
	return false
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
