package normalizer

import (
	"regexp"
	"strings"
	"unicode"
)

// entry maps raw text containing every word in all to canonical. Words are
// matched on word boundaries, so "structured" does not hit "unstructured".
type entry struct {
	all       []string
	canonical string
}

// vocabulary is evaluated top-down; combinations must precede their parts.
type vocabulary []entry

func e(canonical string, all ...string) entry {
	return entry{all: all, canonical: canonical}
}

func (v vocabulary) lookup(raw string) (string, bool) {
	key := normalizeKey(raw)
	if key == "" {
		return "", false
	}
	for _, en := range v {
		if containsAll(key, en.all) {
			return en.canonical, true
		}
	}
	return "", false
}

var sizes = vocabulary{
	e("XS/S", "xs/s"),
	e("S/M", "s/m"),
	e("M/L", "m/l"),
	e("L/XL", "l/xl"),
	e("One Size", "one size"),
	e("One Size", "osfa"),
	e("Youth", "youth"),
	e("Youth", "kids"),
	e("X-Large", "x large"),
	e("X-Large", "xl"),
	e("Small", "small"),
	e("Medium", "medium"),
	e("Large", "large"),
	e("Adult", "adult"),
}

var colors = vocabulary{
	e("Heather Grey", "heather grey"),
	e("Heather Grey", "heather gray"),
	e("Royal Blue", "royal blue"),
	e("Navy", "navy blue"),
	e("Light Blue", "light blue"),
	e("Light Blue", "sky blue"),
	e("Forest Green", "forest green"),
	e("Forest Green", "dark green"),
	e("Kelly Green", "kelly green"),
	e("Burnt Orange", "burnt orange"),
	e("Maroon", "burgundy"),
	e("Grey", "grey"),
	e("Grey", "gray"),
	e("Black", "black"),
	e("White", "white"),
	e("Navy", "navy"),
	e("Red", "red"),
	e("Blue", "blue"),
	e("Charcoal", "charcoal"),
	e("Khaki", "khaki"),
	e("Tan", "tan"),
	e("Olive", "olive"),
	e("Green", "green"),
	e("Orange", "orange"),
	e("Yellow", "yellow"),
	e("Gold", "gold"),
	e("Pink", "pink"),
	e("Purple", "purple"),
	e("Maroon", "maroon"),
	e("Brown", "brown"),
	e("Beige", "beige"),
	e("Cream", "cream"),
	e("Silver", "silver"),
}

var profiles = vocabulary{
	e("High", "high"),
	e("Mid", "mid"),
	e("Mid", "medium"),
	e("Low", "low"),
}

var billShapes = vocabulary{
	e("Slight Curved", "slight curved"),
	e("Slight Curved", "slightly curved"),
	e("Curved", "pre curved"),
	e("Curved", "precurved"),
	e("Curved", "curved"),
	e("Flat", "flat"),
	e("Flat", "straight"),
}

var structures = vocabulary{
	e("Semi-Structured", "semi structured"),
	e("Unstructured", "unstructured"),
	e("Foam Front", "foam front"),
	e("Foam Front", "foam"),
	e("Structured", "structured"),
}

// fabrics lists the known two-fabric builds first, regardless of the order in
// which the parts were written ("laser cut + polyester" == "polyester/laser cut").
var fabrics = vocabulary{
	e("Acrylic/Air Mesh", "acrylic", "air mesh"),
	e("Polyester/Laser Cut", "polyester", "laser cut"),
	e("Cotton Twill/Air Mesh", "cotton twill", "air mesh"),
	e("Polyester/Air Mesh", "polyester", "air mesh"),
	e("Chino Twill/Trucker Mesh", "chino twill", "trucker mesh"),
	e("Cotton Twill/Trucker Mesh", "cotton twill", "trucker mesh"),
	e("Duck Camo/Trucker Mesh", "duck camo", "trucker mesh"),
	e("Suede Cotton", "suede cotton"),
	e("Chino Twill", "chino twill"),
	e("Cotton Twill", "cotton twill"),
	e("Brushed Cotton", "brushed cotton"),
	e("Performance Polyester", "performance polyester"),
	e("Air Mesh", "air mesh"),
	e("Trucker Mesh", "trucker mesh"),
	e("Laser Cut", "laser cut"),
	e("Duck Camo", "duck camo"),
	e("Polyester", "polyester"),
	e("Acrylic", "acrylic"),
	e("Nylon", "nylon"),
	e("Denim", "denim"),
	e("Corduroy", "corduroy"),
	e("Canvas", "canvas"),
	e("Suede", "suede"),
	e("Wool", "wool"),
	e("Camo", "camo"),
	e("Trucker Mesh", "mesh"),
	e("Cotton Twill", "cotton"),
	e("Chino Twill", "twill"),
}

var closures = vocabulary{
	e("Leather Strap", "leather strap"),
	e("Metal Buckle", "metal buckle"),
	e("Metal Slide", "metal slide"),
	e("Snapback", "plastic snap"),
	e("Snapback", "snapback"),
	e("Snapback", "snap back"),
	e("Velcro", "hook and loop"),
	e("Velcro", "hook loop"),
	e("Velcro", "velcro"),
	e("Stretch Fit", "stretch fit"),
	e("Stretch Fit", "flexfit"),
	e("Stretch Fit", "elastic"),
	e("Fitted", "fitted"),
	e("Strapback", "strapback"),
	e("Buckle", "buckle"),
}

var stitchings = vocabulary{
	e("Contrast", "contrast"),
	e("Contrast", "contrasting"),
	e("Matching", "matching"),
	e("Matching", "tonal"),
}

var deliveryMethods = vocabulary{
	e("Priority Delivery", "priority"),
	e("Priority Delivery", "express"),
	e("Priority Delivery", "rush"),
	e("Priority Delivery", "air"),
	e("Ocean Freight", "sea"),
	e("Ocean Freight", "ocean"),
	e("Regular Delivery", "regular"),
	e("Regular Delivery", "standard"),
	e("Regular Delivery", "economy"),
	e("Regular Delivery", "ground"),
}

var accessories = vocabulary{
	e("B-Tape Print", "b tape"),
	e("B-Tape Print", "btape"),
	e("Inside Label", "inside label"),
	e("Inside Label", "inside tag"),
	e("Hang Tag", "hang tag"),
	e("Hang Tag", "hangtag"),
	e("Sticker", "sticker"),
	e("Sticker", "stickers"),
	e("Hang Tag", "hang tags"),
	e("Inside Label", "inside labels"),
}

var keySpaces = regexp.MustCompile(`\s+`)

// normalizeKey lowercases and turns '-' and '_' into spaces. Slashes survive
// so size pairs such as "s/m" still match.
func normalizeKey(raw string) string {
	k := strings.ToLower(raw)
	k = strings.NewReplacer("-", " ", "_", " ", "&", " and ").Replace(k)
	return strings.TrimSpace(keySpaces.ReplaceAllString(k, " "))
}

func containsAll(key string, words []string) bool {
	for _, w := range words {
		if !containsWord(key, w) {
			return false
		}
	}
	return true
}

func containsWord(key, word string) bool {
	for from := 0; from <= len(key)-len(word); {
		i := strings.Index(key[from:], word)
		if i < 0 {
			return false
		}
		i += from
		end := i + len(word)
		if boundary(key, i-1) && boundary(key, end) {
			return true
		}
		from = i + 1
	}
	return false
}

func boundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	r := rune(s[i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
