package entities

type LogoLocation string

const (
	LogoLocationFront     LogoLocation = "Front"
	LogoLocationBack      LogoLocation = "Back"
	LogoLocationLeft      LogoLocation = "Left"
	LogoLocationRight     LogoLocation = "Right"
	LogoLocationUpperBill LogoLocation = "UpperBill"
	LogoLocationUnderBill LogoLocation = "UnderBill"
)

type LogoMethod string

const (
	LogoMethodFlatEmbroidery LogoMethod = "FlatEmbroidery"
	LogoMethod3DEmbroidery   LogoMethod = "3DEmbroidery"
	LogoMethodScreenPrint    LogoMethod = "ScreenPrint"
	LogoMethodSublimation    LogoMethod = "Sublimation"
	LogoMethodLeatherPatch   LogoMethod = "LeatherPatch"
	LogoMethodRubberPatch    LogoMethod = "RubberPatch"
)

type LogoSize string

const (
	LogoSizeSmall  LogoSize = "Small"
	LogoSizeMedium LogoSize = "Medium"
	LogoSizeLarge  LogoSize = "Large"
)

// LogoEntry is one decoration. Within a specification no two entries share
// the same (Location, Method) pair.
type LogoEntry struct {
	Location LogoLocation `json:"location"`
	Method   LogoMethod   `json:"method"`
	Size     LogoSize     `json:"size"`
}

// LogoKey is the uniqueness key of a LogoEntry.
type LogoKey struct {
	Location LogoLocation
	Method   LogoMethod
}

func (l LogoEntry) Key() LogoKey {
	return LogoKey{Location: l.Location, Method: l.Method}
}

var methodLabels = map[LogoMethod]string{
	LogoMethodFlatEmbroidery: "Flat Embroidery",
	LogoMethod3DEmbroidery:   "3D Embroidery",
	LogoMethodScreenPrint:    "Screen Print",
	LogoMethodSublimation:    "Sublimation",
	LogoMethodLeatherPatch:   "Leather Patch",
	LogoMethodRubberPatch:    "Rubber Patch",
}

// Label is the human readable form of the method, e.g. "3D Embroidery".
func (m LogoMethod) Label() string {
	if l, ok := methodLabels[m]; ok {
		return l
	}
	return string(m)
}

func (m LogoMethod) Valid() bool {
	_, ok := methodLabels[m]
	return ok
}

func (l LogoLocation) Valid() bool {
	switch l {
	case LogoLocationFront, LogoLocationBack, LogoLocationLeft, LogoLocationRight,
		LogoLocationUpperBill, LogoLocationUnderBill:
		return true
	}
	return false
}

func (s LogoSize) Valid() bool {
	switch s {
	case LogoSizeSmall, LogoSizeMedium, LogoSizeLarge:
		return true
	}
	return false
}
