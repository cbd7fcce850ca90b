// Package generation names the generation a birth year belongs to.
package generation

// Label is a display name plus a short tag used for styling.
type Label struct {
	Name string
	Tag  string
}

var (
	BabyBoomer = Label{Name: "Baby Boomer", Tag: "baby-boomer"}
	GenX       = Label{Name: "Generation X", Tag: "x"}
	Millennial = Label{Name: "Millennial", Tag: "millennial"}
	GenZ       = Label{Name: "Generation Z", Tag: "z"}
	GenAlpha   = Label{Name: "Generation Alpha", Tag: "alpha"}
	Other      = Label{Name: "Other", Tag: "other"}
)

// Classify returns the generation for year. The checks run in order and the
// first match wins; Alpha has no upper bound.
func Classify(year int) Label {
	if year >= 1946 && year <= 1964 {
		return BabyBoomer
	}
	if year >= 1965 && year <= 1980 {
		return GenX
	}
	if year >= 1981 && year <= 1996 {
		return Millennial
	}
	if year >= 1997 && year <= 2012 {
		return GenZ
	}
	if year >= 2013 {
		return GenAlpha
	}
	return Other
}

// Band is a closed year range covered by one generation.
type Band struct {
	Label Label
	From  int
	To    int
}

// Bands lists the bounded generations in chronological order. Alpha is
// reported up to to, since it is open ended.
func Bands(to int) []Band {
	bands := []Band{
		{Label: BabyBoomer, From: 1946, To: 1964},
		{Label: GenX, From: 1965, To: 1980},
		{Label: Millennial, From: 1981, To: 1996},
		{Label: GenZ, From: 1997, To: 2012},
	}
	if to >= 2013 {
		bands = append(bands, Band{Label: GenAlpha, From: 2013, To: to})
	}
	return bands
}
