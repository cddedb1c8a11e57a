// Package compare derives per-attribute winners between two property
// records. The backend's comparison endpoint returns both full records;
// the verdicts rendered in the dashboard are computed here, locally.
package compare

import "propdash/internal/domain"

type Verdict int

const (
	Tie Verdict = iota
	FirstWins
	SecondWins
)

func (v Verdict) String() string {
	switch v {
	case FirstWins:
		return "first"
	case SecondWins:
		return "second"
	default:
		return "tie"
	}
}

// attribute describes one comparable metric: how to read it off a record
// and which direction counts as better. Derived metrics report ok=false
// when their input is undefined (zero divisor), which drops the row from
// the comparison instead of producing NaN.
type attribute struct {
	name          string
	lowerIsBetter bool
	value         func(p domain.PropertyDetail) (float64, bool)
}

var attributes = []attribute{
	{"Price", true, func(p domain.PropertyDetail) (float64, bool) { return p.Price, true }},
	{"Size (sqft)", false, func(p domain.PropertyDetail) (float64, bool) { return p.SqFt, true }},
	{"Bedrooms", false, func(p domain.PropertyDetail) (float64, bool) { return float64(p.Bedrooms), true }},
	{"Bathrooms", false, func(p domain.PropertyDetail) (float64, bool) { return p.Bathrooms, true }},
	{"School rating", false, func(p domain.PropertyDetail) (float64, bool) { return p.SchoolRating, true }},
	{"Commute (min)", true, func(p domain.PropertyDetail) (float64, bool) { return p.CommuteMinutes, true }},
	{"Year built", false, func(p domain.PropertyDetail) (float64, bool) { return float64(p.YearBuilt), true }},
	{"Amenity count", false, func(p domain.PropertyDetail) (float64, bool) { return float64(len(p.Amenities)), true }},
	{"Price per sqft", true, func(p domain.PropertyDetail) (float64, bool) {
		if p.SqFt == 0 {
			return 0, false
		}
		return p.Price / p.SqFt, true
	}},
}

// Row is one tallied attribute with both values and its verdict.
type Row struct {
	Name    string
	First   float64
	Second  float64
	Verdict Verdict
}

// Report is the full outcome of comparing two records: ordered rows,
// raw counts for a score breakdown, and the aggregate verdict.
type Report struct {
	Rows       []Row
	FirstWins  int
	SecondWins int
	Ties       int
	Overall    Verdict
}

// Compare walks the attribute table once and tallies a verdict per row.
// The aggregate goes to whichever side holds a strict majority of wins;
// equal win counts are an overall Tie regardless of how many rows tied.
func Compare(a, b domain.PropertyDetail) Report {
	var rep Report
	for _, attr := range attributes {
		av, aok := attr.value(a)
		bv, bok := attr.value(b)
		if !aok || !bok {
			continue
		}
		v := verdictFor(av, bv, attr.lowerIsBetter)
		switch v {
		case FirstWins:
			rep.FirstWins++
		case SecondWins:
			rep.SecondWins++
		default:
			rep.Ties++
		}
		rep.Rows = append(rep.Rows, Row{Name: attr.name, First: av, Second: bv, Verdict: v})
	}
	switch {
	case rep.FirstWins > rep.SecondWins:
		rep.Overall = FirstWins
	case rep.SecondWins > rep.FirstWins:
		rep.Overall = SecondWins
	default:
		rep.Overall = Tie
	}
	return rep
}

func verdictFor(a, b float64, lowerIsBetter bool) Verdict {
	if a == b {
		return Tie
	}
	if (a < b) == lowerIsBetter {
		return FirstWins
	}
	return SecondWins
}
