package compare_test

import (
	"testing"

	"propdash/internal/compare"
	"propdash/internal/domain"
)

func detail(price, sqft float64, beds int, baths float64, amenities ...string) domain.PropertyDetail {
	d := domain.PropertyDetail{
		Bedrooms:       beds,
		Bathrooms:      baths,
		SqFt:           sqft,
		Amenities:      amenities,
		SchoolRating:   8,
		CommuteMinutes: 30,
		YearBuilt:      2000,
	}
	d.Price = price
	return d
}

func rowByName(t *testing.T, rep compare.Report, name string) compare.Row {
	t.Helper()
	for _, r := range rep.Rows {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("row %q missing from report", name)
	return compare.Row{}
}

func TestIdenticalRecordsTieEverywhere(t *testing.T) {
	a := detail(300000, 1500, 3, 2, "garage", "garden")
	rep := compare.Compare(a, a)

	if rep.FirstWins != 0 || rep.SecondWins != 0 {
		t.Fatalf("expected no wins, got %d/%d", rep.FirstWins, rep.SecondWins)
	}
	if rep.Ties != len(rep.Rows) {
		t.Fatalf("expected all %d rows tied, got %d", len(rep.Rows), rep.Ties)
	}
	if rep.Overall != compare.Tie {
		t.Fatalf("overall = %s, want tie", rep.Overall)
	}
}

func TestHigherIsBetterAttribute(t *testing.T) {
	a := detail(300000, 1500, 4, 2)
	b := detail(300000, 1500, 3, 2)
	rep := compare.Compare(a, b)

	if got := rowByName(t, rep, "Bedrooms").Verdict; got != compare.FirstWins {
		t.Fatalf("bedrooms verdict = %s, want first", got)
	}
	// Inverted inputs flip the verdict.
	rep = compare.Compare(b, a)
	if got := rowByName(t, rep, "Bedrooms").Verdict; got != compare.SecondWins {
		t.Fatalf("bedrooms verdict = %s, want second", got)
	}
}

func TestLowerIsBetterAttribute(t *testing.T) {
	a := detail(280000, 1500, 3, 2)
	b := detail(300000, 1500, 3, 2)
	rep := compare.Compare(a, b)

	if got := rowByName(t, rep, "Price").Verdict; got != compare.FirstWins {
		t.Fatalf("price verdict = %s, want first", got)
	}
	a.CommuteMinutes, b.CommuteMinutes = 45, 20
	rep = compare.Compare(a, b)
	if got := rowByName(t, rep, "Commute (min)").Verdict; got != compare.SecondWins {
		t.Fatalf("commute verdict = %s, want second", got)
	}
}

func TestPricePerSqftWorkedExample(t *testing.T) {
	// A: 300000/1500 = 200, B: 320000/1400 = 228.57 -> lower is better -> A.
	a := detail(300000, 1500, 3, 2)
	b := detail(320000, 1400, 3, 2)
	rep := compare.Compare(a, b)

	row := rowByName(t, rep, "Price per sqft")
	if row.First != 200 {
		t.Fatalf("first price/sqft = %v, want 200", row.First)
	}
	if row.Verdict != compare.FirstWins {
		t.Fatalf("price/sqft verdict = %s, want first", row.Verdict)
	}
}

func TestZeroSqftSkipsDerivedRow(t *testing.T) {
	a := detail(300000, 0, 3, 2)
	b := detail(320000, 1400, 3, 2)
	rep := compare.Compare(a, b)

	for _, r := range rep.Rows {
		if r.Name == "Price per sqft" {
			t.Fatal("price/sqft row present despite zero sqft")
		}
	}
	// Size itself still compares; only the derived metric is dropped.
	if got := rowByName(t, rep, "Size (sqft)").Verdict; got != compare.SecondWins {
		t.Fatalf("size verdict = %s, want second", got)
	}
}

func TestEqualAttributeCountsAsTieNotWin(t *testing.T) {
	a := detail(280000, 1500, 3, 2)
	b := detail(300000, 1500, 3, 2)
	rep := compare.Compare(a, b)

	if got := rowByName(t, rep, "Bedrooms").Verdict; got != compare.Tie {
		t.Fatalf("bedrooms 3 vs 3 verdict = %s, want tie", got)
	}
	if rep.Ties == 0 {
		t.Fatal("tie tally empty")
	}
}

func TestAggregateTieOnEqualWinCounts(t *testing.T) {
	// A wins price and price/sqft; B wins bedrooms and school rating.
	a := detail(280000, 1500, 3, 2)
	b := detail(300000, 1500, 4, 2)
	b.SchoolRating = 9
	rep := compare.Compare(a, b)

	if rep.FirstWins != 2 || rep.SecondWins != 2 {
		t.Fatalf("setup broken: wins %d vs %d", rep.FirstWins, rep.SecondWins)
	}
	if rep.Overall != compare.Tie {
		t.Fatalf("overall = %s, want tie with equal win counts", rep.Overall)
	}
}

func TestAggregateMajorityWins(t *testing.T) {
	a := detail(280000, 1600, 4, 2.5, "garage", "garden", "pool")
	b := detail(300000, 1400, 3, 2, "garage")
	rep := compare.Compare(a, b)

	if rep.Overall != compare.FirstWins {
		t.Fatalf("overall = %s, want first (wins %d vs %d)", rep.Overall, rep.FirstWins, rep.SecondWins)
	}
	if rep.FirstWins+rep.SecondWins+rep.Ties != len(rep.Rows) {
		t.Fatal("tally does not cover every row")
	}
}
