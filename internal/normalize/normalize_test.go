package normalize

import (
	"strconv"
	"testing"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$1,299.00", 1299.00, true},
		{"$19.99", 19.99, true},
		{"1299", 1299, true},
		{"  $45.50 ", 45.50, true},
		{"From $12.34 per unit", 12.34, true},
		{"R$ 1.234", 1.234, true},
		{"", 0, false},
		{"   ", 0, false},
		{"no price here", 0, false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got := ParseMoney(c.in)
			if c.ok {
				if got == nil {
					t.Fatalf("ParseMoney(%q) = nil, want %v", c.in, c.want)
				}
				if *got != c.want {
					t.Fatalf("ParseMoney(%q) = %v, want %v", c.in, *got, c.want)
				}
			} else if got != nil {
				t.Fatalf("ParseMoney(%q) = %v, want nil", c.in, *got)
			}
		})
	}
}

func TestParseMoneyIdempotent(t *testing.T) {
	inputs := []string{"$1,299.00", "$19.99", "price: $7", "42"}
	for _, in := range inputs {
		first := ParseMoney(in)
		if first == nil {
			t.Fatalf("ParseMoney(%q) = nil", in)
		}
		again := ParseMoney(strconv.FormatFloat(*first, 'f', -1, 64))
		if again == nil || *again != *first {
			t.Fatalf("ParseMoney não idempotente para %q: %v depois %v", in, *first, again)
		}
	}
}

func TestParseRating(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"4.3 out of 5 stars", 4.3, true},
		{"4.8", 4.8, true},
		{"Rated 5 stars", 5, true},
		{"", 0, false},
		{"no stars", 0, false},
	}
	for _, c := range cases {
		got := ParseRating(c.in)
		if c.ok {
			if got == nil || *got != c.want {
				t.Fatalf("ParseRating(%q) = %v, want %v", c.in, got, c.want)
			}
		} else if got != nil {
			t.Fatalf("ParseRating(%q) = %v, want nil", c.in, *got)
		}
	}
}

func TestParseReviewCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1.2K", 1200, true},
		{"(1,234)", 1234, true},
		{"3k", 3000, true},
		{"(87)", 87, true},
		{"12,345 ratings", 12345, true},
		{"", 0, false},
		{"()", 0, false},
		{"none", 0, false},
	}
	for _, c := range cases {
		got := ParseReviewCount(c.in)
		if c.ok {
			if got == nil || *got != c.want {
				t.Fatalf("ParseReviewCount(%q) = %v, want %d", c.in, got, c.want)
			}
		} else if got != nil {
			t.Fatalf("ParseReviewCount(%q) = %d, want nil", c.in, *got)
		}
	}
}

func TestToFloat(t *testing.T) {
	if got := ToFloat("12.5"); got == nil || *got != 12.5 {
		t.Fatalf("ToFloat string: %v", got)
	}
	if got := ToFloat(7); got == nil || *got != 7 {
		t.Fatalf("ToFloat int: %v", got)
	}
	if got := ToFloat(""); got != nil {
		t.Fatalf("ToFloat vazio deveria ser nil: %v", *got)
	}
	if got := ToFloat("abc"); got != nil {
		t.Fatalf("ToFloat inválido deveria ser nil: %v", *got)
	}
	if got := ToFloat(nil); got != nil {
		t.Fatalf("ToFloat(nil) deveria ser nil")
	}
}

func TestToInt(t *testing.T) {
	if got := ToInt("431.0"); got == nil || *got != 431 {
		t.Fatalf("ToInt: %v", got)
	}
	if got := ToInt("x"); got != nil {
		t.Fatalf("ToInt inválido deveria ser nil: %d", *got)
	}
}
