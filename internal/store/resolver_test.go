package store

import (
	"context"
	"testing"
)

func TestContainmentScore(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		candidate string
		want      float64
	}{
		{"identical", "1drop", "1Drop", 1.0},
		{"no overlap", "xyz", "1Drop 6000mg", 0.0},
		{"empty query", "", "1Drop 6000mg", 0.0},
		{"case folded", "FULL", "full spectrum", 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := containmentScore(tc.query, tc.candidate); got != tc.want {
				t.Errorf("containmentScore(%q, %q) = %g, want %g", tc.query, tc.candidate, got, tc.want)
			}
		})
	}
}

func TestBestMatch_AbbreviatedDescription(t *testing.T) {
	candidates := []string{
		"1Drop 6000mg CBD Isolado 30ml",
		"1Drop 6000mg Full Spectrum 30ml",
	}
	// "6000fs" needs an f, which only the Full Spectrum name provides.
	got, score := bestMatch("6000fs", candidates)
	if got != "1Drop 6000mg Full Spectrum 30ml" {
		t.Errorf("expected Full Spectrum match, got %q (score %g)", got, score)
	}
}

func TestBestMatch_TieKeepsFirst(t *testing.T) {
	candidates := []string{"Gummy 300mg", "Gummy 900mg"}
	got, _ := bestMatch("gummy", candidates)
	if got != "Gummy 300mg" {
		t.Errorf("tie should keep the first candidate, got %q", got)
	}
}

func TestResolveProductName(t *testing.T) {
	s, db := newTestStore(t)
	seedCatalog(t, db, "1Drop",
		"1Drop 6000mg CBD Isolado 30ml",
		"1Drop 6000mg Full Spectrum 30ml",
	)

	name, ok := s.ResolveProductName(context.Background(), "1drop", "6000 full spectrum")
	if !ok {
		t.Fatal("expected a resolution for a known brand")
	}
	if name != "1Drop 6000mg Full Spectrum 30ml" {
		t.Errorf("expected canonical name, got %q", name)
	}

	if _, ok := s.ResolveProductName(context.Background(), "NoSuchBrand", "6000"); ok {
		t.Error("expected no resolution for an unknown brand")
	}
	if _, ok := s.ResolveProductName(context.Background(), "", "6000"); ok {
		t.Error("expected no resolution for an empty brand")
	}
}
