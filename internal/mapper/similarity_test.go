package mapper

import (
	"math"
	"testing"
)

func TestSimilarity_Identity(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"a", "serial", "numéro de série"} {
		if got := Similarity(s, s); got != 1.0 {
			t.Fatalf("Similarity(%q, %q) want=1.0 got=%v", s, s, got)
		}
	}
	if got := Similarity("", ""); got != 1.0 {
		t.Fatalf("Similarity of two empty strings want=1.0 got=%v", got)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"marque", "brand"},
		{"serial", "serie"},
		{"", "model"},
		{"kitten", "sitting"},
	}
	for _, p := range pairs {
		ab, ba := Similarity(p[0], p[1]), Similarity(p[1], p[0])
		if ab != ba {
			t.Fatalf("Similarity(%q,%q)=%v but Similarity(%q,%q)=%v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestSimilarity_KnownDistances(t *testing.T) {
	t.Parallel()

	// kitten -> sitting has edit distance 3, max length 7.
	want := (7.0 - 3.0) / 7.0
	if got := Similarity("kitten", "sitting"); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Similarity(kitten, sitting) want=%v got=%v", want, got)
	}

	if got := Similarity("abc", ""); got != 0.0 {
		t.Fatalf("Similarity(abc, \"\") want=0 got=%v", got)
	}

	// serie vs serial: distance 2, max length 6.
	want = (6.0 - 2.0) / 6.0
	if got := Similarity("serie", "serial"); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Similarity(serie, serial) want=%v got=%v", want, got)
	}
}
