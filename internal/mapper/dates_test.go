package mapper

import "testing"

func TestFormatDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-03-15", "2024-03-15", true},
		{"2024/3/5", "2024-03-05", true},
		{"2024.03.15", "2024-03-15", true},
		// Year-last with slash defaults month-first, swapped when the
		// month is impossible.
		{"03/15/2024", "2024-03-15", true},
		{"15/03/2024", "2024-03-15", true},
		{"3-5-2024", "2024-03-05", true},
		// Dot-separated dates read day-first.
		{"15.03.2024", "2024-03-15", true},
		{"03.15.2024", "2024-03-15", true},
		{" 2024-12-01 ", "2024-12-01", true},
		{"", "", false},
		{"not a date", "", false},
		{"2024-13-15", "", false},
		{"13/14/2024", "", false},
		{"2024-02-30", "", false},
		{"1850-01-01", "", false},
		{"15/03/24", "", false},
	}
	for _, c := range cases {
		got, ok := FormatDate(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("FormatDate(%q) want=(%q,%v) got=(%q,%v)", c.in, c.want, c.ok, got, ok)
		}
	}
}

func TestIsDate(t *testing.T) {
	t.Parallel()

	if !IsDate("15/03/2024") {
		t.Fatal("IsDate(15/03/2024) want=true")
	}
	if IsDate("SN-12345678") {
		t.Fatal("IsDate(SN-12345678) want=false")
	}
}
