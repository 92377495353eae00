package yotext

import "testing"

func TestFold(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain ascii", "plain ascii"},
		{"irinwó", "irinwo"},
		{"ọgọ́rùn-ún", "ogorun-un"},
		{"ẹẹ́ẹ́dógún", "eeedogun"},
		{"òdì àìlópin", "odi ailopin"},
		{"ṣáájú Kristi", "saaju Kristi"},
	}

	for _, tt := range cases {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripTones(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"irinwó", "irinwo"},
		{"ọgọ́rùn-ún", "ọgọrun-un"},
		{"ẹgbẹ̀rún", "ẹgbẹrun"},
	}

	for _, tt := range cases {
		if got := StripTones(tt.in); got != tt.want {
			t.Errorf("StripTones(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
