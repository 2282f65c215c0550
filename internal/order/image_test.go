package order

import "testing"

func TestValidImageURL(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"https://example.com/shoe.png", true},
		{"https://example.com/shoe.JPG", true},
		{"http://example.com/a/b/shoe.webp", true},
		{"https://example.com/shoe.jpeg?w=720", true},
		{"", false},
		{"https://example.com/shoe", false},
		{"https://example.com/shoe.pdf", false},
		{"ftp://example.com/shoe.png", false},
		{"not a url", false},
		{"/relative/shoe.png", false},
		{"https:///shoe.png", false},
	}
	for _, c := range cases {
		if got := ValidImageURL(c.url); got != c.want {
			t.Errorf("ValidImageURL(%q) = %v, want %v", c.url, got, c.want)
		}
	}
}
