package css

import (
	"testing"
)

func TestFontFormat(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"fonts/Lato.woff", "woff"},
		{"fonts/Lato.woff2", "woff2"},
		{"Lato.ttf", "truetype"},
		{"Lato.otf", "opentype"},
		{"Lato.eot", "embedded-opentype"},
		{"Lato.svg", "svg"},
		{"https://cdn.example.com/Lato.WOFF2", "woff2"},
		{"Lato.custom", "custom"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := FontFormat(tc.in); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValidFontData(t *testing.T) {
	// magic plus the TrueType flavor bytes the signature check expects
	woff2 := append([]byte{'w', 'O', 'F', '2', 0x00, 0x01, 0x00, 0x00}, make([]byte, 12)...)
	ttf := append([]byte{0x00, 0x01, 0x00, 0x00, 0x00}, make([]byte, 15)...)

	tests := []struct {
		name string
		path string
		data []byte
		want bool
	}{
		{"woff2 magic", "a.woff2", woff2, true},
		{"ttf magic", "a.ttf", ttf, true},
		{"mismatched extension", "a.woff2", ttf, false},
		{"garbage", "a.ttf", []byte("not a font at all!!"), false},
		{"unknown extension accepted", "a.custom", []byte("whatever"), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidFontData(tc.path, tc.data); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	good := ".c0{color:red}@media (min-width: 100px){.c1{width:auto}}@keyframes k0{0%{opacity:0}100%{opacity:1}}"
	if err := Verify(good); err != nil {
		t.Errorf("valid css rejected: %v", err)
	}
	if err := Verify(""); err != nil {
		t.Errorf("empty css rejected: %v", err)
	}
	if err := Verify(".c0"); err == nil {
		t.Error("unterminated qualified rule accepted")
	}
}
