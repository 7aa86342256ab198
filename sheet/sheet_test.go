package sheet

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	doc, err := Load([]byte(`
version: 1
rules:
  button:
    style:
      color: red
      ":hover":
        color: blue
    variants:
      - props: { size: large }
        style: { fontSize: 20px }
keyframes:
  fade:
    steps:
      "0%": { opacity: 0 }
      "100%": { opacity: 1 }
fonts:
  - family: Lato
    files: [fonts/lato.woff2]
statics:
  - css: "html{margin:0}"
  - selector: "body"
    style: { padding: 0 }
`))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(doc.Rules) != 1 || len(doc.Keyframes) != 1 || len(doc.Fonts) != 1 || len(doc.Statics) != 2 {
		t.Errorf("unexpected document shape: %+v", doc)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "unknown field",
			in:   "version: 1\nbogus: 1\n",
			want: "unable to decode",
		},
		{
			name: "bad version",
			in:   "version: 2\n",
			want: "unsupported document version",
		},
		{
			name: "empty rule",
			in:   "version: 1\nrules:\n  empty: {}\n",
			want: "neither style nor variants",
		},
		{
			name: "variant without props",
			in:   "version: 1\nrules:\n  r:\n    variants:\n      - style: { color: red }\n",
			want: "has no props to match",
		},
		{
			name: "keyframe without steps",
			in:   "version: 1\nkeyframes:\n  k: {}\n",
			want: "has no steps",
		},
		{
			name: "font without family",
			in:   "version: 1\nfonts:\n  - files: [a.woff]\n",
			want: "has no family",
		},
		{
			name: "font without files",
			in:   "version: 1\nfonts:\n  - family: Lato\n",
			want: "has no files",
		},
		{
			name: "static both forms",
			in:   "version: 1\nstatics:\n  - css: \"a{}\"\n    selector: b\n    style: { margin: 0 }\n",
			want: "mixes raw css",
		},
		{
			name: "static neither form",
			in:   "version: 1\nstatics:\n  - selector: b\n",
			want: "needs either css text",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadAccumulatesErrors(t *testing.T) {
	_, err := Load([]byte("version: 2\nkeyframes:\n  k: {}\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"unsupported document version", "has no steps"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}
