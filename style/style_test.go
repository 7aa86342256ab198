package style

import (
	"reflect"
	"strings"
	"testing"
)

func TestSortedKeys(t *testing.T) {
	in := map[string]any{"item10": 1, "item2": 1, "color": 1, ":hover": 1}
	want := []string{":hover", "color", "item2", "item10"}
	if got := SortedKeys(in); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want string
	}{
		{"empty", map[string]any{}, ""},
		{"scalars", map[string]any{"b": 2, "a": "x"}, "a=s:x;b=i:2;"},
		{"bool and float", map[string]any{"flag": true, "ratio": 1.5}, "flag=b:1;ratio=f:1.5;"},
		{"nil value", map[string]any{"a": nil}, "a=n;"},
		{"list", map[string]any{"display": []any{"flex", "-webkit-flex"}}, "display=[s:flex,s:-webkit-flex];"},
		{"nested", map[string]any{"outer": map[string]any{"inner": 1}}, "outer={inner=i:1;};"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Stringify(tc.in); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStringifyTypeTags(t *testing.T) {
	// string "12" and number 12 must never produce the same signature
	asString := Stringify(map[string]any{"zIndex": "12"})
	asNumber := Stringify(map[string]any{"zIndex": 12})
	if asString == asNumber {
		t.Errorf("signatures collide: %q", asString)
	}
}

func TestRefToken(t *testing.T) {
	if got := RefToken(nil); got != "" {
		t.Errorf("nil props: got %q, want empty", got)
	}
	if got := RefToken(Props{}); got != "" {
		t.Errorf("empty props: got %q, want empty", got)
	}

	a := RefToken(Props{"size": 12, "color": "red"})
	b := RefToken(Props{"color": "red", "size": 12})
	if a != b {
		t.Errorf("equal props produced different tokens: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "-") || len(a) != tokenLength+1 {
		t.Errorf("unexpected token shape: %q", a)
	}
	for _, r := range a[1:] {
		if !strings.ContainsRune(tokenCharset, r) {
			t.Errorf("token %q contains %q outside charset", a, r)
		}
	}

	if c := RefToken(Props{"size": 13, "color": "red"}); c == a {
		t.Errorf("different props produced equal tokens: %q", c)
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name           string
		resolved, base Style
		want           Style
	}{
		{
			name:     "nil base copies whole",
			resolved: Style{"color": "red", "size": 12},
			base:     nil,
			want:     Style{"color": "red", "size": 12},
		},
		{
			name:     "equal styles yield empty delta",
			resolved: Style{"color": "red"},
			base:     Style{"color": "red"},
			want:     Style{},
		},
		{
			name:     "changed scalar kept",
			resolved: Style{"color": "blue", "size": 12},
			base:     Style{"color": "red", "size": 12},
			want:     Style{"color": "blue"},
		},
		{
			name:     "new key kept",
			resolved: Style{"color": "red", "margin": 4},
			base:     Style{"color": "red"},
			want:     Style{"margin": 4},
		},
		{
			name:     "removed key ignored",
			resolved: Style{"color": "red"},
			base:     Style{"color": "red", "size": 12},
			want:     Style{},
		},
		{
			name:     "nested diffed recursively",
			resolved: Style{":hover": Style{"color": "blue", "size": 12}},
			base:     Style{":hover": Style{"color": "red", "size": 12}},
			want:     Style{":hover": Style{"color": "blue"}},
		},
		{
			name:     "equal nested omitted",
			resolved: Style{"color": "blue", ":hover": Style{"color": "red"}},
			base:     Style{"color": "red", ":hover": Style{"color": "red"}},
			want:     Style{"color": "blue"},
		},
		{
			name:     "scalar replaced by nested kept whole",
			resolved: Style{"a": Style{"b": 1}},
			base:     Style{"a": "scalar"},
			want:     Style{"a": Style{"b": 1}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Diff(tc.resolved, tc.base); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDiffDoesNotAliasResolved(t *testing.T) {
	resolved := Style{"color": "red"}
	out := Diff(resolved, nil)
	out["color"] = "blue"
	if resolved["color"] != "red" {
		t.Error("diff result aliases resolved style")
	}
}
