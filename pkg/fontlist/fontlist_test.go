package fontlist

import (
	"reflect"
	"sort"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single name", "Arial", []string{"Arial"}},
		{"newline and comma mix", "Arial\nTimes New Roman, Foo", []string{"Arial", "Times New Roman", "Foo"}},
		{"windows line endings", "Arial\r\nVerdana", []string{"Arial", "Verdana"}},
		{"whitespace trimmed", "  Inter  ,\n\tFira Code ", []string{"Inter", "Fira Code"}},
		{"only separators and whitespace", " , ,\n ", nil},
		{"duplicates preserved", "Arial,Arial", []string{"Arial", "Arial"}},
		{"inner spaces kept", "Comic Sans MS", []string{"Comic Sans MS"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestMergeFallsBackToBuiltin(t *testing.T) {
	got := Merge(nil)

	want := append([]string(nil), Builtin...)
	sort.Strings(want)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge(nil) = %v, want sorted builtin list %v", got, want)
	}
}

func TestMergeDeduplicatesAndSorts(t *testing.T) {
	got := Merge([]string{"Inter", "Arial", "Inter", "Aaa Display"})

	if got[0] != "Aaa Display" {
		t.Errorf("expected user font sorted to front, got %v", got[:2])
	}

	seen := map[string]int{}
	for _, name := range got {
		seen[name]++
	}
	for name, n := range seen {
		if n > 1 {
			t.Errorf("duplicate entry %q appears %d times", name, n)
		}
	}
	if !sort.StringsAreSorted(got) {
		t.Errorf("merged list not sorted: %v", got)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	before := append([]string(nil), Builtin...)
	user := []string{"Zzz", "Aaa"}

	Merge(user)

	if !reflect.DeepEqual(Builtin, before) {
		t.Error("Merge mutated the builtin list")
	}
	if !reflect.DeepEqual(user, []string{"Zzz", "Aaa"}) {
		t.Error("Merge mutated the user list")
	}
}

func TestMergeInto(t *testing.T) {
	got := MergeInto([]string{"B", "A"}, []string{"C", "A"})
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeInto = %v, want %v", got, want)
	}
}
