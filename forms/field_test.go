package forms

import (
	"reflect"
	"testing"

	"github.com/kulupnet/kulup-server/models"
)

func fieldList(names ...string) []models.FormField {
	out := make([]models.FormField, len(names))
	for i, n := range names {
		out[i] = models.FormField{Name: n, SortOrder: i}
	}
	return out
}

func orders(fields []models.FormField) []int {
	out := make([]int, len(fields))
	for i, f := range fields {
		out[i] = f.SortOrder
	}
	return out
}

func names(fields []models.FormField) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}

func TestCompactAfterDelete(t *testing.T) {
	fields := fieldList("a", "b", "c", "d")
	// b silindi
	fields = append(fields[:1], fields[2:]...)
	Compact(fields)

	if got, want := orders(fields), []int{0, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("orders = %v, want %v", got, want)
	}
}

func TestCompactAfterMixedOps(t *testing.T) {
	fields := fieldList("a", "b", "c")
	fields = append(fields, models.FormField{Name: "d", SortOrder: len(fields)})
	Move(fields, 3, -1)
	fields = append(fields[:0], fields[1:]...) // baştakini sil
	Compact(fields)

	// küme her zaman tam olarak {0..n-1}
	seen := map[int]bool{}
	for _, o := range orders(fields) {
		if o < 0 || o >= len(fields) || seen[o] {
			t.Fatalf("sort orders not dense: %v", orders(fields))
		}
		seen[o] = true
	}
}

func TestMoveSwapsNeighbours(t *testing.T) {
	fields := fieldList("a", "b", "c")
	Move(fields, 2, -1)
	if got, want := names(fields), []string{"a", "c", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("names = %v, want %v", got, want)
	}
	if got, want := orders(fields), []int{0, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("orders = %v, want %v", got, want)
	}
}

func TestMoveBoundaryNoop(t *testing.T) {
	fields := fieldList("a", "b", "c")
	Move(fields, 0, -1)              // ilk alan yukarı
	Move(fields, len(fields)-1, +1)  // son alan aşağı
	if got, want := names(fields), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("boundary move changed list: %v", got)
	}
}

func TestParseOptions(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"S\nM\nL", []string{"S", "M", "L"}},
		{"  S  \n\n M \n", []string{"S", "M"}},
		{"\n\n", nil},
		{"", nil},
	}
	for _, c := range cases {
		if got := ParseOptions(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("ParseOptions(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNeedsOptions(t *testing.T) {
	for _, ft := range []string{FieldSelect, FieldRadio, FieldCheckbox} {
		if !NeedsOptions(ft) {
			t.Errorf("NeedsOptions(%s) = false", ft)
		}
	}
	for _, ft := range []string{FieldText, FieldEmail, FieldFile, FieldDate} {
		if NeedsOptions(ft) {
			t.Errorf("NeedsOptions(%s) = true", ft)
		}
	}
}
