package models

import (
	"reflect"
	"strings"
	"testing"
)

// Türetilmiş ad benzersizliği yalnızca controller'daki count kontrolüne
// bırakılmaz; (form_id, form_type, name) üçlüsü şemada da unique olmalı.
func TestFormFieldNameUniquePerForm(t *testing.T) {
	typ := reflect.TypeOf(FormField{})
	for _, fieldName := range []string{"FormID", "FormType", "Name"} {
		f, ok := typ.FieldByName(fieldName)
		if !ok {
			t.Fatalf("field %s missing", fieldName)
		}
		if !strings.Contains(f.Tag.Get("gorm"), "uniqueIndex:idx_form_name") {
			t.Errorf("%s should carry the idx_form_name unique index", fieldName)
		}
	}
}
