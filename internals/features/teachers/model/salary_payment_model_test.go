package model

import (
	"reflect"
	"strings"
	"testing"
)

// The payment log is append-only: paying the same month twice must produce
// two rows, so no column besides the primary key may carry a unique index.
func TestSalaryPaymentModelHasNoMonthUniqueness(t *testing.T) {
	typ := reflect.TypeOf(SalaryPaymentModel{})
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := strings.ToLower(field.Tag.Get("gorm"))
		if strings.Contains(tag, "primarykey") {
			continue
		}
		if strings.Contains(tag, "unique") {
			t.Fatalf("field %s carries a unique constraint: %q", field.Name, tag)
		}
	}
}
