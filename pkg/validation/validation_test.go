package validation

import (
	"strings"
	"testing"
)

type sample struct {
	Name  string `validate:"notblank"`
	Email string `validate:"required,contains=@"`
	A     string `validate:"required"`
	B     string `validate:"required,nefield=A"`
}

func TestStruct(t *testing.T) {
	cases := []struct {
		name    string
		in      sample
		wantErr string
	}{
		{name: "valid", in: sample{Name: "x", Email: "a@b", A: "1", B: "2"}},
		{name: "blank name", in: sample{Name: "  ", Email: "a@b", A: "1", B: "2"}, wantErr: "name is required"},
		{name: "no at", in: sample{Name: "x", Email: "ab", A: "1", B: "2"}, wantErr: "email must contain @"},
		{name: "same fields", in: sample{Name: "x", Email: "a@b", A: "1", B: "1"}, wantErr: "b must differ from a"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(tc.in)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tc.wantErr)
			}
		})
	}
}
