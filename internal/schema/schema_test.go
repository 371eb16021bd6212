package schema

import (
	"strings"
	"testing"
)

// =========================================================================
// SIGNUP
// =========================================================================

func TestSignupInput_Valid(t *testing.T) {
	in := SignupInput{Email: "a@x.com", Password: "secret1", Name: "A"}
	if err := in.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestSignupInput_Violations(t *testing.T) {
	cases := []struct {
		name  string
		in    SignupInput
		field string
	}{
		{"missing email", SignupInput{Password: "secret1", Name: "A"}, "email"},
		{"bad email", SignupInput{Email: "not-an-email", Password: "secret1", Name: "A"}, "email"},
		{"short password", SignupInput{Email: "a@x.com", Password: "abc", Name: "A"}, "password"},
		{"long password", SignupInput{Email: "a@x.com", Password: strings.Repeat("p", 73), Name: "A"}, "password"},
		{"missing name", SignupInput{Email: "a@x.com", Password: "secret1"}, "name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want violation")
			}
			if cause := FirstViolation(err); !strings.HasPrefix(cause, tc.field+":") {
				t.Errorf("FirstViolation() = %q, want it to name field %q", cause, tc.field)
			}
		})
	}
}

// =========================================================================
// SIGNIN
// =========================================================================

func TestSigninInput(t *testing.T) {
	valid := SigninInput{Email: "a@x.com", Password: "p"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	if err := (SigninInput{Email: "a@x.com"}).Validate(); err == nil {
		t.Error("Validate() should reject a missing password")
	}
	if err := (SigninInput{Password: "p"}).Validate(); err == nil {
		t.Error("Validate() should reject a missing email")
	}
}

// =========================================================================
// BLOG INPUTS
// =========================================================================

func TestCreateBlogInput(t *testing.T) {
	valid := CreateBlogInput{Title: "T", Content: "C"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	if err := (CreateBlogInput{Content: "C"}).Validate(); err == nil {
		t.Error("Validate() should reject a missing title")
	}
	if err := (CreateBlogInput{Title: "T"}).Validate(); err == nil {
		t.Error("Validate() should reject missing content")
	}
}

func TestUpdateBlogInput(t *testing.T) {
	valid := UpdateBlogInput{ID: 1, Title: "T", Content: "C"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	if err := (UpdateBlogInput{Title: "T", Content: "C"}).Validate(); err == nil {
		t.Error("Validate() should reject a missing id")
	}
	if err := (UpdateBlogInput{ID: -3, Title: "T", Content: "C"}).Validate(); err == nil {
		t.Error("Validate() should reject a negative id")
	}
}

// =========================================================================
// FIRST VIOLATION
// =========================================================================

// Several fields can fail at once; the reported cause must be stable across
// runs, not subject to map iteration order.
func TestFirstViolation_Deterministic(t *testing.T) {
	in := SignupInput{} // email, name, and password all blank

	first := FirstViolation(in.Validate())
	for i := 0; i < 20; i++ {
		if got := FirstViolation(in.Validate()); got != first {
			t.Fatalf("FirstViolation() not deterministic: %q vs %q", got, first)
		}
	}

	// Alphabetically first field wins.
	if !strings.HasPrefix(first, "email:") {
		t.Errorf("FirstViolation() = %q, want the email violation first", first)
	}
}

func TestFirstViolation_NilAndPlainErrors(t *testing.T) {
	if got := FirstViolation(nil); got != "" {
		t.Errorf("FirstViolation(nil) = %q, want empty", got)
	}
}
