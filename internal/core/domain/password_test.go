package domain

import (
	"strings"
	"testing"
)

func TestValidatePassword_Accepts(t *testing.T) {
	for _, password := range []string{"Abcdef1!", "S3cure#Pass", "xYz9$abcdef"} {
		if err := ValidatePassword(password); err != nil {
			t.Fatalf("expected %q to pass, got %v", password, err)
		}
	}
}

func TestValidatePassword_ReportsAllViolations(t *testing.T) {
	err := ValidatePassword("abc")
	if err == nil {
		t.Fatalf("expected error for weak password")
	}

	msg := err.Error()
	for _, want := range []string{
		"at least 8 symbols",
		"at least one digit",
		"1 uppercase letter",
		"1 special symbol",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected message to mention %q, got %q", want, msg)
		}
	}
	if strings.Contains(msg, "lowercase") {
		t.Fatalf("lowercase rule wrongly reported for %q: %q", "abc", msg)
	}
}

func TestValidatePassword_SingleViolation(t *testing.T) {
	err := ValidatePassword("Abcdefg1")
	if err == nil {
		t.Fatalf("expected error for password without symbol")
	}
	if !strings.Contains(err.Error(), "special symbol") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if strings.Contains(err.Error(), ";") {
		t.Fatalf("expected exactly one violation, got %q", err.Error())
	}
}
