package validator

import "testing"

type sampleForm struct {
	Name  string `validate:"required,person_name"`
	Phone string `validate:"required,phone"`
}

func TestValidateStructAcceptsValidForm(t *testing.T) {
	errs := ValidateStruct(sampleForm{Name: "Abebe Kebede", Phone: "+251911223344"})
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", Message(errs))
	}
}

func TestValidateStructRejectsBadPhone(t *testing.T) {
	errs := ValidateStruct(sampleForm{Name: "Abebe", Phone: "not a phone"})
	if len(errs) == 0 {
		t.Fatal("expected phone validation to fail")
	}
	if errs[0].Tag != "phone" {
		t.Errorf("failed tag = %q, want phone", errs[0].Tag)
	}
}

func TestValidateStructRejectsNumericName(t *testing.T) {
	errs := ValidateStruct(sampleForm{Name: "1234", Phone: "0911223344"})
	if len(errs) == 0 {
		t.Fatal("expected name validation to fail")
	}
}

func TestValidateStructRequiredFields(t *testing.T) {
	errs := ValidateStruct(sampleForm{})
	if len(errs) != 2 {
		t.Errorf("expected 2 required-field errors, got %d", len(errs))
	}
}
