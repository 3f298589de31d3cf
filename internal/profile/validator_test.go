package profile

import (
	"errors"
	"testing"

	"github.com/civicgrid/yojana/internal/model"
)

func TestValidate_CompleteForm(t *testing.T) {
	form := Form{
		Age:        "30",
		Income:     "100000",
		Occupation: "Wheat Farmer",
		State:      "Delhi",
		Gender:     "Male",
		Category:   "OBC",
		Disability: true,
	}

	p, err := Validate(form)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if p.Age != 30 || p.Income != 100000 {
		t.Errorf("age/income = %d/%d, want 30/100000", p.Age, p.Income)
	}
	if p.Occupation != "Wheat Farmer" || p.State != "Delhi" || p.Gender != "Male" || p.Category != "OBC" {
		t.Errorf("unexpected profile: %+v", p)
	}
	if !p.Disability {
		t.Error("disability flag lost")
	}
}

func TestValidate_DefaultsForOptionalFields(t *testing.T) {
	p, err := Validate(Form{Age: "25", Income: "0"})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if p.Occupation != model.DefaultOccupation {
		t.Errorf("occupation = %q, want default %q", p.Occupation, model.DefaultOccupation)
	}
	if p.State != model.DefaultState {
		t.Errorf("state = %q, want default %q", p.State, model.DefaultState)
	}
	if p.Gender != model.DefaultGender {
		t.Errorf("gender = %q, want default %q", p.Gender, model.DefaultGender)
	}
	if p.Category != model.DefaultCategory {
		t.Errorf("category = %q, want default %q", p.Category, model.DefaultCategory)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name  string
		form  Form
		field string
	}{
		{"missing age", Form{Income: "50000"}, "age"},
		{"missing income", Form{Age: "30"}, "income"},
		{"age not numeric", Form{Age: "thirty", Income: "50000"}, "age"},
		{"income not numeric", Form{Age: "30", Income: "5 lakh"}, "income"},
		{"age fractional", Form{Age: "30.5", Income: "50000"}, "age"},
		{"age negative", Form{Age: "-1", Income: "50000"}, "age"},
		{"income negative", Form{Age: "30", Income: "-100"}, "income"},
		{"age blank", Form{Age: "   ", Income: "50000"}, "age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.form)
			if err == nil {
				t.Fatal("expected error, got none")
			}
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("error %T is not a *FieldError", err)
			}
			if fieldErr.Field != tt.field {
				t.Errorf("failed field = %q, want %q", fieldErr.Field, tt.field)
			}
		})
	}
}

func TestValidate_TrimsWhitespace(t *testing.T) {
	p, err := Validate(Form{Age: " 42 ", Income: " 120000 ", State: "  Kerala  "})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if p.Age != 42 || p.Income != 120000 {
		t.Errorf("age/income = %d/%d, want 42/120000", p.Age, p.Income)
	}
	if p.State != "Kerala" {
		t.Errorf("state = %q, want Kerala", p.State)
	}
}
