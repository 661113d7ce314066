// Package onboarding models the three-step seller application wizard:
// per-step validation, forward/back transitions and the attached
// verification document. Submission against the store lives in the
// services layer; this package is pure state.
package onboarding

import (
	"errors"

	"handmadehaven/internal/validate"
)

const (
	Step1 = 1 // personal details
	Step2 = 2 // craft details
	Step3 = 3 // verification document

	// MaxDocumentSize caps the verification upload at 5 MiB. Oversized
	// files are rejected at selection time and never enter form state.
	MaxDocumentSize = 5 << 20
)

// ErrFileTooLarge is surfaced as a standalone notification, not a
// field error.
var ErrFileTooLarge = errors.New("file size must be less than 5MB")

// Document is a picked verification file held in memory until submit.
type Document struct {
	Name string
	Size int64
	Data []byte
}

// Application is one in-flight seller application. It exists only
// until submission; abandoning the wizard loses the data.
type Application struct {
	Name     string
	City     string
	State    string
	Phone    string
	Bio      string
	Category string
	Document *Document

	Step     int
	Complete bool
	Errors   map[string]string
}

func New() *Application {
	return &Application{Step: Step1, Errors: map[string]string{}}
}

// Set writes one form field and clears any error recorded for it, so
// stale messages disappear as soon as the user edits.
func (a *Application) Set(field, value string) {
	switch field {
	case "name":
		a.Name = value
	case "city":
		a.City = value
	case "state":
		a.State = value
	case "phone":
		a.Phone = value
	case "bio":
		a.Bio = value
	case "category":
		a.Category = value
	default:
		return
	}
	delete(a.Errors, field)
}

// Attach stores the picked document. Oversized files are rejected
// before touching form state.
func (a *Application) Attach(name string, size int64, data []byte) error {
	if size > MaxDocumentSize {
		return ErrFileTooLarge
	}
	a.Document = &Document{Name: name, Size: size, Data: data}
	delete(a.Errors, "document")
	return nil
}

// validateStep checks only the given step's fields and returns a
// field-keyed error set. Later steps never invalidate earlier ones.
func (a *Application) validateStep(step int) map[string]string {
	errs := map[string]string{}
	switch step {
	case Step1:
		if _, ok := validate.Name(a.Name); !ok {
			errs["name"] = "Name is required"
		}
		if _, ok := validate.Name(a.City); !ok {
			errs["city"] = "City is required"
		}
		if _, ok := validate.Name(a.State); !ok {
			errs["state"] = "State is required"
		}
		if _, ok := validate.Phone(a.Phone); !ok {
			errs["phone"] = "Enter a valid 10-digit phone number"
		}
	case Step2:
		if _, ok := validate.Bio(a.Bio); !ok {
			errs["bio"] = "Bio is required"
		}
		if _, ok := validate.Category(a.Category); !ok {
			errs["category"] = "Category is required"
		}
	case Step3:
		if a.Document == nil {
			errs["document"] = "Document is required"
		}
	}
	return errs
}

// Next attempts a forward transition. On validation failure the step
// is unchanged and Errors holds the per-field messages; on success the
// new step starts with an empty error set.
func (a *Application) Next() bool {
	errs := a.validateStep(a.Step)
	if len(errs) > 0 {
		a.Errors = errs
		return false
	}
	if a.Step < Step3 {
		a.Step++
	}
	a.Errors = map[string]string{}
	return true
}

// Back moves one step backward without validating anything.
func (a *Application) Back() {
	if a.Step > Step1 {
		a.Step--
	}
}

// ReadyToSubmit re-runs the final step's validation; submission is
// only legal from a valid Step3.
func (a *Application) ReadyToSubmit() bool {
	if a.Step != Step3 || a.Complete {
		return false
	}
	errs := a.validateStep(Step3)
	if len(errs) > 0 {
		a.Errors = errs
		return false
	}
	return true
}

// MarkComplete flips to the terminal state and discards form data.
func (a *Application) MarkComplete() {
	*a = Application{Step: Step3, Complete: true, Errors: map[string]string{}}
}
