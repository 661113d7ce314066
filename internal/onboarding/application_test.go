package onboarding_test

import (
	"bytes"
	"testing"

	"handmadehaven/internal/onboarding"
)

func fillStep1(a *onboarding.Application) {
	a.Set("name", "Meera Devi")
	a.Set("city", "Jaipur")
	a.Set("state", "Rajasthan")
	a.Set("phone", "98-765 43210")
}

func TestStep1PhoneNormalizes(t *testing.T) {
	a := onboarding.New()
	fillStep1(a)
	if !a.Next() {
		t.Fatalf("valid step1 should advance, errors: %v", a.Errors)
	}
	if a.Step != onboarding.Step2 {
		t.Fatalf("want step 2, got %d", a.Step)
	}
	if len(a.Errors) != 0 {
		t.Fatalf("new step should start with empty errors: %v", a.Errors)
	}
}

func TestStep1ShortPhoneBlocks(t *testing.T) {
	a := onboarding.New()
	fillStep1(a)
	a.Set("phone", "12345")
	if a.Next() {
		t.Fatal("short phone should not advance")
	}
	if a.Step != onboarding.Step1 {
		t.Fatalf("step changed on failed validation: %d", a.Step)
	}
	if a.Errors["phone"] == "" {
		t.Fatalf("want phone-specific error, got %v", a.Errors)
	}
	if a.Errors["name"] != "" {
		t.Fatalf("valid fields must not carry errors: %v", a.Errors)
	}
}

func TestEditClearsFieldError(t *testing.T) {
	a := onboarding.New()
	a.Next() // all step1 fields empty
	if len(a.Errors) == 0 {
		t.Fatal("empty step1 should fail")
	}
	a.Set("name", "Meera")
	if _, ok := a.Errors["name"]; ok {
		t.Fatal("editing a field must clear its error")
	}
	if _, ok := a.Errors["city"]; !ok {
		t.Fatal("other field errors must survive the edit")
	}
}

func TestBackNeverValidates(t *testing.T) {
	a := onboarding.New()
	fillStep1(a)
	a.Next()
	a.Set("bio", "Block printing since 1998")
	a.Set("category", "Textiles")
	a.Next()
	if a.Step != onboarding.Step3 {
		t.Fatalf("want step 3, got %d", a.Step)
	}

	a.Set("bio", "") // invalidate step2 field
	a.Back()
	if a.Step != onboarding.Step2 {
		t.Fatalf("back from step3 should land on step2, got %d", a.Step)
	}
	a.Back()
	if a.Step != onboarding.Step1 {
		t.Fatalf("back from step2 should land on step1, got %d", a.Step)
	}
	a.Back()
	if a.Step != onboarding.Step1 {
		t.Fatal("back from step1 must stay put")
	}
}

func TestStep2Rules(t *testing.T) {
	a := onboarding.New()
	fillStep1(a)
	a.Next()

	a.Set("bio", "   ")
	a.Set("category", "Basketry")
	if a.Next() {
		t.Fatal("blank bio and unknown category should fail")
	}
	if a.Errors["bio"] == "" || a.Errors["category"] == "" {
		t.Fatalf("want bio and category errors, got %v", a.Errors)
	}
}

func TestAttachRejectsOversizedFile(t *testing.T) {
	a := onboarding.New()
	err := a.Attach("aadhaar.pdf", 6<<20, nil)
	if err != onboarding.ErrFileTooLarge {
		t.Fatalf("want ErrFileTooLarge, got %v", err)
	}
	if a.Document != nil {
		t.Fatal("oversized file must not enter form state")
	}
	if _, ok := a.Errors["document"]; ok {
		t.Fatal("size rejection is a notification, not a field error")
	}
}

func TestStep3RequiresDocument(t *testing.T) {
	a := onboarding.New()
	fillStep1(a)
	a.Next()
	a.Set("bio", "Terracotta work")
	a.Set("category", "Pottery")
	a.Next()

	if a.ReadyToSubmit() {
		t.Fatal("no document attached, submit must be blocked")
	}
	if a.Errors["document"] == "" {
		t.Fatalf("want document error, got %v", a.Errors)
	}

	data := bytes.Repeat([]byte{0xc4}, 128)
	if err := a.Attach("pan.jpg", int64(len(data)), data); err != nil {
		t.Fatal(err)
	}
	if !a.ReadyToSubmit() {
		t.Fatalf("valid step3 should be submittable, errors: %v", a.Errors)
	}
}

func TestReadyToSubmitOnlyFromStep3(t *testing.T) {
	a := onboarding.New()
	fillStep1(a)
	if a.ReadyToSubmit() {
		t.Fatal("submit from step1 must be rejected")
	}
}

func TestMarkCompleteDiscardsFormData(t *testing.T) {
	a := onboarding.New()
	fillStep1(a)
	a.Next()
	a.Set("bio", "Weaver")
	a.Set("category", "Textiles")
	a.Next()
	_ = a.Attach("id.png", 64, []byte("x"))

	a.MarkComplete()
	if !a.Complete {
		t.Fatal("want terminal complete flag")
	}
	if a.Name != "" || a.Bio != "" || a.Document != nil {
		t.Fatalf("form data should be discarded: %+v", a)
	}
}

func TestStoreKeysBySession(t *testing.T) {
	s := onboarding.NewStore()
	a := s.Get("sid-1")
	a.Set("name", "Meera")
	if got := s.Get("sid-1"); got.Name != "Meera" {
		t.Fatal("same session should see same application")
	}
	if got := s.Get("sid-2"); got.Name != "" {
		t.Fatal("sessions must not share state")
	}
	s.Drop("sid-1")
	if got := s.Get("sid-1"); got.Name != "" {
		t.Fatal("dropped session should start fresh")
	}
}
