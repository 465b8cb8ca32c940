package domain

import "testing"

func TestApplyMergesOnlySetFields(t *testing.T) {
	u := DefaultUser()
	name := "  Asha Rao "
	orders := 9

	got := u.Apply(UserPatch{Name: &name, Orders: &orders})

	if got.Name != "Asha Rao" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}
	if got.Orders != 9 {
		t.Fatalf("expected 9 orders, got %d", got.Orders)
	}
	if got.Email != u.Email || got.Addresses != u.Addresses || got.Language != u.Language {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if u.Name != "Sarah Johnson" {
		t.Fatal("Apply must not modify the receiver")
	}
}

func TestEmptyPatch(t *testing.T) {
	if !(UserPatch{}).Empty() {
		t.Fatal("zero patch should be empty")
	}
	lang := "hi"
	if (UserPatch{Language: &lang}).Empty() {
		t.Fatal("patch with language should not be empty")
	}
	u := DefaultUser()
	if u.Apply(UserPatch{}) != u {
		t.Fatal("empty patch should be a no-op")
	}
}
