package theme

import "testing"

func TestByNameFallsBackToDefault(t *testing.T) {
	if got := ByName("no-such-theme"); got.Name != FlexokiDark.Name {
		t.Fatalf("ByName(unknown) = %q, want %q", got.Name, FlexokiDark.Name)
	}
	for _, name := range Names() {
		if got := ByName(name); got.Name != name {
			t.Errorf("ByName(%q) = %q", name, got.Name)
		}
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(FlexokiDark.Name)

	SetActive("terminal")
	if Active.Name != "terminal" {
		t.Fatalf("Active = %q, want terminal", Active.Name)
	}
}

func TestSavingsColor(t *testing.T) {
	th := FlexokiDark
	if th.SavingsColor(1166) != th.Savings {
		t.Error("positive savings not using Savings color")
	}
	if th.SavingsColor(0) != th.Savings {
		t.Error("zero savings not using Savings color")
	}
	if th.SavingsColor(-1) != th.Loss {
		t.Error("negative savings not using Loss color")
	}
}
