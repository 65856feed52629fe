package engine

import "testing"

func TestLookNameOccasionOverrideFirstLookOnly(t *testing.T) {
	name0, _ := lookName(0, PurposePersonal, "wedding")
	if name0 != "Celebration Fit" {
		t.Fatalf("index 0 name = %q, want occasion override", name0)
	}

	name1, _ := lookName(1, PurposePersonal, "wedding")
	if name1 == "Celebration Fit" {
		t.Fatalf("occasion override leaked past index 0")
	}
}

func TestLookNamePurposeLists(t *testing.T) {
	personal, _ := lookName(2, PurposePersonal, "")
	gift, _ := lookName(2, PurposeGift, "")
	if personal == gift {
		t.Fatalf("personal and gift templates should differ at the same index")
	}
}

func TestLookNameWrapsAroundTemplateList(t *testing.T) {
	early, _ := lookName(1, PurposePersonal, "")
	late, _ := lookName(1+len(personalTemplates), PurposePersonal, "")
	if early != late {
		t.Fatalf("template indexing should wrap: %q vs %q", early, late)
	}
}

func TestStyleTipDeterministic(t *testing.T) {
	for i := 0; i < 6; i++ {
		first := styleTip(i, PurposeGift, "party")
		second := styleTip(i, PurposeGift, "party")
		if first == "" {
			t.Fatalf("empty tip at index %d", i)
		}
		if first != second {
			t.Fatalf("tip not deterministic at index %d", i)
		}
	}
}

func TestStyleTipOccasionFirstLook(t *testing.T) {
	tip := styleTip(0, PurposePersonal, "travel")
	if tip != occasionTips["travel"] {
		t.Fatalf("index 0 tip = %q, want occasion tip", tip)
	}
}
