package expenses

import "testing"

func TestValidCategory(t *testing.T) {
	for _, category := range Categories {
		if !ValidCategory(category) {
			t.Fatalf("expected %q to be a valid category", category)
		}
	}
}

func TestValidCategoryIsExactMatch(t *testing.T) {
	for _, category := range []string{"Maintenance", "MAINTENANCE", " maintenance", "maintenance ", "repairs", ""} {
		if ValidCategory(category) {
			t.Fatalf("expected %q to be rejected", category)
		}
	}
}
