package expenses

const (
	CategoryPurchases   = "purchases"
	CategoryMaintenance = "maintenance"
	CategoryElectricity = "electricity"
	CategoryWater       = "water"
	CategoryInternet    = "internet"
	CategoryCleaning    = "cleaning"
	CategorySalaries    = "salaries"
	CategoryOther       = "other"
)

var Categories = []string{
	CategoryPurchases,
	CategoryMaintenance,
	CategoryElectricity,
	CategoryWater,
	CategoryInternet,
	CategoryCleaning,
	CategorySalaries,
	CategoryOther,
}

func ValidCategory(category string) bool {
	for _, candidate := range Categories {
		if category == candidate {
			return true
		}
	}
	return false
}
