package attendance

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

var Statuses = []string{StatusPresent, StatusAbsent, StatusLate}

func ValidStatus(status string) bool {
	for _, candidate := range Statuses {
		if status == candidate {
			return true
		}
	}
	return false
}
