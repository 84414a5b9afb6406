package models

// Counselling topics offered on the public intake form.
var CounsellingTopics = []string{
	"Marriage & Family",
	"Grief & Loss",
	"Addiction",
	"Faith & Doubt",
	"Finances",
	"Other",
}

type CounsellingIntake struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Country_Code string `json:"country_code"`
	Phone        string `json:"phone"`
	Topic        string `json:"topic"`
	Message      string `json:"message"`
}

// Decision is a "receive Jesus" response from the public flow.
type Decision struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Country_Code string `json:"country_code"`
	Phone        string `json:"phone"`
	Prayed       bool   `json:"prayed"`
	Wants_Visit  bool   `json:"wants_visit"`
}

func ValidCounsellingTopic(topic string) bool {
	for _, t := range CounsellingTopics {
		if t == topic {
			return true
		}
	}
	return false
}
