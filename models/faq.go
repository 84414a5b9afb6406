package models

import "time"

var FAQCategories = []string{
	"General",
	"Services",
	"Membership",
	"Beliefs",
	"Other",
}

// FAQ entries sort by Order ascending, newest first as a tiebreak.
type FAQ struct {
	FAQ_ID     int       `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Category   string    `json:"category"`
	Order      int       `json:"order"`
	Created_At time.Time `json:"created_at"`
	Updated_At time.Time `json:"updated_at"`
}

type FAQWrite struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}
