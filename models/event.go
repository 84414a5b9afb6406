package models

// NationalEvent comes from the external events provider, normalized
// and deduplicated by ID before it reaches any view.
type NationalEvent struct {
	Event_ID    int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Start_Date  string `json:"start_date"`
	End_Date    string `json:"end_date"`
}
