package models

// HistoryEvent renders on the public timeline, newest year first.
type HistoryEvent struct {
	History_ID  int    `json:"id"`
	Year        int    `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type HistoryEventWrite struct {
	Year        int    `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
