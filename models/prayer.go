package models

import "time"

var PrayerCategories = []string{
	"Healing",
	"Family",
	"Employment",
	"Spiritual Growth",
	"Health",
	"Guidance",
	"Other",
}

type PrayerRequest struct {
	Prayer_ID   int       `json:"id"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	Content     string    `json:"content"`
	Created_At  time.Time `json:"created_at"`
	Is_Approved bool      `json:"is_approved"`
	Likes       int       `json:"likes"`
	Is_Viral    bool      `json:"is_viral"`
}

type PrayerCreate struct {
	Author   string `json:"author"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

func ValidPrayerCategory(category string) bool {
	for _, c := range PrayerCategories {
		if c == category {
			return true
		}
	}
	return false
}
