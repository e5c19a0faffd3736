package models

import "time"

// PageSnapshot is the raw page content posted by the extraction client.
type PageSnapshot struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	IsTCPage  bool      `json:"is_tc_page"`
	WordCount int       `json:"word_count"`
	Timestamp time.Time `json:"timestamp"`
}
