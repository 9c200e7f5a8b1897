package models

import "time"

// OutlineInfo describes a stored outline without its content.
type OutlineInfo struct {
	Name       string    `json:"name"`
	Title      string    `json:"title"`
	NodeCount  int       `json:"node_count"`
	Sorted     bool      `json:"sorted"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}
