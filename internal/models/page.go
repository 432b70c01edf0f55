package models

// Page is one window of a filtered listing. Total counts every match
// before the window was applied.
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
