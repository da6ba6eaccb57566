package domain

// FAQ is one entry in the read-only FAQ collection.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
