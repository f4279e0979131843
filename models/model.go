package models

// Reference is a tagged link to the domain entity that caused a transaction
// (order, donation, asset yield). Resolution is the caller's responsibility.
type Reference struct {
	ID   uint64 `json:"id"`
	Type string `json:"type"`
}
