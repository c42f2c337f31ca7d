package domain

// ID is used across domain entities.
type ID int64

// Valid reports whether the id can reference a stored row.
func (id ID) Valid() bool { return id > 0 }
