package types

// Person holds the profile part of a generated identity
type Person struct {
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	PhotoURL string `json:"photoUrl"`
	Phone    string `json:"phone"`
}
