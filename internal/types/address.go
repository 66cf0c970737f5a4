package types

import "strings"

// Address is a postal address assembled from a reverse geocoding result
// or from fallback data
type Address struct {
	HouseNumber string `json:"houseNumber"`
	Road        string `json:"road"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Full        string `json:"full"`
	Timezone    string `json:"timezone,omitempty"`
}

// Resolved reports whether the address carries a display string
func (a Address) Resolved() bool {
	return a.Full != ""
}

// JoinAddress joins the non-empty parts with ", "
func JoinAddress(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
