package address

import "strings"

type Address struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Company     string  `json:"company"`
	Address1    string  `json:"address1"`
	Address2    *string `json:"address2,omitempty"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	PostalCode  string  `json:"postalCode"`
	Country     string  `json:"country"`
	PhoneNumber string  `json:"phoneNumber"`
	IsDefault   bool    `json:"isDefault"`
}

// Lines renders the address for display, one line per row, skipping empty
// parts.
func (a Address) Lines() []string {
	var lines []string
	add := func(parts ...string) {
		var kept []string
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				kept = append(kept, p)
			}
		}
		if len(kept) > 0 {
			lines = append(lines, strings.Join(kept, " "))
		}
	}
	add(a.FirstName, a.LastName)
	add(a.Company)
	add(a.Address1)
	if a.Address2 != nil {
		add(*a.Address2)
	}
	city := a.City
	if city != "" && (a.State != "" || a.PostalCode != "") {
		city += ","
	}
	add(city, a.State, a.PostalCode)
	add(a.Country)
	return lines
}

type CreateAddressRequest struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Company     string  `json:"company"`
	Address1    string  `json:"address1"`
	Address2    *string `json:"address2,omitempty"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	PostalCode  string  `json:"postalCode"`
	Country     string  `json:"country"`
	PhoneNumber string  `json:"phoneNumber"`
	IsDefault   bool    `json:"isDefault"`
	IsShipping  bool    `json:"isShipping"`
	IsBilling   bool    `json:"isBilling"`
}

// Default returns the address flagged as default, else the first one.
func Default(list []Address) (Address, bool) {
	for _, a := range list {
		if a.IsDefault {
			return a, true
		}
	}
	if len(list) > 0 {
		return list[0], true
	}
	return Address{}, false
}
