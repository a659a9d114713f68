// Package models defines data types shared by the client layers.
package models

// Person is one row returned by the remote search endpoint. The shape is
// dictated by the service; the client does not validate or normalize rows,
// so every field is optional and rendered as received.
type Person struct {
	Name          string `json:"Name"`
	Age           int    `json:"Age"`
	Gender        string `json:"Gender"`
	Phone         string `json:"Phone"`
	Email         string `json:"Email"`
	Address       string `json:"Address"`
	Aadhaar       string `json:"Aadhar"`
	PAN           string `json:"PAN"`
	DL            string `json:"DL"`
	VehicleNumber string `json:"Vehicle_Number"`
}

// SearchCategory is the optional filter hint passed alongside the free-text
// query to the search endpoint.
type SearchCategory string

const (
	CategoryAll     SearchCategory = "all"
	CategoryName    SearchCategory = "name"
	CategoryPhone   SearchCategory = "phone"
	CategoryAddress SearchCategory = "address"
	CategoryAadhaar SearchCategory = "aadhar"
	CategoryPAN     SearchCategory = "pan"
	CategoryDL      SearchCategory = "dl"
)

// Categories lists the selectable search categories in display order.
var Categories = []SearchCategory{
	CategoryAll, CategoryName, CategoryPhone, CategoryAddress,
	CategoryAadhaar, CategoryPAN, CategoryDL,
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c SearchCategory) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
