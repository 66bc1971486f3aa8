package customer

// Customer is a registered buyer, keyed by phone number.
// FullName may be empty; an empty name means the customer is known
// to the store but has no display name on record.
type Customer struct {
	Phone    string `json:"phone"`
	FullName string `json:"full_name"`
}
