package types

// User is a storefront customer. Field names match the persisted payload.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ItemsPurchased int    `json:"itemsPurchased"`
}

// UserPatch carries the editable user fields; nil means unchanged.
type UserPatch struct {
	Name           *string `json:"name,omitempty"`
	ItemsPurchased *int    `json:"itemsPurchased,omitempty"`
}

// NewUser is the input for creating a user; the store assigns the id.
type NewUser struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	ItemsPurchased int    `json:"itemsPurchased"`
}
