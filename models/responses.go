package models

import "encoding/json"

// The types below are the response shapes published by the proxy. Leaf
// fields are never tagged with omitempty: a value missing upstream is
// rendered as null so every shape always carries the same set of keys.
// Nested objects are values, not pointers, so they are always present.

// UserListItem is the trimmed shape returned by the user listing.
type UserListItem struct {
	ID    json.RawMessage `json:"id"`
	Name  json.RawMessage `json:"name"`
	Email json.RawMessage `json:"email"`
}

// UserProfile is the full shape of a single user.
type UserProfile struct {
	ID       json.RawMessage `json:"id"`
	Name     json.RawMessage `json:"name"`
	Username json.RawMessage `json:"username"`
	Email    json.RawMessage `json:"email"`
	Phone    json.RawMessage `json:"phone"`
	Website  json.RawMessage `json:"website"`
	Address  ProfileAddress  `json:"address"`
	Company  ProfileCompany  `json:"company"`
}

// ProfileAddress is the address as embedded in [UserProfile].
type ProfileAddress struct {
	Street  json.RawMessage `json:"street"`
	Suite   json.RawMessage `json:"suite"`
	City    json.RawMessage `json:"city"`
	Zipcode json.RawMessage `json:"zipcode"`
	Geo     GeoPoint        `json:"geo"`
}

// ProfileCompany is the company as embedded in [UserProfile].
type ProfileCompany struct {
	Name        json.RawMessage `json:"name"`
	CatchPhrase json.RawMessage `json:"catchPhrase"`
	BS          json.RawMessage `json:"bs"`
}

// GeoPoint is a pair of coordinates. Both keys are always present.
type GeoPoint struct {
	Lat json.RawMessage `json:"lat"`
	Lng json.RawMessage `json:"lng"`
}

// UserContact is the contact-only shape of a user.
type UserContact struct {
	Name  json.RawMessage `json:"name"`
	Email json.RawMessage `json:"email"`
	Phone json.RawMessage `json:"phone"`
}

// UserAddress is the address-only shape of a user. Unlike
// [ProfileAddress] it carries no suite.
type UserAddress struct {
	Street  json.RawMessage `json:"street"`
	City    json.RawMessage `json:"city"`
	Zipcode json.RawMessage `json:"zipcode"`
	Geo     GeoPoint        `json:"geo"`
}

// NewUserListItem projects u into the listing shape.
func NewUserListItem(u User) UserListItem {
	return UserListItem{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// NewUserProfile projects u into the full shape, filling the nested
// objects with nulls where upstream omitted them.
func NewUserProfile(u User) UserProfile {
	address := u.GetAddress()
	geo := address.GetGeo()
	company := u.GetCompany()

	return UserProfile{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Website:  u.Website,
		Address: ProfileAddress{
			Street:  address.Street,
			Suite:   address.Suite,
			City:    address.City,
			Zipcode: address.Zipcode,
			Geo:     GeoPoint{Lat: geo.Lat, Lng: geo.Lng},
		},
		Company: ProfileCompany{
			Name:        company.Name,
			CatchPhrase: company.CatchPhrase,
			BS:          company.BS,
		},
	}
}

// NewUserContact projects u into the contact shape.
func NewUserContact(u User) UserContact {
	return UserContact{
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

// NewUserAddress projects u into the address shape.
func NewUserAddress(u User) UserAddress {
	address := u.GetAddress()
	geo := address.GetGeo()

	return UserAddress{
		Street:  address.Street,
		City:    address.City,
		Zipcode: address.Zipcode,
		Geo:     GeoPoint{Lat: geo.Lat, Lng: geo.Lng},
	}
}
