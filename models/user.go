package models

import "encoding/json"

// User represents a single user record as published by the upstream API.
// The proxy never creates or mutates users: a User lives only for the
// duration of one request, from decoding the upstream payload to projecting
// it into one of the response shapes.
//
// Leaf values are kept as raw JSON and passed through unchanged, whatever
// their JSON type. A key missing from the upstream payload leaves the field
// nil, which is rendered as JSON null.
type User struct {
	ID json.RawMessage `json:"id"`

	Name     json.RawMessage `json:"name"`
	Username json.RawMessage `json:"username"`
	Email    json.RawMessage `json:"email"`
	Phone    json.RawMessage `json:"phone"`
	Website  json.RawMessage `json:"website"`

	// Address is nil when upstream omitted the "address" object.
	Address *Address `json:"address"`

	// Company is nil when upstream omitted the "company" object.
	Company *Company `json:"company"`
}

// Address is the postal address nested inside a [User].
type Address struct {
	Street  json.RawMessage `json:"street"`
	Suite   json.RawMessage `json:"suite"`
	City    json.RawMessage `json:"city"`
	Zipcode json.RawMessage `json:"zipcode"`

	// Geo is nil when upstream omitted the "geo" object.
	Geo *Geo `json:"geo"`
}

// Geo holds the coordinates of an [Address]. Upstream publishes them as
// decimal strings, but numbers are passed through as well.
type Geo struct {
	Lat json.RawMessage `json:"lat"`
	Lng json.RawMessage `json:"lng"`
}

// Company is the employer information nested inside a [User].
type Company struct {
	Name        json.RawMessage `json:"name"`
	CatchPhrase json.RawMessage `json:"catchPhrase"`
	BS          json.RawMessage `json:"bs"`
}

// GetAddress returns the nested address, or an empty one if upstream
// omitted it. It never returns nil.
func (u User) GetAddress() Address {
	if u.Address == nil {
		return Address{}
	}
	return *u.Address
}

// GetCompany returns the nested company, or an empty one if upstream
// omitted it.
func (u User) GetCompany() Company {
	if u.Company == nil {
		return Company{}
	}
	return *u.Company
}

// GetGeo returns the nested coordinates, or empty ones if upstream omitted
// them.
func (a Address) GetGeo() Geo {
	if a.Geo == nil {
		return Geo{}
	}
	return *a.Geo
}
