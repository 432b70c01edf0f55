package models

import "slices"

// User is a registered member of the community.
type User struct {
	ID     int      `json:"id" yaml:"id"`
	Name   string   `json:"name" yaml:"name"`
	Email  string   `json:"email" yaml:"email"`
	Role   string   `json:"role" yaml:"role"`
	Avatar string   `json:"avatar" yaml:"avatar"`
	Skills []string `json:"skills" yaml:"skills"`
}

func (u User) Clone() User {
	u.Skills = slices.Clone(u.Skills)
	return u
}
