// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package orgagg

import "github.com/google/uuid"

// Person is a single member of a Unit.
type Person struct {
	Name  string
	Email string
}

// Unit is an organizational unit: a named group of people that projects
// to one NATS Account.
type Unit struct {
	Name    string
	Members []Person
}

// Organization is the root read model: an ordered set of units that
// projects to one NATS Operator owning one Account per unit.
type Organization struct {
	ID    uuid.UUID
	Name  string
	Units []Unit
}

// UnitByName returns the unit named name, if present.
func (o Organization) UnitByName(name string) (Unit, bool) {
	for _, u := range o.Units {
		if u.Name == name {
			return u, true
		}
	}
	return Unit{}, false
}

// AllPeople returns every person across every unit, alongside the unit
// they belong to, in organization order.
func (o Organization) AllPeople() []struct {
	Unit   string
	Person Person
} {
	var out []struct {
		Unit   string
		Person Person
	}
	for _, u := range o.Units {
		for _, p := range u.Members {
			out = append(out, struct {
				Unit   string
				Person Person
			}{Unit: u.Name, Person: p})
		}
	}
	return out
}
