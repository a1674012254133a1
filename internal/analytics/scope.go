package analytics

import (
	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
)

// Scope is the resolved set of properties a report covers.
type Scope struct {
	PropertyIDs []string
	Value       model.Major // Summed acquisition value, 0 when none is recorded
}

// ResolveScope collects property ids and sums their acquisition values.
// Properties without a recorded value contribute nothing. Duplicate ids are counted once.
func ResolveScope(properties []model.PropertyValue) Scope {
	scope := Scope{PropertyIDs: []string{}}
	seen := make(map[string]struct{}, len(properties))

	for _, p := range properties {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		scope.PropertyIDs = append(scope.PropertyIDs, p.ID)

		if p.AcquisitionValue != nil {
			scope.Value = scope.Value.Plus(*p.AcquisitionValue)
		}
	}
	return scope
}

// Contains reports whether propertyID is in scope.
func (s Scope) Contains(propertyID string) bool {
	for _, id := range s.PropertyIDs {
		if id == propertyID {
			return true
		}
	}
	return false
}

// restrictTo drops every record that does not belong to a property in scope.
func (d Dataset) restrictTo(scope Scope) Dataset {
	inScope := make(map[string]struct{}, len(scope.PropertyIDs))
	for _, id := range scope.PropertyIDs {
		inScope[id] = struct{}{}
	}
	keep := func(propertyID string) bool {
		_, ok := inScope[propertyID]
		return ok
	}

	out := Dataset{Properties: d.Properties}
	for _, p := range d.LeasePeriods {
		if keep(p.PropertyID) {
			out.LeasePeriods = append(out.LeasePeriods, p)
		}
	}
	for _, e := range d.Expenses {
		if keep(e.PropertyID) {
			out.Expenses = append(out.Expenses, e)
		}
	}
	for _, l := range d.Listings {
		if keep(l.PropertyID) {
			out.Listings = append(out.Listings, l)
		}
	}
	return out
}
