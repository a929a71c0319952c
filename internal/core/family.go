package core

import "domainmodel/internal/log"

const (
	// MinParentAge is the age at least one founding spouse must reach before
	// the family can have a child.
	MinParentAge = 21

	// AnnualHours is the yearly working time assumed for household income.
	AnnualHours = 2000
)

// Family is a household founded by two spouses. Members only ever grow.
type Family struct {
	members []*Person
	spouse1 *Person
	spouse2 *Person
}

// NewFamily marries spouse1 and spouse2 and makes them the first two members.
// The marriage is assumed to be valid already, so MinMarriageAge is not
// checked here.
func NewFamily(spouse1, spouse2 *Person) *Family {
	spouse1.spouse = spouse2
	spouse2.spouse = spouse1

	return &Family{
		members: []*Person{spouse1, spouse2},
		spouse1: spouse1,
		spouse2: spouse2,
	}
}

// HaveChild adds child to the family when either founding spouse is at least
// MinParentAge. It reports whether the child was added. A nil child is
// never added.
func (f *Family) HaveChild(child *Person) bool {
	if child == nil {
		return false
	}
	if f.spouse1.age < MinParentAge && f.spouse2.age < MinParentAge {
		fields := log.NewFields().
			WithOperation(log.OpHaveChild).
			WithPerson(child.firstName, child.age).
			WithMinAge(MinParentAge)
		logger.WithComponent(log.ComponentFamily).Debug("Child rejected, parents too young", fields.ToSlice()...)
		return false
	}
	f.members = append(f.members, child)
	return true
}

// HouseholdIncome sums a year of income (AnnualHours) over every member who
// has a job.
func (f *Family) HouseholdIncome() int64 {
	var total int64
	for _, m := range f.members {
		if m != nil && m.job != nil {
			total += m.job.CalculateIncome(AnnualHours)
		}
	}
	return total
}

// Members returns a copy of the member list in insertion order.
func (f *Family) Members() []*Person {
	out := make([]*Person, len(f.members))
	copy(out, f.members)
	return out
}
