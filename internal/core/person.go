package core

import (
	"fmt"

	"domainmodel/internal/log"
)

// Age gates enforced on assignment.
const (
	MinWorkingAge  = 16
	MinMarriageAge = 18
)

// Person is an individual who may hold a job and be married.
//
// The spouse is a plain back-reference; two married people point at each
// other. Neither side owns the other.
type Person struct {
	firstName string
	lastName  string
	age       int
	job       *Job
	spouse    *Person
}

func NewPerson(firstName, lastName string, age int) *Person {
	return &Person{firstName: firstName, lastName: lastName, age: age}
}

func (p *Person) FirstName() string { return p.firstName }
func (p *Person) LastName() string  { return p.lastName }
func (p *Person) Age() int          { return p.age }
func (p *Person) Job() *Job         { return p.job }
func (p *Person) Spouse() *Person   { return p.spouse }

// SetAge updates the age. The current job and spouse are kept even if the
// new age would fail their gates; gates only run on assignment.
func (p *Person) SetAge(age int) {
	p.age = age
}

// SetJob assigns j. Anyone younger than MinWorkingAge ends up with no job;
// the rejection is not reported to the caller.
func (p *Person) SetJob(j *Job) {
	p.job = j
	if p.age < MinWorkingAge {
		p.job = nil
		if j != nil {
			p.logRejected(log.OpSetJob, MinWorkingAge)
		}
	}
}

// SetSpouse assigns s as this person's spouse. Only this side of the
// relationship changes. Anyone younger than MinMarriageAge ends up unmarried.
func (p *Person) SetSpouse(s *Person) {
	p.spouse = s
	if p.age < MinMarriageAge {
		p.spouse = nil
		if s != nil {
			p.logRejected(log.OpSetSpouse, MinMarriageAge)
		}
	}
}

// Describe renders the person as
// [Person: firstName:<f> lastName:<l> age:<a> job:<job> spouse:<name>].
// Jobs show only their compensation, never the title; a job without a
// compensation type renders as nil.
func (p *Person) Describe() string {
	job := "nil"
	if p.job != nil && p.job.Type() != nil {
		job = p.job.Type().Describe()
	}
	spouse := "nil"
	if p.spouse != nil {
		spouse = p.spouse.firstName
	}
	return fmt.Sprintf("[Person: firstName:%s lastName:%s age:%d job:%s spouse:%s]",
		p.firstName, p.lastName, p.age, job, spouse)
}

func (p *Person) String() string {
	return p.Describe()
}

func (p *Person) logRejected(op string, minAge int) {
	fields := log.NewFields().
		WithOperation(op).
		WithPerson(p.firstName, p.age).
		WithMinAge(minAge)
	logger.WithComponent(log.ComponentPerson).Debug("Assignment reverted by age gate", fields.ToSlice()...)
}
