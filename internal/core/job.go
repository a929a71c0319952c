package core

import (
	"math"
	"strconv"
	"strings"
)

// JobType is how a job pays: either Hourly or Salary.
type JobType interface {
	// Describe renders the compensation without the job title,
	// e.g. "Hourly(15.5)" or "Salary(1000)".
	Describe() string

	jobType()
}

// Hourly pays Rate per hour worked.
type Hourly struct {
	Rate float64
}

// Salary pays a fixed Amount regardless of hours worked.
type Salary struct {
	Amount int64
}

func (Hourly) jobType() {}
func (Salary) jobType() {}

func (h Hourly) Describe() string {
	return "Hourly(" + formatRate(h.Rate) + ")"
}

func (s Salary) Describe() string {
	return "Salary(" + strconv.FormatInt(s.Amount, 10) + ")"
}

// Job is a titled position with a compensation policy. The policy is only
// changed through the raise operations.
type Job struct {
	Title string
	typ   JobType
}

func NewJob(title string, typ JobType) *Job {
	return &Job{Title: title, typ: typ}
}

// Type returns the current compensation policy.
func (j *Job) Type() JobType {
	return j.typ
}

// CalculateIncome returns the pay for the given hours, truncated toward zero.
// Salaried jobs ignore hours.
func (j *Job) CalculateIncome(hours int) int64 {
	switch t := j.typ.(type) {
	case Hourly:
		return int64(t.Rate * float64(hours))
	case Salary:
		return t.Amount
	}
	return 0
}

// RaiseByAmount adds amount to the rate or salary. Salaries drop the
// fractional part of amount.
func (j *Job) RaiseByAmount(amount float64) {
	switch t := j.typ.(type) {
	case Hourly:
		j.typ = Hourly{Rate: t.Rate + amount}
	case Salary:
		j.typ = Salary{Amount: t.Amount + int64(amount)}
	}
}

// RaiseByPercent scales the rate or salary by (1 + percent), so 0.1 is a
// ten percent raise. Salaries are truncated after scaling.
func (j *Job) RaiseByPercent(percent float64) {
	switch t := j.typ.(type) {
	case Hourly:
		j.typ = Hourly{Rate: t.Rate * (1.0 + percent)}
	case Salary:
		j.typ = Salary{Amount: int64(float64(t.Amount) * (1.0 + percent))}
	}
}

// formatRate prints the shortest representation of r, keeping a trailing
// ".0" on whole numbers so 10 renders as "10.0".
func formatRate(r float64) string {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if math.IsInf(r, 0) || math.IsNaN(r) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
