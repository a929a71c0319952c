package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobCalculateIncome(t *testing.T) {
	cases := []struct {
		name  string
		typ   JobType
		hours int
		want  int64
	}{
		{"salary ignores hours", Salary{Amount: 1000}, 0, 1000},
		{"salary ignores many hours", Salary{Amount: 1000}, 2000, 1000},
		{"hourly", Hourly{Rate: 10.0}, 100, 1000},
		{"hourly truncates", Hourly{Rate: 15.5}, 3, 46},
		{"hourly zero hours", Hourly{Rate: 15.5}, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			job := NewJob("Guest Lecturer", tc.typ)
			assert.Equal(t, tc.want, job.CalculateIncome(tc.hours))
		})
	}
}

func TestJobRaiseByAmount(t *testing.T) {
	t.Run("hourly keeps fraction", func(t *testing.T) {
		job := NewJob("Janitor", Hourly{Rate: 10.0})
		job.RaiseByAmount(5.5)

		h, ok := job.Type().(Hourly)
		require.True(t, ok)
		assert.Equal(t, 15.5, h.Rate)
	})

	t.Run("salary truncates fraction", func(t *testing.T) {
		job := NewJob("Guest Lecturer", Salary{Amount: 1000})
		job.RaiseByAmount(500.7)

		assert.Equal(t, Salary{Amount: 1500}, job.Type())
	})

	t.Run("negative raise is not validated", func(t *testing.T) {
		job := NewJob("Intern", Salary{Amount: 100})
		job.RaiseByAmount(-250)

		assert.Equal(t, Salary{Amount: -150}, job.Type())
	})
}

func TestJobRaiseByPercent(t *testing.T) {
	t.Run("hourly", func(t *testing.T) {
		job := NewJob("Janitor", Hourly{Rate: 10.0})
		job.RaiseByPercent(0.1)

		h, ok := job.Type().(Hourly)
		require.True(t, ok)
		assert.InDelta(t, 11.0, h.Rate, 1e-9)
	})

	t.Run("salary", func(t *testing.T) {
		job := NewJob("Guest Lecturer", Salary{Amount: 1000})
		job.RaiseByPercent(0.1)

		assert.Equal(t, Salary{Amount: 1100}, job.Type())
	})

	t.Run("salary truncates", func(t *testing.T) {
		job := NewJob("Guest Lecturer", Salary{Amount: 999})
		job.RaiseByPercent(0.5)

		assert.Equal(t, Salary{Amount: 1498}, job.Type())
	})
}

func TestJobTypeDescribe(t *testing.T) {
	cases := []struct {
		typ  JobType
		want string
	}{
		{Hourly{Rate: 10.0}, "Hourly(10.0)"},
		{Hourly{Rate: 15.5}, "Hourly(15.5)"},
		{Hourly{Rate: 0}, "Hourly(0.0)"},
		{Salary{Amount: 1000}, "Salary(1000)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.typ.Describe())
	}
}
