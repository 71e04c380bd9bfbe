package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func intPtr(v int) *int { return &v }

func TestCategory_ActiveRule(t *testing.T) {
	jan1 := datePtr(2024, time.January, 1)
	dec31 := datePtr(2024, time.December, 31)

	tests := []struct {
		name  string
		rules []PointEarningRule
		date  time.Time
		want  *int // expected PointsPerDollar of the matched rule, nil = no match
	}{
		{
			name:  "no rules",
			rules: nil,
			date:  time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			want:  nil,
		},
		{
			name: "date inside window",
			rules: []PointEarningRule{
				{PointsPerDollar: intPtr(2), StartDate: jan1, EndDate: dec31},
			},
			date: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			want: intPtr(2),
		},
		{
			name: "date before window",
			rules: []PointEarningRule{
				{PointsPerDollar: intPtr(2), StartDate: jan1, EndDate: dec31},
			},
			date: time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
			want: nil,
		},
		{
			name: "date after window",
			rules: []PointEarningRule{
				{PointsPerDollar: intPtr(2), StartDate: jan1, EndDate: dec31},
			},
			date: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: nil,
		},
		{
			name: "window end day is inclusive for the whole day",
			rules: []PointEarningRule{
				{PointsPerDollar: intPtr(2), StartDate: jan1, EndDate: dec31},
			},
			date: time.Date(2024, time.December, 31, 18, 30, 0, 0, time.UTC),
			want: intPtr(2),
		},
		{
			name: "nil start matches unbounded past",
			rules: []PointEarningRule{
				{PointsPerDollar: intPtr(3), EndDate: dec31},
			},
			date: time.Date(1999, time.July, 4, 0, 0, 0, 0, time.UTC),
			want: intPtr(3),
		},
		{
			name: "nil end matches unbounded future",
			rules: []PointEarningRule{
				{PointsPerDollar: intPtr(3), StartDate: jan1},
			},
			date: time.Date(2077, time.July, 4, 0, 0, 0, 0, time.UTC),
			want: intPtr(3),
		},
		{
			name: "overlapping windows resolve to the first inserted rule",
			rules: []PointEarningRule{
				{PointsPerDollar: intPtr(1), StartDate: jan1, EndDate: dec31},
				{PointsPerDollar: intPtr(5), StartDate: jan1, EndDate: dec31},
			},
			date: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			want: intPtr(1),
		},
		{
			name: "first rule out of window falls through to the second",
			rules: []PointEarningRule{
				{PointsPerDollar: intPtr(1), StartDate: datePtr(2023, time.January, 1), EndDate: datePtr(2023, time.December, 31)},
				{PointsPerDollar: intPtr(5), StartDate: jan1, EndDate: dec31},
			},
			date: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			want: intPtr(5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := &Category{ID: primitive.NewObjectID(), Name: "Electronics", Rules: tt.rules}
			got := cat.ActiveRule(tt.date)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.NotNil(t, got.PointsPerDollar)
			assert.Equal(t, *tt.want, *got.PointsPerDollar)
		})
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, time.March, 5, 23, 59, 59, 123, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), DateOnly(in))
}
