package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_BooleanCoercion(t *testing.T) {
	tests := []struct {
		name string
		row  StoredApplication
		want [5]bool // salaried, father alive, father working, mother alive, mother working
	}{
		{
			name: "all set",
			row:  StoredApplication{StudentSalaried: 1, FatherAlive: 1, FatherWorking: 1, MotherAlive: 1, MotherWorking: 1},
			want: [5]bool{true, true, true, true, true},
		},
		{
			name: "all clear",
			row:  StoredApplication{},
			want: [5]bool{false, false, false, false, false},
		},
		{
			name: "mixed",
			row:  StoredApplication{StudentSalaried: 0, FatherAlive: 1, FatherWorking: 0, MotherAlive: 1, MotherWorking: 1},
			want: [5]bool{false, true, false, true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.row.Normalize()
			assert.Equal(t, tt.want[0], got.StudentSalaried)
			assert.Equal(t, tt.want[1], got.FatherAlive)
			assert.Equal(t, tt.want[2], got.FatherWorking)
			assert.Equal(t, tt.want[3], got.MotherAlive)
			assert.Equal(t, tt.want[4], got.MotherWorking)
		})
	}
}

func TestNormalize_Timestamps(t *testing.T) {
	t.Run("absent stays null", func(t *testing.T) {
		got := (&StoredApplication{}).Normalize()
		assert.Nil(t, got.CreatedAt)
		assert.Nil(t, got.UpdatedAt)
	})

	t.Run("present shifts to UTC", func(t *testing.T) {
		loc := time.FixedZone("IST", 5*3600+1800)
		created := time.Date(2024, 3, 15, 10, 30, 0, 0, loc)
		got := (&StoredApplication{CreatedAt: &created}).Normalize()

		if assert.NotNil(t, got.CreatedAt) {
			assert.Equal(t, time.UTC, got.CreatedAt.Location())
			assert.True(t, got.CreatedAt.Equal(created))
		}
	})
}

func TestNormalize_PassthroughFields(t *testing.T) {
	occ := "Farmer"
	row := StoredApplication{
		ID:               7,
		Name:             "Aarav Sharma",
		CourseName:       "B.Tech Computer Science",
		YearOfStudy:      3,
		FatherOccupation: &occ,
		AadharNo:         "482913776521",
		CapID:            "CAP2024-0101",
	}

	got := row.Normalize()

	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "Aarav Sharma", got.Name)
	assert.Equal(t, "B.Tech Computer Science", got.CourseName)
	assert.Equal(t, 3, got.YearOfStudy)
	assert.Equal(t, &occ, got.FatherOccupation)
	assert.Nil(t, got.MotherOccupation)
	assert.Equal(t, "482913776521", got.AadharNo)
	assert.Equal(t, "CAP2024-0101", got.CapID)
}
