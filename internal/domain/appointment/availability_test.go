package appointment

import (
	"testing"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestIsSlotAvailable(t *testing.T) {
	s := models.DoctorSchedule{
		ClinicID: 2,
		Date:     "2024-05-01",
		Slots:    datatypes.JSONSlice[string]{"09:00", "10:00"},
	}

	tests := []struct {
		name   string
		date   string
		time   string
		clinic uint
		want   bool
	}{
		{"match", "2024-05-01", "10:00", 2, true},
		{"wrong date", "2024-05-02", "10:00", 2, false},
		{"wrong time", "2024-05-01", "11:00", 2, false},
		{"wrong clinic", "2024-05-01", "10:00", 3, false},
	}

	for _, tt := range tests {
		if got := IsSlotAvailable(s, tt.date, tt.time, tt.clinic); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestIsSlotAvailableEmptySlots(t *testing.T) {
	s := models.DoctorSchedule{ClinicID: 1, Date: "2024-05-01"}
	if IsSlotAvailable(s, "2024-05-01", "09:00", 1) {
		t.Error("expected no availability without slots")
	}
}

func TestParseScheduleLookup(t *testing.T) {
	if m, _ := ParseScheduleLookup(""); m != LookupFirst {
		t.Errorf("expected first, got %q", m)
	}
	if m, _ := ParseScheduleLookup("by_date"); m != LookupByDate {
		t.Errorf("expected by_date, got %q", m)
	}
	if _, err := ParseScheduleLookup("latest"); err == nil {
		t.Error("expected error for unknown lookup")
	}
}
