package housekeeping

import (
	"errors"
	"testing"
)

func TestStaffStoreAddDefaults(t *testing.T) {
	store := NewStaffStore()

	s := store.Add(Staff{Name: "Maria", CurrentFloor: 5})
	if s.ID == "" {
		t.Fatal("expected generated staff id")
	}
	if s.Status != StaffAvailable {
		t.Fatalf("status = %s, want available", s.Status)
	}

	withID := store.Add(Staff{ID: "hk-7", Name: "Chen", Status: StaffBreak})
	if withID.ID != "hk-7" {
		t.Fatalf("id = %s, want hk-7", withID.ID)
	}
	if withID.Status != StaffBreak {
		t.Fatalf("status = %s, want break", withID.Status)
	}
}

func TestStaffStoreAvailablePredicate(t *testing.T) {
	store := NewStaffStore()
	a := store.Add(Staff{Name: "Maria"})
	store.Add(Staff{Name: "Chen", Status: StaffBreak})
	store.Add(Staff{Name: "Priya", Status: StaffOffDuty})
	b := store.Add(Staff{Name: "Omar"})
	store.Add(Staff{Name: "Lena", Status: StaffBusy})

	available := store.Available()
	if len(available) != 2 {
		t.Fatalf("available count = %d, want 2", len(available))
	}
	// provisioning order is preserved
	if available[0].ID != a.ID || available[1].ID != b.ID {
		t.Fatalf("available order = [%s %s], want [%s %s]", available[0].ID, available[1].ID, a.ID, b.ID)
	}
}

func TestStaffStoreAssignAndRelease(t *testing.T) {
	store := NewStaffStore()
	a := store.Add(Staff{Name: "Maria", CurrentFloor: 2})
	b := store.Add(Staff{Name: "Chen", CurrentFloor: 3})

	if err := store.Assign([]string{a.ID, b.ID}, 5); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	for _, id := range []string{a.ID, b.ID} {
		s, _ := store.Get(id)
		if s.Status != StaffBusy {
			t.Fatalf("staff %s status = %s, want busy", id, s.Status)
		}
		if s.CurrentFloor != 5 {
			t.Fatalf("staff %s floor = %d, want 5", id, s.CurrentFloor)
		}
		if s.AssignedRooms != 1 {
			t.Fatalf("staff %s assigned rooms = %d, want 1", id, s.AssignedRooms)
		}
	}

	if err := store.Release([]string{a.ID, b.ID}); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	for _, id := range []string{a.ID, b.ID} {
		s, _ := store.Get(id)
		if s.Status != StaffAvailable {
			t.Fatalf("staff %s status = %s, want available", id, s.Status)
		}
		// released staff stay on the floor where the job was
		if s.CurrentFloor != 5 {
			t.Fatalf("staff %s floor = %d, want 5", id, s.CurrentFloor)
		}
		if s.RoomsCompleted != 1 {
			t.Fatalf("staff %s rooms completed = %d, want 1", id, s.RoomsCompleted)
		}
		if s.AssignedRooms != 0 {
			t.Fatalf("staff %s assigned rooms = %d, want 0", id, s.AssignedRooms)
		}
	}
}

func TestStaffStoreAssignUnknownStaff(t *testing.T) {
	store := NewStaffStore()
	a := store.Add(Staff{Name: "Maria"})

	err := store.Assign([]string{a.ID, "ghost"}, 5)
	if !errors.Is(err, ErrStaffNotFound) {
		t.Fatalf("err = %v, want ErrStaffNotFound", err)
	}
	// nothing is mutated when any member of the pair is unknown
	s, _ := store.Get(a.ID)
	if s.Status != StaffAvailable || s.AssignedRooms != 0 {
		t.Fatalf("staff mutated on failed pair assign: %+v", s)
	}
}

func TestStaffStoreSetStatus(t *testing.T) {
	store := NewStaffStore()
	a := store.Add(Staff{Name: "Maria"})

	s, err := store.SetStatus(a.ID, StaffBreak)
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if s.Status != StaffBreak {
		t.Fatalf("status = %s, want break", s.Status)
	}

	// busy is engine-owned
	if _, err := store.SetStatus(a.ID, StaffBusy); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}

	if err := store.Assign([]string{a.ID}, 3); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	// a staff member bound to a task cannot walk off shift
	if _, err := store.SetStatus(a.ID, StaffOffDuty); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}

	if _, err := store.SetStatus("ghost", StaffBreak); !errors.Is(err, ErrStaffNotFound) {
		t.Fatalf("err = %v, want ErrStaffNotFound", err)
	}
}
