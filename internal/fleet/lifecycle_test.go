package fleet

import (
    "errors"
    "testing"
    "time"

    "github.com/fleetflow/fleetflow/internal/repository"
)

func activeAssignment(driverID uint64) *repository.Assignment {
    return &repository.Assignment{
        ID:           1,
        VehicleID:    7,
        DriverID:     driverID,
        AssignedDate: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
        IsActive:     true,
    }
}

func TestAuthorizeCompletion(t *testing.T) {
    cases := []struct {
        name     string
        role     string
        callerID uint64
        driverID uint64
        want     error
    }{
        {name: "admin any assignment", role: "admin", callerID: 99, driverID: 5, want: nil},
        {name: "manager any assignment", role: "manager", callerID: 99, driverID: 5, want: nil},
        {name: "driver own assignment", role: "driver", callerID: 5, driverID: 5, want: nil},
        {name: "driver foreign assignment", role: "driver", callerID: 5, driverID: 6, want: ErrNotOwner},
        {name: "unknown role", role: "viewer", callerID: 5, driverID: 5, want: ErrNotPermitted},
        {name: "empty role", role: "", callerID: 5, driverID: 5, want: ErrNotPermitted},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            got := AuthorizeCompletion(tc.role, tc.callerID, activeAssignment(tc.driverID))
            if !errors.Is(got, tc.want) && got != tc.want {
                t.Fatalf("AuthorizeCompletion(%q, %d) = %v, want %v", tc.role, tc.callerID, got, tc.want)
            }
        })
    }
}

func TestCheckCompletable(t *testing.T) {
    a := activeAssignment(5)
    if err := CheckCompletable(a); err != nil {
        t.Fatalf("active assignment should be completable, got %v", err)
    }

    done := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)
    a.IsActive = false
    a.UnassignedDate = &done
    if err := CheckCompletable(a); !errors.Is(err, ErrAlreadyCompleted) {
        t.Fatalf("completed assignment: got %v, want ErrAlreadyCompleted", err)
    }
}

func TestIsManagement(t *testing.T) {
    for role, want := range map[string]bool{
        "admin":   true,
        "manager": true,
        "driver":  false,
        "ADMIN":   false, // roles are normalized to lowercase at registration
        "":        false,
    } {
        if got := IsManagement(role); got != want {
            t.Errorf("IsManagement(%q) = %v, want %v", role, got, want)
        }
    }
}
