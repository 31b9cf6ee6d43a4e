package fleet

import (
    "testing"
    "time"

    "github.com/fleetflow/fleetflow/internal/repository"
)

func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }

func TestMergeStatus(t *testing.T) {
    prevLat, prevLng := 28.61, 77.21
    stored := repository.VehicleStatus{
        VehicleID:        7,
        CurrentLatitude:  &prevLat,
        CurrentLongitude: &prevLng,
        IsOnline:         false,
        LastUpdate:       time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
        CompanyID:        "FLEET-001",
    }
    now := time.Date(2026, 3, 1, 9, 0, 10, 0, time.UTC)

    cases := []struct {
        name     string
        patch    StatusPatch
        wantLat  *float64
        wantLng  *float64
        wantOn   bool
    }{
        {
            name:    "full update",
            patch:   StatusPatch{CurrentLatitude: fptr(28.70), CurrentLongitude: fptr(77.10), IsOnline: bptr(true)},
            wantLat: fptr(28.70), wantLng: fptr(77.10), wantOn: true,
        },
        {
            name:    "online toggle keeps position",
            patch:   StatusPatch{IsOnline: bptr(true)},
            wantLat: &prevLat, wantLng: &prevLng, wantOn: true,
        },
        {
            name:    "position ping keeps online flag",
            patch:   StatusPatch{CurrentLatitude: fptr(28.70), CurrentLongitude: fptr(77.10)},
            wantLat: fptr(28.70), wantLng: fptr(77.10), wantOn: false,
        },
        {
            name:    "empty patch is a heartbeat",
            patch:   StatusPatch{},
            wantLat: &prevLat, wantLng: &prevLng, wantOn: false,
        },
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            got := MergeStatus(stored, tc.patch, now)
            if !fpEqual(got.CurrentLatitude, tc.wantLat) || !fpEqual(got.CurrentLongitude, tc.wantLng) {
                t.Errorf("position = (%v, %v), want (%v, %v)",
                    deref(got.CurrentLatitude), deref(got.CurrentLongitude), deref(tc.wantLat), deref(tc.wantLng))
            }
            if got.IsOnline != tc.wantOn {
                t.Errorf("IsOnline = %v, want %v", got.IsOnline, tc.wantOn)
            }
            if !got.LastUpdate.Equal(now) {
                t.Errorf("LastUpdate = %v, want %v", got.LastUpdate, now)
            }
        })
    }

    // The stored row must never be mutated by a merge.
    if !stored.LastUpdate.Equal(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)) || stored.IsOnline {
        t.Fatal("MergeStatus mutated its input row")
    }
}

func TestMergeStatusNullCoordinates(t *testing.T) {
    // A freshly seeded row has NULL coordinates; an online toggle must not
    // invent a position.
    seeded := repository.VehicleStatus{VehicleID: 7, CompanyID: "FLEET-001"}
    got := MergeStatus(seeded, StatusPatch{IsOnline: bptr(true)}, time.Now())
    if got.CurrentLatitude != nil || got.CurrentLongitude != nil {
        t.Fatalf("coordinates = (%v, %v), want (nil, nil)", got.CurrentLatitude, got.CurrentLongitude)
    }
    if !got.IsOnline {
        t.Fatal("IsOnline = false, want true")
    }
}

func TestStatusPatchEmpty(t *testing.T) {
    if !(StatusPatch{}).Empty() {
        t.Error("zero patch should be empty")
    }
    if (StatusPatch{IsOnline: bptr(false)}).Empty() {
        t.Error("patch with an explicit false flag is not empty")
    }
}

func fpEqual(a, b *float64) bool {
    if a == nil || b == nil {
        return a == b
    }
    return *a == *b
}

func deref(p *float64) any {
    if p == nil {
        return nil
    }
    return *p
}
