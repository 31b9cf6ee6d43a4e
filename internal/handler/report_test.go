package handler

import (
    "context"
    "database/sql"
    "errors"
    "testing"

    "github.com/fleetflow/fleetflow/internal/repository"
)

// fakeProfiles serves canned rows keyed by id and email, standing in for
// the profiles table.
type fakeProfiles struct {
    byID    map[uint64]repository.Profile
    byEmail map[string]repository.Profile
    failure error
}

func (f *fakeProfiles) GetByID(_ context.Context, id uint64) (repository.Profile, error) {
    if f.failure != nil {
        return repository.Profile{}, f.failure
    }
    p, ok := f.byID[id]
    if !ok {
        return repository.Profile{}, sql.ErrNoRows
    }
    return p, nil
}

func (f *fakeProfiles) GetByEmail(_ context.Context, email string) (repository.Profile, error) {
    if f.failure != nil {
        return repository.Profile{}, f.failure
    }
    p, ok := f.byEmail[email]
    if !ok {
        return repository.Profile{}, sql.ErrNoRows
    }
    return p, nil
}

func TestResolveGreeting(t *testing.T) {
    alice := repository.Profile{ID: 1, Email: "alice@example.com", FirstName: "Alice", LastName: "Ng"}
    moved := repository.Profile{ID: 9, Email: "bob@example.com", FirstName: "Bob", LastName: "Rai"}

    cases := []struct {
        name       string
        profiles   *fakeProfiles
        uid        uint64
        claimEmail string
        wantName   string
        wantEmail  string
    }{
        {
            name:       "id lookup wins",
            profiles:   &fakeProfiles{byID: map[uint64]repository.Profile{1: alice}},
            uid:        1,
            claimEmail: "stale@example.com",
            wantName:   "Alice Ng",
            wantEmail:  "alice@example.com",
        },
        {
            name: "missing id recovers via email lookup",
            profiles: &fakeProfiles{
                byEmail: map[string]repository.Profile{"bob@example.com": moved},
            },
            uid:        1, // row was re-created under a new id
            claimEmail: "bob@example.com",
            wantName:   "Bob Rai",
            wantEmail:  "bob@example.com",
        },
        {
            name:       "both lookups miss falls back to the claim",
            profiles:   &fakeProfiles{},
            uid:        1,
            claimEmail: "gone@example.com",
            wantName:   "gone@example.com",
            wantEmail:  "gone@example.com",
        },
        {
            name:       "nameless profile greets by email",
            profiles:   &fakeProfiles{byID: map[uint64]repository.Profile{3: {ID: 3, Email: "nameless@example.com"}}},
            uid:        3,
            claimEmail: "nameless@example.com",
            wantName:   "nameless@example.com",
            wantEmail:  "nameless@example.com",
        },
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            h := &FleetHandler{Profiles: tc.profiles}
            name, email, err := h.resolveGreeting(context.Background(), tc.uid, tc.claimEmail)
            if err != nil {
                t.Fatalf("resolveGreeting: %v", err)
            }
            if name != tc.wantName || email != tc.wantEmail {
                t.Fatalf("greeting = (%q, %q), want (%q, %q)", name, email, tc.wantName, tc.wantEmail)
            }
        })
    }
}

func TestResolveGreetingPropagatesStorageErrors(t *testing.T) {
    boom := errors.New("connection refused")
    h := &FleetHandler{Profiles: &fakeProfiles{failure: boom}}
    if _, _, err := h.resolveGreeting(context.Background(), 1, "a@example.com"); !errors.Is(err, boom) {
        t.Fatalf("err = %v, want the storage error", err)
    }
}
