package services

import (
	"errors"
	"testing"
	"time"

	"delivery_backend/internal/models"
)

func intPtr(v int) *int { return &v }

func TestGetBusinessStatusThroughService(t *testing.T) {
	cases := []struct {
		name       string
		open       *int
		close      *int
		now        time.Time
		wantOpen   bool
		wantStatus string
	}{
		{
			"open midday",
			intPtr(9 * 60), intPtr(21 * 60),
			time.Date(2025, 10, 22, 12, 30, 0, 0, time.UTC),
			true, "Open",
		},
		{
			"overnight store after midnight",
			intPtr(18 * 60), intPtr(2 * 60),
			time.Date(2025, 10, 23, 1, 0, 0, 0, time.UTC),
			true, "Open",
		},
		{
			"before opening shows countdown",
			intPtr(9 * 60), intPtr(21 * 60),
			time.Date(2025, 10, 22, 7, 15, 0, 0, time.UTC),
			false, "Opens in 1h 45m",
		},
		{
			"no schedule configured",
			nil, nil,
			time.Date(2025, 10, 22, 12, 0, 0, 0, time.UTC),
			false, "No schedule information",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			storeRepo := &stubStoreRepo{store: &models.Store{
				ID: 10, OwnerID: 77, Name: "Golden Chicken",
				OpenTime: tc.open, CloseTime: tc.close,
			}}
			svc := NewStoreService(storeRepo, nil)

			status, err := svc.GetBusinessStatus(10, tc.now)
			if err != nil {
				t.Fatalf("GetBusinessStatus: %v", err)
			}
			if status.IsOpen != tc.wantOpen {
				t.Errorf("IsOpen = %v, want %v", status.IsOpen, tc.wantOpen)
			}
			if status.StatusText != tc.wantStatus {
				t.Errorf("StatusText = %q, want %q", status.StatusText, tc.wantStatus)
			}
		})
	}
}

func TestUpdateStoreRejectsBadHours(t *testing.T) {
	storeRepo := &stubStoreRepo{store: &models.Store{ID: 10, OwnerID: 77, Name: "Golden Chicken"}}
	svc := NewStoreService(storeRepo, nil)

	_, err := svc.UpdateStore(10, 77, UpdateStoreRequest{
		OpenAt: &OperatingHours{Hour: 25, Minute: 0},
	})
	if !errors.Is(err, ErrInvalidHours) {
		t.Errorf("err = %v, want ErrInvalidHours", err)
	}
}
