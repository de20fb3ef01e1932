package seeder

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/campusseed/internal/store"
)

func (s *Seeder) seedShuttlePoints(ctx context.Context) (int64, error) {
	rows := make([][]any, len(s.catalog.ShuttlePoints))
	for i, p := range s.catalog.ShuttlePoints {
		rows[i] = []any{p.Name, p.Location}
	}
	return s.store.Insert(ctx, "shuttle_points", []string{"point_name", "location"}, rows, store.ModeIgnore)
}

func (s *Seeder) seedBuses(ctx context.Context) (int64, error) {
	rows := make([][]any, s.config.Buses)
	for i := range rows {
		rows[i] = []any{BusNumber(s.config.BusPrefix, i+1), s.config.BusCapacity}
	}
	return s.store.Insert(ctx, "buses", []string{"bus_number", "capacity"}, rows, store.ModeIgnore)
}

// allocateBuses serves every shuttle point with every bus.
func (s *Seeder) allocateBuses(ctx context.Context) (int64, error) {
	buses, err := s.store.IDs(ctx, "buses")
	if err != nil {
		return 0, err
	}
	points, err := s.store.IDs(ctx, "shuttle_points")
	if err != nil {
		return 0, err
	}

	rows := make([][]any, 0, len(buses)*len(points))
	for _, busID := range buses {
		for _, pointID := range points {
			rows = append(rows, []any{busID, pointID, AllocationTime(pointID)})
		}
	}
	return s.store.Insert(ctx, "bus_allocations", []string{"bus_id", "point_id", "allocation_time"}, rows, store.ModeStrict)
}

func BusNumber(prefix string, n int) string {
	return fmt.Sprintf("%s-B%03d", prefix, n)
}

// AllocationTime is the departure time of the shuttle serving pointID.
func AllocationTime(pointID int64) string {
	return fmt.Sprintf("%02d:00:00", (shuttleStartHour+pointID)%24)
}
