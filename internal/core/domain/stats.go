package domain

// BuildingOccupancy is the per-building slice of the occupancy report.
type BuildingOccupancy struct {
	BuildingID string `json:"building_id"`
	Name       string `json:"name"`
	Capacity   int    `json:"capacity"`
	Occupied   int    `json:"occupied"`
}

// OccupancyStats is the derived dashboard aggregate. Nothing here is stored:
// every field is recomputed from the collections on each read.
type OccupancyStats struct {
	BookableRooms     int                 `json:"bookable_rooms"`
	TotalBeds         int                 `json:"total_beds"`
	OccupiedBeds      int                 `json:"occupied_beds"`
	VacantBeds        int                 `json:"vacant_beds"`
	PendingComplaints int                 `json:"pending_complaints"`
	TotalBilled       int                 `json:"total_billed"`
	OutstandingDues   int                 `json:"outstanding_dues"`
	Buildings         []BuildingOccupancy `json:"buildings"`
}

// ComputeStats derives the occupancy report from the full collections. Store
// rooms are excluded from room and bed-capacity counts; occupied beds count
// every occupant across all rooms.
func ComputeStats(rooms []Room, complaints []Complaint, bills []Bill) OccupancyStats {
	stats := OccupancyStats{
		TotalBilled:     TotalBilled(bills),
		OutstandingDues: Outstanding(bills),
	}

	occupiedByBuilding := make(map[string]int)
	for _, r := range rooms {
		if r.Status != RoomStoreRoom {
			stats.BookableRooms++
			occupiedByBuilding[r.BuildingID] += len(r.OccupiedBy)
		}
		stats.OccupiedBeds += len(r.OccupiedBy)
	}
	stats.TotalBeds = stats.BookableRooms * MaxOccupants
	stats.VacantBeds = stats.TotalBeds - stats.OccupiedBeds

	for _, c := range complaints {
		if c.Status != ComplaintResolved {
			stats.PendingComplaints++
		}
	}

	for _, b := range Buildings {
		stats.Buildings = append(stats.Buildings, BuildingOccupancy{
			BuildingID: b.ID,
			Name:       b.Name,
			Capacity:   b.TotalRooms * MaxOccupants,
			Occupied:   occupiedByBuilding[b.ID],
		})
	}

	return stats
}
