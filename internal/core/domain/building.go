package domain

// Building is a fixed allocation unit container. The set below is compile-time
// data: buildings partition academic years 1-4 with no overlap and no fallback
// for years outside that range.
type Building struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	AllowedYears []int  `json:"allowed_years"`
	TotalRooms   int    `json:"total_rooms"`
}

var Buildings = []Building{
	{ID: "hemavati", Name: "Hemavati", AllowedYears: []int{1}, TotalRooms: 68},
	{ID: "kaveri", Name: "Kaveri", AllowedYears: []int{2, 3}, TotalRooms: 60},
	{ID: "mca", Name: "MCA", AllowedYears: []int{4}, TotalRooms: 45},
}

// BuildingForYear returns the single building whose allowed years contain the
// given academic year.
func BuildingForYear(year int) (Building, bool) {
	for _, b := range Buildings {
		for _, y := range b.AllowedYears {
			if y == year {
				return b, true
			}
		}
	}
	return Building{}, false
}

// BuildingByID returns the building with the given id.
func BuildingByID(id string) (Building, bool) {
	for _, b := range Buildings {
		if b.ID == id {
			return b, true
		}
	}
	return Building{}, false
}
