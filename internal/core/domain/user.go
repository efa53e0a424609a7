package domain

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleManager Role = "MANAGER"
)

// User is an identity record. Password is stored as entered; the bootstrap
// manager account carries no password field at all. RoomNumber and BuildingID
// are a denormalized cache of the current allocation, stamped after a
// successful booking.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password,omitempty"`
	Role         Role   `json:"role"`
	AcademicYear int    `json:"academic_year,omitempty"`
	RoomNumber   string `json:"room_number,omitempty"`
	BuildingID   string `json:"building_id,omitempty"`
}

// FindUser returns the first user in storage order matching email and role.
func FindUser(users []User, email string, role Role) (User, bool) {
	for _, u := range users {
		if u.Email == email && u.Role == role {
			return u, true
		}
	}
	return User{}, false
}

// UserByID returns the user with the given id.
func UserByID(users []User, id string) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
