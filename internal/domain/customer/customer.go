package customer

import "time"

type Customer struct {
	ID          string
	FullName    string
	Email       string
	DateOfBirth time.Time
	Timezone    string
}
