package entity

// Availability tells customers whether a vehicle is on the lot or has to
// be sourced from China first.
type Availability string

const (
	AvailabilityInStock  Availability = "in_stock"
	AvailabilityPreorder Availability = "preorder"
)

func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityInStock, AvailabilityPreorder:
		return true
	}
	return false
}

type Vehicle struct {
	ID           string            `json:"id" firestore:"-"`
	Brand        string            `json:"brand" firestore:"brand"`
	Model        string            `json:"model" firestore:"model"`
	Year         int               `json:"year" firestore:"year"`
	Type         string            `json:"type" firestore:"type"`
	Fuel         string            `json:"fuel" firestore:"fuel"`
	Drivetrain   string            `json:"drivetrain" firestore:"drivetrain"`
	Price        float64           `json:"price" firestore:"price"`
	Duties       float64           `json:"duties" firestore:"duties"`
	TotalGhana   float64           `json:"totalGhana" firestore:"totalGhana"`
	Availability Availability      `json:"availability" firestore:"availability"`
	ShowPrice    bool              `json:"showPrice" firestore:"showPrice"`
	Description  string            `json:"description" firestore:"description"`
	Specs        map[string]string `json:"specs" firestore:"specs"`
	Images       []string          `json:"images" firestore:"images"`
	Logo         string            `json:"logo,omitempty" firestore:"logo"`
	Emoji        string            `json:"emoji,omitempty" firestore:"emoji"`
	Featured     bool              `json:"featured" firestore:"featured"`
}
