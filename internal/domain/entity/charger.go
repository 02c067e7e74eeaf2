package entity

type Charger struct {
	ID           string  `json:"id" firestore:"-"`
	Name         string  `json:"name" firestore:"name"`
	Brand        string  `json:"brand" firestore:"brand"`
	Type         string  `json:"type" firestore:"type"`
	Power        string  `json:"power" firestore:"power"`
	Price        float64 `json:"price" firestore:"price"`
	Installation float64 `json:"installation" firestore:"installation"`
	Emoji        string  `json:"emoji,omitempty" firestore:"emoji"`
}
