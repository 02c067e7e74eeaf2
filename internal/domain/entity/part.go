package entity

type Part struct {
	ID         string  `json:"id" firestore:"-"`
	Name       string  `json:"name" firestore:"name"`
	Compatible string  `json:"compatible" firestore:"compatible"`
	Category   string  `json:"category" firestore:"category"`
	Price      float64 `json:"price" firestore:"price"`
	Emoji      string  `json:"emoji,omitempty" firestore:"emoji"`
}
