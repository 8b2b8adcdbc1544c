package models

const (
	CategoryHighProtein = "high-protein"
	CategoryVegetarian  = "vegetarian"
	CategoryLowCarb     = "low-carb"
)

type Meal struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Ingredients string  `json:"ingredients"`
	Calories    int     `json:"calories"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating,omitempty"`
	Reviews     int     `json:"reviews,omitempty"`
}

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type Article struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Image   string `json:"image"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

type Review struct {
	Rating int    `json:"rating"`
	Text   string `json:"text,omitempty"`
}

// Customizations is the denormalized record kept on a cart line:
// the ingredients excluded from the meal plus free-text instructions.
type Customizations struct {
	Removed []string `json:"removed"`
	Added   string   `json:"added"`
}

// CartLine carries a copy of the item's name/price/image taken at
// add time. Later catalog edits do not touch existing lines.
type CartLine struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          float64         `json:"price"`
	Image          string          `json:"image"`
	Quantity       int             `json:"quantity"`
	Customizations *Customizations `json:"customizations,omitempty"`
}

type ContactInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
}
