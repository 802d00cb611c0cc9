package domain

// Product represents a coffee listing in the marketplace catalog.
// Products are read-only once fetched; only sellers create new ones.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Origin        string   `json:"origin"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	ImageURL      string   `json:"image_url"`
	StockQuantity int      `json:"stock_quantity"`
	SoldQuantity  int      `json:"sold_quantity"`
	RoastLevel    string   `json:"roast_level"`
	Process       string   `json:"process"`
	FlavorNotes   []string `json:"flavor_notes"`
	IsOrganic     bool     `json:"is_organic"`
	Acidity       string   `json:"acidity"`
	Body          string   `json:"body"`
	Altitude      string   `json:"altitude"`
	Farm          string   `json:"farm,omitempty"`
	HarvestPeriod string   `json:"harvest_period,omitempty"`
	Varieties     string   `json:"varieties,omitempty"`
	RoastDate     string   `json:"roast_date,omitempty"`
	Rating        float64  `json:"rating"`
	Seller        string   `json:"seller"`
}

// Review represents a customer review of a product
type Review struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	UserID    string  `json:"user_id"`
	UserName  string  `json:"user_name"`
	Rating    float64 `json:"rating"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Date      string  `json:"date"`
}
