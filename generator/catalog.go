package generator

// products per category
var catalog = map[string][]string{
	"Electronics": {
		"Smartphone", "Laptop", "Tablet", "Smartwatch", "Bluetooth Speaker",
		"Headphones", "Gaming Console", "Camera", "Drone", "External Hard Drive",
		"USB Flash Drive", "Smart TV", "Wireless Router", "Portable Charger",
		"Projector", "Fitness Tracker", "VR Headset", "Home Theater System",
		"Monitor", "Bluetooth Earbuds",
	},
	"Stationery": {
		"Pens", "Pencils", "Eraser", "Notebook", "Stapler",
		"Paper Clips", "Markers", "Highlighters", "Ruler", "Glue Stick",
		"Scissors", "Sticky Notes", "Tape", "Calculator", "File Folder",
		"Binder", "Whiteboard Markers", "Pencil Sharpener", "Letter Opener", "Paper Cutter",
	},
	"Books": {
		"Fiction", "Non-fiction", "Biography", "Science Fiction", "Fantasy",
		"Mystery", "Historical Fiction", "Self-Help", "Cookbooks", "Comics",
		"Graphic Novels", "Poetry", "Travel Books", "Thrillers", "Horror",
		"Children's Books", "Young Adult", "Classics", "Textbooks", "Memoir",
	},
	"Clothing": {
		"T-Shirts", "Jeans", "Jackets", "Sweaters", "Hoodies",
		"Dresses", "Shorts", "Skirts", "Suits", "Blouses",
		"Coats", "Pants", "Socks", "Underwear", "Swimwear",
		"Sportswear", "Nightwear", "Shoes", "Scarves", "Hats",
	},
	"Home & Kitchen": {
		"Cookware", "Cutlery", "Plates", "Mugs", "Glasses",
		"Oven Mitts", "Kitchen Towels", "Spatulas", "Mixing Bowls", "Food Storage Containers",
		"Blender", "Microwave", "Toaster", "Coffee Maker", "Dish Rack",
		"Chopping Board", "Measuring Cups", "Kitchen Scale", "Air Fryer", "Pressure Cooker",
	},
}

// Categories lists the keys of catalog in a fixed order so seeded runs are
// reproducible.
var Categories = []string{"Electronics", "Stationery", "Books", "Clothing", "Home & Kitchen"}

var cities = map[string][]string{
	"India":     {"Mumbai", "Bengaluru", "Indore"},
	"USA":       {"Boston", "New York", "Chicago"},
	"UK":        {"London", "Oxford", "Manchester"},
	"Germany":   {"Berlin", "Munich", "Hamburg"},
	"Australia": {"Sydney", "Melbourne", "Brisbane"},
}

var Countries = []string{"India", "USA", "UK", "Germany", "Australia"}

var (
	customerNames  = []string{"John Smith", "Mary Jane", "Joe Smith", "Neo", "Trinity"}
	websites       = []string{"www.amazon.com", "www.flipkart.com", "www.ebay.in", "www.tatacliq.com"}
	failureReasons = []string{"Invalid CVV", "Insufficient Funds", "Timeout"}
)

// Products returns the products sold in category.
func Products(category string) []string {
	return catalog[category]
}

// Cities returns the cities orders ship to in country.
func Cities(country string) []string {
	return cities[country]
}
