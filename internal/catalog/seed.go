package catalog

var seed = []Property{
	{
		ID: "1", Title: "Modern Downtown Penthouse", Price: 1250000, Location: "Manhattan, New York",
		Bedrooms: 3, Bathrooms: 2, Sqft: 2100, Type: TypeApartment, Status: StatusForSale,
		Description: "Floor-to-ceiling windows over the skyline with a private terrace.",
		Features:    []string{"Terrace", "Concierge", "Gym"}, YearBuilt: 2019, Parking: 1,
		IsNFT: true, Owner: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
	},
	{
		ID: "2", Title: "Suburban Family Home", Price: 685000, Location: "Austin, Texas",
		Bedrooms: 4, Bathrooms: 3, Sqft: 2800, Type: TypeHouse, Status: StatusForSale,
		Description: "Quiet cul-de-sac, large backyard, walking distance to schools.",
		Features:    []string{"Backyard", "Garage", "Fireplace"}, YearBuilt: 2008, Parking: 2,
	},
	{
		ID: "3", Title: "Beachfront Condo", Price: 4200, Location: "Miami, Florida",
		Bedrooms: 2, Bathrooms: 2, Sqft: 1200, Type: TypeCondo, Status: StatusForRent,
		Description: "Direct beach access and ocean views from every room.",
		Features:    []string{"Pool", "Ocean View", "Balcony"}, YearBuilt: 2015, Parking: 1,
	},
	{
		ID: "4", Title: "Historic Brownstone", Price: 2100000, Location: "Boston, Massachusetts",
		Bedrooms: 5, Bathrooms: 4, Sqft: 3600, Type: TypeTownhouse, Status: StatusForSale,
		Description: "Restored 19th century brownstone with original details.",
		Features:    []string{"Garden", "Library", "Wine Cellar"}, YearBuilt: 1890, Parking: 0,
		IsNFT: true, Owner: "0x2546BcD3c84621e976D8185a91A922aE77ECEc30",
	},
	{
		ID: "5", Title: "Mountain View Cabin", Price: 450000, Location: "Denver, Colorado",
		Bedrooms: 2, Bathrooms: 1, Sqft: 1100, Type: TypeHouse, Status: StatusSold,
		Description: "Timber cabin with a wraparound deck facing the Rockies.",
		Features:    []string{"Deck", "Wood Stove"}, YearBuilt: 1978, Parking: 2,
	},
	{
		ID: "6", Title: "Tech District Loft", Price: 3800, Location: "San Francisco, California",
		Bedrooms: 1, Bathrooms: 1, Sqft: 900, Type: TypeApartment, Status: StatusForRent,
		Description: "Converted warehouse loft close to transit.",
		Features:    []string{"High Ceilings", "Bike Storage"}, YearBuilt: 1925, Parking: 0,
	},
	{
		ID: "7", Title: "Lakeside Townhouse", Price: 720000, Location: "Chicago, Illinois",
		Bedrooms: 3, Bathrooms: 3, Sqft: 1900, Type: TypeTownhouse, Status: StatusForSale,
		Description: "End unit with lake views and a rooftop deck.",
		Features:    []string{"Rooftop", "Lake View"}, YearBuilt: 2012, Parking: 1,
		IsNFT: true, Owner: "0xbDA5747bFD65F08deb54cb465eB87D40e51B197E",
	},
	{
		ID: "8", Title: "Garden Apartment", Price: 2600, Location: "Portland, Oregon",
		Bedrooms: 2, Bathrooms: 1, Sqft: 950, Type: TypeApartment, Status: StatusRented,
		Description: "Ground floor unit opening onto a shared garden.",
		Features:    []string{"Garden", "Laundry"}, YearBuilt: 1962, Parking: 1,
	},
}
