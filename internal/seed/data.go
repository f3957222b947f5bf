package seed

import "inventory-backend/internal/models"

var suppliers = []models.Supplier{
	{Name: "Fresh Foods Supplier", ContactPerson: "John Tan", Email: "john@freshfoods.com", Phone: "+65 6123 4567", Address: "123 Wholesale Ave, Singapore", Region: "Central", Status: models.StatusActive},
	{Name: "Premium Ingredients Co", ContactPerson: "Mary Lim", Email: "mary@premiumingredients.com", Phone: "+65 6234 5678", Address: "456 Supply Road, Singapore", Region: "East", Status: models.StatusActive},
	{Name: "Global Beverage Distributors", ContactPerson: "David Lee", Email: "david@globalbev.com", Phone: "+65 6345 6789", Address: "789 Distribution Lane, Singapore", Region: "West", Status: models.StatusActive},
	{Name: "Asian Produce Co", ContactPerson: "Sam Wong", Email: "sam@asianproduce.com", Phone: "+65 6456 7890", Address: "30 Produce Market, Singapore", Region: "North", Status: models.StatusActive},
	{Name: "Quality Meat Distributors", ContactPerson: "Rachel Chen", Email: "rachel@qualitymeat.com", Phone: "+65 6567 8901", Address: "55 Meat Processing Park, Singapore", Region: "Central", Status: models.StatusActive},
	{Name: "Eco-Packaging Solutions", ContactPerson: "Alex Nair", Email: "alex@ecopack.com", Phone: "+65 6678 9012", Address: "100 Industry Road, Singapore", Region: "South", Status: models.StatusInactive},
	{Name: "Local Bakery Supplies", ContactPerson: "Susan Goh", Email: "susan@bakerysupply.com", Phone: "+65 6789 0123", Address: "15 Baker Street, Singapore", Region: "East", Status: models.StatusActive},
	{Name: "South East Spices", ContactPerson: "Kumar Pillai", Email: "kumar@sespices.com", Phone: "+65 6901 2345", Address: "5 Spice Hub, Singapore", Region: "Central", Status: models.StatusActive},
}

var products = []productSeed{
	{name: "Organic Rice 5kg", description: "Premium organic white rice", category: "Grains", unit: "kg", price: "12.50", stock: 450, reorder: 100, supplier: 0},
	{name: "Olive Oil 1L", description: "Extra virgin olive oil", category: "Oils", unit: "L", price: "18.90", stock: 80, reorder: 100, supplier: 1},
	{name: "Fresh Milk 1L", description: "Full cream fresh milk", category: "Dairy", unit: "L", price: "3.50", stock: 250, reorder: 150, supplier: 0},
	{name: "Pasta 500g", description: "Italian pasta", category: "Grains", unit: "g", price: "4.20", stock: 350, reorder: 100, supplier: 1},
	{name: "Orange Juice 1L", description: "Freshly squeezed orange juice", category: "Beverages", unit: "L", price: "5.80", stock: 60, reorder: 100, supplier: 2},
	{name: "Coffee Beans 500g", description: "Premium Arabica coffee beans", category: "Beverages", unit: "g", price: "22.00", stock: 120, reorder: 50, supplier: 2},
	{name: "Canned Tomatoes 400g", description: "Whole peeled tomatoes", category: "Canned Goods", unit: "g", price: "2.50", stock: 500, reorder: 200, supplier: 0},
	{name: "Soy Sauce 1L", description: "Premium dark soy sauce", category: "Condiments", unit: "L", price: "6.50", stock: 180, reorder: 100, supplier: 1},
	{name: "Chicken Breast 1kg", description: "Frozen chicken breast", category: "Meat", unit: "kg", price: "8.50", stock: 150, reorder: 50, supplier: 4},
	{name: "Mixed Salad Greens 1kg", description: "Pre-washed salad mix", category: "Produce", unit: "kg", price: "10.00", stock: 50, reorder: 80, supplier: 3},
	{name: "Sugar 25kg Bag", description: "Industrial white sugar", category: "Grains", unit: "kg", price: "35.00", stock: 300, reorder: 150, supplier: 6},
	{name: "Sparkling Water 500ml", description: "Case of 24 mineral water bottles", category: "Beverages", unit: "case", price: "15.00", stock: 800, reorder: 200, supplier: 2},
	{name: "Sea Salt 1kg", description: "Fine Mediterranean sea salt", category: "Condiments", unit: "kg", price: "4.00", stock: 120, reorder: 50, supplier: 7},
	{name: "Frozen French Fries 2kg", description: "Shoestring cut, 2kg bag", category: "Frozen", unit: "bag", price: "7.50", stock: 400, reorder: 100, supplier: 1},
	{name: "Beef Tenderloin 5kg", description: "Vacuum sealed prime cut", category: "Meat", unit: "kg", price: "80.00", stock: 70, reorder: 100, supplier: 4},
}

var customers = []models.Customer{
	{Name: "Sunshine Cafe", Email: "orders@sunshinecafe.com", Phone: "+65 6111 2222", Address: "10 Orchard Road, Singapore", CustomerType: "retail", Status: models.StatusActive},
	{Name: "Grand Hotel Restaurant", Email: "procurement@grandhotel.com", Phone: "+65 6222 3333", Address: "50 Marina Bay, Singapore", CustomerType: "wholesale", Status: models.StatusActive},
	{Name: "Family Bistro", Email: "info@familybistro.com", Phone: "+65 6333 4444", Address: "25 Tanjong Pagar, Singapore", CustomerType: "retail", Status: models.StatusActive},
	{Name: "Pinnacle Events Catering", Email: "orders@pinnacleevents.com", Phone: "+65 6888 7777", Address: "99 Outram Park, Singapore", CustomerType: "wholesale", Status: models.StatusInactive},
	{Name: "The Daily Grind", Email: "info@dailygrind.com", Phone: "+65 6444 5555", Address: "88 Market Street, Singapore", CustomerType: "retail", Status: models.StatusActive},
	{Name: "Mega Mart Supermarket", Email: "purchasing@megamart.com", Phone: "+65 6555 6666", Address: "1 Retail Park, Singapore", CustomerType: "wholesale", Status: models.StatusActive},
	{Name: "Downtown Deli", Email: "orders@downtowndeli.com", Phone: "+65 6666 7777", Address: "15 CBD Square, Singapore", CustomerType: "retail", Status: models.StatusActive},
	{Name: "Catering Hub SG", Email: "sales@cateringhub.com", Phone: "+65 6777 8888", Address: "40 Event Road, Singapore", CustomerType: "wholesale", Status: models.StatusInactive},
}

var purchases = []docSeed{
	{party: 5, date: "2023-01-09", status: "completed", notes: "Stock replenishment", items: []lineSeed{{9, 130}, {10, 15}}},
	{party: 1, date: "2023-02-14", status: "ordered", notes: "Upcoming large order", items: []lineSeed{{14, 100}, {0, 80}}},
	{party: 3, date: "2023-03-24", status: "completed", notes: "Stock replenishment", items: []lineSeed{{9, 50}, {3, 20}}},
	{party: 2, date: "2023-05-18", status: "completed", notes: "Stock replenishment", items: []lineSeed{{5, 40}, {2, 120}}},
	{party: 0, date: "2023-06-03", status: "completed", notes: "Stock replenishment", items: []lineSeed{{0, 250}, {6, 150}}},
	{party: 4, date: "2023-07-11", status: "ordered", notes: "Upcoming order", items: []lineSeed{{3, 65}}},
	{party: 1, date: "2023-08-27", status: "completed", notes: "Stock replenishment", items: []lineSeed{{1, 40}, {12, 20}}},
	{party: 5, date: "2023-10-18", status: "completed", notes: "Stock replenishment", items: []lineSeed{{10, 60}}},
	{party: 7, date: "2023-11-20", status: "completed", notes: "Stock replenishment", items: []lineSeed{{9, 100}, {14, 80}, {0, 10}}},
	{party: 0, date: "2024-01-05", status: "completed", notes: "Stock replenishment", items: []lineSeed{{4, 100}}},
	{party: 4, date: "2024-03-12", status: "completed", notes: "Stock replenishment", items: []lineSeed{{8, 200}, {14, 40}}},
	{party: 2, date: "2024-05-01", status: "completed", notes: "Stock replenishment", items: []lineSeed{{11, 100}}},
	{party: 6, date: "2024-07-29", status: "ordered", notes: "Small order", items: []lineSeed{{14, 2}}},
	{party: 3, date: "2024-09-09", status: "completed", notes: "Stock replenishment", items: []lineSeed{{9, 90}, {14, 30}}},
	{party: 0, date: "2024-11-28", status: "completed", notes: "Stock replenishment", items: []lineSeed{{0, 100}, {6, 120}}},
	{party: 1, date: "2025-01-10", status: "completed", notes: "Stock replenishment", items: []lineSeed{{0, 150}, {12, 70}}},
	{party: 3, date: "2025-02-18", status: "ordered", notes: "Upcoming bulk order", items: []lineSeed{{3, 120}, {9, 60}}},
	{party: 0, date: "2025-03-12", status: "completed", notes: "Stock replenishment", items: []lineSeed{{6, 300}, {4, 150}}},
	{party: 4, date: "2025-06-20", status: "completed", notes: "Stock replenishment", items: []lineSeed{{8, 80}, {11, 40}}},
	{party: 2, date: "2025-09-15", status: "ordered", notes: "Seasonal restock", items: []lineSeed{{10, 150}}},
	{party: 6, date: "2025-11-02", status: "completed", notes: "Stock replenishment", items: []lineSeed{{1, 50}}},
}

var orders = []docSeed{
	{party: 1, date: "2023-01-08", status: "completed", notes: "Standard monthly order", items: []lineSeed{{1, 50}, {0, 15}, {6, 22}}},
	{party: 5, date: "2023-01-20", status: "completed", notes: "Standard monthly order", items: []lineSeed{{10, 80}, {4, 7}, {12, 50}}},
	{party: 5, date: "2023-02-04", status: "completed", notes: "Standard monthly order", items: []lineSeed{{10, 40}, {11, 10}, {2, 3}}},
	{party: 0, date: "2023-02-17", status: "completed", notes: "Small order", items: []lineSeed{{4, 15}, {12, 5}}},
	{party: 2, date: "2023-03-08", status: "completed", notes: "Small order", items: []lineSeed{{0, 10}, {3, 10}}},
	{party: 4, date: "2023-03-24", status: "completed", notes: "Cafe restock", items: []lineSeed{{5, 10}, {6, 22}}},
	{party: 6, date: "2023-04-03", status: "shipped", notes: "Event order", items: []lineSeed{{8, 50}, {14, 50}, {12, 4}}},
	{party: 4, date: "2023-04-18", status: "completed", notes: "Restock", items: []lineSeed{{3, 30}, {7, 5}, {2, 5}}},
	{party: 3, date: "2023-05-29", status: "completed", notes: "Wholesale order", items: []lineSeed{{0, 20}, {9, 10}, {3, 13}}},
	{party: 7, date: "2023-06-15", status: "completed", notes: "Small order", items: []lineSeed{{7, 50}}},
	{party: 0, date: "2023-07-07", status: "completed", notes: "Monthly", items: []lineSeed{{14, 4}, {12, 5}}},
	{party: 2, date: "2023-07-28", status: "shipped", notes: "Shipped", items: []lineSeed{{0, 80}, {1, 10}, {14, 23}}},
	{party: 5, date: "2023-08-16", status: "completed", notes: "Large restock", items: []lineSeed{{10, 40}}},
	{party: 1, date: "2023-09-02", status: "pending", notes: "Pending approval", items: []lineSeed{{5, 20}, {11, 5}}},
	{party: 4, date: "2023-09-20", status: "completed", notes: "Small", items: []lineSeed{{4, 15}, {6, 26}}},
	{party: 6, date: "2023-10-10", status: "completed", notes: "Catering", items: []lineSeed{{8, 80}, {14, 35}, {0, 20}}},
	{party: 7, date: "2023-11-04", status: "shipped", notes: "Shipped", items: []lineSeed{{0, 20}, {14, 15}, {9, 15}}},
	{party: 1, date: "2023-11-29", status: "completed", notes: "Monthly", items: []lineSeed{{14, 9}, {10, 9}}},
	{party: 2, date: "2023-12-16", status: "completed", notes: "Monthly", items: []lineSeed{{8, 45}, {11, 50}, {14, 31}}},
	{party: 0, date: "2024-01-26", status: "completed", notes: "Monthly", items: []lineSeed{{9, 60}}},
	{party: 3, date: "2024-02-11", status: "completed", notes: "Wholesale", items: []lineSeed{{1, 50}, {6, 97}}},
	{party: 6, date: "2024-03-29", status: "completed", notes: "Large order", items: []lineSeed{{10, 50}, {4, 10}}},
	{party: 4, date: "2024-05-15", status: "cancelled", notes: "Customer cancel", items: []lineSeed{{4, 25}, {2, 5}}},
	{party: 5, date: "2024-06-05", status: "shipped", notes: "Shipped", items: []lineSeed{{9, 35}, {6, 10}}},
	{party: 0, date: "2024-07-02", status: "completed", notes: "Monthly", items: []lineSeed{{11, 50}, {14, 10}, {0, 3}}},
	{party: 2, date: "2024-08-14", status: "completed", notes: "Monthly", items: []lineSeed{{4, 25}, {6, 15}, {0, 4}}},
	{party: 1, date: "2024-09-17", status: "completed", notes: "Monthly", items: []lineSeed{{9, 30}, {12, 5}}},
	{party: 6, date: "2024-10-06", status: "pending", notes: "Pending", items: []lineSeed{{8, 50}, {6, 20}}},
	{party: 5, date: "2024-11-13", status: "completed", notes: "Monthly", items: []lineSeed{{9, 60}}},
	{party: 4, date: "2024-12-25", status: "completed", notes: "Holiday order", items: []lineSeed{{10, 25}, {14, 20}, {6, 8}}},
	{party: 0, date: "2025-01-07", status: "completed", notes: "Monthly 2025", items: []lineSeed{{0, 20}, {11, 10}}},
	{party: 3, date: "2025-02-22", status: "processing", notes: "Processing", items: []lineSeed{{3, 30}, {12, 5}}},
	{party: 5, date: "2025-04-10", status: "completed", notes: "Large restock 2025", items: []lineSeed{{10, 60}, {4, 10}}},
	{party: 2, date: "2025-06-03", status: "shipped", notes: "Shipped 2025", items: []lineSeed{{8, 45}, {14, 10}}},
	{party: 6, date: "2025-08-29", status: "delivered", notes: "Delivered 2025", items: []lineSeed{{9, 40}, {1, 10}}},
	{party: 1, date: "2025-10-15", status: "cancelled", notes: "Cancelled 2025", items: []lineSeed{{10, 20}}},
}
