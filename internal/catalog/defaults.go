package catalog

import "github.com/Oukrim2590-maker/oukrimmeals/internal/models"

// Seed catalog. Admin edits persisted as overrides fully replace
// these lists; the baseline rating/review figures stay behind for the
// rating aggregator regardless of overrides.
var DefaultMeals = []models.Meal{
	{
		ID:          1,
		Name:        "Grilled Chicken Power Bowl",
		Image:       "/images/meals/chicken-power-bowl.jpg",
		Price:       65,
		Ingredients: "grilled chicken, brown rice, broccoli, carrots, tahini sauce",
		Calories:    520,
		Category:    models.CategoryHighProtein,
		Rating:      4,
		Reviews:     9,
	},
	{
		ID:          2,
		Name:        "Beef & Quinoa Plate",
		Image:       "/images/meals/beef-quinoa.jpg",
		Price:       75,
		Ingredients: "lean beef, quinoa, grilled peppers, onions, chimichurri",
		Calories:    610,
		Category:    models.CategoryHighProtein,
		Rating:      4.5,
		Reviews:     12,
	},
	{
		ID:          3,
		Name:        "Roasted Veggie Couscous",
		Image:       "/images/meals/veggie-couscous.jpg",
		Price:       48,
		Ingredients: "couscous, zucchini, eggplant, chickpeas, harissa dressing",
		Calories:    430,
		Category:    models.CategoryVegetarian,
		Rating:      4.2,
		Reviews:     7,
	},
	{
		ID:          4,
		Name:        "Salmon & Greens",
		Image:       "/images/meals/salmon-greens.jpg",
		Price:       89,
		Ingredients: "baked salmon, spinach, avocado, cherry tomatoes, lemon dressing",
		Calories:    390,
		Category:    models.CategoryLowCarb,
		Rating:      4.8,
		Reviews:     15,
	},
	{
		ID:          5,
		Name:        "Halloumi Salad Box",
		Image:       "/images/meals/halloumi-salad.jpg",
		Price:       52,
		Ingredients: "halloumi, mixed greens, cucumber, olives, mint, olive oil",
		Calories:    340,
		Category:    models.CategoryLowCarb,
	},
}

var DefaultProducts = []models.Product{
	{
		ID:          1,
		Name:        "Whey Protein 1kg",
		Image:       "/images/products/whey.jpg",
		Price:       320,
		Description: "Vanilla whey concentrate, 25g protein per scoop.",
	},
	{
		ID:          2,
		Name:        "Resistance Band Set",
		Image:       "/images/products/bands.jpg",
		Price:       120,
		Description: "Five bands from light to extra heavy, with carry bag.",
	},
	{
		ID:          3,
		Name:        "Shaker Bottle 700ml",
		Image:       "/images/products/shaker.jpg",
		Price:       45,
		Description: "Leak-proof shaker with mixing ball.",
	},
}

var DefaultArticles = []models.Article{
	{
		ID:      1,
		Title:   "Why Meal Prep Works",
		Image:   "/images/articles/meal-prep.jpg",
		Summary: "Planning your week of meals removes the daily decision fatigue that derails most diets.",
		Content: "Meal prepping is less about cooking skill and more about removing friction. When healthy food is already portioned in the fridge, the default choice becomes the right one. Start with three dinners a week and build from there.",
	},
	{
		ID:      2,
		Title:   "Protein Timing, Simplified",
		Image:   "/images/articles/protein-timing.jpg",
		Summary: "Total daily protein matters far more than the anabolic window.",
		Content: "Spread your protein across three or four meals and hit your daily target. The post-workout window is real but wide, a meal within a couple of hours is plenty for almost everyone.",
	},
	{
		ID:      3,
		Title:   "Low-Carb Without the Crash",
		Image:   "/images/articles/low-carb.jpg",
		Summary: "Cutting carbs does not have to mean cutting energy.",
		Content: "The first week of a low-carb diet is the hardest. Keep sodium up, eat enough fat, and time your remaining carbs around training. Most of the fatigue people blame on low carb is really under-eating.",
	},
}
