package catalog

import "github.com/pageza/alchemorsel-voice/backend/internal/model"

// defaultRecipes is the built-in catalog. Three entries share the id "rice";
// callers must not rely on id uniqueness.
var defaultRecipes = []model.Recipe{
	{
		ID:          "omelette-basic",
		Title:       "Classic Egg Omelette",
		Ingredients: []string{"egg", "salt", "pepper", "onion", "tomato", "oil"},
		Steps: []string{
			"Beat eggs with salt and pepper.",
			"Heat oil in a pan, sauté onion and tomato.",
			"Pour eggs and cook until set. Fold and serve.",
		},
	},
	{
		ID:          "fruit-salad",
		Title:       "Fresh Fruit Salad",
		Ingredients: []string{"apple", "banana", "grapes", "orange", "honey", "curd"},
		Steps: []string{
			"Chop all fruits into bite-sized pieces.",
			"Mix in a bowl with honey and curd.",
			"Chill before serving.",
		},
	},
	{
		ID:          "pancakes",
		Title:       "Fluffy Pancakes",
		Ingredients: []string{"flour", "milk", "egg", "sugar", "baking powder", "butter"},
		Steps: []string{
			"Mix flour, sugar, and baking powder.",
			"Whisk in milk and egg until smooth.",
			"Cook on a greased pan until golden on both sides.",
		},
	},
	{
		ID:          "sandwich",
		Title:       "Veggie Corn Sandwiches",
		Ingredients: []string{"bread", "cheese", "butter", "salt", "onion", "tomato", "corn", "capsicum"},
		Steps: []string{
			"Mix boiled corns,chopped onions,tomato,capsicum and salt.",
			"Now assembled the sandwich by butter each side of bread.",
			"Scoop the filling of corns and veggies on one slice of bread and cover with the other slice.",
			"Now grill each side of sandwich for 2-3 minutes.",
		},
	},
	{
		ID:          "veggies",
		Title:       "Veggie Sandwich",
		Ingredients: []string{"bread", "tomato", "cucumber", "onion", "butter", "salt", "pepper"},
		Steps: []string{
			"Chop tomato, cucumber, and onion.",
			"Spread butter on each slice of bread.",
			"Layer the veggies and sprinkle salt and pepper.",
			"Cover with another bread slice and toast lightly.",
		},
	},
	{
		ID:          "rice",
		Title:       "Poha (Flattened Rice)",
		Ingredients: []string{"flattened rice", "onion", "green chili", "curry leaves", "lemon", "salt"},
		Steps: []string{
			"Wash the poha and keep aside.",
			"Sauté onion, green chili, and curry leaves in oil.",
			"Add poha and salt, mix well.",
			"Garnish with lemon juice before serving.",
		},
	},
	{
		ID:          "paneer",
		Title:       "Paneer Butter Masala",
		Ingredients: []string{"paneer", "tomato puree", "cream", "butter", "spices"},
		Steps: []string{
			"Prepare a tomato gravy with spices.",
			"Add paneer cubes and cook for 5 minutes.",
			"Mix in fresh cream and butter before serving.",
		},
	},
	{
		ID:          "cholle",
		Title:       "Chole Masala",
		Ingredients: []string{"chickpeas", "onion", "tomato", "ginger garlic paste", "spices"},
		Steps: []string{
			"Boil chickpeas until soft.",
			"Make a masala with onion, tomato, and spices.",
			"Mix chickpeas into the masala and simmer for 10 minutes.",
		},
	},
	{
		ID:          "paratha",
		Title:       "Aloo Paratha",
		Ingredients: []string{"wheat flour", "boiled potatoes", "onion", "spices", "ghee"},
		Steps: []string{
			"Prepare dough with wheat flour and water.",
			"Make stuffing with mashed potatoes, onion, and spices.",
			"Stuff the dough ball with filling and roll it out.",
			"Cook on a hot tawa with ghee until golden brown.",
		},
	},
	{
		ID:          "noodles",
		Title:       "Maggi Masala Noodles",
		Ingredients: []string{"maggi noodles", "water", "vegetables", "capsicum", "carrots", "pees", "maggi masala"},
		Steps: []string{
			"Boil water in a pan.",
			"Add noodles, vegetables, and masala packet.",
			"Cook for 2-3 minutes until done.",
		},
	},
	{
		ID:          "pakoras",
		Title:       "Pakoras",
		Ingredients: []string{"gram flour", "onion/potato/spinach", "spices", "oil"},
		Steps: []string{
			"Prepare batter with gram flour, water, and spices.",
			"Dip onion/potato/spinach slices into the batter.",
			"Deep fry in hot oil until golden brown.",
		},
	},
	{
		ID:          "fruits",
		Title:       "Fruit Custard",
		Ingredients: []string{"milk", "custard powder", "sugar", "seasonal fruits"},
		Steps: []string{
			"Boil milk and mix custard powder with sugar.",
			"Cool the custard and refrigerate.",
			"Add chopped seasonal fruits before serving.",
		},
	},
	{
		ID:          "rice",
		Title:       "Kheer (Rice Pudding)",
		Ingredients: []string{"rice", "milk", "sugar", "cardamom", "dry fruits"},
		Steps: []string{
			"Cook rice in milk on low flame until soft.",
			"Add sugar and cardamom powder.",
			"Garnish with dry fruits before serving.",
		},
	},
	{
		ID:          "tomato",
		Title:       "Tomato Omelette",
		Ingredients: []string{"eggs", "tomato", "onion", "salt", "oil"},
		Steps: []string{
			"Beat eggs with chopped tomato, onion, and salt.",
			"Heat oil in a pan.",
			"Pour mixture and cook until golden on both sides.",
		},
	},
	{
		ID:          "rice",
		Title:       "Egg Fried Rice",
		Ingredients: []string{"rice", "eggs", "soy sauce", "spring onion", "oil"},
		Steps: []string{
			"Scramble eggs in a pan with oil.",
			"Add cooked rice and soy sauce.",
			"Mix well and garnish with spring onion.",
		},
	},
}
