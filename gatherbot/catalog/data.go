package catalog

// Tools are listed starter first; the first tool of each domain is the one
// new accounts receive.
var toolTable = []Tool{
	{ID: "basic_rod", Name: "Basic Rod", Domain: Fishing, Power: 1, Efficiency: 1.0, Multiplier: 1.0, Rarity: Common, Price: 0, CooldownMs: 10_000},
	{ID: "sturdy_rod", Name: "Sturdy Rod", Domain: Fishing, Power: 3, Efficiency: 1.1, Multiplier: 1.25, Rarity: Rare, Price: 2_500, CooldownMs: 9_000},
	{ID: "carbon_rod", Name: "Carbon Rod", Domain: Fishing, Power: 6, Efficiency: 1.25, Multiplier: 1.5, Rarity: Epic, Price: 12_000, CooldownMs: 8_000},
	{ID: "abyssal_rod", Name: "Abyssal Rod", Domain: Fishing, Power: 10, Efficiency: 1.5, Multiplier: 2.0, Rarity: Legendary, Price: 60_000, CooldownMs: 6_000},

	{ID: "basic_pickaxe", Name: "Basic Pickaxe", Domain: Mining, Power: 1, Efficiency: 1.0, Multiplier: 1.0, Rarity: Common, Price: 0, CooldownMs: 12_000},
	{ID: "iron_pickaxe", Name: "Iron Pickaxe", Domain: Mining, Power: 3, Efficiency: 1.1, Multiplier: 1.25, Rarity: Rare, Price: 3_000, CooldownMs: 11_000},
	{ID: "diamond_pickaxe", Name: "Diamond Pickaxe", Domain: Mining, Power: 6, Efficiency: 1.25, Multiplier: 1.5, Rarity: Epic, Price: 15_000, CooldownMs: 9_000},
	{ID: "mythril_pickaxe", Name: "Mythril Pickaxe", Domain: Mining, Power: 10, Efficiency: 1.5, Multiplier: 2.0, Rarity: Legendary, Price: 75_000, CooldownMs: 7_000},

	{ID: "basic_hoe", Name: "Basic Hoe", Domain: Farming, Power: 1, Efficiency: 1.0, Multiplier: 1.0, Rarity: Common, Price: 0, CooldownMs: 15_000},
	{ID: "steel_hoe", Name: "Steel Hoe", Domain: Farming, Power: 3, Efficiency: 1.1, Multiplier: 1.25, Rarity: Rare, Price: 2_000, CooldownMs: 13_000},
	{ID: "golden_hoe", Name: "Golden Hoe", Domain: Farming, Power: 6, Efficiency: 1.25, Multiplier: 1.5, Rarity: Epic, Price: 10_000, CooldownMs: 11_000},
	{ID: "enchanted_hoe", Name: "Enchanted Hoe", Domain: Farming, Power: 10, Efficiency: 1.5, Multiplier: 2.0, Rarity: Legendary, Price: 50_000, CooldownMs: 9_000},
}

var resourceTable = map[Domain][]Resource{
	Fishing: {
		{Name: "Sardine", Emoji: "🐟", Value: 10, XP: 5, Rarity: Common},
		{Name: "Anchovy", Emoji: "🐟", Value: 8, XP: 4, Rarity: Common},
		{Name: "Carp", Emoji: "🐟", Value: 12, XP: 6, Rarity: Common},
		{Name: "Salmon", Emoji: "🐠", Value: 30, XP: 12, Rarity: Rare},
		{Name: "Trout", Emoji: "🐠", Value: 28, XP: 11, Rarity: Rare},
		{Name: "Swordfish", Emoji: "🐡", Value: 80, XP: 30, Rarity: Epic},
		{Name: "Bluefin Tuna", Emoji: "🐡", Value: 75, XP: 28, Rarity: Epic},
		{Name: "Golden Koi", Emoji: "🎏", Value: 250, XP: 90, Rarity: Legendary},
		{Name: "Leviathan Scale", Emoji: "🐉", Value: 1_000, XP: 300, Rarity: Mythic},
	},
	Mining: {
		{Name: "Stone", Emoji: "🪨", Value: 6, XP: 4, Rarity: Common},
		{Name: "Coal", Emoji: "⚫", Value: 9, XP: 5, Rarity: Common},
		{Name: "Copper Ore", Emoji: "🟠", Value: 12, XP: 6, Rarity: Common},
		{Name: "Iron Ore", Emoji: "⛓️", Value: 30, XP: 12, Rarity: Rare},
		{Name: "Silver Ore", Emoji: "🥈", Value: 35, XP: 13, Rarity: Rare},
		{Name: "Gold Ore", Emoji: "🥇", Value: 85, XP: 30, Rarity: Epic},
		{Name: "Ruby", Emoji: "🔴", Value: 90, XP: 32, Rarity: Epic},
		{Name: "Diamond", Emoji: "💎", Value: 275, XP: 95, Rarity: Legendary},
		{Name: "Mythril", Emoji: "✨", Value: 1_100, XP: 320, Rarity: Mythic},
	},
	Farming: {
		{Name: "Wheat", Emoji: "🌾", Value: 7, XP: 4, Rarity: Common},
		{Name: "Potato", Emoji: "🥔", Value: 8, XP: 4, Rarity: Common},
		{Name: "Carrot", Emoji: "🥕", Value: 9, XP: 5, Rarity: Common},
		{Name: "Corn", Emoji: "🌽", Value: 25, XP: 10, Rarity: Rare},
		{Name: "Pumpkin", Emoji: "🎃", Value: 32, XP: 12, Rarity: Rare},
		{Name: "Strawberry", Emoji: "🍓", Value: 70, XP: 26, Rarity: Epic},
		{Name: "Melon", Emoji: "🍈", Value: 78, XP: 29, Rarity: Epic},
		{Name: "Golden Apple", Emoji: "🍏", Value: 240, XP: 85, Rarity: Legendary},
		{Name: "Starfruit", Emoji: "⭐", Value: 950, XP: 280, Rarity: Mythic},
	},
}

var speciesTable = []PetSpecies{
	{ID: "turtle", Name: "Turtle", Emoji: "🐢", Rarity: Common, Boost: Boost{Type: BoostCoins, Value: 1.05}, BaseHunger: 80},
	{ID: "rabbit", Name: "Rabbit", Emoji: "🐇", Rarity: Common, Boost: Boost{Type: BoostXP, Value: 1.05}, BaseHunger: 70},
	{ID: "hamster", Name: "Hamster", Emoji: "🐹", Rarity: Common, Boost: Boost{Type: BoostCooldown, Value: 0.95}, BaseHunger: 60},
	{ID: "fox", Name: "Fox", Emoji: "🦊", Rarity: Rare, Boost: Boost{Type: BoostCoins, Value: 1.15}, BaseHunger: 70},
	{ID: "owl", Name: "Owl", Emoji: "🦉", Rarity: Rare, Boost: Boost{Type: BoostXP, Value: 1.15}, BaseHunger: 70},
	{ID: "cat", Name: "Cat", Emoji: "🐈", Rarity: Rare, Boost: Boost{Type: BoostRarity, Value: 0.05}, BaseHunger: 65},
	{ID: "phoenix", Name: "Phoenix", Emoji: "🐦‍🔥", Rarity: Legendary, Boost: Boost{Type: BoostCoins, Value: 1.35}, BaseHunger: 60},
	{ID: "dragon", Name: "Dragon", Emoji: "🐲", Rarity: Legendary, Boost: Boost{Type: BoostRarity, Value: 0.15}, BaseHunger: 50},
	{ID: "unicorn", Name: "Unicorn", Emoji: "🦄", Rarity: Legendary, Boost: Boost{Type: BoostCooldown, Value: 0.8}, BaseHunger: 55},
}

var eggTable = []Egg{
	{ID: "common_egg", Name: "Common Egg", Price: 500, AllowedSpecies: []string{"turtle", "rabbit", "hamster"}},
	{ID: "rare_egg", Name: "Rare Egg", Price: 2_500, AllowedSpecies: []string{"fox", "owl", "cat"}},
	{ID: "legendary_egg", Name: "Legendary Egg", Price: 15_000, AllowedSpecies: []string{"phoenix", "dragon", "unicorn"}},
}

var effectTable = []ConsumableEffect{
	{ID: "coin_potion", Name: "Coin Potion", EffectType: EffectCoins, Multiplier: 1.5, DurationMs: 30 * 60 * 1000, Price: 1_000},
	{ID: "xp_potion", Name: "XP Potion", EffectType: EffectXP, Multiplier: 1.5, DurationMs: 30 * 60 * 1000, Price: 800},
	{ID: "golden_elixir", Name: "Golden Elixir", EffectType: EffectCoins, Multiplier: 2.0, DurationMs: 60 * 60 * 1000, Price: 5_000},
	{ID: "scholar_tonic", Name: "Scholar Tonic", EffectType: EffectXP, Multiplier: 2.0, DurationMs: 60 * 60 * 1000, Price: 4_000},
}

var jobTable = []Job{
	{Name: "Cashier", Emoji: "🧾", Value: 50, XP: 20},
	{Name: "Barista", Emoji: "☕", Value: 60, XP: 22},
	{Name: "Courier", Emoji: "📦", Value: 75, XP: 25},
	{Name: "Line Cook", Emoji: "🍳", Value: 90, XP: 30},
	{Name: "Programmer", Emoji: "💻", Value: 120, XP: 40},
}

var challengeTable = []Challenge{
	{Tier: "easy", Name: "Warm-up Trial", Coins: 100, XP: 20},
	{Tier: "medium", Name: "Endurance Run", Coins: 200, XP: 40},
	{Tier: "hard", Name: "Gauntlet", Coins: 400, XP: 80},
	{Tier: "expert", Name: "Champion's Duel", Coins: 800, XP: 150},
	{Tier: "legendary", Name: "Trial of Legends", Coins: 1_500, XP: 300},
}

var crimeTable = []Crime{
	{Name: "Pickpocketing", RewardMin: 20, RewardMax: 80, FailMin: 10, FailMax: 40},
	{Name: "Shoplifting", RewardMin: 50, RewardMax: 150, FailMin: 30, FailMax: 90},
	{Name: "Car Theft", RewardMin: 150, RewardMax: 400, FailMin: 100, FailMax: 250},
	{Name: "Bank Heist", RewardMin: 500, RewardMax: 1_500, FailMin: 300, FailMax: 800},
}

var locationTable = []Location{
	{ID: "couch", Name: "Couch", Min: 5, Max: 30, Message: "You dug between the couch cushions and found %d coins."},
	{ID: "park", Name: "Park", Min: 10, Max: 40, Message: "You searched the park benches and picked up %d coins."},
	{ID: "car", Name: "Car", Min: 15, Max: 50, Message: "You checked under the car seats and found %d coins."},
	{ID: "dumpster", Name: "Dumpster", Min: 1, Max: 60, Message: "You held your nose in the dumpster and came out with %d coins."},
	{ID: "attic", Name: "Attic", Min: 20, Max: 70, Message: "You rummaged through dusty boxes in the attic and found %d coins."},
	{ID: "mailbox", Name: "Mailbox", Min: 5, Max: 45, Message: "Someone mailed you cash! You found %d coins in the mailbox."},
}
