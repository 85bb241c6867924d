package config

import "time"

// UI and Display Constants
const (
	// Pagination
	PetsPerPage     = 5
	DefaultPageSize = 10
	MaxChoices      = 25

	// Colors
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00

	// Discord UI Colors
	EmbedDefaultColor = 0x2B2D31

	// Rarity Colors
	RarityCommonColor    = 0x808080
	RarityRareColor      = 0x0000FF
	RarityEpicColor      = 0x800080
	RarityLegendaryColor = 0xFFD700
	RarityMythicColor    = 0xFF00AA
)

// Database and Performance Constants
const (
	// Timeouts
	DefaultQueryTimeout     = 30 * time.Second
	BatchQueryTimeout       = 30 * time.Second
	CommandExecutionTimeout = 10 * time.Second
	PersistTimeout          = 5 * time.Second

	// Cache settings
	AccountCacheSize = 10000

	// Migration
	MigrateWorkers   = 4
	MigrateBatchSize = 100
)

// Store backends
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendRedis    = "redis"
	BackendMemory   = "memory"

	DefaultStorePath     = "data/accounts.json"
	DefaultRedisHash     = "accounts"
	DefaultMongoDatabase = "gatherbot"
	DefaultMongoAccounts = "accounts"
)
