package game

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible opponent
	// phases and modifier draws. A seed of 0 means a random seed will be
	// generated.
	Seed int64

	// Level is the zero-based index of the level to start on.
	Level int
}
