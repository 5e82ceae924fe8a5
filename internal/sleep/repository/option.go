package repository

// PredictSleepOptions is the encoded feature vector handed to the model.
type PredictSleepOptions struct {
	WakeSeconds int     // seconds since midnight
	SleepHours  float64 // desired sleep in hours
	CoffeeCups  int     // cups per day
}

// ModelInfo describes the loaded artifact.
type ModelInfo struct {
	Name     string
	Version  string
	Target   string
	Source   string
	Features []string
}
