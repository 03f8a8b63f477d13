package app

// Config holds runtime wiring options for building the app.
type Config struct {
	ProfileDir string // directory with extra *.yaml frequency profiles, may be empty
	Profile    string // name of the active reference profile, e.g. "english"
}
