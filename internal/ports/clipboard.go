package ports

// Clipboard copies text for the user
type Clipboard interface {
	// Copy copies text and returns a short description of the method used
	Copy(text string) (string, error)
}
