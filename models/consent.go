package models

// CookiePreferences are the per-visitor consent flags. Necessary is not a
// real choice: it is always true and never offered as a toggle.
type CookiePreferences struct {
	Necessary   bool `json:"necessary"`
	Analytics   bool `json:"analytics"`
	Marketing   bool `json:"marketing"`
	Preferences bool `json:"preferences"`
}

func NecessaryOnlyPreferences() CookiePreferences {
	return CookiePreferences{Necessary: true}
}

func AcceptAllPreferences() CookiePreferences {
	return CookiePreferences{Necessary: true, Analytics: true, Marketing: true, Preferences: true}
}
