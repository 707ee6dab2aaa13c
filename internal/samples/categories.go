package samples

import "strings"

// subjectOrder fixes the containment-test order so the first match wins
// deterministically.
var subjectOrder = []string{
	"mathematics",
	"history",
	"science",
	"literature",
	"geography",
	"programming",
}

// subjectCategories maps a known subject to its five rotation categories.
var subjectCategories = map[string][]string{
	"mathematics": {"Algebra", "Geometry", "Calculus", "Statistics", "Number Theory"},
	"history":     {"Ancient History", "Medieval History", "Modern History", "World Wars", "Political History"},
	"science":     {"Physics", "Chemistry", "Biology", "Astronomy", "Earth Science"},
	"literature":  {"Poetry", "Novels", "Drama", "Literary Devices", "World Literature"},
	"geography":   {"Physical Geography", "Countries", "Capitals", "Climate", "Maps"},
	"programming": {"Data Structures", "Algorithms", "Languages", "Databases", "Software Design"},
}

// genericCategories is the rotation used when the subject matches no known key.
var genericCategories = []string{"Fundamentals", "Concepts", "Applications", "Theory", "History"}

// CategoriesFor returns the category rotation for a subject. The subject is
// lowercased and tested for containment against the known keys in fixed
// order; unknown subjects get the generic rotation.
func CategoriesFor(subject string) []string {
	s := strings.ToLower(strings.TrimSpace(subject))
	if s == "" {
		return genericCategories
	}
	for _, key := range subjectOrder {
		if strings.Contains(s, key) || strings.Contains(key, s) {
			return subjectCategories[key]
		}
	}
	return genericCategories
}
