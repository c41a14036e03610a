package analyzer

import "strings"

// humanizeVar turns a column name like "exercise_duration" into
// "exercise duration" for insight text.
func humanizeVar(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// titleVar additionally capitalizes each word, for sentence-leading use.
func titleVar(name string) string {
	words := strings.Fields(humanizeVar(name))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// dayWord pluralizes "day" for lag phrasing.
func dayWord(lag int) string {
	if lag > 1 {
		return "days"
	}
	return "day"
}
