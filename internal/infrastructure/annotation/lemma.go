package annotation

import "strings"

// baseVerbs is the lexicon used to validate stems produced by the suffix
// rules and to recognize sentence-initial imperatives. It covers the common
// verbs of project documents; unknown words fall through untouched.
var baseVerbs = map[string]bool{
	"create": true, "develop": true, "deploy": true, "finalize": true,
	"review": true, "test": true, "implement": true, "build": true,
	"design": true, "configure": true, "prepare": true, "submit": true,
	"validate": true, "verify": true, "establish": true, "conduct": true,
	"ensure": true, "support": true, "deliver": true, "manage": true,
	"coordinate": true, "define": true, "document": true, "plan": true,
	"schedule": true, "assign": true, "complete": true, "update": true,
	"release": true, "migrate": true, "integrate": true, "train": true,
	"monitor": true, "analyze": true, "gather": true, "collect": true,
	"write": true, "run": true, "set": true, "fix": true, "launch": true,
	"organize": true, "provide": true, "perform": true, "execute": true,
}

// irregularVerbs maps inflected forms that the suffix rules cannot reach.
var irregularVerbs = map[string]string{
	"built":   "build",
	"ran":     "run",
	"wrote":   "write",
	"written": "write",
	"set":     "set",
	"made":    "make",
	"did":     "do",
	"done":    "do",
	"went":    "go",
	"gone":    "go",
	"took":    "take",
	"taken":   "take",
	"gave":    "give",
	"given":   "give",
	"is":      "be",
	"are":     "be",
	"was":     "be",
	"were":    "be",
	"been":    "be",
	"has":     "have",
	"had":     "have",
}

// lemmatize reduces an English verb form to its base form with irregular
// lookups and suffix stripping. Non-verbs pass through mostly unchanged,
// which is harmless: callers only compare lemmas against verb sets.
func lemmatize(word string) string {
	w := strings.ToLower(word)

	if base, ok := irregularVerbs[w]; ok {
		return base
	}
	if baseVerbs[w] {
		return w
	}

	switch {
	case strings.HasSuffix(w, "ing") && len(w) > 4:
		return resolveStem(w[:len(w)-3])
	case strings.HasSuffix(w, "ied") && len(w) > 3:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ed") && len(w) > 3:
		return resolveStem(w[:len(w)-2])
	case strings.HasSuffix(w, "ies") && len(w) > 3:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "es") && len(w) > 3:
		if base := resolveStem(w[:len(w)-2]); baseVerbs[base] {
			return base
		}
		return w[:len(w)-1]
	case strings.HasSuffix(w, "s") && len(w) > 2:
		return w[:len(w)-1]
	}
	return w
}

// resolveStem repairs a stem left by stripping -ing/-ed: restore a dropped
// final e (creat -> create) or collapse a doubled consonant (runn -> run).
func resolveStem(stem string) string {
	if baseVerbs[stem] {
		return stem
	}
	if baseVerbs[stem+"e"] {
		return stem + "e"
	}
	if n := len(stem); n > 2 && stem[n-1] == stem[n-2] {
		if short := stem[:n-1]; baseVerbs[short] {
			return short
		}
	}
	return stem
}

// isBaseVerb reports whether the lower-cased word is a known base verb form.
func isBaseVerb(word string) bool {
	return baseVerbs[strings.ToLower(word)]
}
