package annotation

import "testing"

func TestLemmatize(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"Create", "create"},
		{"creates", "create"},
		{"created", "create"},
		{"creating", "create"},
		{"Reviewing", "review"},
		{"reviewed", "review"},
		{"running", "run"},
		{"planned", "plan"},
		{"submitted", "submit"},
		{"deploys", "deploy"},
		{"finalizes", "finalize"},
		{"built", "build"},
		{"wrote", "write"},
		{"was", "be"},
		{"has", "have"},
		{"schema", "schema"},
		{"studies", "study"},
		{"carried", "carry"},
	}

	for _, tc := range cases {
		if got := lemmatize(tc.word); got != tc.want {
			t.Errorf("lemmatize(%q) = %q, want %q", tc.word, got, tc.want)
		}
	}
}

func TestResolveStem(t *testing.T) {
	cases := []struct {
		stem string
		want string
	}{
		{"creat", "create"},
		{"runn", "run"},
		{"review", "review"},
		{"plann", "plan"},
		{"xyzz", "xyzz"},
	}

	for _, tc := range cases {
		if got := resolveStem(tc.stem); got != tc.want {
			t.Errorf("resolveStem(%q) = %q, want %q", tc.stem, got, tc.want)
		}
	}
}

func TestIsBaseVerb(t *testing.T) {
	if !isBaseVerb("Create") {
		t.Error("expected 'Create' to read as a base verb")
	}
	if isBaseVerb("schema") {
		t.Error("did not expect 'schema' to read as a verb")
	}
}
