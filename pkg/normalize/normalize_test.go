package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jportillo/incidencias-api/pkg/normalize"
)

func TestSearchTerm(t *testing.T) {
	cases := map[string]string{
		"José":          "jose",
		"  MÉNDEZ  ":    "mendez",
		"peña nieto":    "pena nieto",
		"Überprüfung":   "uberprufung",
		"sin-acentos":   "sin-acentos",
		"":              "",
		"   ":           "",
		"1ra Quincena":  "1ra quincena",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalize.SearchTerm(in), "entrada %q", in)
	}
}
