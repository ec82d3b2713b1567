package usecase

import "testing"

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name  string
		query string
		title string
		want  float64
	}{
		{name: "exact", query: "dentista", title: "Dentista", want: scoreExact},
		{name: "exact ignores accents", query: "reunion", title: "Reunión", want: scoreExact},
		{name: "substring", query: "dentista", title: "Dentista de Lola", want: scoreSubstring},
		{name: "all words scattered", query: "juan reunión", title: "Reunión mensual con Juan", want: scoreAllWords},
		{name: "partial words", query: "reunión directorio", title: "Reunión con Juan", want: 0.25},
		{name: "nothing shared", query: "peluquería", title: "Gimnasio", want: 0},
		{name: "empty query", query: "", title: "Gimnasio", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchScore(tt.query, tt.title); got != tt.want {
				t.Errorf("matchScore(%q, %q) = %v, want %v", tt.query, tt.title, got, tt.want)
			}
		})
	}
}
