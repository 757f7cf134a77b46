package classify

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseModelOutput(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Result
		wantErr bool
	}{
		{
			name: "bare JSON object",
			raw:  `{"categorie":"DEVIS","resume":"Devis placo 45m2 pour M. Dupont","details":{"client":"Dupont"},"reponse_vocale":"C'est noté, le devis part demain."}`,
			want: Result{
				Category:   CategoryQuote,
				Summary:    "Devis placo 45m2 pour M. Dupont",
				Details:    []byte(`{"client":"Dupont"}`),
				VoiceReply: "C'est noté, le devis part demain.",
			},
		},
		{
			name: "markdown fenced JSON parses identically",
			raw:  "```json\n{\"categorie\":\"DEVIS\",\"resume\":\"Devis placo 45m2 pour M. Dupont\",\"details\":{\"client\":\"Dupont\"},\"reponse_vocale\":\"C'est noté, le devis part demain.\"}\n```",
			want: Result{
				Category:   CategoryQuote,
				Summary:    "Devis placo 45m2 pour M. Dupont",
				Details:    []byte(`{"client":"Dupont"}`),
				VoiceReply: "C'est noté, le devis part demain.",
			},
		},
		{
			name: "prose around the object",
			raw:  "Voici l'analyse demandée :\n{\"categorie\":\"CHANTIER\",\"resume\":\"Plafond posé\",\"reponse_vocale\":\"Rapport enregistré.\"}\nBonne journée.",
			want: Result{
				Category:   CategorySiteReport,
				Summary:    "Plafond posé",
				Details:    []byte(`{}`),
				VoiceReply: "Rapport enregistré.",
			},
		},
		{
			name: "unknown category coerces to AUTRE",
			raw:  `{"categorie":"PUBLICITE","resume":"Démarchage","reponse_vocale":"Merci, au revoir."}`,
			want: Result{
				Category:   CategoryUnclassified,
				Summary:    "Démarchage",
				Details:    []byte(`{}`),
				VoiceReply: "Merci, au revoir.",
			},
		},
		{
			name: "lowercase category is accepted",
			raw:  `{"categorie":"commande","resume":"20 sacs de MAP","reponse_vocale":"Commande transmise."}`,
			want: Result{
				Category:   CategoryMaterialOrder,
				Summary:    "20 sacs de MAP",
				Details:    []byte(`{}`),
				VoiceReply: "Commande transmise.",
			},
		},
		{
			name:    "no JSON at all",
			raw:     "Je ne peux pas analyser ce message.",
			wantErr: true,
		},
		{
			name:    "unbalanced object",
			raw:     `{"categorie":"DEVIS","resume":"tronqué`,
			wantErr: true,
		},
		{
			name:    "missing categorie",
			raw:     `{"resume":"Un message","reponse_vocale":"Merci."}`,
			wantErr: true,
		},
		{
			name:    "missing reponse_vocale",
			raw:     `{"categorie":"DEVIS","resume":"Un devis"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseModelOutput(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedOutput) {
					t.Fatalf("ParseModelOutput() error = %v, want ErrMalformedOutput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseModelOutput() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseModelOutput() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseModelOutput_WrappingIsIdempotent(t *testing.T) {
	bare := `{"categorie":"DEVIS","resume":"Devis","details":{"client":"Martin"},"reponse_vocale":"C'est noté."}`
	fenced := "```json\n" + bare + "\n```"

	fromBare, err := ParseModelOutput(bare)
	if err != nil {
		t.Fatalf("bare parse error = %v", err)
	}
	fromFenced, err := ParseModelOutput(fenced)
	if err != nil {
		t.Fatalf("fenced parse error = %v", err)
	}
	if !reflect.DeepEqual(fromBare, fromFenced) {
		t.Errorf("wrapped and bare output parsed differently: %+v vs %+v", fromFenced, fromBare)
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"CHANTIER", CategorySiteReport},
		{"devis", CategoryQuote},
		{" RAPPEL ", CategoryPaymentReminder},
		{"Commande", CategoryMaterialOrder},
		{"MESSAGE", CategoryClientMessage},
		{"AUTRE", CategoryUnclassified},
		{"PUB", CategoryUnclassified},
		{"", CategoryUnclassified},
	}

	for _, tt := range tests {
		if got := NormalizeCategory(tt.in); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
