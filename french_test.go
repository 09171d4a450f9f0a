package realiser

import "testing"

func TestFrenchInflect(t *testing.T) {
	r := newRealiser(t, "fr")
	cell := func(tense Tense, p Person, n Number) Features {
		return Features{FeatTense: tense, FeatPerson: p, FeatNumber: n}
	}
	tests := []struct {
		base  string
		cat   Category
		feats Features
		want  string
	}{
		{"parler", CatVerb, cell(TensePresent, PersonFirst, NumberSingular), "parle"},
		{"parler", CatVerb, cell(TensePresent, PersonSecond, NumberPlural), "parlez"},
		{"manger", CatVerb, cell(TensePresent, PersonFirst, NumberPlural), "mangeons"},
		{"manger", CatVerb, cell(TenseImperfect, PersonThird, NumberSingular), "mangeait"},
		{"manger", CatVerb, cell(TenseImperfect, PersonFirst, NumberPlural), "mangions"},
		{"manger", CatVerb, cell(TenseFuture, PersonThird, NumberSingular), "mangera"},
		{"finir", CatVerb, cell(TensePresent, PersonThird, NumberPlural), "finissent"},
		{"finir", CatVerb, cell(TenseConditional, PersonFirst, NumberSingular), "finirais"},
		{"vendre", CatVerb, cell(TenseFuture, PersonFirst, NumberPlural), "vendrons"},
		{"être", CatVerb, cell(TensePresent, PersonFirst, NumberPlural), "sommes"},
		{"être", CatVerb, cell(TenseImperfect, PersonThird, NumberPlural), "étaient"},
		{"être", CatVerb, cell(TenseFuture, PersonSecond, NumberSingular), "seras"},
		{"aller", CatVerb, cell(TenseFuture, PersonFirst, NumberSingular), "irai"},
		{"voir", CatVerb, cell(TenseImperfect, PersonFirst, NumberSingular), "voyais"},
		{"parler", CatVerb, Features{FeatForm: FormImperative, FeatPerson: PersonSecond, FeatNumber: NumberSingular}, "parle"},
		{"finir", CatVerb, Features{FeatForm: FormPresentParticiple}, "finissant"},
		{"manger", CatVerb, Features{FeatForm: FormPastParticiple, FeatGender: GenderFeminine, FeatNumber: NumberPlural}, "mangées"},
		{"finir", CatVerb, Features{FeatForm: FormPastParticiple}, "fini"},
		{"cheval", CatNoun, Features{FeatNumber: NumberPlural}, "chevaux"},
		{"bateau", CatNoun, Features{FeatNumber: NumberPlural}, "bateaux"},
		{"pneu", CatNoun, Features{FeatNumber: NumberPlural}, "pneus"},
		{"travail", CatNoun, Features{FeatNumber: NumberPlural}, "travaux"},
		{"prix", CatNoun, Features{FeatNumber: NumberPlural}, "prix"},
		{"heureux", CatAdjective, Features{FeatGender: GenderFeminine}, "heureuse"},
		{"actif", CatAdjective, Features{FeatGender: GenderFeminine, FeatNumber: NumberPlural}, "actives"},
		{"national", CatAdjective, Features{FeatNumber: NumberPlural}, "nationaux"},
		{"beau", CatAdjective, Features{FeatGender: GenderFeminine}, "belle"},
		{"bon", CatAdjective, Features{FeatComparative: true}, "meilleur"},
		{"vert", CatAdjective, Features{FeatComparative: true, FeatGender: GenderFeminine}, "plus verte"},
		{"le", CatDeterminer, Features{FeatGender: GenderFeminine}, "la"},
		{"un", CatDeterminer, Features{FeatNumber: NumberPlural}, "des"},
		{"ce", CatDeterminer, Features{FeatGender: GenderFeminine}, "cette"},
	}
	for _, tt := range tests {
		got := r.Inflect(tt.base, tt.cat, tt.feats)
		if got != tt.want {
			t.Errorf("Inflect(%q, %s, %v) = %q, want %q", tt.base, tt.cat, tt.feats, got, tt.want)
		}
	}
}

// chatMangePomme builds "le chat mange la pomme".
func chatMangePomme(f *Factory) *PhraseElement {
	return f.CreateClause(f.CreateNounPhrase("le", "chat"), "manger", f.CreateNounPhrase("le", "pomme"))
}

func TestFrenchClause(t *testing.T) {
	tests := []struct {
		name  string
		feats Features
		want  string
	}{
		{"present", nil, "Le chat mange la pomme."},
		{"passé composé", Features{FeatTense: TensePast}, "Le chat a mangé la pomme."},
		{"imperfect", Features{FeatTense: TensePast, FeatProgressive: true}, "Le chat mangeait la pomme."},
		{"future", Features{FeatTense: TenseFuture}, "Le chat mangera la pomme."},
		{"progressive", Features{FeatProgressive: true}, "Le chat est en train de manger la pomme."},
		{"negated", Features{FeatNegated: true}, "Le chat ne mange pas la pomme."},
		{"negated past", Features{FeatNegated: true, FeatTense: TensePast}, "Le chat n'a pas mangé la pomme."},
		{"passive", Features{FeatPassive: true}, "La pomme est mangée par le chat."},
		{"modal", Features{FeatModal: "pouvoir"}, "Le chat peut manger la pomme."},
		{"yes-no", Features{FeatInterrogative: InterrogYesNo}, "Est-ce que le chat mange la pomme?"},
		{"who subject", Features{FeatInterrogative: InterrogWhoSubject}, "Qui mange la pomme?"},
		{"what object", Features{FeatInterrogative: InterrogWhatObject}, "Qu'est-ce que le chat mange?"},
		{"passive who subject", Features{FeatInterrogative: InterrogWhoSubject, FeatPassive: true}, "Par qui est-ce que la pomme est mangée?"},
		{"who object", Features{FeatInterrogative: InterrogWhoObject}, "Qui est-ce que le chat mange?"},
		{"why", Features{FeatInterrogative: InterrogWhy}, "Pourquoi est-ce que le chat mange la pomme?"},
		{"where", Features{FeatInterrogative: InterrogWhere}, "Où est-ce que le chat mange la pomme?"},
		{"how", Features{FeatInterrogative: InterrogHow}, "Comment est-ce que le chat mange la pomme?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRealiser(t, "fr")
			c := chatMangePomme(r.Factory())
			for k, v := range tt.feats {
				c.Features().Set(k, v)
			}
			if got := r.RealiseSentence(c); got != tt.want {
				t.Errorf("RealiseSentence = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFrenchAgreement(t *testing.T) {
	r := newRealiser(t, "fr")
	f := r.Factory()

	plural := chatMangePomme(f)
	plural.Subjects()[0].Features().Set(FeatNumber, NumberPlural)
	if got, want := r.RealiseSentence(plural), "Les chats mangent la pomme."; got != want {
		t.Errorf("plural subject: got %q, want %q", got, want)
	}

	nous := f.CreateClause(f.CreateNounPhrase("nous", nil), "manger", f.CreateNounPhrase("un", "pomme"))
	if got, want := r.RealiseSentence(nous), "Nous mangeons une pomme."; got != want {
		t.Errorf("first plural: got %q, want %q", got, want)
	}

	arrived := f.CreateClause(f.CreateNounPhrase("Marie", nil), "arriver", nil)
	arrived.Features().Set(FeatTense, TensePast)
	if got, want := r.RealiseSentence(arrived), "Marie est arrivée."; got != want {
		t.Errorf("être auxiliary: got %q, want %q", got, want)
	}

	washes := f.CreateClause(f.CreateNounPhrase("elle", nil), "laver", nil)
	washes.Features().Set(FeatReflexive, true)
	if got, want := r.RealiseSentence(washes), "Elle se lave."; got != want {
		t.Errorf("reflexive clause: got %q, want %q", got, want)
	}

	washed := f.CreateClause(f.CreateNounPhrase("elle", nil), "laver", nil)
	washed.Features().Set(FeatReflexive, true)
	washed.Features().Set(FeatTense, TensePast)
	if got, want := r.RealiseSentence(washed), "Elle s'est lavée."; got != want {
		t.Errorf("reflexive passé composé: got %q, want %q", got, want)
	}

	je := f.CreateClause(f.CreateNounPhrase("je", nil), "aller", nil)
	je.Features().Set(FeatTense, TenseFuture)
	if got, want := r.RealiseSentence(je), "J'irai."; got != want {
		t.Errorf("elided subject: got %q, want %q", got, want)
	}
}

func TestFrenchClitics(t *testing.T) {
	r := newRealiser(t, "fr")
	f := r.Factory()

	c := f.CreateClause(f.CreateNounPhrase("le", "chat"), "manger", f.CreateNounPhrase("elle", nil))
	if got, want := r.RealiseSentence(c), "Le chat la mange."; got != want {
		t.Errorf("clitic: got %q, want %q", got, want)
	}

	// the participle agrees with the preceding direct object
	c = f.CreateClause(f.CreateNounPhrase("le", "chat"), "manger", f.CreateNounPhrase("elle", nil))
	c.Features().Set(FeatTense, TensePast)
	if got, want := r.RealiseSentence(c), "Le chat l'a mangée."; got != want {
		t.Errorf("clitic passé composé: got %q, want %q", got, want)
	}

	c = f.CreateClause(f.CreateNounPhrase("le", "chat"), "manger", f.CreateNounPhrase("elle", nil))
	c.Features().Set(FeatNegated, true)
	if got, want := r.RealiseSentence(c), "Le chat ne la mange pas."; got != want {
		t.Errorf("negated clitic: got %q, want %q", got, want)
	}
}

func TestFrenchComplements(t *testing.T) {
	r := newRealiser(t, "fr")
	f := r.Factory()
	gives := func(to Element) *PhraseElement {
		c := f.CreateClause(f.CreateNounPhrase("le", "garçon"), "donner", f.CreateNounPhrase("le", "pomme"))
		c.SetIndirectObject(to)
		return c
	}
	plural := func(p *PhraseElement) *PhraseElement {
		p.Features().Set(FeatNumber, NumberPlural)
		return p
	}
	tests := []struct {
		name string
		el   func() Element
		want string
	}{
		{"indirect object", func() Element {
			return gives(f.CreateNounPhrase("le", "fille"))
		}, "Le garçon donne la pomme à la fille."},
		{"au", func() Element {
			return gives(f.CreateNounPhrase("le", "chat"))
		}, "Le garçon donne la pomme au chat."},
		{"aux", func() Element {
			return gives(plural(f.CreateNounPhrase("le", "chat")))
		}, "Le garçon donne la pomme aux chats."},
		{"indirect clitic", func() Element {
			return gives(f.CreateNounPhrase("elle", nil))
		}, "Le garçon lui donne la pomme."},
		{"who indirect object", func() Element {
			c := gives(f.CreateNounPhrase("le", "fille"))
			c.Features().Set(FeatInterrogative, InterrogWhoIndirectObject)
			return c
		}, "À qui est-ce que le garçon donne la pomme?"},
		{"how many", func() Element {
			c := chatMangePomme(f)
			c.Subjects()[0].Features().Set(FeatNumber, NumberPlural)
			c.Features().Set(FeatInterrogative, InterrogHowMany)
			return c
		}, "Combien de chats mangent la pomme?"},
		{"several subjects", func() Element {
			c := chatMangePomme(f)
			c.AddSubject(f.CreateNounPhrase("le", "femme"))
			return c
		}, "Le chat et la femme mangent la pomme."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.RealiseSentence(tt.el()); got != tt.want {
				t.Errorf("RealiseSentence = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFrenchNounPhrase(t *testing.T) {
	r := newRealiser(t, "fr")
	f := r.Factory()
	np := func(spec, noun string, mods ...string) *PhraseElement {
		p := f.CreateNounPhrase(spec, noun)
		for _, m := range mods {
			p.AddPreModifier(f.CreateAdjectivePhrase(m))
		}
		return p
	}
	pp := func(prep string, np *PhraseElement) *PhraseElement {
		return f.CreatePrepositionPhrase(prep, np)
	}
	withComplement := func(head, comp *PhraseElement) *PhraseElement {
		head.AddComplement(comp)
		return head
	}
	plural := func(p *PhraseElement) *PhraseElement {
		p.Features().Set(FeatNumber, NumberPlural)
		return p
	}
	tests := []struct {
		name string
		el   Element
		want string
	}{
		{"postposed", np("le", "pomme", "rouge"), "La pomme rouge."},
		{"postposed plural", plural(np("le", "pomme", "vert")), "Les pommes vertes."},
		{"preposed", np("le", "chat", "grand"), "Le grand chat."},
		{"feminine form", np("un", "femme", "beau"), "Une belle femme."},
		{"elision", np("le", "homme"), "L'homme."},
		{"aspirated h", np("le", "héros"), "Le héros."},
		{"du", withComplement(np("le", "livre"), pp("de", np("le", "chat"))), "Le livre du chat."},
		{"des", withComplement(np("le", "livre"), pp("de", plural(np("le", "chat")))), "Le livre des chats."},
		{"au", pp("à", np("le", "marché")), "Au marché."},
		{"no contraction before a vowel", pp("à", np("le", "homme")), "À l'homme."},
		{"aux", pp("à", plural(np("le", "femme"))), "Aux femmes."},
		{"euphony", np("ce", "homme"), "Cet homme."},
	}
	for _, tt := range tests {
		if got := r.RealiseSentence(tt.el); got != tt.want {
			t.Errorf("%s: RealiseSentence = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFrenchInflectionTable(t *testing.T) {
	r := newRealiser(t, "fr")
	table := r.InflectionTable("finir", CatVerb)
	// four tenses by six cells, three imperatives, two participles
	if len(table.Cells) != 29 {
		t.Fatalf("len(Cells) = %d, want 29", len(table.Cells))
	}
	for _, c := range table.Cells {
		if c.Label == "imperative first plural" && c.Form != "finissons" {
			t.Errorf("%s = %q, want %q", c.Label, c.Form, "finissons")
		}
	}
	adj := r.InflectionTable("vert", CatAdjective)
	want := []string{"vert", "verts", "verte", "vertes", "plus vert"}
	got := adj.Forms()
	if len(got) != len(want) {
		t.Fatalf("Forms() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Forms()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
