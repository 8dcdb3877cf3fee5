package catalog

// DefaultLanguageID is the language used when a request names none.
const DefaultLanguageID = "en"

// Default returns the built-in Who Goes First catalog.
func Default() (*Catalog, error) {
	return New(DefaultLanguageID, builtinLanguages(), builtinCards())
}

func builtinLanguages() []Language {
	return []Language{
		{
			ID:   "en",
			Name: "English",
			Sections: map[string]string{
				SectionAbout:      "about",
				SectionCards:      "cards",
				SectionRandomCard: "random-card",
			},
		},
		{
			ID:   "fr",
			Name: "français",
			Sections: map[string]string{
				SectionAbout:      "à-propos",
				SectionCards:      "cartes",
				SectionRandomCard: "carte-au-hasard",
			},
		},
	}
}

func builtinCards() []Card {
	return []Card{
		{ID: "award", Names: map[string]string{"en": "award", "fr": "prix"}},
		english("baking"),
		english("batteries"),
		english("birthday"),
		english("building"),
		english("buttons"),
		english("drawing"),
		{ID: "d20", Names: map[string]string{"en": "d20", "fr": "d20"}},
		english("flat-tire"),
		english("foreign-language"),
		english("hammock"),
		english("junk-mail"),
		english("light-bulb"),
		english("litter-box"),
		english("oldest-movie"),
		english("onion"),
		english("pizza"),
		english("post-office"),
		english("postcard"),
		english("stung"),
		english("survey"),
		english("train"),
		english("trash"),
		{ID: "tv", Names: map[string]string{"en": "television"}},
		{ID: "walk-dog", Names: map[string]string{"en": "walk-a-dog"}},
		{ID: "went-to-movies", Names: map[string]string{"en": "went-to-the-movies"}},
	}
}

// english builds a card whose English slug equals its ID.
func english(id string) Card {
	return Card{ID: id, Names: map[string]string{"en": id}}
}
