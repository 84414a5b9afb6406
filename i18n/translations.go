package i18n

import "log"

const (
	LangEN = "en"
	LangPT = "pt"
)

// Static UI strings, keyed by dot path. Missing keys fall back to the
// key itself so a bad lookup never blanks a page.
var translations = map[string]map[string]string{
	LangEN: {
		"nav.home":             "Home",
		"nav.locations":        "Locations",
		"nav.events":           "Events",
		"nav.updates":          "Updates",
		"nav.history":          "Our History",
		"nav.about":            "About Us",
		"nav.faq":              "FAQ",
		"nav.prayerWall":       "Prayer Wall",
		"nav.counselling":      "Counselling",
		"nav.contact":          "Contact",
		"nav.receiveJesus":     "Receive Jesus",
		"hero.badge":           "Guided by the Holy Spirit",
		"hero.title":           "Forward in Faith",
		"hero.subtitle":        "African Assembly of God - Spreading the Gospel across Mozambique and beyond",
		"hero.btnReceive":      "Receive Jesus",
		"hero.btnLocations":    "Find a Location",
		"hero.statChurches":    "Churches",
		"hero.statMembers":     "Members",
		"hero.statProvinces":   "Provinces",
		"hero.statYears":       "Years of Ministry",
		"footer.tagline":       "Spreading the Gospel across Mozambique and beyond.",
		"footer.quickLinks":    "Quick Links",
		"footer.contact":       "Contact Info",
		"footer.rights":        "All rights reserved.",
		"events.upcoming":      "Upcoming",
		"events.nationalPlan":  "National Events Plan",
		"events.searchPlaceholder": "Search events...",
		"events.categories.all":         "All",
		"events.categories.conferences": "Conferences",
		"events.categories.executive":   "Executive",
		"events.categories.seminars":    "Seminars",
		"events.categories.training":    "Training",
		"events.categories.workshops":   "Workshops",
		"events.categories.youth":       "Youth",
		"prayerWall.title":     "Prayer Wall",
		"prayerWall.submit":    "Share a Prayer Request",
		"prayerWall.pray":      "I Prayed",
	},
	LangPT: {
		"nav.home":             "Início",
		"nav.locations":        "Localizações",
		"nav.events":           "Eventos",
		"nav.updates":          "Atualizações",
		"nav.history":          "Nossa História",
		"nav.about":            "Sobre Nós",
		"nav.faq":              "Perguntas Frequentes",
		"nav.prayerWall":       "Mural de Oração",
		"nav.counselling":      "Aconselhamento",
		"nav.contact":          "Contacto",
		"nav.receiveJesus":     "Aceitar Jesus",
		"hero.badge":           "Guiada pelo Espírito Santo",
		"hero.title":           "Avante na Fé",
		"hero.subtitle":        "Assembleia de Deus Africana - Espalhando o Evangelho por Moçambique e além",
		"hero.btnReceive":      "Aceitar Jesus",
		"hero.btnLocations":    "Encontrar Igreja",
		"hero.statChurches":    "Igrejas",
		"hero.statMembers":     "Membros",
		"hero.statProvinces":   "Províncias",
		"hero.statYears":       "Anos de Ministério",
		"footer.tagline":       "Espalhando o Evangelho por Moçambique e além.",
		"footer.quickLinks":    "Links Rápidos",
		"footer.contact":       "Contactos",
		"footer.rights":        "Todos os direitos reservados.",
		"events.upcoming":      "Próximos",
		"events.nationalPlan":  "Plano Nacional de Eventos",
		"events.searchPlaceholder": "Pesquisar eventos...",
		"events.categories.all":         "Todos",
		"events.categories.conferences": "Conferências",
		"events.categories.executive":   "Executivo",
		"events.categories.seminars":    "Seminários",
		"events.categories.training":    "Treinamento",
		"events.categories.workshops":   "Workshops",
		"events.categories.youth":       "Jovens",
		"prayerWall.title":     "Mural de Oração",
		"prayerWall.submit":    "Compartilhar um Pedido de Oração",
		"prayerWall.pray":      "Eu Orei",
	},
}

// Table returns a copy of the full string table for a language, for
// handing to the frontend in one response.
func Table(lang string) map[string]string {
	table, ok := translations[lang]
	if !ok {
		table = translations[LangEN]
	}
	out := make(map[string]string, len(table))
	for key, value := range table {
		out[key] = value
	}
	return out
}

// T looks up a static string by dot path for the given language.
// Unknown languages fall back to English; unknown keys return the key.
func T(lang, key string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[LangEN]
	}
	if value, ok := table[key]; ok {
		return value
	}
	log.Printf("i18n: missing translation key %q for language %q", key, lang)
	return key
}
