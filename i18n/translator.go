package i18n

import (
	"regexp"
	"sort"
)

// ChurchTerms maps known English phrases from the events/locations
// provider to Portuguese. Matching is case-insensitive and longest
// phrase first, so "Youth Service" wins over "Service".
var ChurchTerms = map[string]string{
	"National Youth Conference":   "Conferência Nacional de Jovens",
	"National Women's Conference": "Conferência Nacional de Mulheres",
	"National Men's Conference":   "Conferência Nacional de Homens",
	"Youth Conference":            "Conferência de Jovens",
	"Deeper Life Conference":      "Conferência Vida Profunda",
	"All Zones Deeperlife":        "Vida Profunda de Todas as Zonas",
	"All Zones Deeper Life":       "Vida Profunda de Todas as Zonas",
	"Deeper Life":                 "Vida Profunda",
	"Women's Conference":          "Conferência de Mulheres",
	"Men's Conference":            "Conferência de Homens",
	"National Conference":         "Conferência Nacional",
	"National Youth Service":      "Culto Nacional de Jovens",
	"Youth Service":               "Culto de Jovens",
	"Worship Service":             "Culto de Adoração",
	"Prayer Meeting":              "Reunião de Oração",
	"Bible Study":                 "Estudo Bíblico",
	"Leadership Summit":           "Cúpula de Liderança",
	"Leadership Training":         "Treinamento de Liderança",
	"Men's Ministry":              "Ministério de Homens",
	"Women's Ministry":            "Ministério de Mulheres",
	"Children's Ministry":         "Ministério Infantil",
	"Couples Ministry":            "Ministério de Casais",
	"Youth Ministry":              "Ministério de Jovens",
	"Worship Team":                "Equipe de Louvor",
	"Usher Team":                  "Equipe de Recepcionistas",
	"Pastoral Care":               "Cuidado Pastoral",
	"Holy Communion":              "Santa Ceia",
	"New Year's Eve":              "Véspera de Ano Novo",
	"Christmas Service":           "Culto de Natal",
	"Easter Service":              "Culto de Páscoa",
	"Thanksgiving Service":        "Culto de Ação de Graças",
	"Mission Trip":                "Viagem Missionária",
	"Outreach Event":              "Evento de Evangelismo",
	"Community Service":           "Serviço Comunitário",
	"Food Drive":                  "Distribuição de Alimentos",
	"Youth Camp":                  "Acampamento de Jovens",
	"Summer Camp":                 "Acampamento de Verão",
	"Winter Retreat":              "Retiro de Inverno",
	"Men's Breakfast":             "Café da Manhã dos Homens",
	"Women's Tea":                 "Chá das Mulheres",
	"General Assembly":            "Assembleia Geral",
	"Annual Meeting":              "Reunião Anual",
	"Board Meeting":               "Reunião da Diretoria",
	"Staff Meeting":               "Reunião da Equipe",
	"Volunteer Appreciation":      "Apreciação dos Voluntários",
	"Guest Speaker":               "Palestrante Convidado",
	"Special Event":               "Evento Especial",
	"Fundraiser":                  "Angariação de Fundos",
	"Concert":                     "Concerto",
	"Festival":                    "Festival",
	"Workshop":                    "Workshop",
	"Seminar":                     "Seminário",
	"Class":                       "Aula",
	"Course":                      "Curso",

	"Join us for":          "Junte-se a nós para",
	"Join us for a":        "Junte-se a nós para um",
	"Join us for the":      "Junte-se a nós para a",
	"We invite you to":     "Convidamos você para",
	"We invite you to the": "Convidamos você para a",
	"will be held at":      "será realizado em",
	"taking place at":      "acontecendo em",
	"located at":           "localizado em",
	"starts at":            "começa às",
	"beginning at":         "começando às",
	"doors open at":        "portas abrem às",
	"hosted by":            "organizado por",
	"guest speaker":        "palestrante convidado",
	"guest artist":         "artista convidado",
	"special guest":        "convidado especial",
	"open to all":          "aberto a todos",
	"admission is free":    "entrada livre",
	"free admission":       "entrada gratuita",
	"bring a friend":       "traga um amigo",
	"invite your friends":  "convide seus amigos",
	"come and be blessed":  "venha e seja abençoado",
	"a time of":            "um tempo de",
	"a night of":           "uma noite de",
	"a day of":             "um dia de",
	"don't miss out":       "não perca",
	"save the date":        "reserve a data",
	"more info":            "mais informações",
	"contact us":           "contacte-nos",
	"for more details":     "para mais detalhes",
	"register now":         "registre-se agora",
	"sign up":              "inscreva-se",

	"Youth":        "Jovens",
	"Service":      "Culto",
	"Worship":      "Adoração",
	"Training":     "Treinamento",
	"Conference":   "Conferência",
	"National":     "Nacional",
	"Meeting":      "Reunião",
	"Prayer":       "Oração",
	"Leadership":   "Liderança",
	"Outreach":     "Evangelismo",
	"Convention":   "Convenção",
	"Retreat":      "Retiro",
	"Camp":         "Acampamento",
	"Dedication":   "Dedicação",
	"Baptism":      "Batismo",
	"Communion":    "Santa Ceia",
	"Thanksgiving": "Ação de Graças",
	"Christmas":    "Natal",
	"Easter":       "Páscoa",
	"New Year":     "Ano Novo",
	"Vigil":        "Vigília",
	"Fast":         "Jejum",
	"School":       "Escola",
	"Ministry":     "Ministério",
	"Family":       "Família",
	"Couples":      "Casais",
	"Singles":      "Solteiros",
	"Seniors":      "Idosos",
	"Pastor":       "Pastor",
	"Pastors":      "Pastores",
	"Leaders":      "Líderes",
	"Deacons":      "Diáconos",
	"Elders":       "Presbíteros",
	"Members":      "Membros",
	"Assembly":     "Assembleia",
	"Gala":         "Gala",
	"Dinner":       "Jantar",
	"Lunch":        "Almoço",
	"Breakfast":    "Café da Manhã",
	"Plan":         "Plano",
	"Launch":       "Lançamento",
	"Ceremony":     "Cerimônia",
	"Celebration":  "Celebração",
	"Anniversary":  "Aniversário",
	"Birthday":     "Aniversário",
	"Wedding":      "Casamento",
	"Funeral":      "Funeral",
	"Memorial":     "Memorial",
	"Location":     "Localização",
	"TBA":          "A definir",
	"Online":       "Online",
	"Zoom":         "Zoom",
	"Live":         "Ao Vivo",
	"Stream":       "Transmissão",
	"All":          "Todos",
	"General":      "Geral",
	"Zones":        "Zonas",
	"Zone":         "Zona",

	"Malhazine Conference Centre": "Centro de Conferências de Malhazine",
	"Malhazine Conference Center": "Centro de Conferências de Malhazine",
	"Conference Centre":           "Centro de Conferências",
	"Conference Center":           "Centro de Conferências",
	"Main Church":                 "Igreja Sede",
	"Headquarters":                "Sede",
	"Auditorium":                  "Auditório",
	"Main Hall":                   "Salão Principal",
	"Room":                        "Sala",
}

var (
	termsByLength []string
	termPatterns  map[string]*regexp.Regexp
)

func init() {
	termsByLength = make([]string, 0, len(ChurchTerms))
	termPatterns = make(map[string]*regexp.Regexp, len(ChurchTerms))
	for term := range ChurchTerms {
		termsByLength = append(termsByLength, term)
		termPatterns[term] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	}
	sort.Slice(termsByLength, func(i, j int) bool {
		if len(termsByLength[i]) != len(termsByLength[j]) {
			return len(termsByLength[i]) > len(termsByLength[j])
		}
		return termsByLength[i] < termsByLength[j]
	})
}

// TranslateDynamic best-effort translates server-authored English text
// to Portuguese. English (or any non-pt language) passes through
// untouched. An exact whole-string hit wins; otherwise each known
// phrase is substituted wherever it appears as a whole word.
func TranslateDynamic(text, lang string) string {
	if text == "" || lang != LangPT {
		return text
	}

	if exact, ok := ChurchTerms[text]; ok {
		return exact
	}

	translated := text
	for _, term := range termsByLength {
		re := termPatterns[term]
		if re.MatchString(translated) {
			translated = re.ReplaceAllString(translated, ChurchTerms[term])
		}
	}
	return translated
}
