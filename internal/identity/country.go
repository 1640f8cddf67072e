package identity

import (
	"strings"
	"sync"
)

// UnknownCountry is the sentinel code for names that do not resolve.
const UnknownCountry = "XX"

// countries maps ISO 3166-1 alpha-2 codes to the names accepted on registration
// forms (French first, then English and common variants).
var countries = []struct {
	code  string
	names []string
}{
	{"AF", []string{"Afghanistan"}},
	{"ZA", []string{"Afrique du Sud", "South Africa"}},
	{"AL", []string{"Albanie", "Albania"}},
	{"DZ", []string{"Algérie", "Algeria"}},
	{"DE", []string{"Allemagne", "Germany"}},
	{"AD", []string{"Andorre", "Andorra"}},
	{"AO", []string{"Angola"}},
	{"AG", []string{"Antigua-et-Barbuda", "Antigua and Barbuda"}},
	{"SA", []string{"Arabie saoudite", "Saudi Arabia"}},
	{"AR", []string{"Argentine", "Argentina"}},
	{"AM", []string{"Arménie", "Armenia"}},
	{"AU", []string{"Australie", "Australia"}},
	{"AT", []string{"Autriche", "Austria"}},
	{"AZ", []string{"Azerbaïdjan", "Azerbaijan"}},
	{"BS", []string{"Bahamas"}},
	{"BH", []string{"Bahreïn", "Bahrain"}},
	{"BD", []string{"Bangladesh"}},
	{"BB", []string{"Barbade", "Barbados"}},
	{"BE", []string{"Belgique", "Belgium"}},
	{"BZ", []string{"Belize"}},
	{"BJ", []string{"Bénin", "Benin"}},
	{"BT", []string{"Bhoutan", "Bhutan"}},
	{"BY", []string{"Biélorussie", "Belarus"}},
	{"MM", []string{"Birmanie", "Myanmar"}},
	{"BO", []string{"Bolivie", "Bolivia"}},
	{"BA", []string{"Bosnie-Herzégovine", "Bosnia and Herzegovina"}},
	{"BW", []string{"Botswana"}},
	{"BR", []string{"Brésil", "Brazil"}},
	{"BN", []string{"Brunei"}},
	{"BG", []string{"Bulgarie", "Bulgaria"}},
	{"BF", []string{"Burkina Faso"}},
	{"BI", []string{"Burundi"}},
	{"KH", []string{"Cambodge", "Cambodia"}},
	{"CM", []string{"Cameroun", "Cameroon"}},
	{"CA", []string{"Canada"}},
	{"CV", []string{"Cap-Vert", "Cape Verde", "Cabo Verde"}},
	{"CF", []string{"République centrafricaine", "Centrafrique", "Central African Republic"}},
	{"CL", []string{"Chili", "Chile"}},
	{"CN", []string{"Chine", "China"}},
	{"CY", []string{"Chypre", "Cyprus"}},
	{"CO", []string{"Colombie", "Colombia"}},
	{"KM", []string{"Comores", "Comoros"}},
	{"CG", []string{"Congo", "République du Congo", "Republic of the Congo", "Congo-Brazzaville"}},
	{"CD", []string{"République démocratique du Congo", "RDC", "Democratic Republic of the Congo", "Congo-Kinshasa"}},
	{"KP", []string{"Corée du Nord", "North Korea"}},
	{"KR", []string{"Corée du Sud", "South Korea"}},
	{"CR", []string{"Costa Rica"}},
	{"CI", []string{"Côte d'Ivoire", "Ivory Coast"}},
	{"HR", []string{"Croatie", "Croatia"}},
	{"CU", []string{"Cuba"}},
	{"DK", []string{"Danemark", "Denmark"}},
	{"DJ", []string{"Djibouti"}},
	{"DM", []string{"Dominique", "Dominica"}},
	{"EG", []string{"Égypte", "Egypt"}},
	{"AE", []string{"Émirats arabes unis", "United Arab Emirates", "UAE"}},
	{"EC", []string{"Équateur", "Ecuador"}},
	{"ER", []string{"Érythrée", "Eritrea"}},
	{"ES", []string{"Espagne", "Spain"}},
	{"EE", []string{"Estonie", "Estonia"}},
	{"SZ", []string{"Eswatini", "Swaziland"}},
	{"US", []string{"États-Unis", "Etats-Unis", "United States", "USA"}},
	{"ET", []string{"Éthiopie", "Ethiopia"}},
	{"FJ", []string{"Fidji", "Fiji"}},
	{"FI", []string{"Finlande", "Finland"}},
	{"FR", []string{"France"}},
	{"GA", []string{"Gabon"}},
	{"GM", []string{"Gambie", "Gambia"}},
	{"GE", []string{"Géorgie", "Georgia"}},
	{"GH", []string{"Ghana"}},
	{"GR", []string{"Grèce", "Greece"}},
	{"GD", []string{"Grenade", "Grenada"}},
	{"GT", []string{"Guatemala"}},
	{"GN", []string{"Guinée", "Guinea"}},
	{"GQ", []string{"Guinée équatoriale", "Equatorial Guinea"}},
	{"GW", []string{"Guinée-Bissau", "Guinea-Bissau"}},
	{"GY", []string{"Guyana"}},
	{"HT", []string{"Haïti", "Haiti"}},
	{"HN", []string{"Honduras"}},
	{"HU", []string{"Hongrie", "Hungary"}},
	{"IN", []string{"Inde", "India"}},
	{"ID", []string{"Indonésie", "Indonesia"}},
	{"IQ", []string{"Irak", "Iraq"}},
	{"IR", []string{"Iran"}},
	{"IE", []string{"Irlande", "Ireland"}},
	{"IS", []string{"Islande", "Iceland"}},
	{"IL", []string{"Israël", "Israel"}},
	{"IT", []string{"Italie", "Italy"}},
	{"JM", []string{"Jamaïque", "Jamaica"}},
	{"JP", []string{"Japon", "Japan"}},
	{"JO", []string{"Jordanie", "Jordan"}},
	{"KZ", []string{"Kazakhstan"}},
	{"KE", []string{"Kenya"}},
	{"KG", []string{"Kirghizistan", "Kyrgyzstan"}},
	{"KI", []string{"Kiribati"}},
	{"KW", []string{"Koweït", "Kuwait"}},
	{"LA", []string{"Laos"}},
	{"LS", []string{"Lesotho"}},
	{"LV", []string{"Lettonie", "Latvia"}},
	{"LB", []string{"Liban", "Lebanon"}},
	{"LR", []string{"Liberia"}},
	{"LY", []string{"Libye", "Libya"}},
	{"LI", []string{"Liechtenstein"}},
	{"LT", []string{"Lituanie", "Lithuania"}},
	{"LU", []string{"Luxembourg"}},
	{"MK", []string{"Macédoine du Nord", "North Macedonia"}},
	{"MG", []string{"Madagascar"}},
	{"MY", []string{"Malaisie", "Malaysia"}},
	{"MW", []string{"Malawi"}},
	{"MV", []string{"Maldives"}},
	{"ML", []string{"Mali"}},
	{"MT", []string{"Malte", "Malta"}},
	{"MA", []string{"Maroc", "Morocco"}},
	{"MH", []string{"Îles Marshall", "Marshall Islands"}},
	{"MU", []string{"Maurice", "Mauritius"}},
	{"MR", []string{"Mauritanie", "Mauritania"}},
	{"MX", []string{"Mexique", "Mexico"}},
	{"FM", []string{"Micronésie", "Micronesia"}},
	{"MD", []string{"Moldavie", "Moldova"}},
	{"MC", []string{"Monaco"}},
	{"MN", []string{"Mongolie", "Mongolia"}},
	{"ME", []string{"Monténégro", "Montenegro"}},
	{"MZ", []string{"Mozambique"}},
	{"NA", []string{"Namibie", "Namibia"}},
	{"NR", []string{"Nauru"}},
	{"NP", []string{"Népal", "Nepal"}},
	{"NI", []string{"Nicaragua"}},
	{"NE", []string{"Niger"}},
	{"NG", []string{"Nigeria", "Nigéria"}},
	{"NO", []string{"Norvège", "Norway"}},
	{"NZ", []string{"Nouvelle-Zélande", "New Zealand"}},
	{"OM", []string{"Oman"}},
	{"UG", []string{"Ouganda", "Uganda"}},
	{"UZ", []string{"Ouzbékistan", "Uzbekistan"}},
	{"PK", []string{"Pakistan"}},
	{"PW", []string{"Palaos", "Palau"}},
	{"PS", []string{"Palestine"}},
	{"PA", []string{"Panama"}},
	{"PG", []string{"Papouasie-Nouvelle-Guinée", "Papua New Guinea"}},
	{"PY", []string{"Paraguay"}},
	{"NL", []string{"Pays-Bas", "Netherlands"}},
	{"PE", []string{"Pérou", "Peru"}},
	{"PH", []string{"Philippines"}},
	{"PL", []string{"Pologne", "Poland"}},
	{"PT", []string{"Portugal"}},
	{"QA", []string{"Qatar"}},
	{"DO", []string{"République dominicaine", "Dominican Republic"}},
	{"CZ", []string{"Tchéquie", "République tchèque", "Czech Republic", "Czechia"}},
	{"RO", []string{"Roumanie", "Romania"}},
	{"GB", []string{"Royaume-Uni", "United Kingdom", "UK"}},
	{"RU", []string{"Russie", "Russia"}},
	{"RW", []string{"Rwanda"}},
	{"KN", []string{"Saint-Kitts-et-Nevis", "Saint Kitts and Nevis"}},
	{"SM", []string{"Saint-Marin", "San Marino"}},
	{"VC", []string{"Saint-Vincent-et-les-Grenadines", "Saint Vincent and the Grenadines"}},
	{"LC", []string{"Sainte-Lucie", "Saint Lucia"}},
	{"SB", []string{"Îles Salomon", "Solomon Islands"}},
	{"SV", []string{"Salvador", "El Salvador"}},
	{"WS", []string{"Samoa"}},
	{"ST", []string{"Sao Tomé-et-Principe", "Sao Tome and Principe"}},
	{"SN", []string{"Sénégal", "Senegal"}},
	{"RS", []string{"Serbie", "Serbia"}},
	{"SC", []string{"Seychelles"}},
	{"SL", []string{"Sierra Leone"}},
	{"SG", []string{"Singapour", "Singapore"}},
	{"SK", []string{"Slovaquie", "Slovakia"}},
	{"SI", []string{"Slovénie", "Slovenia"}},
	{"SO", []string{"Somalie", "Somalia"}},
	{"SD", []string{"Soudan", "Sudan"}},
	{"SS", []string{"Soudan du Sud", "South Sudan"}},
	{"LK", []string{"Sri Lanka"}},
	{"SE", []string{"Suède", "Sweden"}},
	{"CH", []string{"Suisse", "Switzerland"}},
	{"SR", []string{"Suriname"}},
	{"SY", []string{"Syrie", "Syria"}},
	{"TJ", []string{"Tadjikistan", "Tajikistan"}},
	{"TZ", []string{"Tanzanie", "Tanzania"}},
	{"TD", []string{"Tchad", "Chad"}},
	{"TH", []string{"Thaïlande", "Thailand"}},
	{"TL", []string{"Timor oriental", "Timor-Leste", "East Timor"}},
	{"TG", []string{"Togo"}},
	{"TO", []string{"Tonga"}},
	{"TT", []string{"Trinité-et-Tobago", "Trinidad and Tobago"}},
	{"TN", []string{"Tunisie", "Tunisia"}},
	{"TM", []string{"Turkménistan", "Turkmenistan"}},
	{"TR", []string{"Turquie", "Turkey", "Türkiye"}},
	{"TV", []string{"Tuvalu"}},
	{"UA", []string{"Ukraine"}},
	{"UY", []string{"Uruguay"}},
	{"VU", []string{"Vanuatu"}},
	{"VA", []string{"Vatican", "Vatican City"}},
	{"VE", []string{"Venezuela"}},
	{"VN", []string{"Viêt Nam", "Vietnam"}},
	{"YE", []string{"Yémen", "Yemen"}},
	{"ZM", []string{"Zambie", "Zambia"}},
	{"ZW", []string{"Zimbabwe"}},
	{"EH", []string{"Sahara occidental", "Western Sahara"}},
	{"XK", []string{"Kosovo"}},
}

var (
	countryIndexOnce sync.Once
	countryByName    map[string]string
	countryCodes     map[string]struct{}
)

func buildCountryIndex() {
	countryByName = make(map[string]string, len(countries)*2)
	countryCodes = make(map[string]struct{}, len(countries))
	for _, c := range countries {
		countryCodes[c.code] = struct{}{}
		for _, name := range c.names {
			countryByName[countryKey(name)] = c.code
		}
	}
}

// countryKey folds case and accents so "Sénégal" and "senegal" match.
func countryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(stripAccents(name)))
}

// ResolveCountry maps a country name or ISO-2 code to its ISO-2 code.
// Unknown input resolves to UnknownCountry.
func ResolveCountry(nameOrCode string) string {
	countryIndexOnce.Do(buildCountryIndex)

	trimmed := strings.TrimSpace(nameOrCode)
	if len(trimmed) == 2 {
		code := strings.ToUpper(trimmed)
		if _, ok := countryCodes[code]; ok {
			return code
		}
	}

	if code, ok := countryByName[countryKey(trimmed)]; ok {
		return code
	}
	return UnknownCountry
}
