package wmi

// The tables in this file are fixed registry data. Country codes are
// encoded as contiguous ranges over the second character; range order is
// A-Z followed by 1-9 followed by 0, matching the assignment order used
// by the registry (so a range like "TW"-"T1" is contiguous).

// regionFor maps the leading VIN character to its manufacturing region.
func regionFor(c byte) (string, bool) {
	switch {
	case c >= 'A' && c <= 'H':
		return "Africa", true
	case c >= 'J' && c <= 'R':
		return "Asia", true
	case c >= 'S' && c <= 'Z':
		return "Europe", true
	case c >= '1' && c <= '5':
		return "North America", true
	case c == '6' || c == '7':
		return "Oceania", true
	case c == '8' || c == '9' || c == '0':
		return "South America", true
	}
	return "", false
}

// rank orders second characters within a country range: A-Z, then 1-9,
// then 0.
func rank(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	case c >= '1' && c <= '9':
		return 26 + int(c-'1')
	case c == '0':
		return 35
	}
	return -1
}

// countryRange assigns a country to a contiguous block of second
// characters under a fixed first character.
type countryRange struct {
	first    byte
	from, to byte
	country  string
}

var countries = []countryRange{
	// Africa
	{'A', 'A', 'H', "South Africa"},
	{'A', 'J', 'N', "Ivory Coast"},
	{'B', 'A', 'E', "Angola"},
	{'B', 'F', 'K', "Kenya"},
	{'B', 'L', 'R', "Tanzania"},
	{'C', 'A', 'E', "Benin"},
	{'C', 'F', 'K', "Madagascar"},
	{'C', 'L', 'R', "Tunisia"},
	{'D', 'A', 'E', "Egypt"},
	{'D', 'F', 'K', "Morocco"},
	{'D', 'L', 'R', "Zambia"},
	{'E', 'A', 'E', "Ethiopia"},
	{'E', 'F', 'K', "Mozambique"},
	{'F', 'A', 'E', "Ghana"},
	{'F', 'F', 'K', "Nigeria"},

	// Asia
	{'J', 'A', '0', "Japan"},
	{'K', 'A', 'E', "Sri Lanka"},
	{'K', 'F', 'K', "Israel"},
	{'K', 'L', 'R', "South Korea"},
	{'K', 'S', '0', "Kazakhstan"},
	{'L', 'A', '0', "China"},
	{'M', 'A', 'E', "India"},
	{'M', 'F', 'K', "Indonesia"},
	{'M', 'L', 'R', "Thailand"},
	{'N', 'A', 'E', "Iran"},
	{'N', 'F', 'K', "Pakistan"},
	{'N', 'L', 'R', "Turkey"},
	{'P', 'A', 'E', "Philippines"},
	{'P', 'F', 'K', "Singapore"},
	{'P', 'L', 'R', "Malaysia"},
	{'R', 'A', 'E', "United Arab Emirates"},
	{'R', 'F', 'K', "Taiwan"},
	{'R', 'L', 'R', "Vietnam"},
	{'R', 'S', '0', "Saudi Arabia"},

	// Europe
	{'S', 'A', 'M', "United Kingdom"},
	{'S', 'N', 'T', "Germany/East Germany"},
	{'S', 'U', 'Z', "Poland"},
	{'S', '1', '4', "Latvia"},
	{'T', 'A', 'H', "Switzerland"},
	{'T', 'J', 'P', "Czech Republic"},
	{'T', 'R', 'V', "Hungary"},
	{'T', 'W', '1', "Portugal"},
	{'U', 'H', 'M', "Denmark"},
	{'U', 'N', 'T', "Ireland"},
	{'U', 'U', 'Z', "Romania"},
	{'U', '5', '7', "Slovakia"},
	{'V', 'A', 'E', "Austria"},
	{'V', 'F', 'R', "France"},
	{'V', 'S', 'W', "Spain"},
	{'V', 'X', '2', "Serbia"},
	{'V', '3', '5', "Croatia"},
	{'V', '6', '0', "Estonia"},
	{'W', 'A', '0', "Germany/West Germany"},
	{'X', 'A', 'E', "Bulgaria"},
	{'X', 'F', 'K', "Greece"},
	{'X', 'L', 'R', "Netherlands"},
	{'X', 'S', 'W', "USSR/CIS"},
	{'X', 'X', '2', "Luxembourg"},
	{'X', '3', '0', "Russia"},
	{'Y', 'A', 'E', "Belgium"},
	{'Y', 'F', 'K', "Finland"},
	{'Y', 'L', 'R', "Malta"},
	{'Y', 'S', 'W', "Sweden"},
	{'Y', 'X', '2', "Norway"},
	{'Y', '3', '5', "Belarus"},
	{'Y', '6', '0', "Ukraine"},
	{'Z', 'A', 'R', "Italy"},
	{'Z', 'X', '2', "Slovenia"},
	{'Z', '3', '5', "Lithuania"},
	{'Z', '6', '0', "Russia"},

	// North America
	{'1', 'A', '0', "United States"},
	{'2', 'A', '0', "Canada"},
	{'3', 'A', 'W', "Mexico"},
	{'3', 'X', '7', "Costa Rica"},
	{'3', '8', '0', "Cayman Islands"},
	{'4', 'A', '0', "United States"},
	{'5', 'A', '0', "United States"},

	// Oceania
	{'6', 'A', 'W', "Australia"},
	{'7', 'A', 'E', "New Zealand"},

	// South America
	{'8', 'A', 'E', "Argentina"},
	{'8', 'F', 'K', "Chile"},
	{'8', 'L', 'R', "Ecuador"},
	{'8', 'S', 'W', "Peru"},
	{'8', 'X', '2', "Venezuela"},
	{'9', 'A', 'E', "Brazil"},
	{'9', 'F', 'K', "Colombia"},
	{'9', 'L', 'R', "Paraguay"},
	{'9', 'S', 'W', "Uruguay"},
	{'9', 'X', '2', "Trinidad & Tobago"},
	{'9', '3', '0', "Brazil"},
}

// countryFor resolves the two-character country code against the range
// table.
func countryFor(first, second byte) (string, bool) {
	r := rank(second)
	if r < 0 {
		return "", false
	}
	for _, cr := range countries {
		if cr.first == first && r >= rank(cr.from) && r <= rank(cr.to) {
			return cr.country, true
		}
	}
	return "", false
}

// manufacturers maps WMI prefixes to registered manufacturer names.
// Keys are 3 characters for manufacturers with dedicated codes and 2
// characters for older block assignments; Lookup tries the longest
// prefix first.
var manufacturers = map[string]string{
	// United States
	"1C3": "Chrysler car",
	"1C4": "Chrysler SUV",
	"1C6": "Chrysler truck",
	"1D3": "Dodge truck",
	"1FA": "Ford car",
	"1FB": "Ford bus",
	"1FC": "Ford stripped chassis",
	"1FD": "Ford incomplete vehicle",
	"1FM": "Ford MPV",
	"1FT": "Ford truck",
	"1FU": "Freightliner",
	"1FV": "Freightliner",
	"1G1": "Chevrolet car",
	"1G2": "Pontiac car",
	"1G3": "Oldsmobile car",
	"1G4": "Buick car",
	"1G6": "Cadillac car",
	"1G8": "Saturn car",
	"1GC": "Chevrolet truck",
	"1GM": "Pontiac MPV",
	"1GT": "GMC truck",
	"1GY": "Cadillac SUV",
	"1HG": "Honda car",
	"1J4": "Jeep",
	"1J8": "Jeep SUV",
	"1LN": "Lincoln car",
	"1ME": "Mercury car",
	"1M1": "Mack truck",
	"1M2": "Mack truck",
	"1M3": "Mack truck",
	"1N4": "Nissan car",
	"1N6": "Nissan truck",
	"1VW": "Volkswagen car",
	"1YV": "Mazda car (AutoAlliance International)",
	"1ZV": "Ford (AutoAlliance International)",
	"4F2": "Mazda SUV",
	"4JG": "Mercedes-Benz SUV",
	"4M2": "Mercury MPV",
	"4S3": "Subaru car",
	"4S4": "Subaru MPV",
	"4T1": "Toyota car",
	"4T3": "Toyota MPV",
	"4US": "BMW car",
	"4UZ": "Frt-Thomas bus",
	"4V1": "Volvo truck",
	"5FN": "Honda MPV",
	"5J6": "Honda SUV",
	"5LM": "Lincoln SUV",
	"5N1": "Nissan SUV",
	"5NP": "Hyundai car",
	"5TD": "Toyota SUV",
	"5TE": "Toyota truck",
	"5UX": "BMW SUV",
	"5YJ": "Tesla",

	// united states block assignments
	"1C": "Chrysler USA",
	"1F": "Ford USA",
	"1G": "General Motors USA",
	"1H": "Honda USA",
	"1J": "Jeep",
	"1L": "Lincoln USA",
	"1M": "Mack truck",
	"1N": "Nissan USA",
	"1V": "Volkswagen USA",
	"4F": "Mazda USA",
	"4M": "Mercury USA",
	"4S": "Subaru-Isuzu Automotive",
	"4T": "Toyota USA",
	"5F": "Honda USA",
	"5L": "Lincoln USA",
	"5N": "Hyundai USA",
	"5T": "Toyota USA truck",

	// Canada
	"2FA": "Ford car (Canada)",
	"2FM": "Ford MPV (Canada)",
	"2FT": "Ford truck (Canada)",
	"2G1": "Chevrolet car (Canada)",
	"2G2": "Pontiac car (Canada)",
	"2HG": "Honda car (Canada)",
	"2HK": "Honda SUV (Canada)",
	"2HM": "Hyundai car (Canada)",
	"2T1": "Toyota car (Canada)",
	"2F":  "Ford Canada",
	"2G":  "General Motors Canada",
	"2H":  "Honda Canada",
	"2T":  "Toyota Canada",

	// Mexico
	"3FA": "Ford car (Mexico)",
	"3FE": "Ford truck (Mexico)",
	"3G1": "Chevrolet car (Mexico)",
	"3H1": "Honda motorcycle (Mexico)",
	"3N1": "Nissan car (Mexico)",
	"3VW": "Volkswagen car (Mexico)",
	"3F":  "Ford Mexico",
	"3G":  "General Motors Mexico",
	"3N":  "Nissan Mexico",
	"3V":  "Volkswagen Mexico",

	// Oceania
	"6F4": "Nissan Australia",
	"6FP": "Ford Australia",
	"6G1": "General Motors-Holden car",
	"6G2": "Pontiac car (Australia)",
	"6H8": "Holden SUV",
	"6MM": "Mitsubishi Australia",
	"6T1": "Toyota Australia",
	"6F":  "Ford Australia",
	"6G":  "General Motors Australia",

	// South America
	"8AD": "Peugeot Argentina",
	"8AG": "Chevrolet Argentina",
	"8AP": "Fiat Argentina",
	"8AW": "Volkswagen Argentina",
	"935": "Citroën Brazil",
	"936": "Peugeot Brazil",
	"93H": "Honda Brazil",
	"93X": "Mitsubishi Brazil",
	"9BD": "Fiat Brazil",
	"9BG": "Chevrolet Brazil",
	"9BM": "Mercedes-Benz Brazil",
	"9BW": "Volkswagen Brazil",

	// Japan
	"JA3": "Mitsubishi car",
	"JA4": "Mitsubishi SUV",
	"JF1": "Subaru car",
	"JF2": "Subaru SUV",
	"JH4": "Acura car",
	"JHM": "Honda car (Japan)",
	"JM1": "Mazda car (Japan)",
	"JMB": "Mitsubishi car (Japan)",
	"JN1": "Nissan car (Japan)",
	"JN8": "Nissan SUV (Japan)",
	"JS1": "Suzuki motorcycle",
	"JS3": "Suzuki SUV",
	"JT2": "Toyota car (Japan)",
	"JT3": "Toyota SUV (Japan)",
	"JT4": "Toyota truck (Japan)",
	"JTD": "Toyota car (Japan)",
	"JTE": "Toyota SUV (Japan)",
	"JTH": "Lexus car",
	"JTJ": "Lexus SUV",

	// Korea
	"KL4": "Buick (GM Daewoo)",
	"KLA": "Daewoo car",
	"KM8": "Hyundai SUV",
	"KMH": "Hyundai car (Korea)",
	"KNA": "Kia car",
	"KND": "Kia SUV",
	"KNM": "Renault Samsung car",
	"KL":  "Daewoo/GM Korea",
	"KN":  "Kia Korea",

	// China
	"LFV": "FAW-Volkswagen car",
	"LSG": "Shanghai General Motors car",
	"LSV": "SAIC Volkswagen car",
	"LVS": "Changan Ford car",

	// rest of Asia
	"MA3": "Suzuki India (Maruti)",
	"MAL": "Hyundai India",
	"MHR": "Honda Indonesia",
	"MMB": "Mitsubishi Thailand",
	"MR0": "Toyota Thailand truck",
	"NLE": "Mercedes-Benz Türk bus",
	"NMT": "Toyota Türkiye car",
	"PL1": "Proton car",
	"SAJ": "Jaguar car",

	// United Kingdom
	"SAL": "Land Rover SUV",
	"SAR": "Rover car",
	"SB1": "Toyota UK car",
	"SCA": "Rolls-Royce car",
	"SCB": "Bentley car",
	"SCC": "Lotus car",
	"SCE": "DeLorean car",
	"SCF": "Aston Martin car",
	"SDB": "Peugeot UK car",
	"SHH": "Honda UK car",
	"SHS": "Honda UK SUV",
	"SJN": "Nissan UK car",

	// rest of Europe
	"TMB": "Škoda car",
	"TRU": "Audi Hungary car",
	"TSM": "Suzuki Hungary car",
	"UU1": "Dacia car",
	"VF1": "Renault car",
	"VF3": "Peugeot car",
	"VF6": "Renault truck",
	"VF7": "Citroën car",
	"VNK": "Toyota France car",
	"VSS": "SEAT car",
	"VSX": "Opel Spain car",
	"WAU": "Audi car",
	"WBA": "BMW car (Germany)",
	"WBS": "BMW M car",
	"WDB": "Mercedes-Benz car",
	"WDC": "DaimlerChrysler SUV",
	"WDD": "Mercedes-Benz car",
	"WF0": "Ford of Europe car",
	"WMA": "MAN truck",
	"WME": "Smart car",
	"WMW": "MINI car",
	"WP0": "Porsche car",
	"WP1": "Porsche SUV",
	"WVW": "Volkswagen car (Germany)",
	"WV1": "Volkswagen commercial vehicle",
	"WV2": "Volkswagen bus/van",
	"W0L": "Opel car",
	"XLR": "DAF truck",
	"XTA": "Lada/AvtoVAZ car",
	"YK1": "Saab Finland car",
	"YS3": "Saab car",
	"YV1": "Volvo car",
	"YV2": "Volvo truck",
	"YV4": "Volvo SUV",
	"ZAM": "Maserati car",
	"ZAR": "Alfa Romeo car",
	"ZCF": "Iveco truck",
	"ZFA": "Fiat car",
	"ZFF": "Ferrari car",
	"ZHW": "Lamborghini car",
	"ZLA": "Lancia car",
}
